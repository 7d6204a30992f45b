package ty

// Subst replaces the generic parameters and early-bound regions of t by
// the entries of s. Replacements that end up below a binder have their
// late-bound regions shifted accordingly. The first slot missing from s
// is reported as a *ParamOutOfRangeError; the parameter is left in place.
func Subst(t Type, s *Substs) (Type, error) {
	var err error
	f := &Folder{
		Type: func(t Type, depth DebruijnIndex) (Type, bool) {
			p, ok := t.(*Param)
			if !ok {
				return t, false
			}
			tys := s.TypesIn(p.Space)
			if int(p.Index) >= len(tys) {
				if err == nil {
					err = &ParamOutOfRangeError{Name: p.Name, Space: p.Space, Index: p.Index, Len: len(tys)}
				}
				return t, true
			}
			return ShiftType(tys[p.Index], depth), true
		},
		Region: func(r Region, depth DebruijnIndex) Region {
			eb, ok := r.(EarlyBound)
			if !ok {
				return r
			}
			rs := s.RegionsIn(eb.Space)
			if int(eb.Index) >= len(rs) {
				if err == nil {
					err = &ParamOutOfRangeError{Name: eb.Name, Space: eb.Space, Index: eb.Index, Len: len(rs)}
				}
				return r
			}
			return ShiftRegion(rs[eb.Index], depth)
		},
	}
	out := f.FoldType(t)
	return out, err
}
