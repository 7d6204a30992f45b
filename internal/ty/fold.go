package ty

// Foldable is implemented by values whose types and regions can be
// rewritten by a Folder.
type Foldable interface {
	FoldWith(f *Folder) Foldable
}

// Folder rewrites the types and regions reachable from a value.
//
// Depth is the number of binders entered relative to the folding root;
// it is incremented while folding the inside of a Binder. Both hooks
// receive the depth at which the visited value sits.
type Folder struct {
	Depth DebruijnIndex

	// Type, when set, is consulted before descending into a type. If it
	// returns true the returned type is used as is.
	Type func(t Type, depth DebruijnIndex) (Type, bool)

	// Region rewrites each region; nil leaves regions untouched.
	Region func(r Region, depth DebruijnIndex) Region
}

// FoldType folds t and everything below it.
func (f *Folder) FoldType(t Type) Type {
	if t == nil {
		return nil
	}
	if f.Type != nil {
		if out, done := f.Type(t, f.Depth); done {
			return out
		}
	}

	switch t := t.(type) {
	case *Scalar, *Error, *Str, *Infer, *Param:
		return t
	case *Box:
		return &Box{Elem: f.FoldType(t.Elem)}
	case *RawPtr:
		return &RawPtr{TypeAndMut: f.foldTypeAndMut(t.TypeAndMut)}
	case *Ref:
		r := f.FoldRegion(t.Region)
		return &Ref{Region: r, TypeAndMut: f.foldTypeAndMut(t.TypeAndMut)}
	case *Tuple:
		return &Tuple{Elems: f.FoldTypes(t.Elems)}
	case *FnDef:
		substs := f.FoldSubsts(t.Substs)
		return &FnDef{Def: t.Def, Substs: substs, Fn: f.foldBareFn(t.Fn)}
	case *FnPtr:
		return &FnPtr{Fn: f.foldBareFn(t.Fn)}
	case *Adt:
		return &Adt{Kind: t.Kind, Def: t.Def, Substs: f.FoldSubsts(t.Substs)}
	case *TraitObject:
		principal := FoldBinder(f, t.Principal)
		return &TraitObject{Principal: principal, Bounds: f.foldExistentialBounds(t.Bounds)}
	case *Projection:
		return &Projection{ProjectionTy: f.FoldProjectionTy(t.ProjectionTy)}
	case *Closure:
		return &Closure{Def: t.Def, Substs: ClosureSubsts{
			FuncSubsts: f.FoldSubsts(t.Substs.FuncSubsts),
			UpvarTys:   f.FoldTypes(t.Substs.UpvarTys),
		}}
	case *Array:
		return &Array{Elem: f.FoldType(t.Elem), Len: t.Len}
	case *Slice:
		return &Slice{Elem: f.FoldType(t.Elem)}
	}
	return t
}

// FoldTypes folds each element of ts into a new slice.
func (f *Folder) FoldTypes(ts []Type) []Type {
	if ts == nil {
		return nil
	}
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = f.FoldType(t)
	}
	return out
}

// FoldRegion applies the region hook.
func (f *Folder) FoldRegion(r Region) Region {
	if f.Region == nil || r == nil {
		return r
	}
	return f.Region(r, f.Depth)
}

// FoldSubsts folds every region and then every type of s.
func (f *Folder) FoldSubsts(s *Substs) *Substs {
	if s == nil {
		return nil
	}
	out := &Substs{}
	for space := 0; space < NumSpaces; space++ {
		if rs := s.Regions[space]; rs != nil {
			out.Regions[space] = make([]Region, len(rs))
			for i, r := range rs {
				out.Regions[space][i] = f.FoldRegion(r)
			}
		}
	}
	for space := 0; space < NumSpaces; space++ {
		out.Types[space] = f.FoldTypes(s.Types[space])
	}
	return out
}

// FoldTraitRef folds the substitutions of a trait reference.
func (f *Folder) FoldTraitRef(t TraitRef) TraitRef {
	return TraitRef{Def: t.Def, Substs: f.FoldSubsts(t.Substs)}
}

// FoldProjectionTy folds the trait reference of a projection.
func (f *Folder) FoldProjectionTy(p ProjectionTy) ProjectionTy {
	return ProjectionTy{TraitRef: f.FoldTraitRef(p.TraitRef), ItemName: p.ItemName}
}

// FoldProjectionPredicate folds both sides of a projection predicate.
func (f *Folder) FoldProjectionPredicate(p ProjectionPredicate) ProjectionPredicate {
	return ProjectionPredicate{ProjectionTy: f.FoldProjectionTy(p.ProjectionTy), Ty: f.FoldType(p.Ty)}
}

// FoldFnSig folds inputs, then output.
func (f *Folder) FoldFnSig(sig FnSig) FnSig {
	out := FnSig{Inputs: f.FoldTypes(sig.Inputs), Variadic: sig.Variadic, Output: sig.Output}
	if !sig.Output.Diverges {
		out.Output = Converging(f.FoldType(sig.Output.Ty))
	}
	return out
}

func (f *Folder) foldTypeAndMut(tm TypeAndMut) TypeAndMut {
	return TypeAndMut{Ty: f.FoldType(tm.Ty), Mutbl: tm.Mutbl}
}

func (f *Folder) foldBareFn(fn *BareFn) *BareFn {
	if fn == nil {
		return nil
	}
	return &BareFn{Unsafety: fn.Unsafety, Abi: fn.Abi, Sig: FoldBinder(f, fn.Sig)}
}

func (f *Folder) foldExistentialBounds(b ExistentialBounds) ExistentialBounds {
	out := ExistentialBounds{
		RegionBound:   f.FoldRegion(b.RegionBound),
		BuiltinBounds: b.BuiltinBounds,
	}
	if b.ProjectionBounds != nil {
		out.ProjectionBounds = make([]Binder[ProjectionPredicate], len(b.ProjectionBounds))
		for i, p := range b.ProjectionBounds {
			out.ProjectionBounds[i] = FoldBinder(f, p)
		}
	}
	return out
}

// FoldBinder folds the inside of a binder one level deeper.
func FoldBinder[T Foldable](f *Folder, b Binder[T]) Binder[T] {
	f.Depth++
	v := b.Value.FoldWith(f).(T)
	f.Depth--
	return Binder[T]{Value: v}
}

func (t TraitRef) FoldWith(f *Folder) Foldable { return f.FoldTraitRef(t) }

func (p TraitPredicate) FoldWith(f *Folder) Foldable {
	return TraitPredicate{TraitRef: f.FoldTraitRef(p.TraitRef)}
}

func (p EquatePredicate) FoldWith(f *Folder) Foldable {
	a := f.FoldType(p.A)
	return EquatePredicate{A: a, B: f.FoldType(p.B)}
}

func (p ProjectionTy) FoldWith(f *Folder) Foldable { return f.FoldProjectionTy(p) }

func (p ProjectionPredicate) FoldWith(f *Folder) Foldable { return f.FoldProjectionPredicate(p) }

func (p TypeOutlives) FoldWith(f *Folder) Foldable {
	t := f.FoldType(p.Ty)
	return TypeOutlives{Ty: t, Region: f.FoldRegion(p.Region)}
}

func (p RegionOutlives) FoldWith(f *Folder) Foldable {
	a := f.FoldRegion(p.A)
	return RegionOutlives{A: a, B: f.FoldRegion(p.B)}
}

func (s FnSig) FoldWith(f *Folder) Foldable { return f.FoldFnSig(s) }

// ReplaceLateBoundRegions strips the binder from b, replacing each region
// bound by it with fn(br). fn is called once per distinct bound region,
// in traversal order; replacements are shifted to stay valid under any
// binders nested inside b. The returned map records every replacement.
func ReplaceLateBoundRegions[T Foldable](b Binder[T], fn func(BoundRegion) Region) (T, map[BoundRegion]Region) {
	seen := make(map[BoundRegion]Region)
	f := &Folder{
		Depth: 1,
		Region: func(r Region, depth DebruijnIndex) Region {
			lb, ok := r.(LateBound)
			if !ok || lb.Depth != depth {
				return r
			}
			rep, ok := seen[lb.Bound]
			if !ok {
				rep = fn(lb.Bound)
				seen[lb.Bound] = rep
			}
			return ShiftRegion(rep, depth-1)
		},
	}
	return b.Value.FoldWith(f).(T), seen
}

// ShiftRegion moves a late-bound region outward by amount binders.
func ShiftRegion(r Region, amount DebruijnIndex) Region {
	if lb, ok := r.(LateBound); ok && amount > 0 {
		lb.Depth += amount
		return lb
	}
	return r
}

// ShiftType shifts the late-bound regions of t that escape t itself.
func ShiftType(t Type, amount DebruijnIndex) Type {
	if amount == 0 {
		return t
	}
	f := &Folder{
		Region: func(r Region, depth DebruijnIndex) Region {
			if lb, ok := r.(LateBound); ok && lb.Depth > depth {
				return ShiftRegion(lb, amount)
			}
			return r
		},
	}
	return f.FoldType(t)
}

// HasSelfTy reports whether t mentions the receiver parameter.
func HasSelfTy(t Type) bool {
	found := false
	f := &Folder{
		Type: func(t Type, _ DebruijnIndex) (Type, bool) {
			if p, ok := t.(*Param); ok && p.Space == SelfSpace {
				found = true
			}
			return t, found
		},
	}
	f.FoldType(t)
	return found
}
