package ty

// Substs maps each generic slot of an item to its concrete type or
// region. The per-space lengths match the item's Generics.
type Substs struct {
	Types   PerSpace[Type]
	Regions PerSpace[Region]
}

// EmptySubsts is a record with no entries.
var EmptySubsts = &Substs{}

// NewSubsts builds a record with type-space entries only.
func NewSubsts(types []Type, regions []Region) *Substs {
	s := &Substs{}
	s.Types[TypeSpace] = types
	s.Regions[TypeSpace] = regions
	return s
}

// WithSelf returns a copy of s with the receiver type set.
func (s *Substs) WithSelf(self Type) *Substs {
	c := s.clone()
	c.Types[SelfSpace] = []Type{self}
	return c
}

// WithMethod returns a copy of s with method-level entries set.
func (s *Substs) WithMethod(types []Type, regions []Region) *Substs {
	c := s.clone()
	c.Types[FnSpace] = types
	c.Regions[FnSpace] = regions
	return c
}

// SelfTy returns the receiver type, if any.
func (s *Substs) SelfTy() (Type, bool) {
	if s == nil {
		return nil, false
	}
	self := s.Types.Get(SelfSpace)
	if len(self) == 0 {
		return nil, false
	}
	return self[0], true
}

// TypesIn returns the type entries of one space; nil-safe.
func (s *Substs) TypesIn(space ParamSpace) []Type {
	if s == nil {
		return nil
	}
	return s.Types.Get(space)
}

// RegionsIn returns the region entries of one space; nil-safe.
func (s *Substs) RegionsIn(space ParamSpace) []Region {
	if s == nil {
		return nil
	}
	return s.Regions.Get(space)
}

func (s *Substs) clone() *Substs {
	c := &Substs{}
	if s == nil {
		return c
	}
	for i := 0; i < NumSpaces; i++ {
		c.Types[i] = append([]Type(nil), s.Types[i]...)
		c.Regions[i] = append([]Region(nil), s.Regions[i]...)
	}
	return c
}

// ItemSubsts wraps the substitutions recorded for an expression.
type ItemSubsts struct {
	Substs *Substs
}
