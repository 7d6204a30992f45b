package ty

// ObjectLifetimeDefault is the region assumed for trait objects written
// as a type argument without an explicit bound.
type ObjectLifetimeDefault struct {
	Kind     ObjectLifetimeDefaultKind
	Specific Region // set when Kind == SpecificDefault
}

type ObjectLifetimeDefaultKind int

const (
	BaseDefault ObjectLifetimeDefaultKind = iota
	AmbiguousDefault
	SpecificDefault
)

// TypeParameterDef declares one generic type parameter.
type TypeParameterDef struct {
	Name    string
	Def     DefID
	Space   ParamSpace
	Index   uint32
	Default Type // nil when the parameter has no default

	ObjectLifetimeDefault ObjectLifetimeDefault
}

// RegionParameterDef declares one generic region parameter.
type RegionParameterDef struct {
	Name   string
	Def    DefID
	Space  ParamSpace
	Index  uint32
	Bounds []Region
}

// Generics lists the declared parameters of an item.
type Generics struct {
	Types   PerSpace[TypeParameterDef]
	Regions PerSpace[RegionParameterDef]
}

// GenericsFunc lazily produces the generics of an item. Resolving
// generics can be expensive, so printers only call it when needed.
type GenericsFunc func() (*Generics, error)

// Variance of a generic parameter.
type Variance int

const (
	Covariant Variance = iota
	Contravariant
	Invariant
	Bivariant
)

// ItemVariances records the variance of each parameter of an item.
type ItemVariances struct {
	Types   PerSpace[Variance]
	Regions PerSpace[Variance]
}
