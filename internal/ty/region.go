package ty

// Region is a lifetime annotation. All implementations are comparable
// value types, so two regions are equal exactly when == holds.
type Region interface {
	aRegion()
}

type region struct{}

func (region) aRegion() {}

// DebruijnIndex counts binders outward from a use site, starting at 1
// for the innermost enclosing binder.
type DebruijnIndex uint32

// BoundRegionKind distinguishes how a bound region was introduced.
type BoundRegionKind int

const (
	BrAnon BoundRegionKind = iota
	BrNamed
	BrFresh
	BrEnv
)

// BoundRegion identifies a region within its binder. Def and Name are
// only meaningful for BrNamed; Index for BrAnon and BrFresh.
type BoundRegion struct {
	Kind  BoundRegionKind
	Index uint32
	Def   DefID
	Name  string
}

// Anon returns the anonymous bound region at position i.
func Anon(i uint32) BoundRegion {
	return BoundRegion{Kind: BrAnon, Index: i}
}

// Named returns a named bound region.
func Named(def DefID, name string) BoundRegion {
	return BoundRegion{Kind: BrNamed, Def: def, Name: name}
}

// EarlyBound is a named region parameter substituted before use.
type EarlyBound struct {
	region
	Space ParamSpace
	Index uint32
	Name  string
}

// LateBound refers to a region bound by an enclosing Binder.
type LateBound struct {
	region
	Depth DebruijnIndex
	Bound BoundRegion
}

// CodeExtent identifies a lexical scope.
type CodeExtent uint32

// FreeRegion is a late-bound region seen from inside the function body.
type FreeRegion struct {
	region
	Scope CodeExtent
	Bound BoundRegion
}

// ScopeRegion is the region of a block or expression.
type ScopeRegion struct {
	region
	Extent CodeExtent
}

// RegionVid is a region inference variable.
type RegionVid struct {
	Index uint32
}

// VarRegion is a region inference variable.
type VarRegion struct {
	region
	Vid RegionVid
}

// SkolemizedIndex numbers placeholder regions.
type SkolemizedIndex uint32

// Skolemized is a placeholder region used during higher-ranked matching.
type Skolemized struct {
	region
	Index SkolemizedIndex
	Bound BoundRegion
}

// StaticRegion is 'static.
type StaticRegion struct {
	region
}

// EmptyRegion is the empty region.
type EmptyRegion struct {
	region
}

// Static and Empty are the shared singleton regions.
var (
	Static Region = StaticRegion{}
	Empty  Region = EmptyRegion{}
)
