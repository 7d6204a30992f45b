// Package tytest generates pseudo-random type values for fuzz tests.
package tytest

import "github.com/funvibe/tyrender/internal/ty"

// ByteSource uses a byte slice as a source of randomness. Once the data
// is exhausted every draw returns 0, so generation always terminates.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

// Bool draws one byte and reports whether it is odd.
func (s *ByteSource) Bool() bool {
	return s.Intn(2) == 1
}

// Defs are the item ids the generator refers to. Index 99 is left
// undeclared on purpose so lookups can fail.
var Defs = []ty.DefID{
	{Index: 1},
	{Index: 2},
	{Index: 3},
	{Krate: 1, Index: 10},
	{Index: 99},
}

const MaxDepth = 4

// Generator builds types, regions and predicates from a ByteSource.
type Generator struct {
	src   *ByteSource
	depth int
}

func NewFromData(data []byte) *Generator {
	return &Generator{src: &ByteSource{data: data}}
}

func (g *Generator) Intn(n int) int {
	return g.src.Intn(n)
}

func (g *Generator) def() ty.DefID {
	return Defs[g.src.Intn(len(Defs))]
}

// Type returns a random type. Past MaxDepth only leaf shapes are drawn.
func (g *Generator) Type() ty.Type {
	if g.depth >= MaxDepth {
		return g.leaf()
	}
	g.depth++
	defer func() { g.depth-- }()

	switch g.src.Intn(16) {
	case 0:
		return &ty.Box{Elem: g.Type()}
	case 1:
		return &ty.RawPtr{TypeAndMut: g.typeAndMut()}
	case 2:
		return &ty.Ref{Region: g.Region(), TypeAndMut: g.typeAndMut()}
	case 3:
		return &ty.Tuple{Elems: g.types(3)}
	case 4:
		return &ty.FnPtr{Fn: g.bareFn()}
	case 5:
		return &ty.FnDef{Def: g.def(), Substs: g.Substs(), Fn: g.bareFn()}
	case 6:
		return &ty.Adt{Def: g.def(), Substs: g.Substs()}
	case 7:
		return g.traitObject()
	case 8:
		return &ty.Projection{ProjectionTy: ty.ProjectionTy{TraitRef: g.TraitRef(), ItemName: "Item"}}
	case 9:
		return &ty.Closure{Def: g.def(), Substs: ty.ClosureSubsts{FuncSubsts: g.Substs(), UpvarTys: g.types(2)}}
	case 10:
		return &ty.Array{Elem: g.Type(), Len: uint64(g.src.Intn(64))}
	case 11:
		return &ty.Slice{Elem: g.Type()}
	}
	return g.leaf()
}

func (g *Generator) leaf() ty.Type {
	switch g.src.Intn(6) {
	case 0:
		return ty.StrType
	case 1:
		return ty.ErrorType
	case 2:
		return &ty.Param{Space: ty.ParamSpace(g.src.Intn(ty.NumSpaces)), Index: uint32(g.src.Intn(3)), Name: "T"}
	case 3:
		return &ty.Infer{Var: ty.InferTy{Kind: ty.InferKind(g.src.Intn(6)), Index: uint32(g.src.Intn(8))}}
	case 4:
		return ty.Unit
	}
	return ty.Scalars[g.src.Intn(len(ty.Scalars))]
}

func (g *Generator) types(limit int) []ty.Type {
	n := g.src.Intn(limit + 1)
	out := make([]ty.Type, n)
	for i := range out {
		out[i] = g.Type()
	}
	return out
}

func (g *Generator) typeAndMut() ty.TypeAndMut {
	tm := ty.TypeAndMut{Ty: g.Type()}
	if g.src.Bool() {
		tm.Mutbl = ty.Mutable
	}
	return tm
}

func (g *Generator) bareFn() *ty.BareFn {
	fn := &ty.BareFn{Abi: ty.AbiRust}
	if g.src.Bool() {
		fn.Unsafety = ty.Unsafe
	}
	if g.src.Intn(4) == 0 {
		fn.Abi = "C"
	}
	sig := ty.FnSig{Inputs: g.types(3), Variadic: g.src.Intn(4) == 0}
	if g.src.Intn(5) == 0 {
		sig.Output = ty.Diverging
	} else {
		sig.Output = ty.Converging(g.Type())
	}
	fn.Sig = ty.Bind(sig)
	return fn
}

func (g *Generator) traitObject() *ty.TraitObject {
	principal := g.TraitRef()
	t := &ty.TraitObject{Principal: ty.Bind(principal)}
	for i := g.src.Intn(3); i > 0; i-- {
		t.Bounds.BuiltinBounds = append(t.Bounds.BuiltinBounds, ty.BuiltinBound(g.src.Intn(4)))
	}
	if g.src.Bool() {
		t.Bounds.RegionBound = g.Region()
	}
	if g.src.Bool() {
		t.Bounds.ProjectionBounds = append(t.Bounds.ProjectionBounds, ty.Bind(ty.ProjectionPredicate{
			ProjectionTy: ty.ProjectionTy{TraitRef: principal, ItemName: "Output"},
			Ty:           g.Type(),
		}))
	}
	return t
}

// Substs returns a record with up to two entries per space.
func (g *Generator) Substs() *ty.Substs {
	s := &ty.Substs{}
	for space := 0; space < ty.NumSpaces; space++ {
		if space == int(ty.SelfSpace) {
			if g.src.Bool() {
				s.Types[space] = []ty.Type{g.Type()}
			}
			continue
		}
		s.Types[space] = g.types(2)
		for i := g.src.Intn(3); i > 0; i-- {
			s.Regions[space] = append(s.Regions[space], g.Region())
		}
	}
	return s
}

func (g *Generator) TraitRef() ty.TraitRef {
	return ty.TraitRef{Def: g.def(), Substs: g.Substs()}
}

// Region returns any region, including late-bound regions up to two
// binders out.
func (g *Generator) Region() ty.Region {
	switch g.src.Intn(9) {
	case 0:
		return ty.EarlyBound{Space: ty.TypeSpace, Index: uint32(g.src.Intn(3)), Name: "'a"}
	case 1:
		return ty.LateBound{Depth: ty.DebruijnIndex(g.src.Intn(2) + 1), Bound: g.BoundRegion()}
	case 2:
		return ty.FreeRegion{Scope: ty.CodeExtent(g.src.Intn(8)), Bound: g.BoundRegion()}
	case 3:
		return ty.ScopeRegion{Extent: ty.CodeExtent(g.src.Intn(8))}
	case 4:
		return ty.VarRegion{Vid: ty.RegionVid{Index: uint32(g.src.Intn(8))}}
	case 5:
		return ty.Skolemized{Index: ty.SkolemizedIndex(g.src.Intn(4)), Bound: g.BoundRegion()}
	case 6:
		return ty.Empty
	}
	return ty.Static
}

func (g *Generator) BoundRegion() ty.BoundRegion {
	switch g.src.Intn(4) {
	case 0:
		return ty.Anon(uint32(g.src.Intn(3)))
	case 1:
		return ty.BoundRegion{Kind: ty.BrFresh, Index: uint32(g.src.Intn(3))}
	case 2:
		return ty.BoundRegion{Kind: ty.BrEnv}
	}
	names := []string{"'a", "'b", "'c"}
	return ty.Named(ty.DefID{Index: 7}, names[g.src.Intn(len(names))])
}

// Predicate returns a random where-clause predicate.
func (g *Generator) Predicate() ty.Predicate {
	switch g.src.Intn(9) {
	case 0:
		return ty.TraitPred{Binder: ty.Bind(ty.TraitPredicate{TraitRef: g.TraitRef()})}
	case 1:
		return ty.EquatePred{Binder: ty.Bind(ty.EquatePredicate{A: g.Type(), B: g.Type()})}
	case 2:
		return ty.RegionOutlivesPred{Binder: ty.Bind(ty.RegionOutlives{A: g.Region(), B: g.Region()})}
	case 3:
		return ty.TypeOutlivesPred{Binder: ty.Bind(ty.TypeOutlives{Ty: g.Type(), Region: g.Region()})}
	case 4:
		return ty.ProjectionPred{Binder: ty.Bind(ty.ProjectionPredicate{
			ProjectionTy: ty.ProjectionTy{TraitRef: g.TraitRef(), ItemName: "Item"},
			Ty:           g.Type(),
		})}
	case 5:
		return ty.WellFormedPred{Ty: g.Type()}
	case 6:
		return ty.ObjectSafePred{Trait: g.def()}
	case 7:
		return ty.ClosureKindPred{Closure: g.def(), Kind: ty.ClosureKind(g.src.Intn(3))}
	}
	return ty.Rfc1592Pred{Inner: ty.WellFormedPred{Ty: g.leaf()}}
}
