package prettyprinter

import (
	"strings"

	"github.com/funvibe/tyrender/internal/ty"
)

// Explicit renderings of the auxiliary values, used for compiler
// debugging output.

func (p *TypePrinter) DebugInferTy(v ty.InferTy) {
	switch v.Kind {
	case ty.TyVar:
		p.writef("_#%dt", v.Index)
	case ty.IntVar:
		p.writef("_#%di", v.Index)
	case ty.FloatVar:
		p.writef("_#%df", v.Index)
	case ty.FreshTy:
		p.writef("FreshTy(%d)", v.Index)
	case ty.FreshIntTy:
		p.writef("FreshIntTy(%d)", v.Index)
	case ty.FreshFloatTy:
		p.writef("FreshFloatTy(%d)", v.Index)
	}
}

// DebugParamTy renders T/TypeSpace.0.
func (p *TypePrinter) DebugParamTy(t ty.ParamTy) {
	p.writef("%s/%s.%d", t.Name, t.Space, t.Index)
}

func (p *TypePrinter) DebugFnSig(sig ty.FnSig) {
	p.write("(")
	p.debugTypeList(sig.Inputs)
	p.writef("; variadic: %t)->", sig.Variadic)
	p.DebugFnOutput(sig.Output)
}

func (p *TypePrinter) DebugFnOutput(out ty.FnOutput) {
	if out.Diverges {
		p.write("FnDiverging")
		return
	}
	p.write("FnConverging(")
	p.PrintType(out.Ty)
	p.write(")")
}

func (p *TypePrinter) debugTypeList(ts []ty.Type) {
	p.write("[")
	for i, t := range ts {
		if i > 0 {
			p.write(", ")
		}
		p.PrintType(t)
	}
	p.write("]")
}

// debugPerSpace renders [a, b; self; f] with one section per space.
func debugPerSpace[T any](p *TypePrinter, ps *ty.PerSpace[T], render func(T)) {
	p.write("[")
	for space := ty.ParamSpace(0); space < ty.NumSpaces; space++ {
		if space > 0 {
			p.write(";")
		}
		for i, v := range ps.Get(space) {
			if i > 0 {
				p.write(",")
			}
			if i > 0 || space > 0 {
				p.write(" ")
			}
			render(v)
		}
	}
	p.write("]")
}

func (p *TypePrinter) DebugSubsts(s *ty.Substs) {
	if s == nil {
		s = ty.EmptySubsts
	}
	p.write("Substs[types=")
	debugPerSpace(p, &s.Types, p.PrintType)
	p.write(", regions=")
	debugPerSpace(p, &s.Regions, p.DebugRegion)
	p.write("]")
}

func (p *TypePrinter) DebugItemSubsts(s ty.ItemSubsts) {
	p.write("ItemSubsts(")
	p.DebugSubsts(s.Substs)
	p.write(")")
}

func (p *TypePrinter) DebugTypeParameterDef(d ty.TypeParameterDef) {
	p.writef("TypeParameterDef(%s, %s, %s/%d)", d.Name, d.Def, d.Space, d.Index)
}

func (p *TypePrinter) DebugRegionParameterDef(d ty.RegionParameterDef) {
	p.writef("RegionParameterDef(%s, %s, %s/%d, [", d.Name, d.Def, d.Space, d.Index)
	for i, b := range d.Bounds {
		if i > 0 {
			p.write(", ")
		}
		p.DebugRegion(b)
	}
	p.write("])")
}

func (p *TypePrinter) DebugGenerics(g *ty.Generics) {
	if g == nil {
		g = &ty.Generics{}
	}
	p.write("Generics { types: ")
	debugPerSpace(p, &g.Types, p.DebugTypeParameterDef)
	p.write(", regions: ")
	debugPerSpace(p, &g.Regions, p.DebugRegionParameterDef)
	p.write(" }")
}

// DebugAdtDef renders the path of a struct or enum definition.
func (p *TypePrinter) DebugAdtDef(d ty.AdtDef) {
	p.write(p.itemPath(d.Def))
}

func (p *TypePrinter) DebugTraitObject(t ty.TraitTy) {
	p.write("TraitTy(")
	p.DebugPolyTraitRef(t.Principal)
	p.write(",")
	p.DebugExistentialBounds(t.Bounds)
	p.write(")")
}

// DebugExistentialBounds joins the region bound, builtin bounds and
// projection bounds with " + ".
func (p *TypePrinter) DebugExistentialBounds(b ty.ExistentialBounds) {
	var parts []string
	if b.RegionBound != nil {
		parts = append(parts, p.capture(func(q *TypePrinter) { q.DebugRegion(b.RegionBound) }))
	}
	for _, bound := range b.BuiltinBounds {
		parts = append(parts, bound.String())
	}
	for _, proj := range b.ProjectionBounds {
		parts = append(parts, p.capture(func(q *TypePrinter) { q.DebugPolyProjectionPredicate(proj) }))
	}
	p.write(strings.Join(parts, " + "))
}

func (p *TypePrinter) DebugVariance(v ty.Variance) {
	switch v {
	case ty.Covariant:
		p.write("+")
	case ty.Contravariant:
		p.write("-")
	case ty.Invariant:
		p.write("o")
	case ty.Bivariant:
		p.write("*")
	}
}

func (p *TypePrinter) DebugItemVariances(v ty.ItemVariances) {
	p.write("ItemVariances(types=")
	debugPerSpace(p, &v.Types, p.DebugVariance)
	p.write(", regions=")
	debugPerSpace(p, &v.Regions, p.DebugVariance)
	p.write(")")
}

func (p *TypePrinter) DebugGenericPredicates(g ty.GenericPredicates) {
	p.write("GenericPredicates(")
	debugPerSpace(p, &g.Predicates, p.DebugPredicate)
	p.write(")")
}

func (p *TypePrinter) DebugObjectLifetimeDefault(d ty.ObjectLifetimeDefault) {
	switch d.Kind {
	case ty.AmbiguousDefault:
		p.write("Ambiguous")
	case ty.BaseDefault:
		p.write("BaseDefault")
	case ty.SpecificDefault:
		p.DebugRegion(d.Specific)
	}
}
