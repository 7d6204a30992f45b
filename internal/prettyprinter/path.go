package prettyprinter

import (
	"github.com/funvibe/tyrender/internal/config"
	"github.com/funvibe/tyrender/internal/ty"
)

// namespace of the path handed to parameterized.
type namespace int

const (
	nsType namespace = iota
	nsValue
)

// parameterized renders the path of def followed by its generic
// arguments.
//
// In the value namespace an associated item is printed through its owning
// trait or impl: <Self as Trait<..>>::item::<..>. When callSugar is set a
// call trait with a single projection and a tuple argument is printed as
// a signature, Fn(A, B) -> R.
func (p *TypePrinter) parameterized(substs *ty.Substs, def ty.DefID, ns namespace,
	projections []ty.ProjectionPredicate, generics ty.GenericsFunc, callSugar bool) {

	selfTy, hasSelf := substs.SelfTy()
	if ns == nsValue && hasSelf {
		p.write("<")
		p.PrintType(selfTy)
		p.write(" as ")
	}

	var itemName string
	assoc := false
	if ns == nsValue {
		if parent, ok := p.cx.AssocParent(def); ok {
			itemName = p.itemName(def)
			assoc = true
			def = parent
		}
	}
	p.write(p.itemPath(def))

	if callSugar && !p.verbose && len(projections) == 1 {
		if _, ok := p.cx.FnTraitKind(def); ok {
			if tps := substs.TypesIn(ty.TypeSpace); len(tps) > 0 {
				if args, ok := tps[0].(*ty.Tuple); ok {
					p.printFnSig(args.Elems, false, ty.Converging(projections[0].Ty))
					return
				}
			}
		}
	}

	empty := true
	startOrContinue := func(start, cont string) {
		if empty {
			empty = false
			p.write(start)
		} else {
			p.write(cont)
		}
	}

	for _, r := range substs.RegionsIn(ty.TypeSpace) {
		startOrContinue("<", ", ")
		p.printRegionArg(r)
	}

	// Computing the elision forces the item's generics, which must not
	// happen in verbose mode.
	elided := 0
	if !p.verbose {
		elided = numberOfSuppliedDefaults(substs, ty.TypeSpace, generics)
	}

	tps := substs.TypesIn(ty.TypeSpace)
	for _, t := range tps[:len(tps)-elided] {
		startOrContinue("<", ", ")
		p.PrintType(t)
	}

	for _, proj := range projections {
		startOrContinue("<", ", ")
		p.write(proj.ProjectionTy.ItemName + "=")
		p.PrintType(proj.Ty)
	}

	startOrContinue("", ">")

	if ns != nsValue {
		return
	}

	empty = true
	if hasSelf {
		p.write(">")
	}
	if assoc {
		p.write("::" + itemName)
	}

	for _, r := range substs.RegionsIn(ty.FnSpace) {
		startOrContinue("::<", ", ")
		p.printRegionArg(r)
	}

	// Method-level type arguments are always printed in full.
	for _, t := range substs.TypesIn(ty.FnSpace) {
		startOrContinue("::<", ", ")
		p.PrintType(t)
	}

	startOrContinue("", ">")
}

// printRegionArg renders a region in a generic argument list. Regions
// without a concise spelling (elided, block scopes, inference variables)
// print as '_.
func (p *TypePrinter) printRegionArg(r ty.Region) {
	if p.verbose {
		p.DebugRegion(r)
		return
	}
	s := p.RegionString(r)
	if s == "" {
		s = config.ElidedRegionName
	}
	p.write(s)
}

func (p *TypePrinter) itemPath(def ty.DefID) string {
	path, err := p.cx.ItemPath(def)
	if err != nil {
		return config.ErrorMarker
	}
	return path
}

func (p *TypePrinter) itemName(def ty.DefID) string {
	name, err := p.cx.ItemName(def)
	if err != nil {
		return config.ErrorMarker
	}
	return name
}

// genericsOf defers the generics lookup until the elider needs it.
func (p *TypePrinter) genericsOf(def ty.DefID) ty.GenericsFunc {
	return func() (*ty.Generics, error) {
		return p.cx.Generics(def)
	}
}
