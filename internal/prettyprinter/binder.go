package prettyprinter

import (
	"github.com/funvibe/tyrender/internal/config"
	"github.com/funvibe/tyrender/internal/ty"
)

// crateRoot owns the synthesized region names.
var crateRoot = ty.DefID{Krate: ty.LocalCrate}

// inBinder renders a binder with a for<..> prefix naming its late-bound
// regions. Named regions keep their names; anonymous, fresh and
// environment regions all become 'r. The prefix lists each region once,
// in the order the body mentions them, and is omitted when nothing is
// bound.
//
// If the value could not be lifted out of its local scope the original
// is printed unchanged.
func inBinder[T ty.Foldable](p *TypePrinter, original, lifted ty.Binder[T], ok bool, render func(T)) {
	if !ok {
		render(original.Value)
		return
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

	value, _ := ty.ReplaceLateBoundRegions(lifted, func(br ty.BoundRegion) ty.Region {
		startOrContinue("for<", ", ")
		if br.Kind == ty.BrNamed {
			p.write(br.Name)
			return ty.LateBound{Depth: 1, Bound: br}
		}
		p.write(config.AnonRegionName)
		return ty.LateBound{Depth: 1, Bound: ty.Named(crateRoot, config.AnonRegionName)}
	})

	startOrContinue("", "> ")
	render(value)
}

// printPoly lifts b through the context and renders it in its binder.
func printPoly[T ty.Foldable](p *TypePrinter, b ty.Binder[T], render func(T)) {
	lifted, ok := ty.LiftBinder(p.cx, b)
	inBinder(p, b, lifted, ok, render)
}

// PrintPolyTraitRef renders for<'a> Trait<'a>.
func (p *TypePrinter) PrintPolyTraitRef(b ty.Binder[ty.TraitRef]) {
	printPoly(p, b, p.PrintTraitRef)
}

func (p *TypePrinter) PrintPolyTraitPredicate(b ty.Binder[ty.TraitPredicate]) {
	printPoly(p, b, p.PrintTraitPredicate)
}

func (p *TypePrinter) PrintPolyEquatePredicate(b ty.Binder[ty.EquatePredicate]) {
	printPoly(p, b, p.PrintEquatePredicate)
}

func (p *TypePrinter) PrintPolyProjectionPredicate(b ty.Binder[ty.ProjectionPredicate]) {
	printPoly(p, b, p.PrintProjectionPredicate)
}

func (p *TypePrinter) PrintPolyTypeOutlives(b ty.Binder[ty.TypeOutlives]) {
	printPoly(p, b, p.PrintTypeOutlives)
}

func (p *TypePrinter) PrintPolyRegionOutlives(b ty.Binder[ty.RegionOutlives]) {
	printPoly(p, b, p.PrintRegionOutlives)
}
