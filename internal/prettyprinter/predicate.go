package prettyprinter

import "github.com/funvibe/tyrender/internal/ty"

// PrintTraitRef renders Trait<Args> without the receiver.
func (p *TypePrinter) PrintTraitRef(t ty.TraitRef) {
	p.parameterized(t.Substs, t.Def, nsType, nil, p.genericsOf(t.Def), true)
}

// DebugTraitRef renders <Self as Trait<Args>>. The for<..> prefix is
// never needed here since de Bruijn depths are shown.
func (p *TypePrinter) DebugTraitRef(t ty.TraitRef) {
	self, ok := t.Substs.SelfTy()
	if !ok {
		p.PrintTraitRef(t)
		return
	}
	p.write("<")
	p.PrintType(self)
	p.write(" as ")
	p.PrintTraitRef(t)
	p.write(">")
}

func (p *TypePrinter) PrintProjectionTy(t ty.ProjectionTy) {
	p.DebugTraitRef(t.TraitRef)
	p.write("::" + t.ItemName)
}

func (p *TypePrinter) DebugProjectionTy(t ty.ProjectionTy) {
	p.write("ProjectionTy { trait_ref: ")
	p.DebugTraitRef(t.TraitRef)
	p.write(", item_name: " + t.ItemName + " }")
}

func (p *TypePrinter) PrintTraitPredicate(t ty.TraitPredicate) {
	p.PrintType(t.TraitRef.SelfTy())
	p.write(": ")
	p.PrintTraitRef(t.TraitRef)
}

func (p *TypePrinter) DebugTraitPredicate(t ty.TraitPredicate) {
	p.write("TraitPredicate(")
	p.DebugTraitRef(t.TraitRef)
	p.write(")")
}

func (p *TypePrinter) PrintEquatePredicate(e ty.EquatePredicate) {
	p.PrintType(e.A)
	p.write(" == ")
	p.PrintType(e.B)
}

func (p *TypePrinter) DebugEquatePredicate(e ty.EquatePredicate) {
	p.write("EquatePredicate(")
	p.PrintType(e.A)
	p.write(", ")
	p.PrintType(e.B)
	p.write(")")
}

func (p *TypePrinter) PrintProjectionPredicate(pp ty.ProjectionPredicate) {
	p.PrintProjectionTy(pp.ProjectionTy)
	p.write(" == ")
	p.PrintType(pp.Ty)
}

func (p *TypePrinter) DebugProjectionPredicate(pp ty.ProjectionPredicate) {
	p.write("ProjectionPredicate(")
	p.DebugProjectionTy(pp.ProjectionTy)
	p.write(", ")
	p.PrintType(pp.Ty)
	p.write(")")
}

func (p *TypePrinter) PrintTypeOutlives(o ty.TypeOutlives) {
	p.PrintType(o.Ty)
	p.write(" : ")
	p.PrintRegion(o.Region)
}

func (p *TypePrinter) PrintRegionOutlives(o ty.RegionOutlives) {
	p.PrintRegion(o.A)
	p.write(" : ")
	p.PrintRegion(o.B)
}

func (p *TypePrinter) DebugTypeOutlives(o ty.TypeOutlives) {
	p.write("OutlivesPredicate(")
	p.PrintType(o.Ty)
	p.write(", ")
	p.DebugRegion(o.Region)
	p.write(")")
}

func (p *TypePrinter) DebugRegionOutlives(o ty.RegionOutlives) {
	p.write("OutlivesPredicate(")
	p.DebugRegion(o.A)
	p.write(", ")
	p.DebugRegion(o.B)
	p.write(")")
}

// debugBinder renders Binder(inner) around an explicit form.
func debugBinder[T any](p *TypePrinter, b ty.Binder[T], render func(T)) {
	p.write("Binder(")
	render(b.Value)
	p.write(")")
}

func (p *TypePrinter) DebugPolyTraitRef(b ty.Binder[ty.TraitRef]) {
	debugBinder(p, b, p.DebugTraitRef)
}

func (p *TypePrinter) DebugPolyProjectionPredicate(b ty.Binder[ty.ProjectionPredicate]) {
	debugBinder(p, b, p.DebugProjectionPredicate)
}

func (p *TypePrinter) PrintPredicate(pred ty.Predicate) {
	switch pred := pred.(type) {
	case ty.TraitPred:
		p.PrintPolyTraitPredicate(pred.Binder)
	case ty.Rfc1592Pred:
		p.PrintPredicate(pred.Inner)
	case ty.EquatePred:
		p.PrintPolyEquatePredicate(pred.Binder)
	case ty.RegionOutlivesPred:
		p.PrintPolyRegionOutlives(pred.Binder)
	case ty.TypeOutlivesPred:
		p.PrintPolyTypeOutlives(pred.Binder)
	case ty.ProjectionPred:
		p.PrintPolyProjectionPredicate(pred.Binder)
	case ty.WellFormedPred:
		p.PrintType(pred.Ty)
		p.write(" well-formed")
	case ty.ObjectSafePred:
		p.write("the trait `" + p.itemPath(pred.Trait) + "` is object-safe")
	case ty.ClosureKindPred:
		p.write("the closure `" + p.itemPath(pred.Closure) + "` implements the trait `")
		p.PrintClosureKind(pred.Kind)
		p.write("`")
	}
}

func (p *TypePrinter) DebugPredicate(pred ty.Predicate) {
	switch pred := pred.(type) {
	case ty.TraitPred:
		debugBinder(p, pred.Binder, p.DebugTraitPredicate)
	case ty.Rfc1592Pred:
		p.write("RFC1592(")
		p.DebugPredicate(pred.Inner)
		p.write(")")
	case ty.EquatePred:
		debugBinder(p, pred.Binder, p.DebugEquatePredicate)
	case ty.RegionOutlivesPred:
		debugBinder(p, pred.Binder, p.DebugRegionOutlives)
	case ty.TypeOutlivesPred:
		debugBinder(p, pred.Binder, p.DebugTypeOutlives)
	case ty.ProjectionPred:
		p.DebugPolyProjectionPredicate(pred.Binder)
	case ty.WellFormedPred:
		p.write("WF(")
		p.PrintType(pred.Ty)
		p.write(")")
	case ty.ObjectSafePred:
		p.write("ObjectSafe(" + pred.Trait.String() + ")")
	case ty.ClosureKindPred:
		p.write("ClosureKind(" + pred.Closure.String() + ", ")
		p.PrintClosureKind(pred.Kind)
		p.write(")")
	}
}

func (p *TypePrinter) PrintClosureKind(k ty.ClosureKind) {
	switch k {
	case ty.FnClosure:
		p.write("Fn")
	case ty.FnMutClosure:
		p.write("FnMut")
	case ty.FnOnceClosure:
		p.write("FnOnce")
	}
}

// PrintBuiltinBounds renders Send + Sync.
func (p *TypePrinter) PrintBuiltinBounds(bounds []ty.BuiltinBound) {
	for i, b := range bounds {
		if i > 0 {
			p.write(" + ")
		}
		p.write(b.String())
	}
}

func (p *TypePrinter) PrintExplicitSelfCategory(c ty.ExplicitSelfCategory) {
	switch c {
	case ty.StaticSelf:
		p.write("static")
	case ty.ByValueSelf:
		p.write("self")
	case ty.ByRefSelf:
		p.write("&self")
	case ty.ByMutRefSelf:
		p.write("&mut self")
	case ty.ByBoxSelf:
		p.write("Box<self>")
	}
}
