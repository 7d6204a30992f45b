package prettyprinter

import (
	"log"

	"github.com/funvibe/tyrender/internal/config"
	"github.com/funvibe/tyrender/internal/ty"
)

// Mode selects between the two renderings of a value.
type Mode int

const (
	// Concise is the human-readable form used in diagnostics.
	Concise Mode = iota
	// Explicit is the debug form that shows internal structure.
	Explicit
)

func (m Mode) String() string {
	if m == Explicit {
		return "explicit"
	}
	return "concise"
}

// Render prints v in the given mode. Malformed values degrade to
// placeholders; only unsupported values and context invariant violations
// produce an error.
func Render(cx ty.Context, sess config.Session, v any, mode Mode) (string, error) {
	p := NewTypePrinter(cx, sess)
	if err := p.Print(v, mode); err != nil {
		return "", err
	}
	return p.String(), nil
}

// Print appends the rendering of v to the printer's buffer. On error the
// buffer may hold partial output.
func (p *TypePrinter) Print(v any, mode Mode) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*InternalError)
			if !ok {
				panic(r)
			}
			log.Printf("render: %v", ie)
			err = ie
		}
	}()

	if v == nil {
		p.PrintType(nil)
		return nil
	}
	if t, ok := v.(ty.Type); ok {
		p.PrintType(t)
		return nil
	}
	if mode == Explicit {
		return p.printExplicit(v)
	}
	return p.printConcise(v)
}

func (p *TypePrinter) printConcise(v any) error {
	switch v := v.(type) {
	case ty.Region:
		p.PrintRegion(v)
	case ty.BoundRegion:
		p.PrintBoundRegion(v)
	case ty.TraitRef:
		p.PrintTraitRef(v)
	case ty.Binder[ty.TraitRef]:
		p.PrintPolyTraitRef(v)
	case ty.Binder[ty.TraitPredicate]:
		p.PrintPolyTraitPredicate(v)
	case ty.Binder[ty.EquatePredicate]:
		p.PrintPolyEquatePredicate(v)
	case ty.Binder[ty.ProjectionPredicate]:
		p.PrintPolyProjectionPredicate(v)
	case ty.Binder[ty.TypeOutlives]:
		p.PrintPolyTypeOutlives(v)
	case ty.Binder[ty.RegionOutlives]:
		p.PrintPolyRegionOutlives(v)
	case ty.TraitPredicate:
		p.PrintTraitPredicate(v)
	case ty.EquatePredicate:
		p.PrintEquatePredicate(v)
	case ty.ProjectionPredicate:
		p.PrintProjectionPredicate(v)
	case ty.ProjectionTy:
		p.PrintProjectionTy(v)
	case ty.TypeOutlives:
		p.PrintTypeOutlives(v)
	case ty.RegionOutlives:
		p.PrintRegionOutlives(v)
	case ty.Predicate:
		p.PrintPredicate(v)
	case ty.FnSig:
		p.PrintFnSig(v)
	case ty.InferTy:
		p.PrintInferTy(v)
	case ty.ParamTy:
		p.write(v.Name)
	case ty.ClosureKind:
		p.PrintClosureKind(v)
	case ty.TypeAndMut:
		p.PrintTypeAndMut(v)
	case []ty.BuiltinBound:
		p.PrintBuiltinBounds(v)
	case ty.ExplicitSelfCategory:
		p.PrintExplicitSelfCategory(v)
	default:
		return &UnsupportedValueError{Value: v}
	}
	return nil
}

func (p *TypePrinter) printExplicit(v any) error {
	switch v := v.(type) {
	case ty.Region:
		p.DebugRegion(v)
	case ty.BoundRegion:
		p.DebugBoundRegion(v)
	case ty.RegionVid:
		p.DebugRegionVid(v)
	case ty.TraitRef:
		p.DebugTraitRef(v)
	case ty.Binder[ty.TraitRef]:
		p.DebugPolyTraitRef(v)
	case ty.Binder[ty.TraitPredicate]:
		debugBinder(p, v, p.DebugTraitPredicate)
	case ty.Binder[ty.EquatePredicate]:
		debugBinder(p, v, p.DebugEquatePredicate)
	case ty.Binder[ty.ProjectionPredicate]:
		p.DebugPolyProjectionPredicate(v)
	case ty.Binder[ty.TypeOutlives]:
		debugBinder(p, v, p.DebugTypeOutlives)
	case ty.Binder[ty.RegionOutlives]:
		debugBinder(p, v, p.DebugRegionOutlives)
	case ty.Binder[ty.FnSig]:
		debugBinder(p, v, p.DebugFnSig)
	case ty.TraitPredicate:
		p.DebugTraitPredicate(v)
	case ty.EquatePredicate:
		p.DebugEquatePredicate(v)
	case ty.ProjectionPredicate:
		p.DebugProjectionPredicate(v)
	case ty.ProjectionTy:
		p.DebugProjectionTy(v)
	case ty.TypeOutlives:
		p.DebugTypeOutlives(v)
	case ty.RegionOutlives:
		p.DebugRegionOutlives(v)
	case ty.Predicate:
		p.DebugPredicate(v)
	case ty.FnSig:
		p.DebugFnSig(v)
	case ty.FnOutput:
		p.DebugFnOutput(v)
	case ty.InferTy:
		p.DebugInferTy(v)
	case ty.ParamTy:
		p.DebugParamTy(v)
	case ty.AdtDef:
		p.DebugAdtDef(v)
	case ty.TraitTy:
		p.DebugTraitObject(v)
	case ty.ClosureKind:
		p.PrintClosureKind(v)
	case ty.TypeAndMut:
		p.PrintTypeAndMut(v)
	case *ty.Substs:
		p.DebugSubsts(v)
	case ty.ItemSubsts:
		p.DebugItemSubsts(v)
	case ty.TypeParameterDef:
		p.DebugTypeParameterDef(v)
	case ty.RegionParameterDef:
		p.DebugRegionParameterDef(v)
	case *ty.Generics:
		p.DebugGenerics(v)
	case ty.ExistentialBounds:
		p.DebugExistentialBounds(v)
	case []ty.BuiltinBound:
		p.PrintBuiltinBounds(v)
	case ty.Variance:
		p.DebugVariance(v)
	case ty.ItemVariances:
		p.DebugItemVariances(v)
	case ty.GenericPredicates:
		p.DebugGenericPredicates(v)
	case ty.ObjectLifetimeDefault:
		p.DebugObjectLifetimeDefault(v)
	case ty.ExplicitSelfCategory:
		p.PrintExplicitSelfCategory(v)
	default:
		return &UnsupportedValueError{Value: v}
	}
	return nil
}
