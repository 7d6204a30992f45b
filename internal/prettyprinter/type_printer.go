package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/funvibe/tyrender/internal/config"
	"github.com/funvibe/tyrender/internal/ty"
)

// --- Type Printer (output looks like source types) ---

// TypePrinter renders type-system values as text. The Print* methods
// produce the concise forms and the Debug* methods the explicit ones;
// both honour the session's verbosity.
//
// A TypePrinter panics with *InternalError when the context breaks its
// lifting contract while printing trait objects. Render converts that
// panic into an error.
type TypePrinter struct {
	buf     bytes.Buffer
	cx      ty.Context
	verbose bool
}

func NewTypePrinter(cx ty.Context, sess config.Session) *TypePrinter {
	return &TypePrinter{cx: cx, verbose: sess.Verbose}
}

// Verbose reports whether the printer produces fully explicit output.
func (p *TypePrinter) Verbose() bool {
	return p.verbose
}

func (p *TypePrinter) String() string {
	return p.buf.String()
}

func (p *TypePrinter) Reset() {
	p.buf.Reset()
}

func (p *TypePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TypePrinter) writef(format string, args ...any) {
	fmt.Fprintf(&p.buf, format, args...)
}

// capture renders into a scratch printer with the same settings and
// returns the text.
func (p *TypePrinter) capture(fn func(q *TypePrinter)) string {
	q := &TypePrinter{cx: p.cx, verbose: p.verbose}
	fn(q)
	return q.String()
}

// TypeString renders t without touching the printer's buffer.
func (p *TypePrinter) TypeString(t ty.Type) string {
	return p.capture(func(q *TypePrinter) { q.PrintType(t) })
}

// PrintType renders any type value. Types render identically in the
// concise and explicit modes.
func (p *TypePrinter) PrintType(t ty.Type) {
	switch t := t.(type) {
	case *ty.Scalar:
		p.write(t.Kind.Name())
	case *ty.Box:
		p.write(config.BoxTypeName + "<")
		p.PrintType(t.Elem)
		p.write(">")
	case *ty.RawPtr:
		if t.Mutbl == ty.Mutable {
			p.write("*mut ")
		} else {
			p.write("*const ")
		}
		p.PrintType(t.Ty)
	case *ty.Ref:
		p.write("&")
		s := p.RegionString(t.Region)
		p.write(s)
		if s != "" {
			p.write(" ")
		}
		p.PrintTypeAndMut(t.TypeAndMut)
	case *ty.Tuple:
		p.printTuple(t.Elems)
	case *ty.FnDef:
		p.printFnHeader(t.Fn)
		p.PrintFnSig(fnSig(t.Fn))
		p.write(" {")
		p.parameterized(t.Substs, t.Def, nsValue, nil, p.genericsOf(t.Def), true)
		p.write("}")
	case *ty.FnPtr:
		p.printFnHeader(t.Fn)
		p.PrintFnSig(fnSig(t.Fn))
	case *ty.Infer:
		p.PrintInferTy(t.Var)
	case *ty.Error:
		p.write(config.ErrorMarker)
	case *ty.Param:
		p.write(t.Name)
	case *ty.Adt:
		if t.Def.IsLocal() && !p.cx.HasItemType(t.Def) {
			p.write(p.itemPath(t.Def))
			p.write(config.UnresolvedArgs)
			return
		}
		p.parameterized(t.Substs, t.Def, nsType, nil, p.genericsOf(t.Def), true)
	case *ty.TraitObject:
		p.printTraitObject(t)
	case *ty.Projection:
		p.PrintProjectionTy(t.ProjectionTy)
	case *ty.Str:
		p.write(config.StrTypeName)
	case *ty.Closure:
		p.printClosure(t)
	case *ty.Array:
		p.write("[")
		p.PrintType(t.Elem)
		p.write("; ")
		p.write(strconv.FormatUint(t.Len, 10))
		p.write("]")
	case *ty.Slice:
		p.write("[")
		p.PrintType(t.Elem)
		p.write("]")
	default:
		// nil or foreign values degrade to the error marker
		p.write(config.ErrorMarker)
	}
}

// PrintTypeAndMut renders the pointee of a reference, prefixed by mut.
func (p *TypePrinter) PrintTypeAndMut(tm ty.TypeAndMut) {
	if tm.Mutbl == ty.Mutable {
		p.write("mut ")
	}
	p.PrintType(tm.Ty)
}

// printTuple renders (a,) for one element so it is not read as a
// parenthesized type.
func (p *TypePrinter) printTuple(elems []ty.Type) {
	p.write("(")
	if len(elems) > 0 {
		p.PrintType(elems[0])
		p.write(",")
		if len(elems) > 1 {
			p.write(" ")
			p.PrintType(elems[1])
			for _, e := range elems[2:] {
				p.write(", ")
				p.PrintType(e)
			}
		}
	}
	p.write(")")
}

func (p *TypePrinter) printFnHeader(fn *ty.BareFn) {
	if fn == nil {
		return
	}
	if fn.Unsafety == ty.Unsafe {
		p.write("unsafe ")
	}
	if fn.Abi != "" && fn.Abi != ty.AbiRust {
		p.writef("extern %q ", string(fn.Abi))
	}
}

func fnSig(fn *ty.BareFn) ty.FnSig {
	if fn == nil {
		return ty.FnSig{Output: ty.Converging(ty.Unit)}
	}
	return fn.Sig.Value
}

func (p *TypePrinter) printClosure(t *ty.Closure) {
	p.write(config.ClosurePrefix)
	sep := " "
	if span, ok := p.cx.ClosureSpan(t.Def); ok && t.Def.IsLocal() {
		p.write("@" + span)
		names := p.cx.Freevars(t.Def)
		for i, upvar := range t.Substs.UpvarTys {
			if i >= len(names) {
				break
			}
			p.write(sep + names[i] + ":")
			p.PrintType(upvar)
			sep = ", "
		}
	} else {
		// foreign closures only surface in backend bug reports
		p.write("@" + t.Def.String())
		for i, upvar := range t.Substs.UpvarTys {
			p.writef("%s%d:", sep, i)
			p.PrintType(upvar)
			sep = ", "
		}
	}
	p.write("]")
}

// printTraitObject renders the principal trait with the projection bounds
// folded into its argument list, then the builtin bounds and the region
// bound.
func (p *TypePrinter) printTraitObject(t *ty.TraitObject) {
	principal, ok := ty.Lift(p.cx, t.Principal.Value)
	if !ok {
		panic(internalErrorf("could not lift TraitRef for printing"))
	}
	projections := make([]ty.ProjectionPredicate, 0, len(t.Bounds.ProjectionBounds))
	for _, bound := range t.Bounds.ProjectionBounds {
		lifted, ok := ty.Lift(p.cx, bound.Value)
		if !ok {
			panic(internalErrorf("could not lift projections for printing"))
		}
		projections = append(projections, lifted)
	}

	tap := ty.Bind(traitAndProjections{
		TraitRef:    principal,
		Projections: projections,
		callSugar:   len(t.Bounds.BuiltinBounds) == 0,
	})
	inBinder(p, tap, tap, true, p.printTraitAndProjections)

	for _, bound := range t.Bounds.BuiltinBounds {
		p.write(" + " + bound.String())
	}

	if bound := p.RegionString(t.Bounds.RegionBound); bound != "" {
		p.write(" + " + bound)
	}
}

// traitAndProjections packages a trait object's principal with its
// projection bounds so they share one binder when printed.
type traitAndProjections struct {
	TraitRef    ty.TraitRef
	Projections []ty.ProjectionPredicate

	callSugar bool
}

func (t traitAndProjections) FoldWith(f *ty.Folder) ty.Foldable {
	out := traitAndProjections{TraitRef: f.FoldTraitRef(t.TraitRef), callSugar: t.callSugar}
	for _, proj := range t.Projections {
		out.Projections = append(out.Projections, f.FoldProjectionPredicate(proj))
	}
	return out
}

func (p *TypePrinter) printTraitAndProjections(t traitAndProjections) {
	p.parameterized(t.TraitRef.Substs, t.TraitRef.Def, nsType, t.Projections, p.genericsOf(t.TraitRef.Def), t.callSugar)
}

func (p *TypePrinter) PrintInferTy(v ty.InferTy) {
	switch v.Kind {
	case ty.TyVar, ty.IntVar, ty.FloatVar:
		if p.verbose {
			p.DebugInferTy(v)
		} else {
			p.write("_")
		}
	default:
		p.DebugInferTy(v)
	}
}
