package prettyprinter

import "github.com/funvibe/tyrender/internal/ty"

// PrintFnSig renders fn(A, B) -> R.
func (p *TypePrinter) PrintFnSig(sig ty.FnSig) {
	p.write("fn")
	p.printFnSig(sig.Inputs, sig.Variadic, sig.Output)
}

// printFnSig renders a parameter list and the output. A unit output is
// omitted and divergence prints as -> !.
func (p *TypePrinter) printFnSig(inputs []ty.Type, variadic bool, output ty.FnOutput) {
	p.write("(")
	for i, t := range inputs {
		if i > 0 {
			p.write(", ")
		}
		p.PrintType(t)
	}
	if variadic && len(inputs) > 0 {
		p.write(", ...")
	}
	p.write(")")

	switch {
	case output.Diverges:
		p.write(" -> !")
	case output.Ty != nil && !ty.IsUnit(output.Ty):
		p.write(" -> ")
		p.PrintType(output.Ty)
	}
}
