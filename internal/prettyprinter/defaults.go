package prettyprinter

import "github.com/funvibe/tyrender/internal/ty"

// numberOfSuppliedDefaults counts the trailing type arguments of space
// that equal their declared defaults, substituted under substs.
//
// A default that mentions Self cannot be checked when the record has no
// receiver (trait objects): the user must have written the argument, so
// the scan stops there.
func numberOfSuppliedDefaults(substs *ty.Substs, space ty.ParamSpace, getGenerics ty.GenericsFunc) int {
	generics, err := getGenerics()
	if err != nil || generics == nil {
		return 0
	}

	params := generics.Types.Get(space)
	if len(params) == 0 || params[len(params)-1].Default == nil {
		return 0
	}

	_, hasSelf := substs.SelfTy()
	actuals := substs.TypesIn(space)
	n := min(len(params), len(actuals))

	count := 0
	for i := n - 1; i >= 0; i-- {
		def := params[i].Default
		if def == nil {
			break
		}
		if !hasSelf && ty.HasSelfTy(def) {
			break
		}
		substituted, err := ty.Subst(def, substs)
		if err != nil || !ty.Identical(substituted, actuals[i]) {
			break
		}
		count++
	}
	return count
}
