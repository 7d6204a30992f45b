package ty

// Identical reports whether x and y are the same type. Regions are
// compared by value.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}

	switch x := x.(type) {
	case *Scalar:
		if y, ok := y.(*Scalar); ok {
			return x.Kind == y.Kind
		}
	case *Box:
		if y, ok := y.(*Box); ok {
			return Identical(x.Elem, y.Elem)
		}
	case *RawPtr:
		if y, ok := y.(*RawPtr); ok {
			return identicalTypeAndMut(x.TypeAndMut, y.TypeAndMut)
		}
	case *Ref:
		if y, ok := y.(*Ref); ok {
			return x.Region == y.Region && identicalTypeAndMut(x.TypeAndMut, y.TypeAndMut)
		}
	case *Tuple:
		if y, ok := y.(*Tuple); ok {
			return identicalLists(x.Elems, y.Elems)
		}
	case *FnDef:
		if y, ok := y.(*FnDef); ok {
			return x.Def == y.Def && IdenticalSubsts(x.Substs, y.Substs) && identicalBareFns(x.Fn, y.Fn)
		}
	case *FnPtr:
		if y, ok := y.(*FnPtr); ok {
			return identicalBareFns(x.Fn, y.Fn)
		}
	case *Infer:
		if y, ok := y.(*Infer); ok {
			return x.Var == y.Var
		}
	case *Error:
		_, ok := y.(*Error)
		return ok
	case *Param:
		if y, ok := y.(*Param); ok {
			return x.Space == y.Space && x.Index == y.Index && x.Name == y.Name
		}
	case *Adt:
		if y, ok := y.(*Adt); ok {
			return x.Kind == y.Kind && x.Def == y.Def && IdenticalSubsts(x.Substs, y.Substs)
		}
	case *TraitObject:
		if y, ok := y.(*TraitObject); ok {
			return identicalTraitRefs(x.Principal.Value, y.Principal.Value) &&
				identicalBounds(x.Bounds, y.Bounds)
		}
	case *Projection:
		if y, ok := y.(*Projection); ok {
			return identicalProjectionTys(x.ProjectionTy, y.ProjectionTy)
		}
	case *Str:
		_, ok := y.(*Str)
		return ok
	case *Closure:
		if y, ok := y.(*Closure); ok {
			return x.Def == y.Def &&
				IdenticalSubsts(x.Substs.FuncSubsts, y.Substs.FuncSubsts) &&
				identicalLists(x.Substs.UpvarTys, y.Substs.UpvarTys)
		}
	case *Array:
		if y, ok := y.(*Array); ok {
			return x.Len == y.Len && Identical(x.Elem, y.Elem)
		}
	case *Slice:
		if y, ok := y.(*Slice); ok {
			return Identical(x.Elem, y.Elem)
		}
	}
	return false
}

// IdenticalSubsts compares two records space by space. A nil record
// equals an empty one.
func IdenticalSubsts(x, y *Substs) bool {
	if x == y {
		return true
	}
	for space := ParamSpace(0); space < NumSpaces; space++ {
		if !identicalLists(x.TypesIn(space), y.TypesIn(space)) {
			return false
		}
		xr, yr := x.RegionsIn(space), y.RegionsIn(space)
		if len(xr) != len(yr) {
			return false
		}
		for i := range xr {
			if xr[i] != yr[i] {
				return false
			}
		}
	}
	return true
}

func identicalLists(x, y []Type) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Identical(x[i], y[i]) {
			return false
		}
	}
	return true
}

func identicalTypeAndMut(x, y TypeAndMut) bool {
	return x.Mutbl == y.Mutbl && Identical(x.Ty, y.Ty)
}

func identicalBareFns(x, y *BareFn) bool {
	if x == nil || y == nil {
		return x == y
	}
	if x.Unsafety != y.Unsafety || x.Abi != y.Abi {
		return false
	}
	xs, ys := x.Sig.Value, y.Sig.Value
	if xs.Variadic != ys.Variadic || xs.Output.Diverges != ys.Output.Diverges {
		return false
	}
	if !xs.Output.Diverges && !Identical(xs.Output.Ty, ys.Output.Ty) {
		return false
	}
	return identicalLists(xs.Inputs, ys.Inputs)
}

func identicalTraitRefs(x, y TraitRef) bool {
	return x.Def == y.Def && IdenticalSubsts(x.Substs, y.Substs)
}

func identicalProjectionTys(x, y ProjectionTy) bool {
	return x.ItemName == y.ItemName && identicalTraitRefs(x.TraitRef, y.TraitRef)
}

func identicalBounds(x, y ExistentialBounds) bool {
	if x.RegionBound != y.RegionBound || len(x.BuiltinBounds) != len(y.BuiltinBounds) {
		return false
	}
	for i := range x.BuiltinBounds {
		if x.BuiltinBounds[i] != y.BuiltinBounds[i] {
			return false
		}
	}
	if len(x.ProjectionBounds) != len(y.ProjectionBounds) {
		return false
	}
	for i := range x.ProjectionBounds {
		xp, yp := x.ProjectionBounds[i].Value, y.ProjectionBounds[i].Value
		if !identicalProjectionTys(xp.ProjectionTy, yp.ProjectionTy) || !Identical(xp.Ty, yp.Ty) {
			return false
		}
	}
	return true
}
