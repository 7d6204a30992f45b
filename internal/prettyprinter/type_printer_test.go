package prettyprinter

import (
	"testing"

	"github.com/funvibe/tyrender/internal/fixture"
	"github.com/funvibe/tyrender/internal/ty"
)

var (
	i32   = ty.Scalars[ty.I32]
	u8    = ty.Scalars[ty.U8]
	boolT = ty.Scalars[ty.Bool]

	fooDef     = ty.DefID{Index: 1}
	iterDef    = ty.DefID{Index: 2}
	nextDef    = ty.DefID{Index: 3}
	swapDef    = ty.DefID{Index: 4}
	fnDef      = ty.DefID{Krate: 1, Index: 10}
	addDef     = ty.DefID{Index: 5}
	closureDef = ty.DefID{Index: 6}
	unknownID  = ty.DefID{Index: 99}
)

func paramT() *ty.Param { return &ty.Param{Space: ty.TypeSpace, Index: 0, Name: "T"} }

func selfParam() *ty.Param { return &ty.Param{Space: ty.SelfSpace, Index: 0, Name: ty.SelfName} }

// testTable declares Foo<T, U = T>, Iterator, Iterator::next, mem::swap,
// Fn, Add<Rhs = Self> and a local closure.
func testTable() *fixture.Table {
	foo := &ty.Generics{}
	foo.Types[ty.TypeSpace] = []ty.TypeParameterDef{
		{Name: "T", Def: fooDef, Index: 0},
		{Name: "U", Def: fooDef, Index: 1, Default: paramT()},
	}
	add := &ty.Generics{}
	add.Types[ty.TypeSpace] = []ty.TypeParameterDef{{Name: "Rhs", Def: addDef, Default: selfParam()}}
	add.Types[ty.SelfSpace] = []ty.TypeParameterDef{{Name: ty.SelfName, Def: addDef, Space: ty.SelfSpace}}

	return fixture.NewTable().
		Add(fixture.Item{Def: fooDef, Path: "Foo", Generics: foo}).
		Add(fixture.Item{Def: iterDef, Path: "Iterator"}).
		Add(fixture.Item{Def: nextDef, Path: "Iterator::next", Owner: iterDef, HasOwner: true}).
		Add(fixture.Item{Def: swapDef, Path: "mem::swap"}).
		Add(fixture.Item{Def: fnDef, Path: "Fn", FnTrait: ty.FnClosure, IsFnTrait: true}).
		Add(fixture.Item{Def: addDef, Path: "Add", Generics: add}).
		Add(fixture.Item{Def: closureDef, Path: "main::{{closure}}", Span: "lib.rs:7:1", Captures: []string{"a", "b"}})
}

func foo(args ...ty.Type) *ty.Adt {
	return &ty.Adt{Def: fooDef, Substs: ty.NewSubsts(args, nil)}
}

func bareFn(inputs []ty.Type, output ty.FnOutput, variadic bool) *ty.BareFn {
	return &ty.BareFn{Abi: ty.AbiRust, Sig: ty.Bind(ty.FnSig{Inputs: inputs, Output: output, Variadic: variadic})}
}

func fnObject(args []ty.Type, output ty.Type, builtins ...ty.BuiltinBound) *ty.TraitObject {
	principal := ty.TraitRef{Def: fnDef, Substs: ty.NewSubsts([]ty.Type{&ty.Tuple{Elems: args}}, nil)}
	return &ty.TraitObject{
		Principal: ty.Bind(principal),
		Bounds: ty.ExistentialBounds{
			BuiltinBounds: builtins,
			ProjectionBounds: []ty.Binder[ty.ProjectionPredicate]{ty.Bind(ty.ProjectionPredicate{
				ProjectionTy: ty.ProjectionTy{TraitRef: principal, ItemName: "Output"},
				Ty:           output,
			})},
		},
	}
}

func TestPrintType_Shapes(t *testing.T) {
	cx := testTable()
	a := ty.EarlyBound{Space: ty.TypeSpace, Name: "'a"}

	tests := []struct {
		name string
		typ  ty.Type
		want string
	}{
		{"scalar", ty.Scalars[ty.F64], "f64"},
		{"str", ty.StrType, "str"},
		{"error", ty.ErrorType, "[type error]"},
		{"nil", nil, "[type error]"},
		{"param", paramT(), "T"},
		{"box", &ty.Box{Elem: ty.StrType}, "Box<str>"},
		{"const ptr", &ty.RawPtr{TypeAndMut: ty.TypeAndMut{Ty: i32}}, "*const i32"},
		{"mut ptr", &ty.RawPtr{TypeAndMut: ty.TypeAndMut{Ty: u8, Mutbl: ty.Mutable}}, "*mut u8"},
		{"ref", &ty.Ref{Region: ty.ScopeRegion{Extent: 3}, TypeAndMut: ty.TypeAndMut{Ty: i32}}, "&i32"},
		{"mut ref", &ty.Ref{Region: ty.VarRegion{}, TypeAndMut: ty.TypeAndMut{Ty: i32, Mutbl: ty.Mutable}}, "&mut i32"},
		{"named ref", &ty.Ref{Region: a, TypeAndMut: ty.TypeAndMut{Ty: i32, Mutbl: ty.Mutable}}, "&'a mut i32"},
		{"static ref", &ty.Ref{Region: ty.Static, TypeAndMut: ty.TypeAndMut{Ty: ty.StrType}}, "&'static str"},
		{"unit", ty.Unit, "()"},
		{"one tuple", &ty.Tuple{Elems: []ty.Type{i32}}, "(i32,)"},
		{"pair", &ty.Tuple{Elems: []ty.Type{i32, i32}}, "(i32, i32)"},
		{"triple", &ty.Tuple{Elems: []ty.Type{i32, u8, boolT}}, "(i32, u8, bool)"},
		{"array", &ty.Array{Elem: i32, Len: 4}, "[i32; 4]"},
		{"slice", &ty.Slice{Elem: u8}, "[u8]"},
		{"infer", &ty.Infer{Var: ty.InferTy{Kind: ty.TyVar, Index: 3}}, "_"},
		{"int var", &ty.Infer{Var: ty.InferTy{Kind: ty.IntVar, Index: 3}}, "_"},
		{"fresh", &ty.Infer{Var: ty.InferTy{Kind: ty.FreshIntTy, Index: 2}}, "FreshIntTy(2)"},
		{"fn ptr", &ty.FnPtr{Fn: bareFn([]ty.Type{i32}, ty.Converging(boolT), false)}, "fn(i32) -> bool"},
		{"unit output", &ty.FnPtr{Fn: bareFn(nil, ty.Converging(ty.Unit), false)}, "fn()"},
		{"diverging", &ty.FnPtr{Fn: bareFn([]ty.Type{i32}, ty.Diverging, false)}, "fn(i32) -> !"},
		{"variadic", &ty.FnPtr{Fn: bareFn([]ty.Type{i32}, ty.Converging(i32), true)}, "fn(i32, ...) -> i32"},
		{"variadic no params", &ty.FnPtr{Fn: bareFn(nil, ty.Converging(ty.Unit), true)}, "fn()"},
		{"unsafe extern", &ty.FnPtr{Fn: &ty.BareFn{Unsafety: ty.Unsafe, Abi: "C", Sig: ty.Bind(ty.FnSig{Inputs: []ty.Type{i32}, Output: ty.Converging(ty.Unit)})}}, `unsafe extern "C" fn(i32)`},
		{"projection", &ty.Projection{ProjectionTy: ty.ProjectionTy{
			TraitRef: ty.TraitRef{Def: iterDef, Substs: ty.EmptySubsts.WithSelf(paramT())},
			ItemName: "Item",
		}}, "<T as Iterator>::Item"},
		{"unknown path", &ty.Adt{Def: unknownID, Substs: ty.NewSubsts([]ty.Type{i32}, nil)}, "[type error]<i32>"},
		{"local closure", &ty.Closure{Def: closureDef, Substs: ty.ClosureSubsts{UpvarTys: []ty.Type{i32, boolT}}}, "[closure@lib.rs:7:1 a:i32, b:bool]"},
		{"foreign closure", &ty.Closure{Def: ty.DefID{Krate: 2, Index: 3}, Substs: ty.ClosureSubsts{UpvarTys: []ty.Type{i32, boolT}}}, "[closure@DefId(2:3) 0:i32, 1:bool]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, cx, concise, tt.typ, Concise); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintType_InferVerbose(t *testing.T) {
	cx := testTable()
	tests := []struct {
		kind ty.InferKind
		want string
	}{
		{ty.TyVar, "_#3t"},
		{ty.IntVar, "_#3i"},
		{ty.FloatVar, "_#3f"},
		{ty.FreshTy, "FreshTy(3)"},
		{ty.FreshFloatTy, "FreshFloatTy(3)"},
	}
	for _, tt := range tests {
		got := mustRender(t, cx, verbose, &ty.Infer{Var: ty.InferTy{Kind: tt.kind, Index: 3}}, Concise)
		if got != tt.want {
			t.Errorf("kind %d: got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDefaultElision(t *testing.T) {
	cx := testTable()
	tests := []struct {
		name string
		typ  ty.Type
		want string
	}{
		{"default equals substituted", foo(i32, i32), "Foo<i32>"},
		{"explicit argument", foo(i32, u8), "Foo<i32, u8>"},
		{"default follows first argument", foo(u8, u8), "Foo<u8>"},
		{"short record", foo(i32), "Foo<i32>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, cx, concise, tt.typ, Concise); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if got := mustRender(t, cx, verbose, foo(i32, i32), Concise); got != "Foo<i32, i32>" {
		t.Errorf("verbose = %q, want Foo<i32, i32>", got)
	}
}

func TestDefaultElision_SelfDefault(t *testing.T) {
	cx := testTable()

	// Add<Rhs = Self> on a receiver: the default resolves to the receiver.
	withSelf := ty.TraitRef{Def: addDef, Substs: ty.NewSubsts([]ty.Type{i32}, nil).WithSelf(i32)}
	if got := mustRender(t, cx, concise, withSelf, Concise); got != "Add" {
		t.Errorf("with receiver = %q, want Add", got)
	}

	// A trait object has no receiver, so the default cannot be checked.
	object := &ty.TraitObject{Principal: ty.Bind(ty.TraitRef{Def: addDef, Substs: ty.NewSubsts([]ty.Type{i32}, nil)})}
	if got := mustRender(t, cx, concise, object, Concise); got != "Add<i32>" {
		t.Errorf("trait object = %q, want Add<i32>", got)
	}
}

func TestTraitObject(t *testing.T) {
	cx := testTable()

	r := ty.LateBound{Depth: 1, Bound: ty.Named(ty.DefID{Index: 7}, "'r")}
	refR := &ty.Ref{Region: r, TypeAndMut: ty.TypeAndMut{Ty: i32}}
	higherRanked := fnObject([]ty.Type{refR}, refR)

	iter := ty.TraitRef{Def: iterDef, Substs: ty.EmptySubsts}
	composed := &ty.TraitObject{Principal: ty.Bind(iter)}
	composed.Bounds.ProjectionBounds = []ty.Binder[ty.ProjectionPredicate]{ty.Bind(ty.ProjectionPredicate{
		ProjectionTy: ty.ProjectionTy{TraitRef: iter, ItemName: "Item"},
		Ty:           i32,
	})}
	composed.Bounds.BuiltinBounds = []ty.BuiltinBound{ty.Send}
	composed.Bounds.RegionBound = ty.Static

	tests := []struct {
		name string
		typ  ty.Type
		want string
	}{
		{"call sugar", fnObject([]ty.Type{i32}, boolT), "Fn(i32) -> bool"},
		{"unit output", fnObject([]ty.Type{i32, u8}, ty.Unit), "Fn(i32, u8)"},
		{"builtin bounds", fnObject([]ty.Type{i32}, boolT, ty.Send, ty.Sync), "Fn<(i32,), Output=bool> + Send + Sync"},
		{"higher-ranked principal", higherRanked, "for<'r> Fn(&'r i32) -> &'r i32"},
		{"projection builtin and region", composed, "Iterator<Item=i32> + Send + 'static"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, cx, concise, tt.typ, Concise); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	bounded := fnObject([]ty.Type{i32}, boolT)
	bounded.Bounds.RegionBound = ty.Static
	if got := mustRender(t, cx, concise, bounded, Concise); got != "Fn(i32) -> bool + 'static" {
		t.Errorf("region bound = %q", got)
	}

	anon := fnObject([]ty.Type{i32}, boolT)
	anon.Bounds.RegionBound = ty.ScopeRegion{}
	if got := mustRender(t, cx, concise, anon, Concise); got != "Fn(i32) -> bool" {
		t.Errorf("empty region bound = %q", got)
	}

	// Without a tuple argument the sugar does not apply.
	plain := &ty.TraitObject{Principal: ty.Bind(ty.TraitRef{Def: fnDef, Substs: ty.NewSubsts([]ty.Type{i32}, nil)})}
	plain.Bounds.ProjectionBounds = []ty.Binder[ty.ProjectionPredicate]{ty.Bind(ty.ProjectionPredicate{
		ProjectionTy: ty.ProjectionTy{TraitRef: plain.Principal.Value, ItemName: "Output"},
		Ty:           boolT,
	})}
	if got := mustRender(t, cx, concise, plain, Concise); got != "Fn<i32, Output=bool>" {
		t.Errorf("non-tuple = %q", got)
	}
}

func TestValueNamespace(t *testing.T) {
	cx := testTable()
	unitFn := bareFn(nil, ty.Converging(ty.Unit), false)

	method := &ty.FnDef{
		Def:    nextDef,
		Substs: ty.EmptySubsts.WithSelf(u8).WithMethod([]ty.Type{i32}, []ty.Region{ty.Static}),
		Fn:     unitFn,
	}
	if got := mustRender(t, cx, concise, method, Concise); got != "fn() {<u8 as Iterator>::next::<'static, i32>}" {
		t.Errorf("method = %q", got)
	}

	free := &ty.FnDef{Def: swapDef, Substs: ty.EmptySubsts.WithMethod([]ty.Type{i32}, nil), Fn: unitFn}
	if got := mustRender(t, cx, concise, free, Concise); got != "fn() {mem::swap::<i32>}" {
		t.Errorf("free fn = %q", got)
	}

	// Type-namespace paths never take the receiver form.
	tr := ty.TraitRef{Def: iterDef, Substs: ty.EmptySubsts.WithSelf(u8)}
	if got := mustRender(t, cx, concise, tr, Concise); got != "Iterator" {
		t.Errorf("trait ref = %q", got)
	}
	if got := mustRender(t, cx, concise, tr, Explicit); got != "<u8 as Iterator>" {
		t.Errorf("explicit trait ref = %q", got)
	}
}

func TestRegionArgs(t *testing.T) {
	cx := testTable()
	s := ty.NewSubsts([]ty.Type{i32}, []ty.Region{ty.EarlyBound{Name: "'a"}, ty.ScopeRegion{}})
	adt := &ty.Adt{Def: swapDef, Substs: s}
	if got := mustRender(t, cx, concise, adt, Concise); got != "mem::swap<'a, '_, i32>" {
		t.Errorf("got %q", got)
	}
}
