package prettyprinter

import (
	"testing"

	"github.com/funvibe/tyrender/internal/ty"
)

func late(br ty.BoundRegion) ty.Region { return ty.LateBound{Depth: 1, Bound: br} }

func iterWithRegions(rs ...ty.Region) ty.Binder[ty.TraitRef] {
	return ty.Bind(ty.TraitRef{Def: iterDef, Substs: ty.NewSubsts(nil, rs)})
}

func TestInBinder(t *testing.T) {
	cx := testTable()
	a := ty.Named(ty.DefID{Index: 7}, "'a")

	tests := []struct {
		name string
		b    ty.Binder[ty.TraitRef]
		want string
	}{
		{"anonymous", iterWithRegions(late(ty.Anon(0)), late(ty.Anon(1))), "for<'r, 'r> Iterator<'r, 'r>"},
		{"named then anonymous", iterWithRegions(late(a), late(ty.Anon(0))), "for<'a, 'r> Iterator<'a, 'r>"},
		{"repeated region listed once", iterWithRegions(late(ty.Anon(0)), late(ty.Anon(0))), "for<'r> Iterator<'r, 'r>"},
		{"fresh and env", iterWithRegions(late(ty.BoundRegion{Kind: ty.BrFresh, Index: 1}), late(ty.BoundRegion{Kind: ty.BrEnv})), "for<'r, 'r> Iterator<'r, 'r>"},
		{"nothing bound", iterWithRegions(ty.EarlyBound{Name: "'b"}), "Iterator<'b>"},
		{"no regions", iterWithRegions(), "Iterator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, cx, concise, tt.b, Concise); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInBinder_NestedBinder(t *testing.T) {
	cx := testTable()
	outer := ty.LateBound{Depth: 2, Bound: ty.Named(ty.DefID{}, "'a")}
	inner := ty.LateBound{Depth: 1, Bound: ty.Anon(0)}
	fn := &ty.FnPtr{Fn: bareFn([]ty.Type{
		&ty.Ref{Region: outer, TypeAndMut: ty.TypeAndMut{Ty: i32}},
		&ty.Ref{Region: inner, TypeAndMut: ty.TypeAndMut{Ty: i32}},
	}, ty.Converging(ty.Unit), false)}

	b := ty.Bind(ty.TraitRef{Def: iterDef, Substs: ty.NewSubsts([]ty.Type{fn}, nil)})
	if got := mustRender(t, cx, concise, b, Concise); got != "for<'a> Iterator<fn(&'a i32, &i32)>" {
		t.Errorf("got %q", got)
	}
}

func TestInBinder_LiftFailure(t *testing.T) {
	cx := testTable()
	cx.LiftNever = true

	b := iterWithRegions(late(ty.Named(ty.DefID{}, "'a")), late(ty.Anon(0)))
	if got := mustRender(t, cx, concise, b, Concise); got != "Iterator<'a, '_>" {
		t.Errorf("got %q, want the original without a binder prefix", got)
	}
}

func TestPolyPredicates(t *testing.T) {
	cx := testTable()
	a := late(ty.Named(ty.DefID{}, "'a"))
	refA := &ty.Ref{Region: a, TypeAndMut: ty.TypeAndMut{Ty: u8}}

	proj := ty.Bind(ty.ProjectionPredicate{
		ProjectionTy: ty.ProjectionTy{TraitRef: ty.TraitRef{Def: iterDef, Substs: ty.EmptySubsts.WithSelf(refA)}, ItemName: "Item"},
		Ty:           i32,
	})
	if got := mustRender(t, cx, concise, proj, Concise); got != "for<'a> <&'a u8 as Iterator>::Item == i32" {
		t.Errorf("projection = %q", got)
	}

	outlives := ty.Bind(ty.TypeOutlives{Ty: refA, Region: a})
	if got := mustRender(t, cx, concise, outlives, Concise); got != "for<'a> &'a u8 : 'a" {
		t.Errorf("type outlives = %q", got)
	}

	regions := ty.Bind(ty.RegionOutlives{A: a, B: ty.Static})
	if got := mustRender(t, cx, concise, regions, Concise); got != "for<'a> 'a : 'static" {
		t.Errorf("region outlives = %q", got)
	}

	equate := ty.Bind(ty.EquatePredicate{A: refA, B: refA})
	if got := mustRender(t, cx, concise, equate, Concise); got != "for<'a> &'a u8 == &'a u8" {
		t.Errorf("equate = %q", got)
	}
}
