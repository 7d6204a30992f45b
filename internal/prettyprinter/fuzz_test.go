package prettyprinter

import (
	"testing"

	"github.com/funvibe/tyrender/internal/config"
	"github.com/funvibe/tyrender/internal/fixture"
	"github.com/funvibe/tyrender/internal/ty"
	"github.com/funvibe/tyrender/internal/ty/tytest"
)

// fuzzTable declares every id tytest draws from except the undeclared one.
func fuzzTable() *fixture.Table {
	foo := &ty.Generics{}
	foo.Types[ty.TypeSpace] = []ty.TypeParameterDef{
		{Name: "T"},
		{Name: "U", Index: 1, Default: paramT()},
	}
	fn := &ty.Generics{}
	fn.Types[ty.TypeSpace] = []ty.TypeParameterDef{{Name: "Args"}}
	fn.Types[ty.SelfSpace] = []ty.TypeParameterDef{{Name: ty.SelfName, Space: ty.SelfSpace}}

	return fixture.NewTable().
		Add(fixture.Item{Def: tytest.Defs[0], Path: "Foo", Generics: foo}).
		Add(fixture.Item{Def: tytest.Defs[1], Path: "Iterator"}).
		Add(fixture.Item{Def: tytest.Defs[2], Path: "Iterator::next", Owner: tytest.Defs[1], HasOwner: true}).
		Add(fixture.Item{Def: tytest.Defs[3], Path: "Fn", FnTrait: ty.FnClosure, IsFnTrait: true, Generics: fn})
}

// FuzzRenderDeterministic verifies that rendering never fails on
// well-formed values and always produces the same text.
func FuzzRenderDeterministic(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{7, 0, 3, 1, 4, 2, 1})
	f.Add([]byte{2, 1, 1, 0, 6, 5, 3, 0, 1})
	f.Add([]byte("for<'a> Fn(&'a i32) -> bool"))

	cx := fuzzTable()
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 512 {
			return
		}
		gen := tytest.NewFromData(data)
		values := []any{
			gen.Type(),
			ty.Bind(gen.TraitRef()),
			gen.Predicate(),
			gen.Region(),
		}

		for _, v := range values {
			for _, sess := range []config.Session{{}, {Verbose: true}} {
				for _, mode := range []Mode{Concise, Explicit} {
					first, err := Render(cx, sess, v, mode)
					if err != nil {
						t.Fatalf("Render(%#v) failed: %v", v, err)
					}
					second, err := Render(cx, sess, v, mode)
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					if first != second {
						t.Fatalf("non-deterministic output: %q vs %q", first, second)
					}
				}
			}
		}
	})
}
