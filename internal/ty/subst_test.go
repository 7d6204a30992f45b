package ty

import (
	"errors"
	"testing"
)

var (
	i32 = Scalars[I32]
	u8  = Scalars[U8]
)

func param(space ParamSpace, index uint32, name string) *Param {
	return &Param{Space: space, Index: index, Name: name}
}

func TestSubst(t *testing.T) {
	s := NewSubsts([]Type{i32, u8}, []Region{Static}).WithSelf(StrType)

	tests := []struct {
		name string
		in   Type
		want Type
	}{
		{"type param", param(TypeSpace, 1, "U"), u8},
		{"self", param(SelfSpace, 0, SelfName), StrType},
		{"nested", &Box{Elem: &Tuple{Elems: []Type{param(TypeSpace, 0, "T"), i32}}}, &Box{Elem: &Tuple{Elems: []Type{i32, i32}}}},
		{"region", &Ref{Region: EarlyBound{Space: TypeSpace, Index: 0, Name: "'a"}, TypeAndMut: TypeAndMut{Ty: i32}}, &Ref{Region: Static, TypeAndMut: TypeAndMut{Ty: i32}}},
		{"no params", &Slice{Elem: i32}, &Slice{Elem: i32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Subst(tt.in, s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !Identical(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSubst_OutOfRange(t *testing.T) {
	s := NewSubsts([]Type{i32}, nil)
	in := &Tuple{Elems: []Type{param(TypeSpace, 3, "X"), param(FnSpace, 0, "Y")}}

	got, err := Subst(in, s)
	var oor *ParamOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected *ParamOutOfRangeError, got %v", err)
	}
	if oor.Name != "X" || oor.Index != 3 || oor.Len != 1 {
		t.Errorf("error = %+v, want the first missing slot", oor)
	}
	if !Identical(got, in) {
		t.Errorf("missing parameters should be left in place")
	}

	_, err = Subst(&Ref{Region: EarlyBound{Space: FnSpace, Name: "'m"}, TypeAndMut: TypeAndMut{Ty: i32}}, s)
	if !errors.As(err, &oor) || oor.Name != "'m" {
		t.Errorf("expected region out of range error, got %v", err)
	}
}

func TestSubst_ShiftsUnderBinder(t *testing.T) {
	// The replacement mentions a region bound one binder out; placed
	// inside a fn pointer it must point one binder further.
	outer := LateBound{Depth: 1, Bound: Anon(0)}
	replacement := &Ref{Region: outer, TypeAndMut: TypeAndMut{Ty: i32}}
	s := NewSubsts([]Type{replacement}, nil)

	fn := &FnPtr{Fn: &BareFn{Sig: Bind(FnSig{Inputs: []Type{param(TypeSpace, 0, "T")}, Output: Converging(Unit)})}}
	got, err := Subst(fn, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref := got.(*FnPtr).Fn.Sig.Value.Inputs[0].(*Ref)
	if lb, ok := ref.Region.(LateBound); !ok || lb.Depth != 2 {
		t.Errorf("region = %#v, want depth 2", ref.Region)
	}
}

func TestHasSelfTy(t *testing.T) {
	tests := []struct {
		name string
		in   Type
		want bool
	}{
		{"self", param(SelfSpace, 0, SelfName), true},
		{"nested self", &Slice{Elem: &Box{Elem: param(SelfSpace, 0, SelfName)}}, true},
		{"type param", param(TypeSpace, 0, "T"), false},
		{"scalar", i32, false},
	}
	for _, tt := range tests {
		if got := HasSelfTy(tt.in); got != tt.want {
			t.Errorf("%s: HasSelfTy = %v, want %v", tt.name, got, tt.want)
		}
	}
}
