package ty

import "testing"

func TestIdentical(t *testing.T) {
	a := EarlyBound{Name: "'a"}
	tests := []struct {
		name string
		x, y Type
		want bool
	}{
		{"same scalar", Scalars[I32], Scalars[I32], true},
		{"different scalar", i32, u8, false},
		{"structural adt", &Adt{Def: DefID{Index: 1}, Substs: NewSubsts([]Type{i32}, nil)}, &Adt{Def: DefID{Index: 1}, Substs: NewSubsts([]Type{i32}, nil)}, true},
		{"adt args differ", &Adt{Def: DefID{Index: 1}, Substs: NewSubsts([]Type{i32}, nil)}, &Adt{Def: DefID{Index: 1}, Substs: NewSubsts([]Type{u8}, nil)}, false},
		{"nil and empty substs", &Adt{Def: DefID{Index: 1}}, &Adt{Def: DefID{Index: 1}, Substs: &Substs{}}, true},
		{"ref regions", &Ref{Region: a, TypeAndMut: TypeAndMut{Ty: i32}}, &Ref{Region: a, TypeAndMut: TypeAndMut{Ty: i32}}, true},
		{"ref regions differ", &Ref{Region: a, TypeAndMut: TypeAndMut{Ty: i32}}, &Ref{Region: Static, TypeAndMut: TypeAndMut{Ty: i32}}, false},
		{"mutability", &RawPtr{TypeAndMut: TypeAndMut{Ty: i32}}, &RawPtr{TypeAndMut: TypeAndMut{Ty: i32, Mutbl: Mutable}}, false},
		{"tuple length", &Tuple{Elems: []Type{i32}}, &Tuple{Elems: []Type{i32, i32}}, false},
		{"unit", Unit, &Tuple{}, true},
		{"error", ErrorType, &Error{}, true},
		{"array length", &Array{Elem: i32, Len: 2}, &Array{Elem: i32, Len: 3}, false},
		{"shape", &Slice{Elem: i32}, &Box{Elem: i32}, false},
		{"nil", nil, i32, false},
		{"fn ptr", &FnPtr{Fn: &BareFn{Sig: Bind(FnSig{Inputs: []Type{i32}, Output: Diverging})}}, &FnPtr{Fn: &BareFn{Sig: Bind(FnSig{Inputs: []Type{i32}, Output: Diverging})}}, true},
		{"fn abi", &FnPtr{Fn: &BareFn{Abi: "C"}}, &FnPtr{Fn: &BareFn{Abi: AbiRust}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identical(tt.x, tt.y); got != tt.want {
				t.Errorf("Identical = %v, want %v", got, tt.want)
			}
			if got := Identical(tt.y, tt.x); got != tt.want {
				t.Errorf("Identical (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}
