package ty

// ScalarKind enumerates the primitive types.
type ScalarKind int

const (
	Bool ScalarKind = iota
	Char
	Isize
	I8
	I16
	I32
	I64
	Usize
	U8
	U16
	U32
	U64
	F32
	F64
)

var scalarNames = [...]string{
	Bool:  "bool",
	Char:  "char",
	Isize: "isize",
	I8:    "i8",
	I16:   "i16",
	I32:   "i32",
	I64:   "i64",
	Usize: "usize",
	U8:    "u8",
	U16:   "u16",
	U32:   "u32",
	U64:   "u64",
	F32:   "f32",
	F64:   "f64",
}

// Name returns the canonical source name of the scalar kind.
func (k ScalarKind) Name() string {
	if k < 0 || int(k) >= len(scalarNames) {
		return "?"
	}
	return scalarNames[k]
}

// IsInteger reports whether the kind is a signed or unsigned integer.
func (k ScalarKind) IsInteger() bool {
	return k >= Isize && k <= U64
}

// IsFloat reports whether the kind is a floating point kind.
func (k ScalarKind) IsFloat() bool {
	return k == F32 || k == F64
}

// Scalars holds the shared scalar types, indexed by ScalarKind.
var Scalars = []*Scalar{
	Bool:  {Kind: Bool},
	Char:  {Kind: Char},
	Isize: {Kind: Isize},
	I8:    {Kind: I8},
	I16:   {Kind: I16},
	I32:   {Kind: I32},
	I64:   {Kind: I64},
	Usize: {Kind: Usize},
	U8:    {Kind: U8},
	U16:   {Kind: U16},
	U32:   {Kind: U32},
	U64:   {Kind: U64},
	F32:   {Kind: F32},
	F64:   {Kind: F64},
}

// LookupScalar maps a canonical name back to its scalar type.
func LookupScalar(name string) (*Scalar, bool) {
	for k, n := range scalarNames {
		if n == name {
			return Scalars[k], true
		}
	}
	return nil, false
}
