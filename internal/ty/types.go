package ty

// Type is the interface implemented by all type values.
// Values are immutable once built and may be shared freely.
type Type interface {
	// aType restricts implementations to this package.
	aType()
}

type typ struct{}

func (typ) aType() {}

// Mutability of pointers and references.
type Mutability int

const (
	Immutable Mutability = iota
	Mutable
)

// Unsafety of a function type.
type Unsafety int

const (
	Normal Unsafety = iota
	Unsafe
)

// Abi names a calling convention, e.g. "Rust" or "C".
type Abi string

// AbiRust is the default calling convention.
const AbiRust Abi = "Rust"

// Scalar is bool, char or a numeric primitive.
type Scalar struct {
	typ
	Kind ScalarKind
}

// Box is an owned heap value.
type Box struct {
	typ
	Elem Type
}

// TypeAndMut pairs a pointee with its mutability.
type TypeAndMut struct {
	Ty    Type
	Mutbl Mutability
}

// RawPtr is *const T or *mut T.
type RawPtr struct {
	typ
	TypeAndMut
}

// Ref is a reference &'r T or &'r mut T.
type Ref struct {
	typ
	Region Region
	TypeAndMut
}

// Tuple is (A, B, ...). The empty tuple is the unit type.
type Tuple struct {
	typ
	Elems []Type
}

// Unit is the shared empty tuple.
var Unit = &Tuple{}

// IsUnit reports whether t is the empty tuple.
func IsUnit(t Type) bool {
	tup, ok := t.(*Tuple)
	return ok && len(tup.Elems) == 0
}

// FnOutput is the result of a signature: either a type or divergence.
type FnOutput struct {
	Diverges bool
	Ty       Type // nil when Diverges
}

// Converging returns an output that produces t.
func Converging(t Type) FnOutput {
	return FnOutput{Ty: t}
}

// Diverging is the output of functions that never return.
var Diverging = FnOutput{Diverges: true}

// FnSig is the signature of a function.
type FnSig struct {
	Inputs   []Type
	Output   FnOutput
	Variadic bool
}

// BareFn describes a function item or pointer type.
type BareFn struct {
	Unsafety Unsafety
	Abi      Abi
	Sig      Binder[FnSig]
}

// FnDef is the zero-sized type of one specific function item.
type FnDef struct {
	typ
	Def    DefID
	Substs *Substs
	Fn     *BareFn
}

// FnPtr is a function pointer.
type FnPtr struct {
	typ
	Fn *BareFn
}

// InferKind distinguishes inference variables.
type InferKind int

const (
	TyVar InferKind = iota
	IntVar
	FloatVar
	FreshTy
	FreshIntTy
	FreshFloatTy
)

// IsFresh reports whether the kind is one of the freshened variants.
func (k InferKind) IsFresh() bool {
	return k >= FreshTy
}

// InferTy is an inference variable.
type InferTy struct {
	Kind  InferKind
	Index uint32
}

// Infer is a placeholder for a type still being inferred.
type Infer struct {
	typ
	Var InferTy
}

// Error stands for a type that failed to check.
type Error struct {
	typ
}

// ErrorType is the shared error placeholder.
var ErrorType = &Error{}

// Param is a generic type parameter.
type Param struct {
	typ
	Space ParamSpace
	Index uint32
	Name  string
}

// ParamTy identifies a type parameter independently of any type value.
type ParamTy struct {
	Space ParamSpace
	Index uint32
	Name  string
}

func (t *Param) ParamTy() ParamTy {
	return ParamTy{Space: t.Space, Index: t.Index, Name: t.Name}
}

// SelfName is the name of the implicit receiver parameter.
const SelfName = "Self"

// AdtKind separates record-like from sum-like nominal types.
type AdtKind int

const (
	StructKind AdtKind = iota
	EnumKind
)

// Adt is an instance of a user-defined struct or enum.
type Adt struct {
	typ
	Kind   AdtKind
	Def    DefID
	Substs *Substs
}

// AdtDef is the definition of a struct or enum, without arguments.
type AdtDef struct {
	Kind AdtKind
	Def  DefID
}

func (t *Adt) AdtDef() AdtDef {
	return AdtDef{Kind: t.Kind, Def: t.Def}
}

// BuiltinBound is a language-defined capability marker.
type BuiltinBound int

const (
	Send BuiltinBound = iota
	Sized
	Copy
	Sync
)

func (b BuiltinBound) String() string {
	switch b {
	case Send:
		return "Send"
	case Sized:
		return "Sized"
	case Copy:
		return "Copy"
	case Sync:
		return "Sync"
	}
	return "?"
}

// ExistentialBounds are the non-principal bounds of a trait object.
type ExistentialBounds struct {
	RegionBound      Region
	BuiltinBounds    []BuiltinBound
	ProjectionBounds []Binder[ProjectionPredicate]
}

// TraitObject is an existential type described by a principal trait, its
// associated type assignments and capability bounds.
type TraitObject struct {
	typ
	Principal Binder[TraitRef]
	Bounds    ExistentialBounds
}

// TraitTy is the body of a trait object.
type TraitTy struct {
	Principal Binder[TraitRef]
	Bounds    ExistentialBounds
}

func (t *TraitObject) TraitTy() TraitTy {
	return TraitTy{Principal: t.Principal, Bounds: t.Bounds}
}

// Projection is an associated type <Self as Trait>::Item.
type Projection struct {
	typ
	ProjectionTy
}

// Str is the string slice type.
type Str struct {
	typ
}

// StrType is the shared string slice type.
var StrType = &Str{}

// ClosureSubsts carries the enclosing function's substitutions and the
// types of the captured variables, in declaration order.
type ClosureSubsts struct {
	FuncSubsts *Substs
	UpvarTys   []Type
}

// Closure is the anonymous type of a closure expression.
type Closure struct {
	typ
	Def    DefID
	Substs ClosureSubsts
}

// Array is [T; N].
type Array struct {
	typ
	Elem Type
	Len  uint64
}

// Slice is [T].
type Slice struct {
	typ
	Elem Type
}
