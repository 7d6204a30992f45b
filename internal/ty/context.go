package ty

// Context is the type-context collaborator the renderer queries. Every
// lookup is synchronous and expected to be memoized by the implementation.
type Context interface {
	// ItemPath returns the fully qualified path of an item.
	ItemPath(def DefID) (string, error)

	// ItemName returns the last path segment of an item.
	ItemName(def DefID) (string, error)

	// AssocParent returns the trait or impl that owns an associated value
	// (method or constant). ok is false for free items.
	AssocParent(def DefID) (parent DefID, ok bool)

	// Generics returns the declared generics of an item.
	Generics(def DefID) (*Generics, error)

	// FnTraitKind reports whether def is one of the call traits.
	FnTraitKind(def DefID) (ClosureKind, bool)

	// HasItemType reports whether the item's type has been collected.
	// Locally defined types whose layout is still unresolved return false.
	HasItemType(def DefID) bool

	// ClosureSpan returns the source location of a local closure.
	ClosureSpan(def DefID) (string, bool)

	// Freevars returns the names of the variables captured by a local
	// closure, in declaration order.
	Freevars(def DefID) []string

	// Lift moves a value into the context's global scope. It fails for
	// values that reference scope-local inference state.
	Lift(v Foldable) (Foldable, bool)
}

// Lift is the typed form of Context.Lift.
func Lift[T Foldable](cx Context, v T) (T, bool) {
	var zero T
	lifted, ok := cx.Lift(v)
	if !ok {
		return zero, false
	}
	t, ok := lifted.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// LiftBinder lifts the value inside a binder.
func LiftBinder[T Foldable](cx Context, b Binder[T]) (Binder[T], bool) {
	v, ok := Lift(cx, b.Value)
	if !ok {
		return Binder[T]{}, false
	}
	return Binder[T]{Value: v}, true
}
