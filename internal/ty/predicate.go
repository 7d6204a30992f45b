package ty

// Binder marks that the late-bound regions inside Value with depth 1 are
// quantified at this point.
type Binder[T any] struct {
	Value T
}

// Bind wraps v in a binder.
func Bind[T any](v T) Binder[T] {
	return Binder[T]{Value: v}
}

// TraitRef names a trait together with its substitutions, including the
// receiver in SelfSpace when known.
type TraitRef struct {
	Def    DefID
	Substs *Substs
}

// SelfTy returns the receiver type; nil when the receiver is absent.
func (t TraitRef) SelfTy() Type {
	self, _ := t.Substs.SelfTy()
	return self
}

// TraitPredicate states that the receiver implements the trait.
type TraitPredicate struct {
	TraitRef TraitRef
}

// EquatePredicate states that two types are equal.
type EquatePredicate struct {
	A, B Type
}

// ProjectionTy names an associated item of a trait reference.
type ProjectionTy struct {
	TraitRef TraitRef
	ItemName string
}

// ProjectionPredicate states <T as Trait>::Item == Ty.
type ProjectionPredicate struct {
	ProjectionTy ProjectionTy
	Ty           Type
}

// TypeOutlives states T : 'r.
type TypeOutlives struct {
	Ty     Type
	Region Region
}

// RegionOutlives states 'a : 'b.
type RegionOutlives struct {
	A, B Region
}

// ClosureKind is the call trait a closure implements.
type ClosureKind int

const (
	FnClosure ClosureKind = iota
	FnMutClosure
	FnOnceClosure
)

// Predicate is any obligation that can appear in a where clause.
type Predicate interface {
	aPredicate()
}

type pred struct{}

func (pred) aPredicate() {}

type (
	// TraitPred is T: Trait.
	TraitPred struct {
		pred
		Binder[TraitPredicate]
	}
	// Rfc1592Pred wraps a predicate checked under the RFC 1592 rules.
	Rfc1592Pred struct {
		pred
		Inner Predicate
	}
	// EquatePred is A == B.
	EquatePred struct {
		pred
		Binder[EquatePredicate]
	}
	// RegionOutlivesPred is 'a : 'b.
	RegionOutlivesPred struct {
		pred
		Binder[RegionOutlives]
	}
	// TypeOutlivesPred is T : 'a.
	TypeOutlivesPred struct {
		pred
		Binder[TypeOutlives]
	}
	// ProjectionPred is <T as Trait>::Item == U.
	ProjectionPred struct {
		pred
		Binder[ProjectionPredicate]
	}
	// WellFormedPred requires a type to be well-formed.
	WellFormedPred struct {
		pred
		Ty Type
	}
	// ObjectSafePred requires a trait to be object safe.
	ObjectSafePred struct {
		pred
		Trait DefID
	}
	// ClosureKindPred requires a closure to implement a call trait.
	ClosureKindPred struct {
		pred
		Closure DefID
		Kind    ClosureKind
	}
)

// GenericPredicates are the where clauses declared on an item.
type GenericPredicates struct {
	Predicates PerSpace[Predicate]
}

// ExplicitSelfCategory is how a method takes its receiver.
type ExplicitSelfCategory int

const (
	StaticSelf ExplicitSelfCategory = iota
	ByValueSelf
	ByRefSelf
	ByMutRefSelf
	ByBoxSelf
)
