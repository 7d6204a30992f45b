// Package ty holds the interned type-system values the renderer consumes:
// types, regions, substitutions, generics, predicates and binders.
// Nothing in this package renders text; see internal/prettyprinter.
package ty

import "fmt"

// CrateNum identifies a compilation unit.
type CrateNum uint32

// LocalCrate is the crate currently being compiled.
const LocalCrate CrateNum = 0

// DefID is the global identity of an item.
type DefID struct {
	Krate CrateNum
	Index uint32
}

// IsLocal reports whether the item belongs to the local crate.
func (d DefID) IsLocal() bool {
	return d.Krate == LocalCrate
}

func (d DefID) String() string {
	return fmt.Sprintf("DefId(%d:%d)", d.Krate, d.Index)
}

// ParamSpace partitions generic parameters. Type-level parameters live in
// TypeSpace, the implicit receiver in SelfSpace and method-level
// parameters in FnSpace.
type ParamSpace int

const (
	TypeSpace ParamSpace = iota
	SelfSpace
	FnSpace

	NumSpaces = 3
)

func (s ParamSpace) String() string {
	switch s {
	case TypeSpace:
		return "TypeSpace"
	case SelfSpace:
		return "SelfSpace"
	case FnSpace:
		return "FnSpace"
	}
	return fmt.Sprintf("ParamSpace(%d)", int(s))
}

// PerSpace stores one slice of T per parameter space.
type PerSpace[T any] [NumSpaces][]T

// Get returns the entries of one space.
func (p *PerSpace[T]) Get(space ParamSpace) []T {
	return p[space]
}

// Len returns the total number of entries.
func (p *PerSpace[T]) Len() int {
	return len(p[TypeSpace]) + len(p[SelfSpace]) + len(p[FnSpace])
}

// IsEmpty reports whether no space has entries.
func (p *PerSpace[T]) IsEmpty() bool {
	return p.Len() == 0
}
