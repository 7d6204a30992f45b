// Package fixture provides an in-memory type context populated from YAML
// files. It backs the command line tool and the renderer tests.
package fixture

import (
	"fmt"
	"strings"

	"github.com/funvibe/tyrender/internal/ty"
)

// Item describes one definition known to a Table.
type Item struct {
	Def  ty.DefID
	Path string
	Name string

	// Owner is the trait or impl of an associated value.
	Owner    ty.DefID
	HasOwner bool

	// FnTrait marks the call traits.
	FnTrait   ty.ClosureKind
	IsFnTrait bool

	// Untyped marks a local type whose layout is still being collected.
	Untyped bool

	// Span and Captures describe a local closure.
	Span     string
	Captures []string

	Generics *ty.Generics
}

// Entry is a named value to render.
type Entry struct {
	Name  string
	Kind  string
	Value any
}

// UnknownItemError is returned for lookups of definitions the table does
// not hold.
type UnknownItemError struct {
	Def ty.DefID
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown item %s", e.Def)
}

// Table implements ty.Context over a fixed set of items.
type Table struct {
	items   map[ty.DefID]*Item
	entries []Entry
	byName  map[string]int

	// LiftNever makes every Lift call fail, simulating values that still
	// reference inference state.
	LiftNever bool
}

func NewTable() *Table {
	return &Table{
		items:  make(map[ty.DefID]*Item),
		byName: make(map[string]int),
	}
}

// Add registers an item, replacing any previous item with the same id.
// An empty Name defaults to the last segment of Path.
func (t *Table) Add(item Item) *Table {
	if item.Name == "" {
		item.Name = lastSegment(item.Path)
	}
	it := item
	t.items[item.Def] = &it
	return t
}

// AddEntry appends a named value. Names must be unique.
func (t *Table) AddEntry(e Entry) error {
	if _, dup := t.byName[e.Name]; dup {
		return fmt.Errorf("duplicate entry %q", e.Name)
	}
	t.byName[e.Name] = len(t.entries)
	t.entries = append(t.entries, e)
	return nil
}

// Entries returns the named values in file order.
func (t *Table) Entries() []Entry {
	return t.entries
}

func (t *Table) Entry(name string) (Entry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

func (t *Table) Item(def ty.DefID) (*Item, bool) {
	it, ok := t.items[def]
	return it, ok
}

func (t *Table) ItemPath(def ty.DefID) (string, error) {
	it, ok := t.items[def]
	if !ok {
		return "", &UnknownItemError{Def: def}
	}
	return it.Path, nil
}

func (t *Table) ItemName(def ty.DefID) (string, error) {
	it, ok := t.items[def]
	if !ok {
		return "", &UnknownItemError{Def: def}
	}
	return it.Name, nil
}

func (t *Table) AssocParent(def ty.DefID) (ty.DefID, bool) {
	it, ok := t.items[def]
	if !ok || !it.HasOwner {
		return ty.DefID{}, false
	}
	return it.Owner, true
}

// Generics returns an empty descriptor for items declared without
// generics.
func (t *Table) Generics(def ty.DefID) (*ty.Generics, error) {
	it, ok := t.items[def]
	if !ok {
		return nil, &UnknownItemError{Def: def}
	}
	if it.Generics == nil {
		return &ty.Generics{}, nil
	}
	return it.Generics, nil
}

func (t *Table) FnTraitKind(def ty.DefID) (ty.ClosureKind, bool) {
	it, ok := t.items[def]
	if !ok || !it.IsFnTrait {
		return 0, false
	}
	return it.FnTrait, true
}

func (t *Table) HasItemType(def ty.DefID) bool {
	it, ok := t.items[def]
	return !ok || !it.Untyped
}

func (t *Table) ClosureSpan(def ty.DefID) (string, bool) {
	it, ok := t.items[def]
	if !ok || it.Span == "" {
		return "", false
	}
	return it.Span, true
}

func (t *Table) Freevars(def ty.DefID) []string {
	if it, ok := t.items[def]; ok {
		return it.Captures
	}
	return nil
}

// Lift returns v unchanged; values in a Table have no local scope.
func (t *Table) Lift(v ty.Foldable) (ty.Foldable, bool) {
	if t.LiftNever {
		return nil, false
	}
	return v, true
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "::"); i >= 0 {
		return path[i+2:]
	}
	return path
}
