// Package memory implements the variable store backing a program run: one
// flat namespace of named cells, each holding a value whose kind never
// changes after declaration.
package memory

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/kievzenit/pseudocode/internal/program_errors"
	"github.com/kievzenit/pseudocode/internal/values"
)

type cell struct {
	declared values.DeclaredType
	value    values.Value
}

// Store is not safe for concurrent use; the interpreter is its only owner.
type Store struct {
	cells *linkedhashmap.Map
}

func NewStore() *Store {
	return &Store{
		cells: linkedhashmap.New(),
	}
}

// Declare creates name at the zero value of t. Declaring an existing name is
// a no-op and keeps its current value.
func (s *Store) Declare(name string, t values.DeclaredType) error {
	if _, ok := s.cells.Get(name); ok {
		return nil
	}

	zero, ok := t.ZeroValue()
	if !ok {
		return program_errors.New(program_errors.MissingTypeOrUnvalidType)
	}

	s.cells.Put(name, &cell{declared: t, value: zero})
	return nil
}

func (s *Store) Read(name string) (values.Value, bool) {
	c, ok := s.lookup(name)
	if !ok {
		return nil, false
	}

	return c.value, true
}

// DeclaredType returns the type name was declared with. The store does not
// use it for type checks; Write compares value kinds.
func (s *Store) DeclaredType(name string) (values.DeclaredType, bool) {
	c, ok := s.lookup(name)
	if !ok {
		return values.Unset, false
	}

	return c.declared, true
}

func (s *Store) Write(name string, v values.Value) error {
	c, ok := s.lookup(name)
	if !ok {
		return program_errors.NewVariableNotFound(name)
	}

	if !values.SameKind(c.value, v) {
		return program_errors.New(program_errors.WrongType)
	}

	c.value = v
	return nil
}

// Names lists declared variables in declaration order.
func (s *Store) Names() []string {
	keys := s.cells.Keys()
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, key.(string))
	}

	return names
}

func (s *Store) Len() int {
	return s.cells.Size()
}

// Snapshot copies the current values. Values are immutable, so the copy is
// independent of later writes.
func (s *Store) Snapshot() map[string]values.Value {
	snapshot := make(map[string]values.Value, s.cells.Size())
	it := s.cells.Iterator()
	for it.Next() {
		snapshot[it.Key().(string)] = it.Value().(*cell).value
	}

	return snapshot
}

func (s *Store) lookup(name string) (*cell, bool) {
	found, ok := s.cells.Get(name)
	if !ok {
		return nil, false
	}

	return found.(*cell), true
}
