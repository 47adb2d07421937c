// Package store provides the insertion-ordered property storage that backs
// delegating objects and shared construction contexts.
package store

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Store is an insertion-ordered mapping of property names to values. Keys
// are unique; overwriting an existing key keeps its original position.
type Store struct {
	keys   []string
	values map[string]any
}

// New returns an empty Store.
func New() *Store {
	return &Store{values: map[string]any{}}
}

// FromMap returns a Store holding a shallow copy of m. Go maps carry no
// order, so keys are inserted in sorted order.
func FromMap(m map[string]any) *Store {
	s := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.Set(k, m[k])
	}
	return s
}

// Get returns the value stored under name and whether the key is present.
// A present key may hold a nil value.
func (s *Store) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set stores value under name and returns the previous value, if any.
func (s *Store) Set(name string, value any) (any, bool) {
	prev, existed := s.values[name]
	if !existed {
		s.keys = append(s.keys, name)
	}
	s.values[name] = value
	return prev, existed
}

// Delete removes name and returns the value it held, if any.
func (s *Store) Delete(name string) (any, bool) {
	prev, existed := s.values[name]
	if !existed {
		return nil, false
	}
	delete(s.values, name)
	if i := slices.Index(s.keys, name); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
	return prev, true
}

// Has reports whether name is present.
func (s *Store) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Keys returns a copy of the keys in insertion order.
func (s *Store) Keys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return len(s.keys)
}

// Clone returns a shallow copy.
func (s *Store) Clone() *Store {
	c := &Store{
		keys:   slices.Clone(s.keys),
		values: make(map[string]any, s.Len()),
	}
	for k, v := range s.values {
		c.values[k] = v
	}
	return c
}

func (s *Store) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range s.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %v", k, s.values[k])
	}
	b.WriteString("}")
	return b.String()
}
