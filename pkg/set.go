// Package pkg is a package that provides utilities for mutavec.
package pkg

// Set is a generic insertion-ordered set.
//
// The zero value is not usable; construct instances with NewSet. Membership
// and insertion are O(1) on average; Values returns elements in the order
// they were first added.
type Set[T comparable] struct {
	members map[T]struct{}
	order   []T
}

// NewSet creates an empty Set, optionally seeded with initial items.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{members: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add inserts an item. Re-adding an existing item is a no-op and keeps the
// original insertion position.
func (s *Set[T]) Add(item T) {
	if _, ok := s.members[item]; ok {
		return
	}

	s.members[item] = struct{}{}
	s.order = append(s.order, item)
}

// Contains reports whether the item is a member of the set.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.members[item]
	return ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.order)
}

// Values returns the members in insertion order. The returned slice is a
// copy; callers may modify it freely.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)

	return out
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	out := NewSet[T]()
	for _, item := range s.order {
		out.Add(item)
	}

	return out
}
