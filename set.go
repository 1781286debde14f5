package swisstable

import "github.com/go-swiss/swisstable/hash"

// Set is an open-addressed hash set: a direct reinterpretation of the
// table engine with T itself as the entry type.
type Set[T comparable] struct {
	t *table[T]
}

// NewSet constructs an empty Set. By default keys are hashed with
// hash.Generic[T] and compared with ==; both are overridable via
// [WithHasher]/[WithEqual].
func NewSet[T comparable](opts ...Option[T]) *Set[T] {
	ctx := buildContext[T](hash.Generic[T](), func(a, b T) bool { return a == b }, opts)
	return &Set[T]{t: newTable(ctx)}
}

// Add inserts v, reporting true iff it was not already present.
func (s *Set[T]) Add(v T) bool {
	_, inserted := s.t.add(v)
	return inserted
}

// Contains reports whether v is present.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.t.find(v)
	return ok
}

// IndexOf returns the internal slot index of v, if present. The index is
// not stable across any mutation that resizes or rehashes the set.
func (s *Set[T]) IndexOf(v T) (int, bool) {
	return s.t.find(v)
}

// Remove deletes v, reporting true iff it was present.
func (s *Set[T]) Remove(v T) bool {
	return s.t.remove(v)
}

// RemoveAndShrink deletes v like Remove, then immediately Trims.
func (s *Set[T]) RemoveAndShrink(v T) bool {
	ok := s.t.remove(v)
	if ok {
		s.t.trim()
	}
	return ok
}

// Trim shrinks the set's backing storage to fit its current length, per
// the configured shrink policy (see [WithShrinkPolicy]).
func (s *Set[T]) Trim() {
	s.t.trim()
}

// Len returns the number of elements currently in the set.
func (s *Set[T]) Len() int {
	return s.t.length
}
