package decoder

// Sequence is a growable, indexable collection, the interface-level stand-in
// for original_source/include/dynl.h's _int_dynl_t. The C original hand-rolls
// doubling-capacity growth and a pop that forgets to shrink; neither is
// ported here; a Go slice already grows amortized-O(1) and this type exists
// only to give that collaborator a named home with the same four operations
// (push, get, length, shrink-to-fit) the rest of the package expects.
type Sequence[T any] struct {
	items []T
}

// NewSequence returns an empty sequence ready for use.
func NewSequence[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// Push appends item to the end of the sequence.
func (s *Sequence[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Get returns the item at index and whether index was in range.
func (s *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// Len returns the number of items currently held.
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// ShrinkToFit reallocates the backing array so its capacity matches its
// length, releasing any slack grown during Push calls.
func (s *Sequence[T]) ShrinkToFit() {
	if cap(s.items) == len(s.items) {
		return
	}
	fitted := make([]T, len(s.items))
	copy(fitted, s.items)
	s.items = fitted
}

// Items returns the underlying slice. Callers must not retain it across a
// subsequent Push, since Push may reallocate.
func (s *Sequence[T]) Items() []T {
	return s.items
}
