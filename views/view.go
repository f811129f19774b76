package views

import "iter"

// View is the read surface shared by [Sequence], [Filtered] and [Mapped].
//
// Accept View in your own functions so that callers can pass a raw sequence or
// any projection of one interchangeably. A View never copies backing data; all
// reads pass through to the backing sequence at call time.
type View[T any] interface {
	// Iterate returns a lazy, single-pass sequence of the view's elements in
	// backing order. Structural mutation of the backing sequence mid-pass
	// panics with ErrConcurrentModification.
	Iterate() iter.Seq[T]

	// ToList materializes the view's current elements into a new independent
	// slice (a snapshot, not a live projection).
	ToList() []T

	// Count returns the number of elements currently visible through the view.
	Count() int

	// IsEmpty reports whether the view currently exposes no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether the view currently exposes at least one
	// element.
	IsNotEmpty() bool

	// Each calls fn(item, index) for every visible element; index is the
	// position within the view, not within the backing sequence.
	Each(fn func(T, int))

	// Contains reports whether at least one visible element satisfies fn.
	Contains(fn func(T) bool) bool

	// First returns the first visible element, optionally matching fns[0].
	// Returns the zero value and false when the view is empty or no element
	// matches.
	First(fns ...func(T) bool) (T, bool)
}

// mutator is the write surface a view needs from its source to pass mutations
// down to the backing sequence. All three view types implement it.
type mutator[T any] interface {
	appendItem(item T) error
	removeItem(item T) (bool, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// Matching helpers
// ─────────────────────────────────────────────────────────────────────────────

// All reports whether every element visible through v satisfies p.
// Vacuously true for an empty view.
func All[T any](v View[T], p func(T) bool) bool {
	for item := range v.Iterate() {
		if !p(item) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element visible through v satisfies p.
func Any[T any](v View[T], p func(T) bool) bool {
	for item := range v.Iterate() {
		if p(item) {
			return true
		}
	}
	return false
}

// None reports whether no element visible through v satisfies p.
func None[T any](v View[T], p func(T) bool) bool {
	return !Any(v, p)
}

// ─────────────────────────────────────────────────────────────────────────────
// Shared read implementations
// ─────────────────────────────────────────────────────────────────────────────

func collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for item := range seq {
		out = append(out, item)
	}
	return out
}

func each[T any](seq iter.Seq[T], fn func(T, int)) {
	i := 0
	for item := range seq {
		fn(item, i)
		i++
	}
}

func first[T any](seq iter.Seq[T], fns ...func(T) bool) (T, bool) {
	var zero T
	for item := range seq {
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	return zero, false
}
