package iterables

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Sources
// ─────────────────────────────────────────────────────────────────────────────

// Of returns a sequence over a variadic list of items.
func Of[T any](items ...T) iter.Seq[T] {
	return FromSlice(items)
}

// FromSlice returns a sequence over the elements of items.
// The slice is not copied; the sequence observes later writes to it.
func FromSlice[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Lazy pipelines
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a lazy sequence of the elements of seq that satisfy p,
// in order.
func Filter[T any](seq iter.Seq[T], p func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			if p(item) {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Transform returns a lazy sequence of fn(e) for each element e of seq,
// in order.
func Transform[T, R any](seq iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for item := range seq {
			if !yield(fn(item)) {
				return
			}
		}
	}
}

// Take returns a lazy sequence of at most the first n elements of seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		left := n
		for item := range seq {
			if !yield(item) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}
}

// Skip returns a lazy sequence of the elements of seq after the first n.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for item := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Consumers
// ─────────────────────────────────────────────────────────────────────────────

// All reports whether every element of seq satisfies p.
// Vacuously true for an empty sequence; stops at the first false result.
func All[T any](seq iter.Seq[T], p func(T) bool) bool {
	for item := range seq {
		if !p(item) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element of seq satisfies p.
// Stops at the first true result.
func Any[T any](seq iter.Seq[T], p func(T) bool) bool {
	for item := range seq {
		if p(item) {
			return true
		}
	}
	return false
}

// None reports whether no element of seq satisfies p.
func None[T any](seq iter.Seq[T], p func(T) bool) bool {
	return !Any(seq, p)
}

// Count consumes seq and returns the number of elements.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Collect consumes seq into a new slice.
func Collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for item := range seq {
		out = append(out, item)
	}
	return out
}
