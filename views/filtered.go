package views

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// Filtered is a live view exposing only the elements of a backing [Sequence]
// that satisfy a predicate, in backing order.
//
// The predicate is re-evaluated on every read, so the view always reflects the
// current backing state. Mutations through the view land in the backing
// sequence: Add validates the element against the predicate first, Remove only
// removes elements the view can actually see.
type Filtered[T any] struct {
	seq  *Sequence[T]
	pred func(T) bool

	// count cache, valid only while countVersion matches the backing version
	hasCount     bool
	count        int
	countVersion uint64
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Iterate returns a lazy pass over the backing elements that satisfy the
// predicate. Fail-fast semantics follow [Sequence.Iterate].
func (v *Filtered[T]) Iterate() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range v.seq.Iterate() {
			if v.pred(item) {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// ToList materializes the currently visible elements into a new independent
// slice (a snapshot, not a live projection).
func (v *Filtered[T]) ToList() []T {
	return collect(v.Iterate())
}

// Count returns the number of elements currently satisfying the predicate.
//
// The count is cached and keyed to the backing sequence's version, so it is
// O(n) after any backing mutation and O(1) until the next one.
func (v *Filtered[T]) Count() int {
	if v.hasCount && v.countVersion == v.seq.version {
		return v.count
	}
	n := 0
	for _, item := range v.seq.items {
		if v.pred(item) {
			n++
		}
	}
	v.count, v.countVersion, v.hasCount = n, v.seq.version, true
	return n
}

// IsEmpty reports whether no backing element currently satisfies the
// predicate. Short-circuits at the first visible element.
func (v *Filtered[T]) IsEmpty() bool {
	_, ok := v.First()
	return !ok
}

// IsNotEmpty reports whether at least one backing element currently satisfies
// the predicate.
func (v *Filtered[T]) IsNotEmpty() bool { return !v.IsEmpty() }

// Each calls fn(item, index) for every visible element; index is the position
// within the view.
func (v *Filtered[T]) Each(fn func(T, int)) {
	each(v.Iterate(), fn)
}

// Contains reports whether at least one visible element satisfies fn.
func (v *Filtered[T]) Contains(fn func(T) bool) bool {
	_, ok := v.First(fn)
	return ok
}

// First returns the first visible element, optionally matching fns[0].
func (v *Filtered[T]) First(fns ...func(T) bool) (T, bool) {
	return first(v.Iterate(), fns...)
}

// String returns a JSON representation of the currently visible elements.
func (v *Filtered[T]) String() string {
	b, err := json.Marshal(v.ToList())
	if err != nil {
		return fmt.Sprintf("%v", v.ToList())
	}
	return string(b)
}

// Tap calls fn(v) for side-effects and returns v unchanged for chaining.
func (v *Filtered[T]) Tap(fn func(*Filtered[T])) *Filtered[T] {
	fn(v)
	return v
}

// Dump prints the view to stdout and returns v for chaining.
func (v *Filtered[T]) Dump() *Filtered[T] {
	fmt.Println(v.String())
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends item to the backing sequence.
// Returns [ErrPredicateViolated] — leaving the backing sequence unchanged —
// when item does not satisfy the view's predicate.
func (v *Filtered[T]) Add(item T) error {
	if !v.pred(item) {
		return errors.Wrapf(ErrPredicateViolated, "add %v", item)
	}
	v.seq.Push(item)
	return nil
}

// Remove removes the first backing occurrence that equals item and satisfies
// the predicate. Reports whether an element was removed; a no-op when item is
// absent or not visible through the view.
func (v *Filtered[T]) Remove(item T) bool {
	return v.seq.removeFirst(func(e T) bool {
		return v.pred(e) && v.seq.eq(e, item)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Narrowing
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a view over the same backing sequence whose predicate is the
// conjunction of this view's predicate and p.
func (v *Filtered[T]) Filter(p func(T) bool) *Filtered[T] {
	outer := v.pred
	return &Filtered[T]{
		seq:  v.seq,
		pred: func(e T) bool { return outer(e) && p(e) },
	}
}

// mutator

func (v *Filtered[T]) appendItem(item T) error {
	return v.Add(item)
}

func (v *Filtered[T]) removeItem(item T) (bool, error) {
	return v.Remove(item), nil
}
