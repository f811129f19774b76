package views

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// Mapped is a live view exposing fn(e) for each element e of a source view,
// in source order.
//
// The transform is re-evaluated on every read, so the view always reflects
// the current backing state. Transforms are not generally invertible, so a
// Mapped view is read-only by default: Add and Remove fail with
// [ErrUnsupportedOperation] until an inverse is installed with
// [Mapped.WithInverse].
type Mapped[T, R any] struct {
	src View[T]
	fn  func(T) R
	inv func(R) (T, bool)
}

// Transform returns a live view exposing fn(e) for each element of src.
// No elements are copied; src may be a [Sequence], a [Filtered] view, or
// another Mapped view.
//
// Transform is a package-level function rather than a method because Go
// methods cannot introduce new type parameters.
func Transform[T, R any](src View[T], fn func(T) R) *Mapped[T, R] {
	return &Mapped[T, R]{src: src, fn: fn}
}

// WithInverse returns a view like v that supports reverse mutation.
//
// inv maps an output value back to the backing element that produces it,
// reporting false when the value has no preimage. The receiver is unchanged.
func (v *Mapped[T, R]) WithInverse(inv func(R) (T, bool)) *Mapped[T, R] {
	return &Mapped[T, R]{src: v.src, fn: v.fn, inv: inv}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Iterate returns a lazy pass of transformed elements in source order.
// Fail-fast semantics follow [Sequence.Iterate].
func (v *Mapped[T, R]) Iterate() iter.Seq[R] {
	return func(yield func(R) bool) {
		for item := range v.src.Iterate() {
			if !yield(v.fn(item)) {
				return
			}
		}
	}
}

// ToList materializes the current transformed elements into a new independent
// slice (a snapshot, not a live projection).
func (v *Mapped[T, R]) ToList() []R {
	return collect(v.Iterate())
}

// Count returns the number of visible elements. A transform preserves count,
// so this is the source view's count.
func (v *Mapped[T, R]) Count() int { return v.src.Count() }

// IsEmpty reports whether the source view is empty.
func (v *Mapped[T, R]) IsEmpty() bool { return v.src.IsEmpty() }

// IsNotEmpty reports whether the source view has at least one element.
func (v *Mapped[T, R]) IsNotEmpty() bool { return v.src.IsNotEmpty() }

// Each calls fn(item, index) for every transformed element.
func (v *Mapped[T, R]) Each(fn func(R, int)) {
	each(v.Iterate(), fn)
}

// Contains reports whether at least one transformed element satisfies fn.
func (v *Mapped[T, R]) Contains(fn func(R) bool) bool {
	_, ok := v.First(fn)
	return ok
}

// First returns the first transformed element, optionally matching fns[0].
func (v *Mapped[T, R]) First(fns ...func(R) bool) (R, bool) {
	return first(v.Iterate(), fns...)
}

// String returns a JSON representation of the current transformed elements.
func (v *Mapped[T, R]) String() string {
	b, err := json.Marshal(v.ToList())
	if err != nil {
		return fmt.Sprintf("%v", v.ToList())
	}
	return string(b)
}

// Tap calls fn(v) for side-effects and returns v unchanged for chaining.
func (v *Mapped[T, R]) Tap(fn func(*Mapped[T, R])) *Mapped[T, R] {
	fn(v)
	return v
}

// Dump prints the view to stdout and returns v for chaining.
func (v *Mapped[T, R]) Dump() *Mapped[T, R] {
	fmt.Println(v.String())
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add maps value back through the inverse and appends the result via the
// source view, so a filtered source still validates the element against its
// predicate.
//
// Returns [ErrUnsupportedOperation] when no inverse is installed or value has
// no preimage.
func (v *Mapped[T, R]) Add(value R) error {
	if v.inv == nil {
		return errors.Wrap(ErrUnsupportedOperation, "add on a transformed view without an inverse")
	}
	item, ok := v.inv(value)
	if !ok {
		return errors.Wrapf(ErrUnsupportedOperation, "no inverse image for %v", value)
	}
	src, ok := v.src.(mutator[T])
	if !ok {
		return errors.Wrap(ErrUnsupportedOperation, "source view is read-only")
	}
	return src.appendItem(item)
}

// Remove maps value back through the inverse and removes the first equal
// element from the backing sequence. Reports whether an element was removed;
// (false, nil) when value has a preimage that is not present.
//
// Returns [ErrUnsupportedOperation] when no inverse is installed.
func (v *Mapped[T, R]) Remove(value R) (bool, error) {
	if v.inv == nil {
		return false, errors.Wrap(ErrUnsupportedOperation, "remove on a transformed view without an inverse")
	}
	item, ok := v.inv(value)
	if !ok {
		return false, nil
	}
	src, ok := v.src.(mutator[T])
	if !ok {
		return false, errors.Wrap(ErrUnsupportedOperation, "source view is read-only")
	}
	return src.removeItem(item)
}

// mutator

func (v *Mapped[T, R]) appendItem(item R) error {
	return v.Add(item)
}

func (v *Mapped[T, R]) removeItem(item R) (bool, error) {
	return v.Remove(item)
}
