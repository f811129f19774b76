package views

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// Sequence is an ordered, mutable sequence of T that owns its storage. It is
// the backing store every view ultimately reads from and writes to.
//
// Unlike an immutable collection, a Sequence mutates in place: Push, Insert,
// Set and Remove change the receiver. Views created from it (via
// [Sequence.Filter] and [Transform]) stay live — they observe every mutation
// on their next read.
//
// A Sequence carries an equality function used by Remove and by views that
// remove through it. [New] and [From] use ==; use [NewFunc] for element types
// that are not comparable.
//
// Sequences are not safe for concurrent use.
type Sequence[T any] struct {
	items   []T
	eq      func(a, b T) bool
	version uint64
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence from a variadic list of items (copied).
// Equality is ==.
func New[T comparable](items ...T) *Sequence[T] {
	return NewFunc(func(a, b T) bool { return a == b }, items...)
}

// From creates a Sequence from a slice (the slice is copied).
// Equality is ==.
func From[T comparable](items []T) *Sequence[T] {
	return New(items...)
}

// NewFunc creates a Sequence with an explicit equality function, for element
// types that are not comparable.
func NewFunc[T any](eq func(a, b T) bool, items ...T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst, eq: eq}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToList returns an independent snapshot copy of the sequence.
func (s *Sequence[T]) ToList() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All is an alias for [Sequence.ToList].
func (s *Sequence[T]) All() []T { return s.ToList() }

// Count returns the number of items in the sequence.
func (s *Sequence[T]) Count() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no items.
func (s *Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsNotEmpty reports whether the sequence has at least one item.
func (s *Sequence[T]) IsNotEmpty() bool { return len(s.items) > 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (s *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// Has reports whether index is a valid position in the sequence.
func (s *Sequence[T]) Has(index int) bool {
	return index >= 0 && index < len(s.items)
}

// ToJSON serialises the sequence items to a JSON array.
func (s *Sequence[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Iterate returns a lazy pass over the sequence in order.
//
// Each pass snapshots the structural version at its start; a mutation of the
// sequence mid-pass panics with [ErrConcurrentModification]. Separate passes
// each observe the live state.
func (s *Sequence[T]) Iterate() iter.Seq[T] {
	return func(yield func(T) bool) {
		version := s.version
		for _, item := range s.items {
			if s.version != version {
				panic(ErrConcurrentModification)
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Each calls fn(item, index) for every item.
func (s *Sequence[T]) Each(fn func(T, int)) {
	for i, item := range s.items {
		fn(item, i)
	}
}

// Tap calls fn(s) for side-effects (e.g. logging or debugging) and returns
// s unchanged for further chaining.
func (s *Sequence[T]) Tap(fn func(*Sequence[T])) *Sequence[T] {
	fn(s)
	return s
}

// Dump prints the sequence to stdout and returns s for chaining.
func (s *Sequence[T]) Dump() *Sequence[T] {
	fmt.Println(s.String())
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether at least one item satisfies fn.
func (s *Sequence[T]) Contains(fn func(T) bool) bool {
	for _, item := range s.items {
		if fn(item) {
			return true
		}
	}
	return false
}

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the sequence is empty or no item
// satisfies the predicate.
func (s *Sequence[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range s.items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[0], true
}

// IndexOf returns the index of the first item equal to item, or -1.
func (s *Sequence[T]) IndexOf(item T) int {
	for i, e := range s.items {
		if s.eq(e, item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Push appends items in place and returns the receiver for chaining.
func (s *Sequence[T]) Push(items ...T) *Sequence[T] {
	s.items = append(s.items, items...)
	s.version++
	return s
}

// Insert places item at index, shifting later items right.
// Index may equal Count(), in which case Insert behaves like Push.
func (s *Sequence[T]) Insert(index int, item T) error {
	if index < 0 || index > len(s.items) {
		return errors.Wrapf(ErrIndexOutOfRange, "insert at %d with %d items", index, len(s.items))
	}
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[index+1:], s.items[index:])
	s.items[index] = item
	s.version++
	return nil
}

// Set replaces the item at index.
func (s *Sequence[T]) Set(index int, item T) error {
	if index < 0 || index >= len(s.items) {
		return errors.Wrapf(ErrIndexOutOfRange, "set at %d with %d items", index, len(s.items))
	}
	s.items[index] = item
	s.version++
	return nil
}

// RemoveAt removes and returns the item at index, shifting later items left.
func (s *Sequence[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, errors.Wrapf(ErrIndexOutOfRange, "remove at %d with %d items", index, len(s.items))
	}
	item := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.version++
	return item, nil
}

// Remove removes the first occurrence equal to item.
// Reports whether an item was removed.
func (s *Sequence[T]) Remove(item T) bool {
	return s.removeFirst(func(e T) bool { return s.eq(e, item) })
}

// Clear removes all items.
func (s *Sequence[T]) Clear() *Sequence[T] {
	s.items = s.items[:0]
	s.version++
	return s
}

func (s *Sequence[T]) removeFirst(match func(T) bool) bool {
	for i, e := range s.items {
		if match(e) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.version++
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a live view exposing only the items that satisfy p.
// No items are copied; see [Filtered].
func (s *Sequence[T]) Filter(p func(T) bool) *Filtered[T] {
	return &Filtered[T]{seq: s, pred: p}
}

// mutator

func (s *Sequence[T]) appendItem(item T) error {
	s.Push(item)
	return nil
}

func (s *Sequence[T]) removeItem(item T) (bool, error) {
	return s.Remove(item), nil
}
