// Package views provides live, lazy, composable views over an ordered
// in-memory sequence, inspired by Guava's Collections2.filter and
// Collections2.transform.
//
// # The backing sequence
//
// The central type is [Sequence][T], an ordered, mutable sequence that owns
// its storage:
//
//	names := views.New("John", "Jane", "Adam", "Tom")
//	names.Push("Anna")
//
// # Live views
//
// [Sequence.Filter] and [Transform] return views, not copies. A view holds a
// reference to its backing sequence and evaluates its predicate or transform
// lazily on every read, so mutations of the backing sequence are immediately
// visible through the view — and mutations through the view land in the
// backing sequence:
//
//	withA := names.Filter(predicates.ContainsPattern("a"))
//	withA.Count()        // evaluated against the current backing state
//	withA.Add("Jane")    // appends to names
//	withA.Add("Elvis")   // ErrPredicateViolated; names unchanged
//
// To materialize an independent snapshot instead, call ToList.
//
// # Type-transforming views
//
// Go generics do not allow methods to introduce new type parameters, so
// transformation to a different element type is a package-level function:
//
//	lengths := views.Transform[string, int](names, func(s string) int { return len(s) })
//
// A transformed view is read-only unless an inverse is installed with
// [Mapped.WithInverse]; without one, Add and Remove fail with
// [ErrUnsupportedOperation].
//
// # Concurrency
//
// Views are not safe for concurrent use. Structural mutation of the backing
// sequence while an [View.Iterate] pass is in flight is detected and panics
// with [ErrConcurrentModification]; each new pass observes the live state.
package views
