// Package iterables provides standalone, lazy helper functions over
// iter.Seq[T], inspired by Guava's com.google.common.collect.Iterables.
//
// # Relationship to package views
//
// The views package gives you live, mutable projections backed by a
// [views.Sequence]; this package gives you plain lazy pipelines over any
// iter.Seq with no wrapper type and no mutation surface. Nothing is evaluated
// until the sequence is consumed:
//
//	evens := iterables.Filter(iterables.Of(1, 2, 3, 4, 5),
//	    func(n int) bool { return n%2 == 0 })
//	squares := iterables.Transform(evens, func(n int) int { return n * n })
//	iterables.Collect(squares) // → [4 16]
//
// Sequences compose with anything speaking iter.Seq, including
// views.View.Iterate and the standard library's slices and maps packages.
//
// # Laziness
//
// Every helper returns a derived sequence that pulls from its source on
// demand; a derived sequence can be ranged multiple times if (and only if)
// its source can.
package iterables
