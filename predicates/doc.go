// Package predicates provides a generic Predicate type and pure, stateless
// combinators for building boolean tests, inspired by Guava's
// com.google.common.base.Predicates.
//
// # The Predicate type
//
// A [Predicate] is just a named func(T) bool, so any closure qualifies:
//
//	even := predicates.Predicate[int](func(n int) bool { return n%2 == 0 })
//
// # Combining predicates
//
// Combinators exist both as methods (fluent form) and as package-level
// functions (variadic form). Both evaluate left-to-right and short-circuit:
//
//	p := predicates.ContainsPattern("J").Or(predicates.Not(predicates.ContainsPattern("a")))
//	q := predicates.And(nonEmpty, even, small)
//
// # Stock predicates
//
// [AlwaysTrue], [AlwaysFalse], [EqualTo], [In], [NonZero] and
// [ContainsPattern] cover the common cases so call sites stay declarative:
//
//	keep := predicates.NonZero[string]()      // drops ""
//	isA  := predicates.EqualTo("Adam")
//
// # Portability
//
// Predicates are plain first-class functions; the combinators translate
// directly to Python lambdas, JavaScript arrow functions or Java's
// Predicate.and/or/negate.
package predicates
