// Package functions provides a generic Function type and pure composition
// helpers, inspired by Guava's com.google.common.base.Functions.
//
// # The Function type
//
// A [Function] is a named func(T) R; any unary func converts to it:
//
//	length := functions.Function[string, int](func(s string) int { return len(s) })
//
// # Composition
//
// [Compose] chains two functions right-to-left, matching the mathematical
// convention:
//
//	isEven := func(n int) bool { return n%2 == 0 }
//	evenLength := functions.Compose(isEven, strLen) // evenLength(x) = isEven(strLen(x))
//
// Compose is a package-level function rather than a method because Go methods
// cannot introduce new type parameters.
//
// # Adapters
//
// [ForPredicate] adapts a predicate into a bool-valued Function so filters can
// feed transformation pipelines; [ForMap] adapts a map into a lookup Function.
package functions
