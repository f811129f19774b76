package functions

import "github.com/hasbyte1/go-guava-utils/predicates"

// Function is a pure value-mapping function from T to R.
//
// It is a named func type, so any func(T) R converts to it. Functions are
// stateless; composing them never mutates the operands.
type Function[T, R any] func(T) R

// Compose returns the composition of f and g: Compose(f, g)(x) = f(g(x)).
//
// Note the order — g runs first. This matches mathematical composition
// (f ∘ g) and Guava's Functions.compose.
func Compose[A, B, C any](f Function[B, C], g Function[A, B]) Function[A, C] {
	return func(a A) C { return f(g(a)) }
}

// Identity returns a function that returns its argument unchanged.
func Identity[T any]() Function[T, T] {
	return func(v T) T { return v }
}

// Constant returns a function that ignores its argument and always returns
// value.
func Constant[T, R any](value R) Function[T, R] {
	return func(T) R { return value }
}

// ForPredicate adapts a predicate into a bool-valued Function:
// ForPredicate(p)(x) = p(x).
//
// Useful for transforming a sequence into its per-element test results:
//
//	results := views.Transform[string, bool](names,
//	    functions.ForPredicate(predicates.ContainsPattern("m")))
func ForPredicate[T any](p predicates.Predicate[T]) Function[T, bool] {
	return func(v T) bool { return p(v) }
}

// ForMap adapts a map into a lookup Function. Keys missing from m map to
// fallback.
func ForMap[K comparable, V any](m map[K]V, fallback V) Function[K, V] {
	return func(k K) V {
		if v, ok := m[k]; ok {
			return v
		}
		return fallback
	}
}
