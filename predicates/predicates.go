package predicates

import "regexp"

// Predicate is a pure boolean-valued test over values of type T.
//
// It is a named func type, so any func(T) bool converts to it implicitly at
// call sites and explicitly via Predicate[T](fn). Predicates are stateless:
// combining them never mutates the operands.
type Predicate[T any] func(T) bool

// ─────────────────────────────────────────────────────────────────────────────
// Fluent combinators
// ─────────────────────────────────────────────────────────────────────────────

// And returns a predicate that is true when both p and q are true.
// q is not evaluated when p returns false.
func (p Predicate[T]) And(q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) && q(v) }
}

// Or returns a predicate that is true when either p or q is true.
// q is not evaluated when p returns true.
func (p Predicate[T]) Or(q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) || q(v) }
}

// Negate returns the logical complement of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level combinators
// ─────────────────────────────────────────────────────────────────────────────

// And returns a predicate that is true when every predicate in ps is true.
// Evaluation is left-to-right and stops at the first false result.
// And() with no arguments is [AlwaysTrue].
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that is true when at least one predicate in ps is
// true. Evaluation is left-to-right and stops at the first true result.
// Or() with no arguments is [AlwaysFalse].
func Or[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Not returns the logical complement of p.
func Not[T any](p Predicate[T]) Predicate[T] { return p.Negate() }

// ─────────────────────────────────────────────────────────────────────────────
// Stock predicates
// ─────────────────────────────────────────────────────────────────────────────

// AlwaysTrue returns a predicate that accepts every value.
func AlwaysTrue[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// AlwaysFalse returns a predicate that rejects every value.
func AlwaysFalse[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// EqualTo returns a predicate that is true for values equal to want.
func EqualTo[T comparable](want T) Predicate[T] {
	return func(v T) bool { return v == want }
}

// In returns a predicate that is true for values contained in the given set.
func In[T comparable](set ...T) Predicate[T] {
	members := make(map[T]struct{}, len(set))
	for _, v := range set {
		members[v] = struct{}{}
	}
	return func(v T) bool {
		_, ok := members[v]
		return ok
	}
}

// NonZero returns a predicate that is true for values different from T's zero
// value. It is the Go analog of a not-null test: use it to drop "" from
// string sequences or 0 from numeric ones.
func NonZero[T comparable]() Predicate[T] {
	var zero T
	return func(v T) bool { return v != zero }
}

// ContainsPattern returns a predicate that is true for strings containing a
// match of the given regular expression.
//
// The pattern is compiled once, up front. Like [regexp.MustCompile], it panics
// when the pattern is invalid; intended for patterns known at compile time.
//
//	hasA := predicates.ContainsPattern("(?i)a")
//	hasA("Jane") // true
func ContainsPattern(pattern string) Predicate[string] {
	re := regexp.MustCompile(pattern)
	return re.MatchString
}
