package functions_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-guava-utils/functions"
	"github.com/hasbyte1/go-guava-utils/predicates"
)

func TestCompose(t *testing.T) {
	length := functions.Function[string, int](func(s string) int { return len(s) })
	isEven := functions.Function[int, bool](func(n int) bool { return n%2 == 0 })

	evenLength := functions.Compose(isEven, length)

	// Compose(f, g)(x) = f(g(x)) — g runs first.
	if !evenLength("John") {
		t.Fatal(`evenLength("John") = false; want true (len 4)`)
	}
	if evenLength("Tom") {
		t.Fatal(`evenLength("Tom") = true; want false (len 3)`)
	}
}

func TestComposeOrder(t *testing.T) {
	g := functions.Function[int, int](func(n int) int { return n + 1 })
	f := functions.Function[int, string](func(n int) string { return strconv.Itoa(n * 2) })

	got := functions.Compose(f, g)(3) // f(g(3)) = f(4) = "8"
	if got != "8" {
		t.Fatalf("Compose(f, g)(3) = %q; want \"8\"", got)
	}
}

func TestIdentity(t *testing.T) {
	if functions.Identity[string]()("Jane") != "Jane" {
		t.Fatal("Identity changed its argument")
	}
}

func TestConstant(t *testing.T) {
	fortyTwo := functions.Constant[string](42)
	if fortyTwo("anything") != 42 || fortyTwo("") != 42 {
		t.Fatal("Constant should ignore its argument")
	}
}

func TestForPredicate(t *testing.T) {
	hasM := predicates.ContainsPattern("m")
	fn := functions.ForPredicate(hasM)

	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"John", false},
		{"Jane", false},
		{"Adam", true},
		{"Tom", true},
	} {
		if fn(tc.in) != tc.want {
			t.Fatalf("ForPredicate(hasM)(%q) = %v; want %v", tc.in, fn(tc.in), tc.want)
		}
	}
}

func TestForMap(t *testing.T) {
	ages := map[string]int{"Jane": 31, "Adam": 27}
	lookup := functions.ForMap(ages, -1)

	if lookup("Jane") != 31 {
		t.Fatal("ForMap should return the mapped value")
	}
	if lookup("Elvis") != -1 {
		t.Fatal("ForMap should return the fallback for missing keys")
	}
}
