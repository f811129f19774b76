package views_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-guava-utils/views"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *views.Sequence[int] { return views.New(ns...) }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	s := views.New(1, 2, 3)
	assertSlice(t, s.ToList(), []int{1, 2, 3})
}

func TestFromCopies(t *testing.T) {
	src := []string{"a", "b", "c"}
	s := views.From(src)
	src[0] = "z" // mutate original – should not affect the sequence
	if got, _ := s.Get(0); got != "a" {
		t.Fatal("From did not copy the slice")
	}
}

func TestNewFunc(t *testing.T) {
	// []int is not comparable; equality must be supplied explicitly.
	eq := func(a, b []int) bool { return len(a) == len(b) && (len(a) == 0 || a[0] == b[0]) }
	s := views.NewFunc(eq, []int{1}, []int{2}, []int{3})

	if !s.Remove([]int{2}) {
		t.Fatal("Remove with custom equality failed")
	}
	if s.Count() != 2 {
		t.Fatalf("Count = %d; want 2", s.Count())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestGet(t *testing.T) {
	s := ints(10, 20, 30)
	v, ok := s.Get(1)
	if !ok || v != 20 {
		t.Fatalf("Get(1) = %v, %v; want 20, true", v, ok)
	}
	if _, ok := s.Get(3); ok {
		t.Fatal("Get out of range should return false")
	}
	if _, ok := s.Get(-1); ok {
		t.Fatal("Get negative index should return false")
	}
}

func TestHas(t *testing.T) {
	s := ints(1, 2, 3)
	if !s.Has(0) || !s.Has(2) {
		t.Fatal("Has failed for valid index")
	}
	if s.Has(-1) || s.Has(3) {
		t.Fatal("Has should return false for out-of-range")
	}
}

func TestCountAndEmptiness(t *testing.T) {
	if ints(1, 2, 3).Count() != 3 {
		t.Fatal("Count failed")
	}
	if !views.New[int]().IsEmpty() {
		t.Fatal("expected empty")
	}
	if !ints(1).IsNotEmpty() {
		t.Fatal("expected not empty")
	}
}

func TestString(t *testing.T) {
	if got := ints(1, 2, 3).String(); got != "[1,2,3]" {
		t.Fatalf("String() = %q; want [1,2,3]", got)
	}
}

func TestToListIsSnapshot(t *testing.T) {
	s := ints(1, 2, 3)
	snap := s.ToList()
	s.Push(4)
	assertSlice(t, snap, []int{1, 2, 3}) // snapshot must not grow
	assertSlice(t, s.ToList(), []int{1, 2, 3, 4})
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

func TestPush(t *testing.T) {
	s := ints(1, 2).Push(3, 4)
	assertSlice(t, s.ToList(), []int{1, 2, 3, 4})
}

func TestInsert(t *testing.T) {
	s := ints(1, 3)
	if err := s.Insert(1, 2); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, s.ToList(), []int{1, 2, 3})

	if err := s.Insert(3, 4); err != nil { // index == Count() appends
		t.Fatal(err)
	}
	assertSlice(t, s.ToList(), []int{1, 2, 3, 4})

	if err := s.Insert(9, 5); !errors.Is(err, views.ErrIndexOutOfRange) {
		t.Fatalf("Insert out of range = %v; want ErrIndexOutOfRange", err)
	}
}

func TestSet(t *testing.T) {
	s := ints(1, 2, 3)
	if err := s.Set(1, 20); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, s.ToList(), []int{1, 20, 3})

	if err := s.Set(-1, 0); !errors.Is(err, views.ErrIndexOutOfRange) {
		t.Fatalf("Set out of range = %v; want ErrIndexOutOfRange", err)
	}
}

func TestRemoveAt(t *testing.T) {
	s := ints(10, 20, 30)
	v, err := s.RemoveAt(1)
	if err != nil || v != 20 {
		t.Fatalf("RemoveAt(1) = %v, %v; want 20, nil", v, err)
	}
	assertSlice(t, s.ToList(), []int{10, 30})

	if _, err := s.RemoveAt(5); !errors.Is(err, views.ErrIndexOutOfRange) {
		t.Fatalf("RemoveAt out of range = %v; want ErrIndexOutOfRange", err)
	}
}

func TestRemove(t *testing.T) {
	s := ints(1, 2, 3, 2)
	if !s.Remove(2) {
		t.Fatal("Remove should report true for a present item")
	}
	assertSlice(t, s.ToList(), []int{1, 3, 2}) // first occurrence only

	if s.Remove(99) {
		t.Fatal("Remove should report false for an absent item")
	}
}

func TestClear(t *testing.T) {
	s := ints(1, 2, 3).Clear()
	if !s.IsEmpty() {
		t.Fatal("Clear should empty the sequence")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & search
// ─────────────────────────────────────────────────────────────────────────────

func TestIterateOrder(t *testing.T) {
	got := []int{}
	for n := range ints(3, 1, 2).Iterate() {
		got = append(got, n)
	}
	assertSlice(t, got, []int{3, 1, 2})
}

func TestIterateEarlyStop(t *testing.T) {
	seen := 0
	for range ints(1, 2, 3, 4, 5).Iterate() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Fatalf("seen = %d; want 2", seen)
	}
}

func TestEach(t *testing.T) {
	sum, idxSum := 0, 0
	ints(1, 2, 3, 4).Each(func(n, i int) { sum += n; idxSum += i })
	if sum != 10 || idxSum != 6 {
		t.Fatalf("Each sum=%d idxSum=%d; want 10, 6", sum, idxSum)
	}
}

func TestFirst(t *testing.T) {
	s := ints(1, 2, 3, 4)

	v, ok := s.First()
	if !ok || v != 1 {
		t.Fatalf("First() = %v, %v; want 1, true", v, ok)
	}

	v, ok = s.First(func(n int) bool { return n > 2 })
	if !ok || v != 3 {
		t.Fatalf("First with predicate = %v, %v; want 3, true", v, ok)
	}

	if _, ok := views.New[int]().First(); ok {
		t.Fatal("First on empty should return false")
	}
}

func TestContains(t *testing.T) {
	s := ints(1, 2, 3)
	if !s.Contains(func(n int) bool { return n == 2 }) {
		t.Fatal("Contains should be true")
	}
	if s.Contains(func(n int) bool { return n == 99 }) {
		t.Fatal("Contains should be false")
	}
}

func TestIndexOf(t *testing.T) {
	s := ints(10, 20, 30)
	if idx := s.IndexOf(20); idx != 1 {
		t.Fatalf("IndexOf(20) = %d; want 1", idx)
	}
	if idx := s.IndexOf(99); idx != -1 {
		t.Fatalf("IndexOf(99) = %d; want -1", idx)
	}
}

func TestTap(t *testing.T) {
	var seen int
	n := ints(1, 2, 3).
		Tap(func(s *views.Sequence[int]) { seen = s.Count() }).
		Count()
	if seen != 3 || n != 3 {
		t.Fatal("Tap failed")
	}
}
