package chain_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/kellyvonborstel/underscore-functions/chain"
)

// ints builds a Chain[int] for tests.
func ints(items ...int) *chain.Chain[int] {
	return chain.Of(items...)
}

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

// ─── Constructors & Terminals ─────────────────────────────────────────────────

func TestOfCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	c := chain.From(src)
	src[0] = 99
	v := c.Value()
	if v[0] != 1 {
		t.Fatal("From must copy its input")
	}
}

func TestValueReturnsCopy(t *testing.T) {
	c := ints(1, 2, 3)
	v := c.Value()
	v[0] = 99
	again := c.Value()
	if again[0] != 1 {
		t.Fatal("Value must not expose internal storage")
	}
}

func TestSizeAndIsEmpty(t *testing.T) {
	if ints().Size() != 0 || !ints().IsEmpty() {
		t.Fatal("empty chain misreported")
	}
	if ints(1, 2).Size() != 2 || ints(1, 2).IsEmpty() {
		t.Fatal("non-empty chain misreported")
	}
}

func TestFirstLast(t *testing.T) {
	c := ints(10, 20, 30)
	if v, ok := c.First(); !ok || v != 10 {
		t.Fatalf("First = %v, %v", v, ok)
	}
	if v, ok := c.Last(); !ok || v != 30 {
		t.Fatalf("Last = %v, %v", v, ok)
	}
	if _, ok := chain.Empty[int]().First(); ok {
		t.Fatal("First on empty should be false")
	}
}

func TestFind(t *testing.T) {
	v, err := ints(1, 2, 3).Find(func(n int) bool { return n > 1 })
	if err != nil || v != 2 {
		t.Fatalf("Find = %v, %v", v, err)
	}
	_, err = ints(1, 2).Find(func(n int) bool { return n > 10 })
	if !errors.Is(err, chain.ErrNoMatch) {
		t.Fatalf("Find no match err = %v; want ErrNoMatch", err)
	}
}

func TestEverySome(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	if !ints(2, 4).Every(even) || ints(2, 3).Every(even) {
		t.Fatal("Every misbehaves")
	}
	if !ints(1, 2).Some(even) || ints(1, 3).Some(even) {
		t.Fatal("Some misbehaves")
	}
}

func TestJoin(t *testing.T) {
	s := ints(1, 2, 3).Join(", ", strconv.Itoa)
	if s != "1, 2, 3" {
		t.Fatalf("Join = %q", s)
	}
}

func TestString(t *testing.T) {
	if got := ints(1, 2).String(); got != "[1,2]" {
		t.Fatalf("String = %q; want [1,2]", got)
	}
}

// ─── Transformation ───────────────────────────────────────────────────────────

func TestFilterDoesNotMutateReceiver(t *testing.T) {
	c := ints(1, 2, 3, 4)
	got := c.Filter(func(n, _ int) bool { return n%2 == 0 })
	assertSlice(t, got.Value(), []int{2, 4})
	assertSlice(t, c.Value(), []int{1, 2, 3, 4})
}

func TestReject(t *testing.T) {
	got := ints(1, 2, 3, 4).Reject(func(n, _ int) bool { return n%2 == 0 })
	assertSlice(t, got.Value(), []int{1, 3})
}

func TestCompact(t *testing.T) {
	got := chain.Of("a", "", "b", "").Compact(func(s string) bool { return s != "" })
	assertSlice(t, got.Value(), []string{"a", "b"})
}

func TestUniqWithKey(t *testing.T) {
	got := ints(1, 2, 1, 3, 2).Uniq(func(n int) any { return n })
	assertSlice(t, got.Value(), []int{1, 2, 3})
}

func TestUniqNilKey(t *testing.T) {
	got := chain.Of("a", "b", "a").Uniq(nil)
	assertSlice(t, got.Value(), []string{"a", "b"})
}

func TestReverse(t *testing.T) {
	assertSlice(t, ints(1, 2, 3).Reverse().Value(), []int{3, 2, 1})
}

func TestSortIsStable(t *testing.T) {
	type kv struct {
		K int
		V string
	}
	c := chain.Of(kv{2, "a"}, kv{1, "b"}, kv{2, "c"})
	got := c.Sort(func(a, b kv) bool { return a.K < b.K }).Value()
	if got[0].V != "b" || got[1].V != "a" || got[2].V != "c" {
		t.Fatalf("Sort = %v", got)
	}
}

func TestSortBy(t *testing.T) {
	got := ints(3, 1, 2).SortBy(func(n int) float64 { return float64(n) })
	assertSlice(t, got.Value(), []int{1, 2, 3})
}

func TestShuffleKeepsElements(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	got := c.Shuffle().SortBy(func(n int) float64 { return float64(n) })
	assertSlice(t, got.Value(), []int{1, 2, 3, 4, 5})
}

func TestSample(t *testing.T) {
	if n := ints(1, 2, 3, 4, 5).Sample(2).Size(); n != 2 {
		t.Fatalf("Sample size = %d; want 2", n)
	}
	if n := ints(1, 2).Sample(10).Size(); n != 2 {
		t.Fatalf("Sample beyond len = %d; want 2", n)
	}
}

// ─── Slicing & Combining ──────────────────────────────────────────────────────

func TestFirstN(t *testing.T) {
	assertSlice(t, ints(1, 2, 3, 4).FirstN(2).Value(), []int{1, 2})
	assertSlice(t, ints(1, 2).FirstN(5).Value(), []int{1, 2})
	assertSlice(t, ints(1, 2).FirstN(-1).Value(), []int{})
}

func TestRestN(t *testing.T) {
	assertSlice(t, ints(1, 2, 3, 4).RestN(2).Value(), []int{3, 4})
	assertSlice(t, ints(1, 2).RestN(5).Value(), []int{})
	assertSlice(t, ints(1, 2).RestN(-1).Value(), []int{1, 2})
}

func TestInitial(t *testing.T) {
	assertSlice(t, ints(1, 2, 3, 4).Initial(1).Value(), []int{1, 2, 3})
	assertSlice(t, ints(1, 2).Initial(5).Value(), []int{})
}

func TestPushAndConcat(t *testing.T) {
	a := ints(1, 2)
	b := ints(3, 4)
	assertSlice(t, a.Push(3).Value(), []int{1, 2, 3})
	assertSlice(t, a.Concat(b).Value(), []int{1, 2, 3, 4})
	assertSlice(t, a.Value(), []int{1, 2}) // receiver untouched
}

func TestPartition(t *testing.T) {
	pass, fail := ints(1, 2, 3, 4, 5).Partition(func(n int) bool { return n%2 == 0 })
	assertSlice(t, pass.Value(), []int{2, 4})
	assertSlice(t, fail.Value(), []int{1, 3, 5})
}

// ─── Aggregation ──────────────────────────────────────────────────────────────

func TestSum(t *testing.T) {
	got := ints(1, 2, 3).Sum(func(n int) float64 { return float64(n) })
	if got != 6 {
		t.Fatalf("Sum = %v; want 6", got)
	}
}

func TestMinMax(t *testing.T) {
	c := ints(3, 1, 4, 1, 5)
	if v, ok := c.Min(func(n int) float64 { return float64(n) }); !ok || v != 1 {
		t.Fatalf("Min = %v, %v", v, ok)
	}
	if v, ok := c.Max(func(n int) float64 { return float64(n) }); !ok || v != 5 {
		t.Fatalf("Max = %v, %v", v, ok)
	}
	if _, ok := chain.Empty[int]().Min(func(n int) float64 { return float64(n) }); ok {
		t.Fatal("Min on empty should be false")
	}
}

// ─── Each / Tap ───────────────────────────────────────────────────────────────

func TestEach(t *testing.T) {
	var seen []int
	ints(7, 8, 9).Each(func(n, i int) { seen = append(seen, n+i) })
	assertSlice(t, seen, []int{7, 9, 11})
}

func TestTap(t *testing.T) {
	tapped := 0
	got := ints(1, 2).Tap(func(c *chain.Chain[int]) { tapped = c.Size() })
	if tapped != 2 {
		t.Fatal("Tap should observe the chain")
	}
	assertSlice(t, got.Value(), []int{1, 2})
}
