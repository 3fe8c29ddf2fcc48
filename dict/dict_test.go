package dict_test

import (
	"sort"
	"testing"

	"github.com/kellyvonborstel/underscore-functions/dict"
)

func assertSorted[T comparable](t *testing.T, got []T, want []T, less func(a, b T) bool) {
	t.Helper()
	sorted := make([]T, len(got))
	copy(sorted, got)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) != len(want) {
		t.Fatalf("length: got %d want %d (got=%v want=%v)", len(sorted), len(want), sorted, want)
	}
	for i := range sorted {
		if sorted[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, sorted[i], want[i])
		}
	}
}

// ─── Keys / Values / Has / Pairs ──────────────────────────────────────────────

func TestKeys(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	assertSorted(t, dict.Keys(m), []string{"a", "b", "c"}, func(a, b string) bool { return a < b })
}

func TestValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	assertSorted(t, dict.Values(m), []int{1, 2, 3}, func(a, b int) bool { return a < b })
}

func TestHas(t *testing.T) {
	m := map[string]int{"a": 0}
	if !dict.Has(m, "a") {
		t.Fatal("Has should see zero-valued entries")
	}
	if dict.Has(m, "b") {
		t.Fatal("Has should be false for missing keys")
	}
}

func TestPairsRoundTrip(t *testing.T) {
	m := map[string]int{"x": 1, "y": 2}
	back := dict.FromPairs(dict.Pairs(m))
	if len(back) != 2 || back["x"] != 1 || back["y"] != 2 {
		t.Fatalf("Pairs/FromPairs = %v", back)
	}
}

func TestInvert(t *testing.T) {
	inv := dict.Invert(map[string]int{"a": 1, "b": 2})
	if inv[1] != "a" || inv[2] != "b" {
		t.Fatalf("Invert = %v", inv)
	}
}

// ─── Extend / Defaults / Clone ────────────────────────────────────────────────

func TestExtend(t *testing.T) {
	dst := map[string]int{"a": 1, "b": 2}
	got := dict.Extend(dst, map[string]int{"b": 20, "c": 30}, map[string]int{"c": 300})
	if got["a"] != 1 || got["b"] != 20 || got["c"] != 300 {
		t.Fatalf("Extend = %v", got)
	}
	if dst["c"] != 300 {
		t.Fatal("Extend should mutate dst in place")
	}
}

func TestDefaults(t *testing.T) {
	dst := map[string]int{"a": 1}
	got := dict.Defaults(dst, map[string]int{"a": 10, "b": 2}, map[string]int{"b": 20, "c": 3})
	if got["a"] != 1 {
		t.Fatal("Defaults must not overwrite existing keys")
	}
	if got["b"] != 2 {
		t.Fatalf("Defaults b = %d; first source providing a key should win", got["b"])
	}
	if got["c"] != 3 {
		t.Fatalf("Defaults c = %d; want 3", got["c"])
	}
}

func TestClone(t *testing.T) {
	m := map[string]int{"a": 1}
	c := dict.Clone(m)
	c["a"] = 99
	if m["a"] != 1 {
		t.Fatal("Clone must not alias the original")
	}
}

// ─── Pick / Omit ──────────────────────────────────────────────────────────────

func TestPick(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	got := dict.Pick(m, "a", "c", "zzz")
	if len(got) != 2 || got["a"] != 1 || got["c"] != 3 {
		t.Fatalf("Pick = %v", got)
	}
}

func TestOmit(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	got := dict.Omit(m, "b")
	if len(got) != 2 || dict.Has(got, "b") {
		t.Fatalf("Omit = %v", got)
	}
	if len(m) != 3 {
		t.Fatal("Omit must not mutate the original")
	}
}

// ─── MapValues / MapKeys / ToMap ──────────────────────────────────────────────

func TestMapValues(t *testing.T) {
	got := dict.MapValues(map[string]int{"a": 1, "b": 2}, func(v int) int { return v * 10 })
	if got["a"] != 10 || got["b"] != 20 {
		t.Fatalf("MapValues = %v", got)
	}
}

func TestMapKeys(t *testing.T) {
	got := dict.MapKeys(map[int]string{1: "one", 2: "two"}, func(k int) int { return k * 100 })
	if got[100] != "one" || got[200] != "two" {
		t.Fatalf("MapKeys = %v", got)
	}
}

func TestToMap(t *testing.T) {
	type User struct {
		ID   int
		Name string
	}
	users := []User{{1, "Alice"}, {2, "Bob"}}
	got := dict.ToMap(users, func(u User) (int, string) { return u.ID, u.Name })
	if got[1] != "Alice" || got[2] != "Bob" {
		t.Fatalf("ToMap = %v", got)
	}
}
