package content

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSort_AscendingThenDescendingIsReverse(t *testing.T) {
	items := []string{"pear", "apple", "fig", "banana", "cherry"}

	asc := Sort(items, SortAscending)
	desc := Sort(asc, SortDescending)

	want := slices.Clone(asc)
	slices.Reverse(want)
	if diff := cmp.Diff(want, desc); diff != "" {
		t.Fatalf("descending mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"apple", "banana", "cherry", "fig", "pear"}, asc); diff != "" {
		t.Fatalf("ascending mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	items := []string{"c", "a", "b"}
	original := slices.Clone(items)

	for _, rule := range []SortRule{SortOriginal, SortAscending, SortDescending, SortRandom} {
		_ = Sort(items, rule)
	}

	if diff := cmp.Diff(original, items); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestSort_OriginalKeepsOrder(t *testing.T) {
	items := []string{"b", "a", "c"}
	if diff := cmp.Diff(items, Sort(items, SortOriginal)); diff != "" {
		t.Fatalf("original order mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_RandomSmallInputIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{1, 2, 37, 100} {
		items := numbered(n)
		got := SortWith(rng, items, SortRandom)
		if diff := cmp.Diff(items, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
			t.Fatalf("n=%d: random sort is not a permutation (-want +got):\n%s", n, diff)
		}
	}
}

func TestSort_RandomLargeInputIsStridedSample(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, n := range []int{101, 250, 1000, 12345} {
		items := numbered(n)
		got := SortWith(rng, items, SortRandom)

		stride := (n + 99) / 100
		wantLen := (n + stride - 1) / stride
		if len(got) != wantLen {
			t.Fatalf("n=%d: expected %d items, got %d", n, wantLen, len(got))
		}

		var want []string
		for i := 0; i < n; i += stride {
			want = append(want, items[i])
		}
		if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
			t.Fatalf("n=%d: sample mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestSort_RandomEmpty(t *testing.T) {
	got := Sort(nil, SortRandom)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSort_RandomIsSeedDeterministic(t *testing.T) {
	items := numbered(50)
	first := SortWith(rand.New(rand.NewPCG(3, 3)), items, SortRandom)
	second := SortWith(rand.New(rand.NewPCG(3, 3)), items, SortRandom)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same seed produced different orders (-first +second):\n%s", diff)
	}
}

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "item-" + strconv.Itoa(i)
	}
	return out
}
