package linecache

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestCleanLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \n\t\n \r\n", nil},
		{"trims and drops blanks", "  a \n\n b\t\n", []string{"a", "b"}},
		{"dedupes keeping first seen", "b\na\nb\n a\nc", []string{"b", "a", "c"}},
		{"crlf", "x\r\ny\r\n", []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanLines(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("CleanLines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnionSortedAndDistinct(t *testing.T) {
	got := union([]string{"c", "a"}, []string{"b", "a", "d"})
	want := []string{"a", "b", "c", "d"}
	if !slices.Equal(got, want) {
		t.Errorf("union = %q, want %q", got, want)
	}
}

func TestDifference(t *testing.T) {
	got := difference([]string{"a", "b", "c", "d"}, []string{"b", "d", "z"})
	want := []string{"a", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("difference = %q, want %q", got, want)
	}
}

func TestSampleLines(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}
	rng := rand.New(rand.NewPCG(1, 2))

	t.Run("clamps to pool size", func(t *testing.T) {
		got := sampleLines(rng, pool, 50)
		if len(got) != len(pool) {
			t.Fatalf("len = %d, want %d", len(got), len(pool))
		}
		sorted := slices.Clone(got)
		slices.Sort(sorted)
		if !slices.Equal(sorted, pool) {
			t.Errorf("sample %q is not a permutation of the pool", got)
		}
	})

	t.Run("zero and negative", func(t *testing.T) {
		for _, n := range []int{0, -3} {
			got := sampleLines(rng, pool, n)
			if got == nil || len(got) != 0 {
				t.Errorf("sampleLines(n=%d) = %#v, want empty non-nil", n, got)
			}
		}
	})

	t.Run("distinct members", func(t *testing.T) {
		got := sampleLines(rng, pool, 3)
		seen := map[string]bool{}
		for _, s := range got {
			if seen[s] {
				t.Fatalf("duplicate %q in sample %q", s, got)
			}
			if !slices.Contains(pool, s) {
				t.Fatalf("%q not in pool", s)
			}
			seen[s] = true
		}
	})

	t.Run("pool untouched", func(t *testing.T) {
		before := slices.Clone(pool)
		sampleLines(rng, pool, 4)
		if !slices.Equal(pool, before) {
			t.Errorf("pool modified: %q", pool)
		}
	})
}

func TestNewRandKeyed(t *testing.T) {
	key := int64(42)
	a, b := newRand(&key), newRand(&key)
	for i := 0; i < 10; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
