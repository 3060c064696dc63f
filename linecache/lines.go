package linecache

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// CleanLines splits text into lines, trims each one and drops blanks and
// duplicates. First-seen order is kept.
func CleanLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	raw := strings.Split(text, "\n")
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}

// union returns the sorted set union of a and b. Sorting makes a seeded
// shuffle depend only on the set contents.
func union(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		set[s] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// difference returns the elements of a not present in b, in a's order.
func difference(a, b []string) []string {
	exclude := make(map[string]struct{}, len(b))
	for _, s := range b {
		exclude[s] = struct{}{}
	}

	out := make([]string, 0, len(a))
	for _, s := range a {
		if _, skip := exclude[s]; !skip {
			out = append(out, s)
		}
	}
	return out
}

// sampleLines draws n distinct elements of pool uniformly at random. n is
// clamped to len(pool); pool is not modified.
func sampleLines(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return []string{}
	}

	work := slices.Clone(pool)
	// Partial Fisher-Yates: the first n slots end up a uniform sample.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n:n]
}
