package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys orders the keys of m by less, falling back to the key itself
// so the result is deterministic.
func SortedKeys[A constraints.Ordered, B any](m map[A]B, less func(a, b B) bool) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		vi, vj := m[keys[i]], m[keys[j]]
		if less(vi, vj) {
			return true
		}
		if less(vj, vi) {
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}

// FloorDiv rounds toward negative infinity, unlike Go's / operator.
func FloorDiv[A constraints.Integer](a, b A) A {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod is always in [0, b) for positive b.
func FloorMod[A constraints.Integer](a, b A) A {
	return a - FloorDiv(a, b)*b
}
