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

// SortedKeys is GetKeys with a deterministic order, for iteration that
// must be stable across runs.
func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Mod12[A constraints.Integer](n A) A {
	return ((n % 12) + 12) % 12
}
