package util

import (
	"os"
	"sort"

	"golang.org/x/exp/constraints"
)

// Mod is the always non-negative remainder, ((n % m) + m) % m.
func Mod[A constraints.Signed](n A, m A) A {
	return ((n % m) + m) % m
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
