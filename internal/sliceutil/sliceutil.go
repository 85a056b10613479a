// Package sliceutil contains common helpers for slice operations.
package sliceutil

import (
	"cmp"
	"slices"
)

// SortAndCompact sorts and deduplicates a list using built-in equality.
func SortAndCompact[T comparable](list []T, compare func(T, T) int) []T {
	slices.SortFunc(list, compare)
	return slices.Compact(list)
}

// SortedKeys gives the keys of a map in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
