package pp

import "strings"

// Join joins words with commas, or gives "(none)" for an empty list.
func Join(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

// JoinMap applies a function to each element in the slice and then call Join.
func JoinMap[T any](f func(t T) string, items []T) string {
	ss := make([]string, 0, len(items))
	for _, item := range items {
		ss = append(ss, f(item))
	}

	return Join(ss)
}
