package sliceutil

import (
	"golang.org/x/exp/slices"
	"strings"
)

func NilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}

	return s
}

// SortByKey returns a copy of items sorted by the string key. Items with equal keys keep their order.
func SortByKey[T any](items []T, key func(item T) string) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return strings.Compare(key(a), key(b))
	})
	return sorted
}
