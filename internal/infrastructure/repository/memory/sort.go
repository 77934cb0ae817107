package memory

import (
	"cmp"
	"slices"
)

// sortByCreated orders map-backed records by creation time, then id.
func sortByCreated[T any](items []T, key func(T) (string, int64)) {
	slices.SortFunc(items, func(a, b T) int {
		idA, createdA := key(a)
		idB, createdB := key(b)
		if c := cmp.Compare(createdA, createdB); c != 0 {
			return c
		}
		return cmp.Compare(idA, idB)
	})
}
