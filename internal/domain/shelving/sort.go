package shelving

import (
	"slices"

	"github.com/phrazzld/kdc-shelver/internal/domain"
)

// Sort returns a new slice holding items in shelving order. Items whose keys
// are equal keep their relative input order, so sorting a sorted slice is a
// no-op. The input slice is not modified.
func Sort[T any](items []T, callNumber func(T) domain.CallNumber) []T {
	keys := make([]SortKey, len(items))
	idx := make([]int, len(items))
	for i, it := range items {
		keys[i] = DeriveSortKey(callNumber(it))
		idx[i] = i
	}

	slices.SortStableFunc(idx, func(i, j int) int {
		return keys[i].Compare(keys[j])
	})

	out := make([]T, len(items))
	for pos, i := range idx {
		out[pos] = items[i]
	}
	return out
}

// SortCallNumbers is Sort for plain call numbers.
func SortCallNumbers(cns []domain.CallNumber) []domain.CallNumber {
	return Sort(cns, func(cn domain.CallNumber) domain.CallNumber { return cn })
}
