package quiz

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/phrazzld/kdc-shelver/internal/domain"
)

// ParsePositions reads a 1-based order such as "2 3 1" or "2,3,1".
func ParsePositions(s string) ([]int, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no positions given", ErrInvalidOrder)
	}

	positions := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidOrder, tok)
		}
		positions[i] = n
	}
	return positions, nil
}

// Reorder returns items rearranged so that the i-th result is
// items[positions[i]-1]. positions must be a permutation of 1..len(items).
func Reorder(items []domain.QuizItem, positions []int) ([]domain.QuizItem, error) {
	if len(positions) != len(items) {
		return nil, fmt.Errorf("%w: expected %d positions, got %d", ErrInvalidOrder, len(items), len(positions))
	}

	seen := make([]bool, len(items))
	out := make([]domain.QuizItem, len(items))
	for i, p := range positions {
		if p < 1 || p > len(items) {
			return nil, fmt.Errorf("%w: position %d out of range 1-%d", ErrInvalidOrder, p, len(items))
		}
		if seen[p-1] {
			return nil, fmt.Errorf("%w: position %d repeated", ErrInvalidOrder, p)
		}
		seen[p-1] = true
		out[i] = items[p-1]
	}
	return out, nil
}

// Move returns a copy of items with the element at from moved to index to,
// shifting the elements in between. Out-of-range indexes leave the order
// unchanged.
func Move(items []domain.QuizItem, from, to int) []domain.QuizItem {
	out := make([]domain.QuizItem, len(items))
	copy(out, items)
	if from == to || from < 0 || to < 0 || from >= len(out) || to >= len(out) {
		return out
	}

	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]domain.QuizItem{moved}, out[to:]...)...)
	return out
}
