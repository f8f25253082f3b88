package domain

import (
	"github.com/google/uuid"
)

// QuizItem is a call number shown in a quiz. The ID only identifies the item
// on screen; it never takes part in ordering or answer checking.
type QuizItem struct {
	CallNumber
	ID string `json:"id"`
}

// NewQuizItem wraps cn with a freshly generated ID.
func NewQuizItem(cn CallNumber) QuizItem {
	return QuizItem{
		CallNumber: cn,
		ID:         uuid.NewString(),
	}
}

// Validate checks that the item carries a well-formed ID.
func (q QuizItem) Validate() error {
	if q.ID == "" {
		return ErrInvalidID
	}
	if _, err := uuid.Parse(q.ID); err != nil {
		return ErrInvalidID
	}
	return nil
}

// CallNumbers strips the IDs from items, preserving order.
func CallNumbers(items []QuizItem) []CallNumber {
	out := make([]CallNumber, len(items))
	for i, it := range items {
		out[i] = it.CallNumber
	}
	return out
}
