package quiz

import "errors"

// Quiz errors, checked by callers with errors.Is.
var (
	// ErrNoTemplates is returned when a generator is created without templates.
	ErrNoTemplates = errors.New("no quiz templates")

	// ErrTemplateTooSmall is returned when a template has fewer than two call
	// numbers, which leaves nothing to order.
	ErrTemplateTooSmall = errors.New("quiz template needs at least two call numbers")

	// ErrInvalidOrder is returned when a proposed order is not a permutation
	// of the quiz positions.
	ErrInvalidOrder = errors.New("invalid order")
)
