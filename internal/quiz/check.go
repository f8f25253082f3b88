package quiz

import (
	"github.com/phrazzld/kdc-shelver/internal/domain"
	"github.com/phrazzld/kdc-shelver/internal/domain/shelving"
)

// Result messages shown to the learner.
const (
	MessageCorrect   = "정답입니다! 서가 정리의 달인이시네요!"
	MessageIncorrect = "아쉽네요. 아래의 올바른 정답 순서를 확인해보세요."
)

// Result is the grading of a proposed order.
type Result struct {
	Correct      bool              `json:"correct"`
	Message      string            `json:"message"`
	CorrectOrder []domain.QuizItem `json:"correct_order"`
}

// Check grades order against the shelving order of the same items.
//
// The expected order is a stable sort of the proposal itself, so call
// numbers that the comparator cannot tell apart are accepted in whatever
// order the learner put them. Positions are matched on class, author and
// vol; item IDs are ignored.
func Check(order []domain.QuizItem) Result {
	expected := shelving.Sort(order, func(it domain.QuizItem) domain.CallNumber {
		return it.CallNumber
	})

	correct := true
	for i := range order {
		if order[i].CallNumber != expected[i].CallNumber {
			correct = false
			break
		}
	}

	res := Result{Correct: correct, CorrectOrder: expected}
	if correct {
		res.Message = MessageCorrect
	} else {
		res.Message = MessageIncorrect
	}
	return res
}
