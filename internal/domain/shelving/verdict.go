package shelving

import (
	"github.com/phrazzld/kdc-shelver/internal/domain"
)

// Verdict is the full outcome of comparing book A with book B.
type Verdict struct {
	// Order is -1 when A comes first, 1 when B comes first, 0 when tied.
	Order int `json:"order"`

	// First is "A", "B" or "" for a tie.
	First string `json:"first,omitempty"`

	// Stage and Field name the key position that decided the order. Both are
	// zero for a tie.
	Stage Stage  `json:"stage"`
	Field string `json:"field,omitempty"`

	Message string `json:"message"`
	Reason  string `json:"reason"`
}

// Judge compares a and b and returns the verdict with its explanation.
// It returns domain.ErrBlankComparison when both call numbers are blank.
func Judge(a, b domain.CallNumber) (Verdict, error) {
	if a.IsBlank() && b.IsBlank() {
		return Verdict{}, domain.ErrBlankComparison
	}

	ka, kb := DeriveSortKey(a), DeriveSortKey(b)
	field, order := ka.diff(kb)

	v := Verdict{
		Order:  order,
		Reason: describe(field, order, ka, kb),
	}
	if field != noDifference {
		v.Stage = Fields[field].Stage
		v.Field = Fields[field].Label
	}

	switch {
	case order < 0:
		v.First = "A"
		v.Message = "책 A가 책 B보다 먼저 옵니다."
	case order > 0:
		v.First = "B"
		v.Message = "책 B가 책 A보다 먼저 옵니다."
	default:
		v.Message = "두 책의 정리 순서가 같습니다."
	}
	return v, nil
}
