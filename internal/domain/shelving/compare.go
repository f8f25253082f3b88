package shelving

import (
	"fmt"
	"strconv"

	"github.com/phrazzld/kdc-shelver/internal/domain"
)

// Stage is one of the three shelving stages.
type Stage int

// Shelving stages in the order they are applied.
const (
	StageNone Stage = iota
	StageClass
	StageAuthor
	StageVolume
)

// String returns the stage tag used in explanations, e.g. "1단계".
func (s Stage) String() string {
	if s == StageNone {
		return "-"
	}
	return strconv.Itoa(int(s)) + "단계"
}

// Field describes one SortKey position for explanations.
type Field struct {
	// Key is the name of the SortKey struct field.
	Key   string
	Label string
	Stage Stage
}

// Positions of Fields, matching SortKey field order.
const (
	fieldClass = iota
	fieldHangul
	fieldAuthorNum
	fieldWorkMark
	fieldVolKind
	fieldVolNum
)

const noDifference = -1

// Fields labels every SortKey position in comparison order.
var Fields = [...]Field{
	fieldClass:     {Key: "Class", Label: "분류 기호", Stage: StageClass},
	fieldHangul:    {Key: "Hangul", Label: "저자 한글", Stage: StageAuthor},
	fieldAuthorNum: {Key: "AuthorNum", Label: "저자 번호", Stage: StageAuthor},
	fieldWorkMark:  {Key: "WorkMark", Label: "저작 기호", Stage: StageAuthor},
	fieldVolKind:   {Key: "VolKind", Label: "권/복본 종류", Stage: StageVolume},
	fieldVolNum:    {Key: "VolNum", Label: "권/복본 번호", Stage: StageVolume},
}

// IdenticalReason is the explanation for call numbers with equal keys.
const IdenticalReason = "두 청구기호가 동일하거나 구분할 수 없습니다."

// Compare returns -1 if a shelves before b, 1 if after, and 0 if their keys
// are equal. It can be passed directly to slices.SortFunc.
func Compare(a, b domain.CallNumber) int {
	return DeriveSortKey(a).Compare(DeriveSortKey(b))
}

// Explain describes which rule decides the order of a and b and which book
// comes first. Books are called A (first argument) and B (second argument).
func Explain(a, b domain.CallNumber) string {
	ka, kb := DeriveSortKey(a), DeriveSortKey(b)
	field, order := ka.diff(kb)
	return describe(field, order, ka, kb)
}

func describe(field, order int, ka, kb SortKey) string {
	if field == noDifference {
		return IdenticalReason
	}

	first, lo, hi := "A", ka, kb
	if order > 0 {
		first, lo, hi = "B", kb, ka
	}
	tag := Fields[field].Stage.String()

	switch field {
	case fieldClass:
		return fmt.Sprintf("[%s] 분류 기호(%s)가 더 작으므로 책 %s가 먼저 옵니다.",
			tag, strconv.FormatFloat(lo.Class, 'f', -1, 64), first)
	case fieldHangul:
		if lo.Hangul == "" {
			return fmt.Sprintf("[%s] 한글 저자 기호가 없는 책 %s가 먼저 옵니다.", tag, first)
		}
		return fmt.Sprintf("[%s] 저자명 한글 순서('%s'가 '%s'보다 앞)에 따라 책 %s가 먼저 옵니다.",
			tag, lo.Hangul, hi.Hangul, first)
	case fieldAuthorNum:
		return fmt.Sprintf("[%s] 저자 번호(%d)가 더 작으므로 책 %s가 먼저 옵니다.",
			tag, lo.AuthorNum, first)
	case fieldWorkMark:
		if lo.WorkMark == "" {
			return fmt.Sprintf("[%s] 저작 기호가 없는 책 %s가 먼저 옵니다.", tag, first)
		}
		return fmt.Sprintf("[%s] 저작 기호 순서('%s'가 '%s'보다 앞)에 따라 책 %s가 먼저 옵니다.",
			tag, lo.WorkMark, hi.WorkMark, first)
	case fieldVolKind:
		if lo.VolKind == VolKindNone {
			return fmt.Sprintf("[%s] 권차·복본 표시가 없는 책 %s가 먼저 옵니다.", tag, first)
		}
		return fmt.Sprintf("[%s] 복본(c.)보다 권차(v.)가 우선하므로 책 %s가 먼저 옵니다.", tag, first)
	default:
		return fmt.Sprintf("[%s] 번호 순서상 책 %s가 더 앞섭니다.", tag, first)
	}
}
