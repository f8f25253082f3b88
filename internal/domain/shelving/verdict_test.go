package shelving

import (
	"errors"
	"testing"

	"github.com/phrazzld/kdc-shelver/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		a, b    domain.CallNumber
		order   int
		first   string
		stage   Stage
		field   string
		message string
	}{
		{
			name:    "A first by classification",
			a:       domain.CallNumber{Class: "530.49"},
			b:       domain.CallNumber{Class: "530.50"},
			order:   -1,
			first:   "A",
			stage:   StageClass,
			field:   "분류 기호",
			message: "책 A가 책 B보다 먼저 옵니다.",
		},
		{
			name:    "B first by designator kind",
			a:       domain.CallNumber{Vol: "c.1"},
			b:       domain.CallNumber{Vol: "v.1"},
			order:   1,
			first:   "B",
			stage:   StageVolume,
			field:   "권/복본 종류",
			message: "책 B가 책 A보다 먼저 옵니다.",
		},
		{
			name:    "Tie",
			a:       domain.CallNumber{Class: "100", Author: "가1"},
			b:       domain.CallNumber{Class: "100.0", Author: "가01"},
			order:   0,
			stage:   StageNone,
			message: "두 책의 정리 순서가 같습니다.",
		},
		{
			name:    "One blank side is allowed",
			a:       domain.CallNumber{},
			b:       domain.CallNumber{Class: "100"},
			order:   -1,
			first:   "A",
			stage:   StageClass,
			field:   "분류 기호",
			message: "책 A가 책 B보다 먼저 옵니다.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := Judge(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.order, v.Order)
			assert.Equal(t, tc.first, v.First)
			assert.Equal(t, tc.stage, v.Stage)
			assert.Equal(t, tc.field, v.Field)
			assert.Equal(t, tc.message, v.Message)
			assert.Equal(t, Explain(tc.a, tc.b), v.Reason)
		})
	}
}

func TestJudgeRejectsBlankPair(t *testing.T) {
	t.Parallel()

	_, err := Judge(domain.CallNumber{}, domain.CallNumber{Class: " ", Vol: "\t"})
	assert.True(t, errors.Is(err, domain.ErrBlankComparison))
}
