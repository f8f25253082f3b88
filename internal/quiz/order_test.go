package quiz

import (
	"testing"

	"github.com/phrazzld/kdc-shelver/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected []int
		wantErr  bool
	}{
		{input: "2 3 1", expected: []int{2, 3, 1}},
		{input: "2,3,1", expected: []int{2, 3, 1}},
		{input: " 1, 2\t3\n", expected: []int{1, 2, 3}},
		{input: "", wantErr: true},
		{input: "1 two 3", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePositions(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOrder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestReorder(t *testing.T) {
	t.Parallel()

	in := items(
		domain.CallNumber{Class: "3"},
		domain.CallNumber{Class: "1"},
		domain.CallNumber{Class: "2"},
	)

	out, err := Reorder(in, []int{2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, []domain.CallNumber{{Class: "1"}, {Class: "2"}, {Class: "3"}}, domain.CallNumbers(out))
	assert.Equal(t, in[1].ID, out[0].ID)
	assert.Equal(t, "3", in[0].Class, "input must not be modified")

	for _, bad := range [][]int{{1, 2}, {1, 2, 4}, {0, 1, 2}, {1, 1, 2}} {
		_, err := Reorder(in, bad)
		assert.ErrorIs(t, err, ErrInvalidOrder, "positions %v", bad)
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	in := items(
		domain.CallNumber{Class: "a"},
		domain.CallNumber{Class: "b"},
		domain.CallNumber{Class: "c"},
		domain.CallNumber{Class: "d"},
	)
	classes := func(its []domain.QuizItem) []string {
		out := make([]string, len(its))
		for i, it := range its {
			out[i] = it.Class
		}
		return out
	}

	assert.Equal(t, []string{"b", "c", "a", "d"}, classes(Move(in, 0, 2)))
	assert.Equal(t, []string{"d", "a", "b", "c"}, classes(Move(in, 3, 0)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, classes(Move(in, 1, 1)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, classes(Move(in, 5, 0)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, classes(in), "input must not be modified")
}
