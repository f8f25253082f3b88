package shelving

import (
	"slices"
	"testing"

	"github.com/phrazzld/kdc-shelver/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSortCallNumbers(t *testing.T) {
	t.Parallel()

	input := []domain.CallNumber{
		{Class: "911.3", Author: "갈10", Vol: "v.2"},
		{Class: "911.3", Author: "간10", Vol: "v.1"},
		{Class: "911.29", Author: "달10", Vol: "c.1"},
	}
	snapshot := slices.Clone(input)

	got := SortCallNumbers(input)

	assert.Equal(t, []domain.CallNumber{
		{Class: "911.29", Author: "달10", Vol: "c.1"},
		{Class: "911.3", Author: "간10", Vol: "v.1"},
		{Class: "911.3", Author: "갈10", Vol: "v.2"},
	}, got)
	assert.Equal(t, snapshot, input, "input must not be modified")
}

func TestSortIsStableAndIdempotent(t *testing.T) {
	t.Parallel()

	// The two 700.5 entries without a recognised designator tie.
	input := []domain.CallNumber{
		{Class: "700.5", Author: "장20", Vol: "ㄱ"},
		{Class: "700.49", Author: "장20"},
		{Class: "700.5", Author: "장20"},
	}

	once := SortCallNumbers(input)
	assert.Equal(t, []domain.CallNumber{
		{Class: "700.49", Author: "장20"},
		{Class: "700.5", Author: "장20", Vol: "ㄱ"},
		{Class: "700.5", Author: "장20"},
	}, once)

	assert.Equal(t, once, SortCallNumbers(once))

	all := SortCallNumbers(corpus)
	assert.Equal(t, all, SortCallNumbers(all))
	assert.True(t, slices.IsSortedFunc(all, Compare))
}

func TestSortGeneric(t *testing.T) {
	t.Parallel()

	items := []domain.QuizItem{
		{CallNumber: domain.CallNumber{Author: "김100"}, ID: "b"},
		{CallNumber: domain.CallNumber{Author: "김099"}, ID: "a"},
	}

	got := Sort(items, func(it domain.QuizItem) domain.CallNumber { return it.CallNumber })

	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "b", items[0].ID, "input must not be modified")
}

func TestSortEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, SortCallNumbers(nil))
}
