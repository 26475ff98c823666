package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateWindows(t *testing.T) {
	items := ints(25)

	cases := []struct {
		page int
		want []int
	}{
		{1, items[0:10]},
		{2, items[10:20]},
		{3, items[20:25]},
		{4, []int{}},
		{0, items[0:10]},
		{-3, items[0:10]},
	}
	for _, tc := range cases {
		got := Paginate(tc.page, items, PageSize)
		assert.Equal(t, tc.want, got, "page %d", tc.page)
	}
}

func TestPaginateMatchesSliceDefinition(t *testing.T) {
	for length := 0; length <= 35; length++ {
		items := ints(length)
		for page := 1; page <= 5; page++ {
			got := Paginate(page, items, PageSize)
			start := (page - 1) * PageSize
			if start >= length {
				assert.Empty(t, got, "len=%d page=%d", length, page)
				assert.NotNil(t, got)
				continue
			}
			end := min(page*PageSize, length)
			assert.Equal(t, items[start:end], got, "len=%d page=%d", length, page)
		}
	}
}

func TestPaginateHugePageDoesNotOverflow(t *testing.T) {
	assert.Empty(t, Paginate(int(^uint(0)>>1), ints(15), PageSize))
}

func TestPageFromQuery(t *testing.T) {
	assert.Equal(t, 1, PageFromQuery(""))
	assert.Equal(t, 1, PageFromQuery("abc"))
	assert.Equal(t, 1, PageFromQuery("0"))
	assert.Equal(t, 1, PageFromQuery("-2"))
	assert.Equal(t, 3, PageFromQuery("3"))
}
