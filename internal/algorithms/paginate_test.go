package algorithms

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_Clamp(t *testing.T) {
	items := numbered(25)

	p, err := Paginate(items, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 25, p.Total)
	assert.True(t, p.HasMore)
	assert.Equal(t, numbered(12), p.Items)

	p, err = Paginate(items, 0, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)

	p, err = Paginate(items, 99, 12)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, []int{25}, p.Items)
	assert.False(t, p.HasMore)
}

func TestPaginate_EmptyInputHasOnePage(t *testing.T) {
	p, err := Paginate([]int{}, 5, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 1, p.Page)
	assert.Empty(t, p.Items)
	assert.False(t, p.HasMore)
}

func TestPaginate_RejectsNonPositivePageSize(t *testing.T) {
	_, err := Paginate(numbered(3), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = Paginate(numbered(3), 1, -4)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestPaginate_PagesCoverEveryItemOnce(t *testing.T) {
	items := numbered(37)
	var seen []int
	for page := 1; ; page++ {
		p, err := Paginate(items, page, 5)
		require.NoError(t, err)
		seen = append(seen, p.Items...)
		if !p.HasMore {
			break
		}
	}
	assert.Equal(t, items, seen)
}

func TestMapPage(t *testing.T) {
	p, err := Paginate(numbered(7), 2, 3)
	require.NoError(t, err)

	m := MapPage(p, strconv.Itoa)
	assert.Equal(t, []string{"4", "5", "6"}, m.Items)
	assert.Equal(t, p.TotalPages, m.TotalPages)
	assert.Equal(t, p.Page, m.Page)
	assert.True(t, m.HasMore)
}
