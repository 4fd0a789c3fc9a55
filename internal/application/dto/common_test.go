package dto_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/opsdesk-api/internal/application/dto"
)

func TestPageQuery_Normalize(t *testing.T) {
	cases := []struct {
		in   dto.PageQuery
		want dto.PageQuery
	}{
		{dto.PageQuery{}, dto.PageQuery{Page: 1, Limit: 10}},
		{dto.PageQuery{Page: -3, Limit: -1}, dto.PageQuery{Page: 1, Limit: 10}},
		{dto.PageQuery{Page: 2, Limit: 500}, dto.PageQuery{Page: 2, Limit: 100}},
		{dto.PageQuery{Page: 4, Limit: 25}, dto.PageQuery{Page: 4, Limit: 25}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.Normalize(), "%+v", c.in)
	}
	assert.Equal(t, 20, dto.PageQuery{Page: 3, Limit: 10}.Offset())
}

func TestNewPagination_PageBeyondTotal(t *testing.T) {
	// 25 elementos, limit 10, página 3: 5 elementos, sin siguiente, con anterior.
	p := dto.NewPagination(dto.PageQuery{Page: 3, Limit: 10}, 25)
	assert.Equal(t, dto.Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25, HasNextPage: false, HasPrevPage: true}, p)

	p = dto.NewPagination(dto.PageQuery{Page: 7, Limit: 10}, 25)
	assert.Equal(t, 7, p.CurrentPage, "la página fuera de rango no se recorta")
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNextPage)

	p = dto.NewPagination(dto.PageQuery{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

func TestPageQuery_OffsetDoesNotOverflow(t *testing.T) {
	q := dto.PageQuery{Page: math.MaxInt, Limit: 10}.Normalize()
	off := q.Offset()
	assert.GreaterOrEqual(t, off, 0)
	assert.Equal(t, math.MaxInt-10, off)

	p := dto.NewPagination(q, 3)
	assert.Equal(t, math.MaxInt, p.CurrentPage)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)

	assert.Equal(t, 0, dto.PageQuery{Page: 0, Limit: 10}.Offset())
}

func TestNewPagination_Properties(t *testing.T) {
	for n := 0; n <= 60; n++ {
		for _, l := range []int{1, 3, 10, 25} {
			pages := (n + l - 1) / l
			for page := 1; page <= pages; page++ {
				p := dto.NewPagination(dto.PageQuery{Page: page, Limit: l}, n)
				assert.Equal(t, pages, p.TotalPages)
				assert.Equal(t, page*l < n, p.HasNextPage, "n=%d l=%d page=%d", n, l, page)
				assert.Equal(t, page > 1, p.HasPrevPage)
			}
		}
	}
}

func TestNewListResponse_EmptyDataIsArray(t *testing.T) {
	out := dto.NewListResponse[dto.UserResponse](nil, dto.PageQuery{Page: 1, Limit: 10}, 0)
	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"pagination":{"currentPage":1,"totalPages":0,"totalItems":0,"hasNextPage":false,"hasPrevPage":false}}`, string(b))
}
