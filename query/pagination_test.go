package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults when absent", "", "", 1, 10},
		{"valid values", "3", "25", 3, 25},
		{"garbage falls back", "abc", "xyz", 1, 10},
		{"zero falls back", "0", "0", 1, 10},
		{"negative falls back", "-2", "-5", 1, 10},
		{"limit clamped to cap", "1", "5000", 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResolvePagination(tt.page, tt.limit, 10)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestResolvePaginationCallerDefault(t *testing.T) {
	p := ResolvePagination("", "", 12)
	assert.Equal(t, 12, p.Limit)
}

func TestSkip(t *testing.T) {
	assert.Equal(t, int64(0), Pagination{Page: 1, Limit: 10}.Skip())
	assert.Equal(t, int64(2), Pagination{Page: 2, Limit: 2}.Skip())
	assert.Equal(t, int64(90), Pagination{Page: 10, Limit: 10}.Skip())
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{2, 2, 1},
		{5, 2, 3},
	}

	for _, tt := range tests {
		p := Pagination{Page: 1, Limit: tt.limit}
		assert.Equal(t, tt.want, p.PageCount(tt.total), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestMeta(t *testing.T) {
	p := ResolvePagination("2", "2", 10)
	meta := p.Meta(2)

	assert.Equal(t, PaginationMeta{Page: 2, Limit: 2, Total: 2, Pages: 1}, meta)
}
