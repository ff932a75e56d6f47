package query

import "strconv"

// MaxLimit caps page size; oversized requests clamp instead of erroring.
const MaxLimit = 100

// Pagination is a resolved page window. Page is always >= 1 and Limit always
// > 0, so Skip can never go negative.
type Pagination struct {
	Page  int
	Limit int
}

// PaginationMeta is attached to every list response.
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// ResolvePagination coerces untrusted page/limit strings. Unparseable or
// non-positive values fall back to page 1 and the caller's default limit.
func ResolvePagination(pageStr, limitStr string, defaultLimit int) Pagination {
	p := Pagination{Page: 1, Limit: defaultLimit}

	if n, err := strconv.Atoi(pageStr); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
		p.Limit = n
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p Pagination) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// PageCount is ceil(total/limit), 0 for an empty result set.
func (p Pagination) PageCount(total int64) int64 {
	if total <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return (total + limit - 1) / limit
}

func (p Pagination) Meta(total int64) PaginationMeta {
	return PaginationMeta{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: p.PageCount(total),
	}
}
