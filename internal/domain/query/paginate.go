package query

import "github.com/kakeibo/backend/internal/domain/entity"

// PageInfo describes the position of a page within the full result set.
type PageInfo struct {
	CurrentPage int
	TotalPages  int
	TotalCount  int
	HasNextPage bool
	HasPrevPage bool
	Limit       int
}

// Paginate returns the 1-indexed page of the given size, plus page metadata.
// Pagination is saturating: a page beyond the last yields an empty slice with
// correct metadata rather than an error. The caller validates page >= 1 and
// limit bounds before invoking.
func Paginate(records []*entity.Transaction, page, limit int) ([]*entity.Transaction, PageInfo) {
	total := len(records)
	totalPages := (total + limit - 1) / limit

	info := PageInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		Limit:       limit,
	}

	start := (page - 1) * limit
	if start >= total {
		return []*entity.Transaction{}, info
	}

	end := start + limit
	if end > total {
		end = total
	}

	out := make([]*entity.Transaction, end-start)
	copy(out, records[start:end])
	return out, info
}
