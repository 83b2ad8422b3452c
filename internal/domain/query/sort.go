package query

import (
	"sort"
	"time"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// SortField identifies the transaction field a listing is ordered by.
type SortField string

const (
	SortFieldDate      SortField = "transactionDate"
	SortFieldAmount    SortField = "amount"
	SortFieldCreatedAt SortField = "createdAt"

	// DefaultSortField is used when no sort field is requested.
	DefaultSortField = SortFieldDate
)

// IsValid reports whether the sort field is one of the supported values.
func (f SortField) IsValid() bool {
	return f == SortFieldDate || f == SortFieldAmount || f == SortFieldCreatedAt
}

// SortOrder identifies the direction of a sort.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"

	// DefaultSortOrder is used when no sort order is requested.
	DefaultSortOrder = SortOrderDesc
)

// IsValid reports whether the sort order is one of the supported values.
func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

// Sort returns a copy of records ordered by the given field and order.
// The sort is stable: records with equal keys retain their relative input
// order. Empty field/order fall back to the defaults; the boundary rejects
// unknown values before they reach this function.
func Sort(records []*entity.Transaction, field SortField, order SortOrder) []*entity.Transaction {
	if field == "" {
		field = DefaultSortField
	}
	if order == "" {
		order = DefaultSortOrder
	}

	out := make([]*entity.Transaction, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], field)
		if order == SortOrderDesc {
			return c > 0
		}
		return c < 0
	})

	return out
}

// compare returns -1, 0 or 1 comparing a and b on the given field.
func compare(a, b *entity.Transaction, field SortField) int {
	switch field {
	case SortFieldAmount:
		return a.Amount.Cmp(b.Amount)
	case SortFieldCreatedAt:
		return compareTime(a.CreatedAt, b.CreatedAt)
	default:
		return compareTime(a.Date, b.Date)
	}
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
