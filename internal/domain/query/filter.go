// Package query implements the in-memory transaction query pipeline:
// filtering, sorting and pagination over an already-loaded snapshot.
//
// All functions are pure: they never mutate their input and always return a
// fresh slice. Input validation (page bounds, enum membership) is owned by
// the caller-facing boundary, not by this package.
package query

import (
	"strings"
	"time"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// Criteria defines the filter options for a transaction listing.
// Absent (nil/empty) criteria are no-ops; provided criteria compose with
// logical AND, so application order never affects the result.
type Criteria struct {
	Type       *entity.TransactionType
	CategoryID *int64     // An uncategorized record never matches a non-nil filter value
	From       *time.Time // Inclusive lower date bound
	To         *time.Time // Inclusive upper date bound
	Search     string     // Case-insensitive substring match against Description
}

// Filter returns the records matching all provided criteria, preserving
// input order.
func Filter(records []*entity.Transaction, criteria Criteria) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(records))
	search := strings.ToLower(criteria.Search)

	for _, r := range records {
		if criteria.Type != nil && r.Type != *criteria.Type {
			continue
		}
		if criteria.CategoryID != nil && (r.CategoryID == nil || *r.CategoryID != *criteria.CategoryID) {
			continue
		}
		if criteria.From != nil && r.Date.Before(*criteria.From) {
			continue
		}
		if criteria.To != nil && r.Date.After(*criteria.To) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		out = append(out, r)
	}

	return out
}
