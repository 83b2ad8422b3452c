package analytics

import "github.com/kakeibo/backend/internal/domain/entity"

// Fallback labels for category resolution.
const (
	// UncategorizedLabel is reported when the most-used bucket is the
	// uncategorized one.
	UncategorizedLabel = "uncategorized"

	// UnknownCategoryLabel is reported when the winning category ID has no
	// matching category. A dangling reference is a valid runtime state,
	// not an error.
	UnknownCategoryLabel = "unknown category"
)

// categoryCount tracks occurrences for one category bucket. Buckets are kept
// in first-encounter order so tie-breaking stays deterministic.
type categoryCount struct {
	categoryID *int64 // nil is the uncategorized bucket
	count      int
}

// MostUsedCategory returns the name of the category appearing most often
// among expense transactions, or nil when there is no current-period data or
// no expense transactions.
//
// Ties are won by the bucket encountered first in input order: the leader is
// only replaced on a strictly greater count. Callers must therefore supply
// the list in a deterministic order.
func MostUsedCategory(transactions []*entity.Transaction, categories []*entity.Category, hasCurrentData bool) *string {
	if !hasCurrentData {
		return nil
	}

	var counts []categoryCount
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}

		found := false
		for i := range counts {
			if sameBucket(counts[i].categoryID, t.CategoryID) {
				counts[i].count++
				found = true
				break
			}
		}
		if !found {
			counts = append(counts, categoryCount{categoryID: t.CategoryID, count: 1})
		}
	}

	if len(counts) == 0 {
		return nil
	}

	leader := counts[0]
	for _, c := range counts[1:] {
		if c.count > leader.count {
			leader = c
		}
	}

	name := resolveCategoryName(leader.categoryID, categories)
	return &name
}

// sameBucket reports whether two category references identify the same
// counting bucket.
func sameBucket(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// resolveCategoryName maps a category reference to a display name.
func resolveCategoryName(categoryID *int64, categories []*entity.Category) string {
	if categoryID == nil {
		return UncategorizedLabel
	}
	for _, c := range categories {
		if c.ID == *categoryID {
			return c.Name
		}
	}
	return UnknownCategoryLabel
}
