package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
)

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func txn(id int64, amount int64, txnType entity.TransactionType, categoryID *int64, description, txnDate string) *entity.Transaction {
	return &entity.Transaction{
		ID:          id,
		Amount:      decimal.NewFromInt(amount),
		Type:        txnType,
		CategoryID:  categoryID,
		Description: description,
		Date:        date(txnDate),
		CreatedAt:   date(txnDate).Add(time.Duration(id) * time.Hour),
	}
}

func catID(id int64) *int64 {
	return &id
}

func fixtures() []*entity.Transaction {
	return []*entity.Transaction{
		txn(1, 1200, entity.TransactionTypeExpense, catID(1), "Groceries at corner store", "2024-06-01"),
		txn(2, 50000, entity.TransactionTypeIncome, catID(3), "Monthly salary", "2024-06-05"),
		txn(3, 800, entity.TransactionTypeExpense, nil, "Coffee beans", "2024-06-05"),
		txn(4, 3400, entity.TransactionTypeExpense, catID(2), "Electricity bill", "2024-06-10"),
		txn(5, 1200, entity.TransactionTypeExpense, catID(1), "groceries again", "2024-06-15"),
	}
}

func ids(records []*entity.Transaction) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a []int64, b ...int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	records := fixtures()

	t.Run("empty criteria keeps everything", func(t *testing.T) {
		got := Filter(records, Criteria{})
		if len(got) != len(records) {
			t.Errorf("expected %d records, got %d", len(records), len(got))
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		got := Filter(records, Criteria{Type: &expense})
		if !equalIDs(ids(got), 1, 3, 4, 5) {
			t.Errorf("unexpected ids %v", ids(got))
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		got := Filter(records, Criteria{CategoryID: catID(1)})
		if !equalIDs(ids(got), 1, 5) {
			t.Errorf("unexpected ids %v", ids(got))
		}
	})

	t.Run("uncategorized never matches a category filter", func(t *testing.T) {
		got := Filter(records, Criteria{CategoryID: catID(99)})
		if len(got) != 0 {
			t.Errorf("expected no matches, got ids %v", ids(got))
		}
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		from := date("2024-06-05")
		to := date("2024-06-10")
		got := Filter(records, Criteria{From: &from, To: &to})
		if !equalIDs(ids(got), 2, 3, 4) {
			t.Errorf("unexpected ids %v", ids(got))
		}
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		got := Filter(records, Criteria{Search: "GROCERIES"})
		if !equalIDs(ids(got), 1, 5) {
			t.Errorf("unexpected ids %v", ids(got))
		}
	})

	t.Run("criteria compose with AND", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		from := date("2024-06-02")
		got := Filter(records, Criteria{Type: &expense, CategoryID: catID(1), From: &from})
		if !equalIDs(ids(got), 5) {
			t.Errorf("unexpected ids %v", ids(got))
		}
	})

	t.Run("result is a subset preserving input order", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		got := Filter(records, Criteria{Type: &expense})
		seen := map[int64]bool{}
		for _, r := range records {
			seen[r.ID] = true
		}
		last := int64(0)
		for _, r := range got {
			if !seen[r.ID] {
				t.Fatalf("record %d not in input", r.ID)
			}
			if r.ID <= last {
				t.Fatalf("input order not preserved: %v", ids(got))
			}
			last = r.ID
		}
	})

	t.Run("filter application order is commutative", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		from := date("2024-06-02")
		combined := Criteria{Type: &expense, From: &from, Search: "e"}

		once := Filter(records, combined)
		typeFirst := Filter(Filter(Filter(records, Criteria{Type: &expense}), Criteria{From: &from}), Criteria{Search: "e"})
		searchFirst := Filter(Filter(Filter(records, Criteria{Search: "e"}), Criteria{From: &from}), Criteria{Type: &expense})

		if !equalIDs(ids(once), ids(typeFirst)...) || !equalIDs(ids(once), ids(searchFirst)...) {
			t.Errorf("permutations disagree: %v / %v / %v", ids(once), ids(typeFirst), ids(searchFirst))
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := ids(records)
		expense := entity.TransactionTypeExpense
		Filter(records, Criteria{Type: &expense})
		if !equalIDs(ids(records), before...) {
			t.Error("input slice was reordered")
		}
	})
}

func TestSort(t *testing.T) {
	records := fixtures()

	t.Run("defaults to date descending", func(t *testing.T) {
		got := Sort(records, "", "")
		if !equalIDs(ids(got), 5, 4, 2, 3, 1) {
			t.Errorf("unexpected order %v", ids(got))
		}
	})

	t.Run("date ascending is stable on equal dates", func(t *testing.T) {
		// Records 2 and 3 share 2024-06-05 and must retain input order.
		got := Sort(records, SortFieldDate, SortOrderAsc)
		if !equalIDs(ids(got), 1, 2, 3, 4, 5) {
			t.Errorf("unexpected order %v", ids(got))
		}
	})

	t.Run("date descending is stable on equal dates", func(t *testing.T) {
		got := Sort(records, SortFieldDate, SortOrderDesc)
		if !equalIDs(ids(got), 5, 4, 2, 3, 1) {
			t.Errorf("unexpected order %v", ids(got))
		}
	})

	t.Run("amount ascending is stable on equal amounts", func(t *testing.T) {
		// Records 1 and 5 share amount 1200.
		got := Sort(records, SortFieldAmount, SortOrderAsc)
		if !equalIDs(ids(got), 3, 1, 5, 4, 2) {
			t.Errorf("unexpected order %v", ids(got))
		}
	})

	t.Run("sorts by created timestamp", func(t *testing.T) {
		got := Sort(records, SortFieldCreatedAt, SortOrderDesc)
		if !equalIDs(ids(got), 5, 4, 2, 3, 1) {
			t.Errorf("unexpected order %v", ids(got))
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := ids(records)
		Sort(records, SortFieldAmount, SortOrderAsc)
		if !equalIDs(ids(records), before...) {
			t.Error("input slice was reordered")
		}
	})
}

func TestPaginate(t *testing.T) {
	records := fixtures()

	t.Run("first page", func(t *testing.T) {
		page, info := Paginate(records, 1, 2)
		if !equalIDs(ids(page), 1, 2) {
			t.Errorf("unexpected page %v", ids(page))
		}
		if info.TotalCount != 5 || info.TotalPages != 3 {
			t.Errorf("unexpected metadata %+v", info)
		}
		if !info.HasNextPage || info.HasPrevPage {
			t.Errorf("unexpected page flags %+v", info)
		}
	})

	t.Run("last page is short and has no next", func(t *testing.T) {
		page, info := Paginate(records, 3, 2)
		if !equalIDs(ids(page), 5) {
			t.Errorf("unexpected page %v", ids(page))
		}
		if info.HasNextPage || !info.HasPrevPage {
			t.Errorf("unexpected page flags %+v", info)
		}
	})

	t.Run("pages partition the input", func(t *testing.T) {
		limit := 2
		var collected []int64
		for p := 1; ; p++ {
			page, info := Paginate(records, p, limit)
			if len(page) > limit {
				t.Fatalf("page %d exceeds limit: %d", p, len(page))
			}
			collected = append(collected, ids(page)...)
			if !info.HasNextPage {
				break
			}
		}
		if !equalIDs(collected, ids(records)...) {
			t.Errorf("pages do not reassemble input: %v", collected)
		}
	})

	t.Run("page beyond range saturates", func(t *testing.T) {
		page, info := Paginate(records, 7, 2)
		if len(page) != 0 {
			t.Errorf("expected empty page, got %v", ids(page))
		}
		if info.TotalPages != 3 || info.TotalCount != 5 {
			t.Errorf("unexpected metadata %+v", info)
		}
		if info.HasNextPage || !info.HasPrevPage {
			t.Errorf("unexpected page flags %+v", info)
		}
	})

	t.Run("empty input yields empty page", func(t *testing.T) {
		page, info := Paginate(nil, 1, 10)
		if len(page) != 0 || info.TotalPages != 0 || info.TotalCount != 0 {
			t.Errorf("unexpected result %v %+v", ids(page), info)
		}
		if info.HasNextPage || info.HasPrevPage {
			t.Errorf("unexpected page flags %+v", info)
		}
	})
}
