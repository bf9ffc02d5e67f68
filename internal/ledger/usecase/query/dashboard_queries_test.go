package query

import (
	"testing"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

func TestLowStockHandler_Handle(t *testing.T) {
	repo := newFakeLaminateRepo()
	repo.add("Greenlam", "GL-204", 0)
	repo.add("Merino", "M-1180", 2)
	repo.add("Century", "C-77", 3)
	repo.add("Royale", "R-9", 40)
	handler := NewLowStockHandler(repo)

	t.Run("default threshold is inclusive at two", func(t *testing.T) {
		laminates, err := handler.Handle(LowStockQuery{})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(laminates) != 2 {
			t.Fatalf("got %d laminates, want 2", len(laminates))
		}
		for _, l := range laminates {
			if l.CurrentStock > DefaultLowStockThreshold {
				t.Errorf("laminate %d has stock %d above threshold", l.ID, l.CurrentStock)
			}
		}
	})

	t.Run("custom threshold", func(t *testing.T) {
		threshold := 3
		laminates, err := handler.Handle(LowStockQuery{Threshold: &threshold})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(laminates) != 3 {
			t.Errorf("got %d laminates, want 3", len(laminates))
		}
	})
}

func TestTopSellingHandler_Handle(t *testing.T) {
	laminates := newFakeLaminateRepo()
	transactions := newFakeTransactionRepo()
	handler := NewTopSellingHandler(laminates, transactions)

	first := laminates.add("Greenlam", "GL-204", 10)
	second := laminates.add("Merino", "M-1180", 10)
	third := laminates.add("Century", "C-77", 10)

	transactions.record(domain.KindSale, first.ID, "2026-03-01", 5, "")
	transactions.record(domain.KindSale, first.ID, "2026-03-02", 5, "")
	transactions.record(domain.KindSale, second.ID, "2026-03-01", 25, "")
	transactions.record(domain.KindSale, third.ID, "2026-03-01", 1, "")
	// Purchases never count toward sales totals.
	transactions.record(domain.KindPurchase, third.ID, "2026-03-01", 100, "")

	t.Run("ordered by total sold descending", func(t *testing.T) {
		entries, err := handler.Handle(TopSellingQuery{})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("got %d entries, want 3", len(entries))
		}
		wantOrder := []uint{second.ID, first.ID, third.ID}
		wantSold := []int{25, 10, 1}
		for i, entry := range entries {
			if entry.Laminate.ID != wantOrder[i] {
				t.Errorf("entry %d laminate = %d, want %d", i, entry.Laminate.ID, wantOrder[i])
			}
			if entry.TotalSold != wantSold[i] {
				t.Errorf("entry %d total sold = %d, want %d", i, entry.TotalSold, wantSold[i])
			}
		}
	})

	t.Run("limit caps the list", func(t *testing.T) {
		entries, err := handler.Handle(TopSellingQuery{Limit: 1})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		if entries[0].Laminate.ID != second.ID {
			t.Errorf("top entry laminate = %d, want %d", entries[0].Laminate.ID, second.ID)
		}
	})

	t.Run("skips sales whose laminate is gone", func(t *testing.T) {
		laminates.Delete(second.ID)
		defer func() { laminates.laminates[second.ID] = second }()

		entries, err := handler.Handle(TopSellingQuery{})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("got %d entries, want 2", len(entries))
		}
		for _, entry := range entries {
			if entry.Laminate.ID == second.ID {
				t.Error("deleted laminate surfaced in top selling list")
			}
		}
	})
}

func TestGetStatsHandler_Handle(t *testing.T) {
	laminates := newFakeLaminateRepo()
	transactions := newFakeTransactionRepo()
	handler := NewGetStatsHandler(laminates, transactions)

	first := laminates.add("Greenlam", "GL-204", 0)
	laminates.add("Merino", "M-1180", 2)
	laminates.add("Century", "C-77", 30)
	transactions.record(domain.KindPurchase, first.ID, "2026-03-01", 10, "")
	transactions.record(domain.KindSale, first.ID, "2026-03-02", 10, "")

	stats, err := handler.Handle(GetStatsQuery{})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if stats.TotalLaminates != 3 {
		t.Errorf("total laminates = %d, want 3", stats.TotalLaminates)
	}
	if stats.TotalTransactions != 2 {
		t.Errorf("total transactions = %d, want 2", stats.TotalTransactions)
	}
	if stats.TotalStock != 32 {
		t.Errorf("total stock = %d, want 32", stats.TotalStock)
	}
	if stats.LowStockCount != 2 {
		t.Errorf("low stock count = %d, want 2", stats.LowStockCount)
	}
	if stats.OutOfStockCount != 1 {
		t.Errorf("out of stock count = %d, want 1", stats.OutOfStockCount)
	}
}

func TestListLaminatesHandler_Handle(t *testing.T) {
	repo := newFakeLaminateRepo()
	for i := 0; i < 3; i++ {
		repo.add("Greenlam", "GL", 1)
	}
	handler := NewListLaminatesHandler(repo)

	laminates, err := handler.Handle(ListLaminatesQuery{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(laminates) != 2 {
		t.Errorf("got %d laminates, want 2", len(laminates))
	}

	// A zero limit falls back to the default page size, not zero rows.
	laminates, err = handler.Handle(ListLaminatesQuery{})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(laminates) != 3 {
		t.Errorf("got %d laminates, want 3", len(laminates))
	}
}
