package query

import (
	"errors"
	"testing"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

func TestReportHandler_Handle(t *testing.T) {
	laminates := newFakeLaminateRepo()
	transactions := newFakeTransactionRepo()
	handler := NewReportHandler(laminates, transactions)

	greenlam := laminates.add("Greenlam", "GL-204", 10)
	merino := laminates.add("Merino", "M-1180", 10)

	transactions.record(domain.KindSale, greenlam.ID, "2026-03-01", 5, "Sharma Interiors")
	transactions.record(domain.KindSale, merino.ID, "2026-03-05", 3, "Patel Furniture")
	transactions.record(domain.KindSale, greenlam.ID, "2026-04-01", 2, "Sharma Interiors")
	transactions.record(domain.KindPurchase, greenlam.ID, "2026-03-02", 50, "")

	t.Run("sales in date range", func(t *testing.T) {
		report, err := handler.Handle(ReportQuery{
			Kind:     domain.KindSale,
			DateFrom: "2026-03-01",
			DateTo:   "2026-03-31",
		})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(report.Rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(report.Rows))
		}
		if report.TotalQuantity != 8 {
			t.Errorf("total quantity = %d, want 8", report.TotalQuantity)
		}
		for _, row := range report.Rows {
			if row.Transaction.Kind != domain.KindSale {
				t.Errorf("row kind = %q, want sale", row.Transaction.Kind)
			}
		}
	})

	t.Run("rows carry resolved laminate fields", func(t *testing.T) {
		report, err := handler.Handle(ReportQuery{Kind: domain.KindPurchase})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(report.Rows) != 1 {
			t.Fatalf("got %d rows, want 1", len(report.Rows))
		}
		if report.Rows[0].Brand != "Greenlam" || report.Rows[0].Catalog != "GL-204" {
			t.Errorf("row laminate = %q %q, want Greenlam GL-204", report.Rows[0].Brand, report.Rows[0].Catalog)
		}
	})

	t.Run("customer filter on sales", func(t *testing.T) {
		report, err := handler.Handle(ReportQuery{
			Kind:         domain.KindSale,
			CustomerName: "Sharma Interiors",
		})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(report.Rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(report.Rows))
		}
		if report.TotalQuantity != 7 {
			t.Errorf("total quantity = %d, want 7", report.TotalQuantity)
		}
	})

	t.Run("customer filter rejected on purchases", func(t *testing.T) {
		_, err := handler.Handle(ReportQuery{
			Kind:         domain.KindPurchase,
			CustomerName: "Sharma Interiors",
		})
		if err == nil {
			t.Fatal("Handle() expected error, got nil")
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := handler.Handle(ReportQuery{Kind: "transfer"})
		if !errors.Is(err, domain.ErrInvalidKind) {
			t.Fatalf("Handle() error = %v, want ErrInvalidKind", err)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := handler.Handle(ReportQuery{Kind: domain.KindSale, DateFrom: "01-03-2026"})
		if err == nil {
			t.Fatal("Handle() expected error, got nil")
		}
	})
}

func TestListTransactionsHandler_Handle(t *testing.T) {
	laminates := newFakeLaminateRepo()
	transactions := newFakeTransactionRepo()
	handler := NewListTransactionsHandler(transactions)

	greenlam := laminates.add("Greenlam", "GL-204", 10)
	merino := laminates.add("Merino", "M-1180", 10)
	transactions.record(domain.KindPurchase, greenlam.ID, "2026-03-01", 10, "")
	transactions.record(domain.KindSale, greenlam.ID, "2026-03-02", 4, "Sharma Interiors")
	transactions.record(domain.KindSale, merino.ID, "2026-03-03", 2, "Patel Furniture")

	t.Run("filter by laminate", func(t *testing.T) {
		result, err := handler.Handle(ListTransactionsQuery{
			Filter: domain.TransactionFilter{LaminateID: greenlam.ID},
		})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(result) != 2 {
			t.Fatalf("got %d transactions, want 2", len(result))
		}
	})

	t.Run("newest first", func(t *testing.T) {
		result, err := handler.Handle(ListTransactionsQuery{})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(result) != 3 {
			t.Fatalf("got %d transactions, want 3", len(result))
		}
		for i := 1; i < len(result); i++ {
			if result[i-1].Date < result[i].Date {
				t.Errorf("transactions out of order: %q before %q", result[i-1].Date, result[i].Date)
			}
		}
	})

	t.Run("invalid kind filter", func(t *testing.T) {
		_, err := handler.Handle(ListTransactionsQuery{
			Filter: domain.TransactionFilter{Kind: "transfer"},
		})
		if !errors.Is(err, domain.ErrInvalidKind) {
			t.Fatalf("Handle() error = %v, want ErrInvalidKind", err)
		}
	})
}

func TestGetLaminateHandler_Handle(t *testing.T) {
	repo := newFakeLaminateRepo()
	laminate := repo.add("Greenlam", "GL-204", 7)
	handler := NewGetLaminateHandler(repo)

	got, err := handler.Handle(GetLaminateQuery{ID: laminate.ID})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if got.CatalogNumber != "GL-204" {
		t.Errorf("catalog number = %q, want GL-204", got.CatalogNumber)
	}

	if _, err := handler.Handle(GetLaminateQuery{ID: 42}); !errors.Is(err, domain.ErrLaminateNotFound) {
		t.Errorf("Handle() error = %v, want ErrLaminateNotFound", err)
	}

	if _, err := handler.Handle(GetLaminateQuery{}); err == nil {
		t.Error("Handle() expected error for missing id, got nil")
	}
}
