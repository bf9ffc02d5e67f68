package command

import (
	"errors"
	"testing"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

func TestRecalculateStockHandler_Handle(t *testing.T) {
	laminates := newFakeLaminateRepo()
	transactions := newFakeTransactionRepo()
	handler := NewRecalculateStockHandler(laminates, transactions)

	laminate := laminates.add("Greenlam", "GL-204", "matte")
	transactions.Create(&domain.Transaction{Kind: domain.KindPurchase, LaminateID: laminate.ID, Date: "2026-01-05", Quantity: 20})
	transactions.Create(&domain.Transaction{Kind: domain.KindSale, LaminateID: laminate.ID, Date: "2026-01-08", Quantity: 6})

	stock, err := handler.Handle(laminate.ID)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if stock != 14 {
		t.Errorf("derived stock = %d, want 14", stock)
	}
	if got := laminates.stockOf(laminate.ID); got != 14 {
		t.Errorf("persisted stock = %d, want 14", got)
	}

	// Re-running against an unchanged history must yield the same value.
	stock, err = handler.Handle(laminate.ID)
	if err != nil {
		t.Fatalf("Handle() second run error = %v", err)
	}
	if stock != 14 {
		t.Errorf("second derivation = %d, want 14", stock)
	}
}

func TestRecalculateStockHandler_CorrectsDriftedCache(t *testing.T) {
	laminates := newFakeLaminateRepo()
	transactions := newFakeTransactionRepo()
	handler := NewRecalculateStockHandler(laminates, transactions)

	laminate := laminates.add("Merino", "M-1180", "gloss")
	transactions.Create(&domain.Transaction{Kind: domain.KindPurchase, LaminateID: laminate.ID, Date: "2026-02-01", Quantity: 10})

	// Simulate a cached value that disagrees with the history.
	laminates.laminates[laminate.ID].CurrentStock = 99

	stock, err := handler.Handle(laminate.ID)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if stock != 10 {
		t.Errorf("derived stock = %d, want 10", stock)
	}
	if got := laminates.stockOf(laminate.ID); got != 10 {
		t.Errorf("persisted stock = %d, want 10", got)
	}
}

func TestRecalculateStockHandler_NoTransactionsMeansZero(t *testing.T) {
	laminates := newFakeLaminateRepo()
	transactions := newFakeTransactionRepo()
	handler := NewRecalculateStockHandler(laminates, transactions)

	laminate := laminates.add("Century", "C-77", "")
	laminates.laminates[laminate.ID].CurrentStock = 5

	stock, err := handler.Handle(laminate.ID)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if stock != 0 {
		t.Errorf("derived stock = %d, want 0", stock)
	}
}

func TestRecalculateStockHandler_HandleAll(t *testing.T) {
	laminates := newFakeLaminateRepo()
	transactions := newFakeTransactionRepo()
	handler := NewRecalculateStockHandler(laminates, transactions)

	first := laminates.add("Greenlam", "GL-204", "matte")
	second := laminates.add("Merino", "M-1180", "gloss")
	transactions.Create(&domain.Transaction{Kind: domain.KindPurchase, LaminateID: first.ID, Date: "2026-01-05", Quantity: 8})
	transactions.Create(&domain.Transaction{Kind: domain.KindPurchase, LaminateID: second.ID, Date: "2026-01-05", Quantity: 3})

	if err := handler.HandleAll([]uint{first.ID, second.ID, first.ID}); err != nil {
		t.Fatalf("HandleAll() error = %v", err)
	}
	if got := laminates.stockOf(first.ID); got != 8 {
		t.Errorf("first stock = %d, want 8", got)
	}
	if got := laminates.stockOf(second.ID); got != 3 {
		t.Errorf("second stock = %d, want 3", got)
	}
}

func TestRecalculateStockHandler_HandleAllContinuesPastFailure(t *testing.T) {
	laminates := newFakeLaminateRepo()
	transactions := newFakeTransactionRepo()
	handler := NewRecalculateStockHandler(laminates, transactions)

	broken := laminates.add("Greenlam", "GL-204", "matte")
	healthy := laminates.add("Merino", "M-1180", "gloss")
	transactions.Create(&domain.Transaction{Kind: domain.KindPurchase, LaminateID: healthy.ID, Date: "2026-01-05", Quantity: 4})

	writeErr := errors.New("disk full")
	laminates.updateStockErr[broken.ID] = writeErr

	err := handler.HandleAll([]uint{broken.ID, healthy.ID})
	if err == nil {
		t.Fatal("HandleAll() expected error, got nil")
	}
	if !errors.Is(err, writeErr) {
		t.Errorf("HandleAll() error = %v, want wrapped %v", err, writeErr)
	}

	// The failure on the first laminate must not block the second.
	if got := laminates.stockOf(healthy.ID); got != 4 {
		t.Errorf("healthy stock = %d, want 4", got)
	}
}
