package command

import (
	"errors"
	"testing"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

func TestAddLaminateHandler_Handle(t *testing.T) {
	tests := []struct {
		name    string
		cmd     AddLaminateCommand
		wantErr bool
	}{
		{
			name: "valid laminate",
			cmd:  AddLaminateCommand{Brand: "Greenlam", CatalogNumber: "GL-204", Finish: "matte"},
		},
		{
			name: "finish is optional",
			cmd:  AddLaminateCommand{Brand: "Merino", CatalogNumber: "M-1180"},
		},
		{
			name:    "missing brand",
			cmd:     AddLaminateCommand{CatalogNumber: "GL-204"},
			wantErr: true,
		},
		{
			name:    "missing catalog number",
			cmd:     AddLaminateCommand{Brand: "Greenlam"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeLaminateRepo()
			handler := NewAddLaminateHandler(repo)

			laminate, err := handler.Handle(tt.cmd)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Handle() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if laminate.ID == 0 {
				t.Error("Handle() did not assign an id")
			}
			if laminate.CurrentStock != 0 {
				t.Errorf("new laminate stock = %d, want 0", laminate.CurrentStock)
			}
		})
	}
}

func TestAddLaminateHandler_StockAlwaysStartsAtZero(t *testing.T) {
	repo := newFakeLaminateRepo()
	handler := NewAddLaminateHandler(repo)

	laminate, err := handler.Handle(AddLaminateCommand{Brand: "Century", CatalogNumber: "C-77"})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if got := repo.stockOf(laminate.ID); got != 0 {
		t.Errorf("persisted stock = %d, want 0", got)
	}
}

func TestUpdateLaminateHandler_Handle(t *testing.T) {
	brand := "Merino"
	emptyBrand := ""
	catalog := "M-1180"
	finish := "gloss"

	tests := []struct {
		name    string
		cmd     UpdateLaminateCommand
		wantErr bool
	}{
		{
			name: "update all fields",
			cmd:  UpdateLaminateCommand{ID: 1, Brand: &brand, CatalogNumber: &catalog, Finish: &finish},
		},
		{
			name: "partial update keeps other fields",
			cmd:  UpdateLaminateCommand{ID: 1, Finish: &finish},
		},
		{
			name:    "missing id",
			cmd:     UpdateLaminateCommand{Brand: &brand},
			wantErr: true,
		},
		{
			name:    "empty brand rejected",
			cmd:     UpdateLaminateCommand{ID: 1, Brand: &emptyBrand},
			wantErr: true,
		},
		{
			name:    "unknown laminate",
			cmd:     UpdateLaminateCommand{ID: 42, Brand: &brand},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeLaminateRepo()
			repo.add("Greenlam", "GL-204", "matte")
			handler := NewUpdateLaminateHandler(repo)

			updated, err := handler.Handle(tt.cmd)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Handle() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if tt.cmd.Brand != nil && updated.Brand != *tt.cmd.Brand {
				t.Errorf("brand = %q, want %q", updated.Brand, *tt.cmd.Brand)
			}
			if tt.cmd.Brand == nil && updated.Brand != "Greenlam" {
				t.Errorf("brand = %q, want untouched %q", updated.Brand, "Greenlam")
			}
		})
	}
}

func TestDeleteLaminateHandler_Handle(t *testing.T) {
	t.Run("deletes laminate without transactions", func(t *testing.T) {
		laminates := newFakeLaminateRepo()
		transactions := newFakeTransactionRepo()
		handler := NewDeleteLaminateHandler(laminates, transactions)

		laminate := laminates.add("Greenlam", "GL-204", "matte")

		if err := handler.Handle(DeleteLaminateCommand{ID: laminate.ID}); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if _, err := laminates.FindByID(laminate.ID); !errors.Is(err, domain.ErrLaminateNotFound) {
			t.Errorf("FindByID() after delete error = %v, want ErrLaminateNotFound", err)
		}
	})

	t.Run("refuses laminate with transactions", func(t *testing.T) {
		laminates := newFakeLaminateRepo()
		transactions := newFakeTransactionRepo()
		handler := NewDeleteLaminateHandler(laminates, transactions)

		laminate := laminates.add("Greenlam", "GL-204", "matte")
		transactions.Create(&domain.Transaction{Kind: domain.KindPurchase, LaminateID: laminate.ID, Date: "2026-01-05", Quantity: 2})

		err := handler.Handle(DeleteLaminateCommand{ID: laminate.ID})
		if !errors.Is(err, domain.ErrHasTransactions) {
			t.Fatalf("Handle() error = %v, want ErrHasTransactions", err)
		}
		if _, err := laminates.FindByID(laminate.ID); err != nil {
			t.Errorf("laminate was deleted despite the guard: %v", err)
		}
	})

	t.Run("unknown laminate", func(t *testing.T) {
		handler := NewDeleteLaminateHandler(newFakeLaminateRepo(), newFakeTransactionRepo())

		err := handler.Handle(DeleteLaminateCommand{ID: 42})
		if !errors.Is(err, domain.ErrLaminateNotFound) {
			t.Fatalf("Handle() error = %v, want ErrLaminateNotFound", err)
		}
	})
}

func TestClearAllLaminatesHandler_Handle(t *testing.T) {
	laminates := newFakeLaminateRepo()
	transactions := newFakeTransactionRepo()
	handler := NewClearAllLaminatesHandler(laminates, transactions)

	first := laminates.add("Greenlam", "GL-204", "matte")
	laminates.add("Merino", "M-1180", "gloss")
	transactions.Create(&domain.Transaction{Kind: domain.KindPurchase, LaminateID: first.ID, Date: "2026-01-05", Quantity: 9})

	if err := handler.Handle(ClearAllLaminatesCommand{}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if count, _ := laminates.Count(); count != 0 {
		t.Errorf("laminate count = %d, want 0", count)
	}
	if count, _ := transactions.Count(); count != 0 {
		t.Errorf("transaction count = %d, want 0", count)
	}
}
