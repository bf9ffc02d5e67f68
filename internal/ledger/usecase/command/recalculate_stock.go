package command

import (
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// RecalculateStockHandler re-derives a laminate's current stock from its
// complete transaction history and writes the result back.
//
// Recalculation is always a full re-derivation, never an incremental
// patch of the previous value: summing the live transaction set is
// idempotent and self-healing, so a mutation path that forgot to adjust
// the cached stock is corrected by the next recalculation instead of
// drifting forever.
type RecalculateStockHandler struct {
	laminates    domain.LaminateRepository
	transactions domain.TransactionRepository
}

// NewRecalculateStockHandler creates a new recalculate stock handler
func NewRecalculateStockHandler(laminates domain.LaminateRepository, transactions domain.TransactionRepository) *RecalculateStockHandler {
	return &RecalculateStockHandler{laminates: laminates, transactions: transactions}
}

// Handle recomputes and persists the stock for one laminate, returning
// the derived value
func (h *RecalculateStockHandler) Handle(laminateID uint) (int, error) {
	stock, err := h.transactions.NetQuantity(laminateID)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "derive stock", Err: err}
	}

	if err := h.laminates.UpdateStock(laminateID, stock); err != nil {
		return 0, &domain.PersistenceError{Op: "write stock", Err: err}
	}

	return stock, nil
}

// HandleAll recomputes stock for each distinct laminate id, continuing
// past per-laminate failures so one bad row cannot leave the remaining
// laminates stale. The first error is returned after the full pass.
func (h *RecalculateStockHandler) HandleAll(laminateIDs []uint) error {
	var firstErr error
	seen := make(map[uint]bool, len(laminateIDs))

	for _, id := range laminateIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		if _, err := h.Handle(id); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("recalculate laminate %d: %w", id, err)
		}
	}

	return firstErr
}
