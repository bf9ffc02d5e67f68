package command

import (
	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// ClearAllLaminatesCommand represents the command to wipe the ledger
type ClearAllLaminatesCommand struct{}

// ClearAllLaminatesHandler handles the full-reset bulk delete. Unlike
// single-laminate deletion there is no referential guard: transactions
// are removed first, then every laminate.
type ClearAllLaminatesHandler struct {
	laminates    domain.LaminateRepository
	transactions domain.TransactionRepository
}

// NewClearAllLaminatesHandler creates a new clear all laminates handler
func NewClearAllLaminatesHandler(laminates domain.LaminateRepository, transactions domain.TransactionRepository) *ClearAllLaminatesHandler {
	return &ClearAllLaminatesHandler{laminates: laminates, transactions: transactions}
}

// Handle executes the clear all laminates command
func (h *ClearAllLaminatesHandler) Handle(ClearAllLaminatesCommand) error {
	// Transactions go first so a failure between the two deletes cannot
	// leave transactions pointing at missing laminates.
	if err := h.transactions.DeleteAll(); err != nil {
		return &domain.PersistenceError{Op: "clear transactions", Err: err}
	}

	if err := h.laminates.DeleteAll(); err != nil {
		return &domain.PersistenceError{Op: "clear laminates", Err: err}
	}

	return nil
}
