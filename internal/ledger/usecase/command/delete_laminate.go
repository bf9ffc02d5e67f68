package command

import (
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// DeleteLaminateCommand represents the command to delete a laminate
type DeleteLaminateCommand struct {
	ID uint
}

// DeleteLaminateHandler handles delete laminate command
type DeleteLaminateHandler struct {
	laminates    domain.LaminateRepository
	transactions domain.TransactionRepository
}

// NewDeleteLaminateHandler creates a new delete laminate handler
func NewDeleteLaminateHandler(laminates domain.LaminateRepository, transactions domain.TransactionRepository) *DeleteLaminateHandler {
	return &DeleteLaminateHandler{laminates: laminates, transactions: transactions}
}

// Handle executes the delete laminate command. A laminate with recorded
// transactions cannot be deleted; the transaction log is the source of
// truth for stock and must not lose its referent.
func (h *DeleteLaminateHandler) Handle(cmd DeleteLaminateCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("id is required")
	}

	if _, err := h.laminates.FindByID(cmd.ID); err != nil {
		return fmt.Errorf("delete laminate: %w", err)
	}

	count, err := h.transactions.CountByLaminateID(cmd.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "count transactions", Err: err}
	}
	if count > 0 {
		return fmt.Errorf("delete laminate %d: %w", cmd.ID, domain.ErrHasTransactions)
	}

	if err := h.laminates.Delete(cmd.ID); err != nil {
		return &domain.PersistenceError{Op: "delete laminate", Err: err}
	}

	return nil
}
