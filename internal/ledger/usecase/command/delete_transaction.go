package command

import (
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// DeleteTransactionCommand represents the command to delete a transaction
type DeleteTransactionCommand struct {
	ID uint
}

// DeleteTransactionHandler handles delete transaction command
type DeleteTransactionHandler struct {
	transactions domain.TransactionRepository
	recalculate  *RecalculateStockHandler
}

// NewDeleteTransactionHandler creates a new delete transaction handler
func NewDeleteTransactionHandler(transactions domain.TransactionRepository, recalculate *RecalculateStockHandler) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{transactions: transactions, recalculate: recalculate}
}

// Handle executes the delete transaction command and recalculates the
// stock of the laminate the deleted movement belonged to
func (h *DeleteTransactionHandler) Handle(cmd DeleteTransactionCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("id is required")
	}

	transaction, err := h.transactions.FindByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	if err := h.transactions.Delete(cmd.ID); err != nil {
		return &domain.PersistenceError{Op: "delete transaction", Err: err}
	}

	if _, err := h.recalculate.Handle(transaction.LaminateID); err != nil {
		return fmt.Errorf("transaction %d deleted but stock stale: %w", cmd.ID, err)
	}

	return nil
}
