package command

import (
	"fmt"
	"time"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// UpdateTransactionCommand represents the command to update a transaction.
// Nil fields are left unchanged. Kind is immutable and cannot appear here.
type UpdateTransactionCommand struct {
	ID           uint
	LaminateID   *uint
	Date         *string
	Quantity     *int
	CustomerName *string
	Remarks      *string
}

// UpdateTransactionHandler handles update transaction command
type UpdateTransactionHandler struct {
	laminates    domain.LaminateRepository
	transactions domain.TransactionRepository
	recalculate  *RecalculateStockHandler
}

// NewUpdateTransactionHandler creates a new update transaction handler
func NewUpdateTransactionHandler(laminates domain.LaminateRepository, transactions domain.TransactionRepository, recalculate *RecalculateStockHandler) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{
		laminates:    laminates,
		transactions: transactions,
		recalculate:  recalculate,
	}
}

// Handle executes the update transaction command. When the transaction
// moves to a different laminate, both the original and the new laminate
// are recalculated so neither side keeps a stale stock value.
func (h *UpdateTransactionHandler) Handle(cmd UpdateTransactionCommand) (*domain.Transaction, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}

	transaction, err := h.transactions.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	originalLaminateID := transaction.LaminateID

	if cmd.LaminateID != nil && *cmd.LaminateID != originalLaminateID {
		if _, err := h.laminates.FindByID(*cmd.LaminateID); err != nil {
			return nil, fmt.Errorf("update transaction: %w", domain.ErrUnknownLaminate)
		}
		transaction.LaminateID = *cmd.LaminateID
	}
	if cmd.Date != nil {
		if _, err := time.Parse("2006-01-02", *cmd.Date); err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *cmd.Date)
		}
		transaction.Date = *cmd.Date
	}
	if cmd.Quantity != nil {
		if *cmd.Quantity < 1 {
			return nil, fmt.Errorf("update transaction: %w", domain.ErrInvalidQuantity)
		}
		transaction.Quantity = *cmd.Quantity
	}
	if cmd.CustomerName != nil {
		transaction.CustomerName = *cmd.CustomerName
	}
	if cmd.Remarks != nil {
		transaction.Remarks = *cmd.Remarks
	}

	if err := h.transactions.Update(transaction); err != nil {
		return nil, &domain.PersistenceError{Op: "update transaction", Err: err}
	}

	if err := h.recalculate.HandleAll([]uint{originalLaminateID, transaction.LaminateID}); err != nil {
		return nil, fmt.Errorf("transaction %d updated but stock stale: %w", transaction.ID, err)
	}

	return transaction, nil
}
