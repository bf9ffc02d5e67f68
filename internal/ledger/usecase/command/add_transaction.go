package command

import (
	"fmt"
	"time"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// AddTransactionCommand represents the command to record one inventory movement
type AddTransactionCommand struct {
	Kind         string
	LaminateID   uint
	Date         string
	Quantity     int
	CustomerName string
	Remarks      string
}

// AddTransactionHandler handles add transaction command
type AddTransactionHandler struct {
	laminates    domain.LaminateRepository
	transactions domain.TransactionRepository
	recalculate  *RecalculateStockHandler
}

// NewAddTransactionHandler creates a new add transaction handler
func NewAddTransactionHandler(laminates domain.LaminateRepository, transactions domain.TransactionRepository, recalculate *RecalculateStockHandler) *AddTransactionHandler {
	return &AddTransactionHandler{
		laminates:    laminates,
		transactions: transactions,
		recalculate:  recalculate,
	}
}

// Handle executes the add transaction command. On success the affected
// laminate's stock is recalculated from the full transaction history.
func (h *AddTransactionHandler) Handle(cmd AddTransactionCommand) (*domain.Transaction, error) {
	if !domain.ValidKind(cmd.Kind) {
		return nil, fmt.Errorf("add transaction: %w", domain.ErrInvalidKind)
	}
	if cmd.Quantity < 1 {
		return nil, fmt.Errorf("add transaction: %w", domain.ErrInvalidQuantity)
	}
	if cmd.Date == "" {
		cmd.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", cmd.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", cmd.Date)
	}

	if _, err := h.laminates.FindByID(cmd.LaminateID); err != nil {
		return nil, fmt.Errorf("add transaction: %w", domain.ErrUnknownLaminate)
	}

	transaction := &domain.Transaction{
		Kind:         cmd.Kind,
		LaminateID:   cmd.LaminateID,
		Date:         cmd.Date,
		Quantity:     cmd.Quantity,
		CustomerName: cmd.CustomerName,
		Remarks:      cmd.Remarks,
	}

	if err := h.transactions.Create(transaction); err != nil {
		return nil, &domain.PersistenceError{Op: "create transaction", Err: err}
	}

	if _, err := h.recalculate.Handle(cmd.LaminateID); err != nil {
		return nil, fmt.Errorf("transaction %d recorded but stock stale: %w", transaction.ID, err)
	}

	return transaction, nil
}
