package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// BulkLine is one laminate/quantity pair inside a bulk batch
type BulkLine struct {
	LaminateID uint
	Quantity   int
}

// AddBulkTransactionsCommand records several movements of the same kind
// sharing one date, customer and remarks
type AddBulkTransactionsCommand struct {
	Kind         string
	Date         string
	CustomerName string
	Remarks      string
	Lines        []BulkLine
}

// AddBulkTransactionsHandler handles bulk transaction batches
type AddBulkTransactionsHandler struct {
	laminates    domain.LaminateRepository
	transactions domain.TransactionRepository
	recalculate  *RecalculateStockHandler
}

// NewAddBulkTransactionsHandler creates a new bulk transactions handler
func NewAddBulkTransactionsHandler(laminates domain.LaminateRepository, transactions domain.TransactionRepository, recalculate *RecalculateStockHandler) *AddBulkTransactionsHandler {
	return &AddBulkTransactionsHandler{
		laminates:    laminates,
		transactions: transactions,
		recalculate:  recalculate,
	}
}

// Handle validates every line before inserting any, so a single bad line
// aborts the whole batch. If persistence fails mid-batch, the laminates
// already touched are still recalculated before the error surfaces, so
// their cached stock never disagrees with what actually got stored.
func (h *AddBulkTransactionsHandler) Handle(cmd AddBulkTransactionsCommand) ([]domain.Transaction, error) {
	if !domain.ValidKind(cmd.Kind) {
		return nil, fmt.Errorf("bulk transactions: %w", domain.ErrInvalidKind)
	}
	if len(cmd.Lines) == 0 {
		return nil, fmt.Errorf("bulk transactions: at least one line is required")
	}
	if cmd.Date == "" {
		cmd.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", cmd.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", cmd.Date)
	}

	// Validation pass: nothing is inserted until every line checks out.
	for i, line := range cmd.Lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("bulk line %d: %w", i+1, domain.ErrInvalidQuantity)
		}
		if _, err := h.laminates.FindByID(line.LaminateID); err != nil {
			return nil, fmt.Errorf("bulk line %d: %w", i+1, domain.ErrUnknownLaminate)
		}
	}

	batchRef := fmt.Sprintf("BAT-%s", uuid.New().String()[:8])

	inserted := make([]domain.Transaction, 0, len(cmd.Lines))
	touched := make([]uint, 0, len(cmd.Lines))

	var insertErr error
	for i, line := range cmd.Lines {
		transaction := domain.Transaction{
			Kind:         cmd.Kind,
			LaminateID:   line.LaminateID,
			Date:         cmd.Date,
			Quantity:     line.Quantity,
			CustomerName: cmd.CustomerName,
			Remarks:      cmd.Remarks,
			BatchRef:     batchRef,
		}

		if err := h.transactions.Create(&transaction); err != nil {
			insertErr = fmt.Errorf("bulk line %d: %w", i+1,
				&domain.PersistenceError{Op: "create transaction", Err: err})
			break
		}

		inserted = append(inserted, transaction)
		touched = append(touched, line.LaminateID)
	}

	// Recalculate whatever was actually persisted, even on failure.
	if recalcErr := h.recalculate.HandleAll(touched); recalcErr != nil && insertErr == nil {
		insertErr = recalcErr
	}

	if insertErr != nil {
		return inserted, insertErr
	}

	return inserted, nil
}
