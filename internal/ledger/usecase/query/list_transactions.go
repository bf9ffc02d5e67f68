package query

import (
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// ListTransactionsQuery represents the query to list transactions
type ListTransactionsQuery struct {
	Filter domain.TransactionFilter
	Limit  int
	Offset int
}

// ListTransactionsHandler handles list transactions query
type ListTransactionsHandler struct {
	repo domain.TransactionRepository
}

// NewListTransactionsHandler creates a new list transactions handler
func NewListTransactionsHandler(repo domain.TransactionRepository) *ListTransactionsHandler {
	return &ListTransactionsHandler{repo: repo}
}

// Handle executes the list transactions query
func (h *ListTransactionsHandler) Handle(query ListTransactionsQuery) ([]domain.Transaction, error) {
	if query.Filter.Kind != "" && !domain.ValidKind(query.Filter.Kind) {
		return nil, fmt.Errorf("list transactions: %w", domain.ErrInvalidKind)
	}
	if query.Limit == 0 {
		query.Limit = 50
	}
	if query.Limit > 500 {
		query.Limit = 500
	}

	transactions, err := h.repo.FindAll(query.Filter, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}
