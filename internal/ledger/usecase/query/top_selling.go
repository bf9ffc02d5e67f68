package query

import (
	"errors"
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// DefaultTopSellingLimit caps the top-selling list for the dashboard
const DefaultTopSellingLimit = 5

// TopSellingQuery represents the query for the best-selling laminates
type TopSellingQuery struct {
	Limit int // 0 means DefaultTopSellingLimit
}

// TopSellingEntry pairs a laminate with its total sold quantity
type TopSellingEntry struct {
	Laminate  domain.Laminate `json:"laminate"`
	TotalSold int             `json:"total_sold"`
}

// TopSellingHandler handles top selling query
type TopSellingHandler struct {
	laminates    domain.LaminateRepository
	transactions domain.TransactionRepository
}

// NewTopSellingHandler creates a new top selling handler
func NewTopSellingHandler(laminates domain.LaminateRepository, transactions domain.TransactionRepository) *TopSellingHandler {
	return &TopSellingHandler{laminates: laminates, transactions: transactions}
}

// Handle aggregates sale quantities per laminate, descending by total.
// Sales whose laminate no longer resolves are skipped rather than
// surfacing a phantom entry.
func (h *TopSellingHandler) Handle(query TopSellingQuery) ([]TopSellingEntry, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultTopSellingLimit
	}

	totals, err := h.transactions.SaleTotals()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	entries := make([]TopSellingEntry, 0, limit)
	for _, total := range totals {
		if len(entries) == limit {
			break
		}

		laminate, err := h.laminates.FindByID(total.LaminateID)
		if err != nil {
			if errors.Is(err, domain.ErrLaminateNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve laminate %d: %w", total.LaminateID, err)
		}

		entries = append(entries, TopSellingEntry{
			Laminate:  *laminate,
			TotalSold: total.TotalSold,
		})
	}

	return entries, nil
}
