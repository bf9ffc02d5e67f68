package query

import (
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// DefaultLowStockThreshold flags laminates with two or fewer sheets left
const DefaultLowStockThreshold = 2

// LowStockQuery represents the query for laminates at or below a threshold
type LowStockQuery struct {
	Threshold *int // nil means DefaultLowStockThreshold
}

// LowStockHandler handles low stock query
type LowStockHandler struct {
	repo domain.LaminateRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.LaminateRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(query LowStockQuery) ([]domain.Laminate, error) {
	threshold := DefaultLowStockThreshold
	if query.Threshold != nil {
		threshold = *query.Threshold
	}

	laminates, err := h.repo.FindLowStock(threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock laminates: %w", err)
	}

	return laminates, nil
}
