package query

import (
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// GetStatsQuery represents the query for dashboard statistics
type GetStatsQuery struct{}

// LedgerStats represents ledger-wide statistics for the dashboard
type LedgerStats struct {
	TotalLaminates    int64 `json:"total_laminates"`
	TotalTransactions int64 `json:"total_transactions"`
	TotalStock        int64 `json:"total_stock"`
	LowStockCount     int64 `json:"low_stock_count"`
	OutOfStockCount   int64 `json:"out_of_stock_count"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	laminates    domain.LaminateRepository
	transactions domain.TransactionRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(laminates domain.LaminateRepository, transactions domain.TransactionRepository) *GetStatsHandler {
	return &GetStatsHandler{laminates: laminates, transactions: transactions}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(GetStatsQuery) (*LedgerStats, error) {
	totalLaminates, err := h.laminates.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count laminates: %w", err)
	}

	totalTransactions, err := h.transactions.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	// Walk the full laminate set for the stock aggregates
	laminates, err := h.laminates.FindAll(10000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load laminates: %w", err)
	}

	var totalStock, lowStock, outOfStock int64
	for _, laminate := range laminates {
		totalStock += int64(laminate.CurrentStock)
		if laminate.CurrentStock <= 0 {
			outOfStock++
		}
		if laminate.IsLowStock(DefaultLowStockThreshold) {
			lowStock++
		}
	}

	return &LedgerStats{
		TotalLaminates:    totalLaminates,
		TotalTransactions: totalTransactions,
		TotalStock:        totalStock,
		LowStockCount:     lowStock,
		OutOfStockCount:   outOfStock,
	}, nil
}
