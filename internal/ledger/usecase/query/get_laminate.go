package query

import (
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// GetLaminateQuery represents the query to get a laminate
type GetLaminateQuery struct {
	ID uint
}

// GetLaminateHandler handles get laminate query
type GetLaminateHandler struct {
	repo domain.LaminateRepository
}

// NewGetLaminateHandler creates a new get laminate handler
func NewGetLaminateHandler(repo domain.LaminateRepository) *GetLaminateHandler {
	return &GetLaminateHandler{repo: repo}
}

// Handle executes the get laminate query
func (h *GetLaminateHandler) Handle(query GetLaminateQuery) (*domain.Laminate, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}

	laminate, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("get laminate: %w", err)
	}

	return laminate, nil
}
