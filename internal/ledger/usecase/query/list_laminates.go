package query

import (
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// ListLaminatesQuery represents the query to list laminates
type ListLaminatesQuery struct {
	Limit  int
	Offset int
}

// ListLaminatesHandler handles list laminates query
type ListLaminatesHandler struct {
	repo domain.LaminateRepository
}

// NewListLaminatesHandler creates a new list laminates handler
func NewListLaminatesHandler(repo domain.LaminateRepository) *ListLaminatesHandler {
	return &ListLaminatesHandler{repo: repo}
}

// Handle executes the list laminates query
func (h *ListLaminatesHandler) Handle(query ListLaminatesQuery) ([]domain.Laminate, error) {
	if query.Limit == 0 {
		query.Limit = 50
	}
	if query.Limit > 200 {
		query.Limit = 200
	}

	laminates, err := h.repo.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list laminates: %w", err)
	}

	return laminates, nil
}
