package command

import (
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// UpdateLaminateCommand represents the command to update a laminate.
// Nil fields are left unchanged; CurrentStock is not updatable here.
type UpdateLaminateCommand struct {
	ID            uint
	Brand         *string
	CatalogNumber *string
	Finish        *string
}

// UpdateLaminateHandler handles update laminate command
type UpdateLaminateHandler struct {
	repo domain.LaminateRepository
}

// NewUpdateLaminateHandler creates a new update laminate handler
func NewUpdateLaminateHandler(repo domain.LaminateRepository) *UpdateLaminateHandler {
	return &UpdateLaminateHandler{repo: repo}
}

// Handle executes the update laminate command
func (h *UpdateLaminateHandler) Handle(cmd UpdateLaminateCommand) (*domain.Laminate, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}

	laminate, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("update laminate: %w", err)
	}

	if cmd.Brand != nil {
		if *cmd.Brand == "" {
			return nil, fmt.Errorf("brand cannot be empty")
		}
		laminate.Brand = *cmd.Brand
	}
	if cmd.CatalogNumber != nil {
		if *cmd.CatalogNumber == "" {
			return nil, fmt.Errorf("catalog number cannot be empty")
		}
		laminate.CatalogNumber = *cmd.CatalogNumber
	}
	if cmd.Finish != nil {
		laminate.Finish = *cmd.Finish
	}

	if err := h.repo.Update(laminate); err != nil {
		return nil, &domain.PersistenceError{Op: "update laminate", Err: err}
	}

	return laminate, nil
}
