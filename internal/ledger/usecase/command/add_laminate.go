package command

import (
	"fmt"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

// AddLaminateCommand represents the command to add a laminate
type AddLaminateCommand struct {
	Brand         string
	CatalogNumber string
	Finish        string
}

// AddLaminateHandler handles add laminate command
type AddLaminateHandler struct {
	repo domain.LaminateRepository
}

// NewAddLaminateHandler creates a new add laminate handler
func NewAddLaminateHandler(repo domain.LaminateRepository) *AddLaminateHandler {
	return &AddLaminateHandler{repo: repo}
}

// Handle executes the add laminate command. Stock always starts at zero;
// a caller-supplied stock value is never trusted.
func (h *AddLaminateHandler) Handle(cmd AddLaminateCommand) (*domain.Laminate, error) {
	if cmd.Brand == "" {
		return nil, fmt.Errorf("brand is required")
	}
	if cmd.CatalogNumber == "" {
		return nil, fmt.Errorf("catalog number is required")
	}

	laminate := &domain.Laminate{
		Brand:         cmd.Brand,
		CatalogNumber: cmd.CatalogNumber,
		Finish:        cmd.Finish,
		CurrentStock:  0,
	}

	if err := h.repo.Create(laminate); err != nil {
		return nil, &domain.PersistenceError{Op: "create laminate", Err: err}
	}

	return laminate, nil
}
