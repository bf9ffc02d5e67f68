package command

import (
	"fmt"
	"time"

	"github.com/tair/laminate-stock/internal/user/domain"
)

// UpdatePermissionsCommand represents the command to replace a user's
// page permissions (admin only)
type UpdatePermissionsCommand struct {
	UserID      uint
	Permissions []string
}

// UpdatePermissionsHandler handles permission update command
type UpdatePermissionsHandler struct {
	repo domain.UserRepository
}

// NewUpdatePermissionsHandler creates a new update permissions handler
func NewUpdatePermissionsHandler(repo domain.UserRepository) *UpdatePermissionsHandler {
	return &UpdatePermissionsHandler{repo: repo}
}

// Handle executes the update permissions command
func (h *UpdatePermissionsHandler) Handle(cmd UpdatePermissionsCommand) (*domain.User, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	for _, page := range cmd.Permissions {
		if !domain.ValidPage(page) {
			return nil, fmt.Errorf("unknown page permission %q", page)
		}
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	user.Permissions = cmd.Permissions
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update permissions: %w", err)
	}

	return user, nil
}
