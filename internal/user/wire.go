//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/laminate-stock/internal/user/delivery/http"
)

// InitializeUserHandler initializes the user HTTP handler with all dependencies
func InitializeUserHandler(db *gorm.DB) *http.UserHandler {
	wire.Build(
		RepositorySet,
		http.NewUserHandler,
	)
	return nil
}
