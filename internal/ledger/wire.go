//go:build wireinject
// +build wireinject

package ledger

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/laminate-stock/internal/ledger/delivery/http"
	userdomain "github.com/tair/laminate-stock/internal/user/domain"
	"github.com/tair/laminate-stock/kafka"
)

// InitializeLedgerHandler initializes the ledger HTTP handler with all
// dependencies. The publisher may be nil when event publishing is disabled.
func InitializeLedgerHandler(db *gorm.DB, users userdomain.UserRepository, publisher *kafka.Publisher) *http.LedgerHandler {
	wire.Build(
		RepositorySet,
		http.NewLedgerHandler,
	)
	return nil
}
