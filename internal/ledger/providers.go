package ledger

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/laminate-stock/internal/ledger/domain"
	"github.com/tair/laminate-stock/internal/ledger/repository"
)

// ProvideLaminateRepository provides the laminate repository. The
// tracing wrapper embeds the plain gorm repository, so it satisfies
// the interface while exposing span-annotated variants for hot paths.
func ProvideLaminateRepository(db *gorm.DB) domain.LaminateRepository {
	return repository.NewGormLaminateRepositoryWithTracing(db)
}

// ProvideTransactionRepository provides the transaction repository
func ProvideTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return repository.NewGormTransactionRepositoryWithTracing(db)
}

// RepositorySet groups the ledger persistence providers
var RepositorySet = wire.NewSet(
	ProvideLaminateRepository,
	ProvideTransactionRepository,
)
