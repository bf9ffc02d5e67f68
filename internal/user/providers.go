package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/laminate-stock/internal/user/domain"
	"github.com/tair/laminate-stock/internal/user/repository"
)

// ProvideUserRepository provides the user repository. The tracing
// wrapper embeds the plain gorm repository, so it satisfies the
// interface while exposing span-annotated variants for hot paths.
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepositoryWithTracing(db)
}

// RepositorySet groups the user persistence providers
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)
