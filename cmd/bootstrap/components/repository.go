package components

import (
	"slotbook/internal/infra/cache"
	"slotbook/internal/infra/readstore"
	"slotbook/internal/infra/repository"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Base catalog store stays concrete so the cache can wrap it.
		readstore.NewCatalogReadStore,
		fx.Annotate(
			NewCachedCatalog,
			fx.As(new(queries.CatalogReadStore)),
			fx.As(new(commands.CatalogRepository)),
		),
	),
)

func NewCachedCatalog(store *readstore.CatalogReadStore, rdb *redis.Client, cfg config.Config) *cache.CachedCatalogStore {
	return cache.NewCachedCatalogStore(store, rdb, cfg.Redis.CatalogTTL)
}
