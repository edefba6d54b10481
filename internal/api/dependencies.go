package api

import (
	"context"
	"fmt"

	"cosmoport/shipyard/internal/common"
	"cosmoport/shipyard/internal/config"
	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/db/repositories"
	"cosmoport/shipyard/internal/logging"
	"cosmoport/shipyard/internal/metrics"
	"cosmoport/shipyard/internal/services"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Connections carries the database handles opened by main. Only the one
// selected by the store driver needs to be set.
type Connections struct {
	ORM  *gorm.DB
	SQLX *sqlx.DB
}

type Repositories struct {
	Ships repositories.ShipStore
}

type Services struct {
	Ships *services.ShipService
	// Cache is nil when caching is disabled.
	Cache common.CacheInterface
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	DB       Pinger
}

func InitDependencies(ctx context.Context, cfg *config.Config, conns Connections, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	store, pinger, err := newShipStore(cfg.Store.Driver, conns, metricsReg)
	if err != nil {
		return nil, err
	}

	cache, err := newCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		store = repositories.NewCachedShipStore(store, cache, cfg.Cache.TTL, metricsReg)
	}

	logging.Info("Dependencies initialized",
		"store_driver", cfg.Store.Driver,
		"cache_backend", cfg.Cache.Backend,
	)

	return &Dependencies{
		Repo: &Repositories{
			Ships: store,
		},
		Services: &Services{
			Ships: services.NewShipService(store, metricsReg),
			Cache: cache,
		},
		Metrics: metricsReg,
		DB:      pinger,
	}, nil
}

func newShipStore(driver string, conns Connections, metricsReg *metrics.MetricsRegistry) (repositories.ShipStore, Pinger, error) {
	switch driver {
	case constants.StoreDriverGORM:
		if conns.ORM == nil {
			return nil, nil, fmt.Errorf("store driver %q needs a GORM connection", driver)
		}
		sqlDB, err := conns.ORM.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
		}
		return repositories.NewShipRepositoryGORM(conns.ORM, metricsReg), sqlDB, nil

	case constants.StoreDriverSQLX:
		if conns.SQLX == nil {
			return nil, nil, fmt.Errorf("store driver %q needs a sqlx connection", driver)
		}
		return repositories.NewShipRepository(conns.SQLX, metricsReg), conns.SQLX, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", driver)
}

func newCache(ctx context.Context, cfg *config.Config) (common.CacheInterface, error) {
	switch cfg.Cache.Backend {
	case constants.CacheBackendMemory:
		return common.NewCacheService(cfg.Cache.TTL, 2*cfg.Cache.TTL), nil

	case constants.CacheBackendRedis:
		client, err := common.NewRedisClient(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return common.NewRedisCacheService(client), nil
	}

	return nil, nil
}
