package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"cosmoport/shipyard/internal/common"
	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/logging"
	"cosmoport/shipyard/internal/metrics"
	"cosmoport/shipyard/internal/models/entities"

	"golang.org/x/sync/singleflight"
)

const shipSetLoadTimeout = 30 * time.Second

// CachedShipStore keeps the full ship set in a cache in front of another
// ShipStore. Any Save or Delete drops the cached set.
type CachedShipStore struct {
	inner   ShipStore
	cache   common.CacheInterface
	ttl     time.Duration
	metrics *metrics.MetricsRegistry
	group   singleflight.Group

	// generation moves on every invalidation; a load that started under an
	// older generation is returned to its callers but never cached.
	mu         sync.Mutex
	generation uint64
}

var _ ShipStore = (*CachedShipStore)(nil)

func NewCachedShipStore(inner ShipStore, cache common.CacheInterface, ttl time.Duration, m *metrics.MetricsRegistry) *CachedShipStore {
	return &CachedShipStore{
		inner:   inner,
		cache:   cache,
		ttl:     ttl,
		metrics: m,
	}
}

func (c *CachedShipStore) FindAll(ctx context.Context) ([]entities.Ship, error) {
	key := constants.CacheKeyAllShips
	pattern := string(constants.CachePrefixShips)

	if data, found := c.cache.Get(ctx, key); found {
		var ships []entities.Ship
		if err := json.Unmarshal(data, &ships); err == nil {
			c.metrics.ObserveCache(pattern, true)
			return ships, nil
		}
		logging.Warn("Discarding undecodable cached ship set", "key", key)
		_ = c.cache.Delete(ctx, key)
	}
	c.metrics.ObserveCache(pattern, false)

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		gen := c.currentGeneration()

		// Shared by every caller in the flight, so it must outlive the first one.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shipSetLoadTimeout)
		defer cancel()

		ships, err := c.inner.FindAll(loadCtx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(ships)
		if err != nil {
			return nil, fmt.Errorf("failed to encode ship set: %w", err)
		}
		c.storeIfCurrent(loadCtx, gen, data)
		return ships, nil
	})
	if err != nil {
		return nil, err
	}

	// Callers sharing a flight must not share the backing array.
	return slices.Clone(v.([]entities.Ship)), nil
}

func (c *CachedShipStore) FindByID(ctx context.Context, id int64) (*entities.Ship, error) {
	return c.inner.FindByID(ctx, id)
}

func (c *CachedShipStore) Save(ctx context.Context, ship *entities.Ship) (*entities.Ship, error) {
	saved, err := c.inner.Save(ctx, ship)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return saved, nil
}

func (c *CachedShipStore) Delete(ctx context.Context, ship *entities.Ship) error {
	if err := c.inner.Delete(ctx, ship); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedShipStore) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// storeIfCurrent caches data unless an invalidation happened since gen was read.
func (c *CachedShipStore) storeIfCurrent(ctx context.Context, gen uint64, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		logging.Debug("Ship set changed during load, not caching", "key", constants.CacheKeyAllShips)
		return
	}
	if err := c.cache.Set(ctx, constants.CacheKeyAllShips, data, c.ttl); err != nil {
		logging.Warn("Failed to cache ship set", "key", constants.CacheKeyAllShips, "error", err)
	}
}

func (c *CachedShipStore) invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.group.Forget(constants.CacheKeyAllShips)
	if err := c.cache.Delete(ctx, constants.CacheKeyAllShips); err != nil {
		logging.Warn("Failed to invalidate ship cache", "error", err)
	}
}
