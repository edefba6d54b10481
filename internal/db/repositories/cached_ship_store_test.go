package repositories

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"cosmoport/shipyard/internal/common"
	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/models/entities"
)

// Mock ShipStore
type mockShipStore struct {
	mu           sync.Mutex
	findAllCalls int

	findAllFunc  func(ctx context.Context) ([]entities.Ship, error)
	findByIDFunc func(ctx context.Context, id int64) (*entities.Ship, error)
	saveFunc     func(ctx context.Context, ship *entities.Ship) (*entities.Ship, error)
	deleteFunc   func(ctx context.Context, ship *entities.Ship) error
}

func (m *mockShipStore) FindAll(ctx context.Context) ([]entities.Ship, error) {
	m.mu.Lock()
	m.findAllCalls++
	m.mu.Unlock()
	return m.findAllFunc(ctx)
}

func (m *mockShipStore) FindByID(ctx context.Context, id int64) (*entities.Ship, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockShipStore) Save(ctx context.Context, ship *entities.Ship) (*entities.Ship, error) {
	return m.saveFunc(ctx, ship)
}

func (m *mockShipStore) Delete(ctx context.Context, ship *entities.Ship) error {
	return m.deleteFunc(ctx, ship)
}

func (m *mockShipStore) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findAllCalls
}

func newFleetStore() *mockShipStore {
	return &mockShipStore{
		findAllFunc: func(ctx context.Context) ([]entities.Ship, error) {
			return []entities.Ship{
				{ID: 1, Name: "Orion III", ProdDate: time.Date(2995, 1, 1, 0, 0, 0, 0, time.UTC), Rating: 1.31},
				{ID: 2, Name: "Daedalus", ProdDate: time.Date(3001, 1, 1, 0, 0, 0, 0, time.UTC), Rating: 3.96},
			}, nil
		},
		saveFunc: func(ctx context.Context, ship *entities.Ship) (*entities.Ship, error) {
			out := *ship
			return &out, nil
		},
		deleteFunc: func(ctx context.Context, ship *entities.Ship) error {
			return nil
		},
	}
}

func TestCachedShipStore_FindAllServesFromCache(t *testing.T) {
	inner := newFleetStore()
	store := NewCachedShipStore(inner, common.NewCacheService(time.Minute, time.Minute), time.Minute, nil)
	ctx := context.Background()

	first, err := store.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	second, err := store.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	if inner.calls() != 1 {
		t.Errorf("expected inner store to be queried once, got %d", inner.calls())
	}
	if len(second) != 2 || second[1].Name != "Daedalus" || !second[0].ProdDate.Equal(first[0].ProdDate) {
		t.Errorf("cached ships differ from loaded ones: %+v", second)
	}
}

func TestCachedShipStore_MutationsInvalidate(t *testing.T) {
	inner := newFleetStore()
	cache := common.NewCacheService(time.Minute, time.Minute)
	store := NewCachedShipStore(inner, cache, time.Minute, nil)
	ctx := context.Background()

	if _, err := store.FindAll(ctx); err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if _, err := store.Save(ctx, &entities.Ship{ID: 1, Name: "Orion IV"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, found := cache.Get(ctx, constants.CacheKeyAllShips); found {
		t.Fatal("expected Save to drop the cached ship set")
	}

	if _, err := store.FindAll(ctx); err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if err := store.Delete(ctx, &entities.Ship{ID: 2}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.FindAll(ctx); err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	if inner.calls() != 3 {
		t.Errorf("expected 3 loads from the inner store, got %d", inner.calls())
	}
}

func TestCachedShipStore_FailedSaveKeepsCache(t *testing.T) {
	inner := newFleetStore()
	inner.saveFunc = func(ctx context.Context, ship *entities.Ship) (*entities.Ship, error) {
		return nil, errors.New("disk full")
	}
	cache := common.NewCacheService(time.Minute, time.Minute)
	store := NewCachedShipStore(inner, cache, time.Minute, nil)
	ctx := context.Background()

	if _, err := store.FindAll(ctx); err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if _, err := store.Save(ctx, &entities.Ship{ID: 1}); err == nil {
		t.Fatal("expected save error")
	}
	if _, found := cache.Get(ctx, constants.CacheKeyAllShips); !found {
		t.Error("expected cached ship set to survive a failed save")
	}
}

func TestCachedShipStore_CorruptEntryIsReloaded(t *testing.T) {
	inner := newFleetStore()
	cache := common.NewCacheService(time.Minute, time.Minute)
	store := NewCachedShipStore(inner, cache, time.Minute, nil)
	ctx := context.Background()

	_ = cache.Set(ctx, constants.CacheKeyAllShips, []byte("{not json"), time.Minute)

	ships, err := store.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(ships) != 2 || inner.calls() != 1 {
		t.Errorf("expected reload from inner store, got %d ships and %d calls", len(ships), inner.calls())
	}
}

func TestCachedShipStore_LoadErrorPropagates(t *testing.T) {
	inner := newFleetStore()
	loadErr := errors.New("db down")
	inner.findAllFunc = func(ctx context.Context) ([]entities.Ship, error) {
		return nil, loadErr
	}
	store := NewCachedShipStore(inner, common.NewCacheService(time.Minute, time.Minute), time.Minute, nil)

	if _, err := store.FindAll(context.Background()); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestCachedShipStore_SaveDuringLoadIsNotHidden(t *testing.T) {
	var (
		mu    sync.Mutex
		fleet = []entities.Ship{{ID: 1, Name: "Orion III"}}
	)
	loading := make(chan struct{}, 1)
	release := make(chan struct{})

	inner := newFleetStore()
	inner.findAllFunc = func(ctx context.Context) ([]entities.Ship, error) {
		mu.Lock()
		snapshot := slices.Clone(fleet)
		mu.Unlock()

		select {
		case loading <- struct{}{}:
		default:
		}
		<-release
		return snapshot, nil
	}
	inner.saveFunc = func(ctx context.Context, ship *entities.Ship) (*entities.Ship, error) {
		mu.Lock()
		defer mu.Unlock()
		out := *ship
		out.ID = int64(len(fleet) + 1)
		fleet = append(fleet, out)
		return &out, nil
	}

	store := NewCachedShipStore(inner, common.NewCacheService(time.Minute, time.Minute), time.Minute, nil)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := store.FindAll(ctx)
		done <- err
	}()

	<-loading
	if _, err := store.Save(ctx, &entities.Ship{Name: "Daedalus"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	ships, err := store.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(ships) != 2 {
		t.Fatalf("expected saved ship in listing, got %+v", ships)
	}
	if ships[1].Name != "Daedalus" {
		t.Errorf("expected Daedalus as second ship, got %q", ships[1].Name)
	}
}

func TestCachedShipStore_LoadOutlivesCancelledCaller(t *testing.T) {
	inner := newFleetStore()
	inner.findAllFunc = func(ctx context.Context) ([]entities.Ship, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []entities.Ship{{ID: 1, Name: "Orion III"}}, nil
	}
	store := NewCachedShipStore(inner, common.NewCacheService(time.Minute, time.Minute), time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ships, err := store.FindAll(ctx)
	if err != nil {
		t.Fatalf("expected load to ignore caller cancellation, got %v", err)
	}
	if len(ships) != 1 {
		t.Errorf("expected 1 ship, got %d", len(ships))
	}
}
