package api

import (
	"context"
	"testing"
	"time"

	"cosmoport/shipyard/internal/config"
	"cosmoport/shipyard/internal/db/repositories"
)

func testConfig(driver, cacheBackend string) *config.Config {
	return &config.Config{
		AppEnv: "test",
		Store:  config.StoreConfig{Driver: driver},
		Cache:  config.CacheConfig{Backend: cacheBackend, TTL: time.Minute},
	}
}

func TestInitDependencies_GormWithMemoryCache(t *testing.T) {
	conns := Connections{ORM: setupTestDB(t)}

	deps, err := InitDependencies(context.Background(), testConfig("gorm", "memory"), conns, nil)
	if err != nil {
		t.Fatalf("InitDependencies: %v", err)
	}

	if _, ok := deps.Repo.Ships.(*repositories.CachedShipStore); !ok {
		t.Errorf("expected cached store, got %T", deps.Repo.Ships)
	}
	if deps.Services.Cache == nil {
		t.Error("expected cache to be set")
	}
	if err := deps.DB.PingContext(context.Background()); err != nil {
		t.Errorf("expected pingable database, got %v", err)
	}
}

func TestInitDependencies_NoCache(t *testing.T) {
	conns := Connections{ORM: setupTestDB(t)}

	deps, err := InitDependencies(context.Background(), testConfig("gorm", "none"), conns, nil)
	if err != nil {
		t.Fatalf("InitDependencies: %v", err)
	}

	if _, ok := deps.Repo.Ships.(*repositories.ShipRepositoryGORM); !ok {
		t.Errorf("expected bare GORM store, got %T", deps.Repo.Ships)
	}
	if deps.Services.Cache != nil {
		t.Error("expected no cache")
	}
}

func TestInitDependencies_MissingConnection(t *testing.T) {
	if _, err := InitDependencies(context.Background(), testConfig("sqlx", "none"), Connections{}, nil); err == nil {
		t.Fatal("expected error when the sqlx connection is missing")
	}
}
