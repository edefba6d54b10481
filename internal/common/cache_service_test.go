package common

import (
	"context"
	"testing"
	"time"
)

func TestCacheService_SetGetDelete(t *testing.T) {
	cs := NewCacheService(time.Minute, time.Minute)
	ctx := context.Background()

	if _, found := cs.Get(ctx, "SHIPS_ALL"); found {
		t.Fatal("expected miss on empty cache")
	}

	value := []byte(`[{"id":1}]`)
	if err := cs.Set(ctx, "SHIPS_ALL", value, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Mutating the caller's buffer must not leak into the cache.
	value[0] = 'X'

	got, found := cs.Get(ctx, "SHIPS_ALL")
	if !found {
		t.Fatal("expected hit after Set")
	}
	if string(got) != `[{"id":1}]` {
		t.Errorf("got %q", got)
	}

	if err := cs.Delete(ctx, "SHIPS_ALL"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := cs.Get(ctx, "SHIPS_ALL"); found {
		t.Error("expected miss after Delete")
	}
}

func TestCacheService_Expiry(t *testing.T) {
	cs := NewCacheService(time.Minute, time.Minute)
	ctx := context.Background()

	_ = cs.Set(ctx, "short", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := cs.Get(ctx, "short"); found {
		t.Error("expected entry to expire")
	}
}

func TestCacheService_PingAndClose(t *testing.T) {
	cs := NewCacheService(time.Minute, time.Minute)

	if err := cs.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
	if err := cs.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Port 1 is reserved and refuses connections.
	client, err := NewRedisClient(ctx, "127.0.0.1:1", "", 0)
	if err == nil {
		_ = client.Close()
		t.Fatal("expected error connecting to an unreachable Redis")
	}
}
