package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"pickup-coordination-service/internal/domain"
)

func newTestCache(t *testing.T) (*RedisStatusCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStatusCache(client, time.Minute), mr
}

func TestStatusCachePutGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	if _, ok, err := c.Get(ctx, "XY", "100", date); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Put(ctx, "XY", "100", date, domain.StatusDelayed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, ok, err := c.Get(ctx, "XY", "100", date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || status != domain.StatusDelayed {
		t.Fatalf("got ok=%v status=%s, want delayed", ok, status)
	}

	// Same flight on another date is a distinct key.
	if _, ok, _ := c.Get(ctx, "XY", "100", date.AddDate(0, 0, 1)); ok {
		t.Fatal("expected miss for different date")
	}
}

func TestStatusCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	if err := c.Put(ctx, "XY", "100", date, domain.StatusOnTime); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, _ := c.Get(ctx, "XY", "100", date); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestStatusCacheIgnoresCorruptEntries(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	mr.Set(statusKey("XY", "100", date), "not-a-status")

	if _, ok, err := c.Get(ctx, "XY", "100", date); err != nil || ok {
		t.Fatalf("corrupt entry should read as a miss, got ok=%v err=%v", ok, err)
	}
}
