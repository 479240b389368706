package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type snapshot struct {
	Bags   int64           `json:"bags"`
	Amount decimal.Decimal `json:"amount"`
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisDashboardCache) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, &redisDashboardCache{client: client}
}

func TestRedisDashboardCache_RoundTrip(t *testing.T) {
	server, cache := newTestCache(t)
	ctx := context.Background()

	var miss snapshot
	hit, err := cache.Get(ctx, "dashboard:today-stats:2024-05-10", &miss)
	if err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	want := snapshot{Bags: 12, Amount: decimal.RequireFromString("9500.50")}
	if err := cache.Set(ctx, "dashboard:today-stats:2024-05-10", want, 15*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got snapshot
	hit, err = cache.Get(ctx, "dashboard:today-stats:2024-05-10", &got)
	if err != nil || !hit {
		t.Fatalf("expected a hit, got hit=%v err=%v", hit, err)
	}
	if got.Bags != want.Bags || !got.Amount.Equal(want.Amount) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	server.FastForward(16 * time.Second)
	hit, err = cache.Get(ctx, "dashboard:today-stats:2024-05-10", &got)
	if err != nil || hit {
		t.Errorf("expected entry to expire, got hit=%v err=%v", hit, err)
	}
}

func TestRedisDashboardCache_CorruptEntry(t *testing.T) {
	server, cache := newTestCache(t)
	if err := server.Set("dashboard:today-stats:2024-05-10", "{not json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got snapshot
	if _, err := cache.Get(context.Background(), "dashboard:today-stats:2024-05-10", &got); err == nil {
		t.Error("expected a decode error for a corrupt entry")
	}
}

func TestRedisDashboardCache_ServerDown(t *testing.T) {
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	cache := &redisDashboardCache{client: client}
	server.Close()

	if err := cache.Set(context.Background(), "k", snapshot{}, time.Second); err == nil {
		t.Error("expected an error when redis is unreachable")
	}
}
