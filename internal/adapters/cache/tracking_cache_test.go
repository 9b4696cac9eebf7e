package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/ports"
)

func newTestCache(t *testing.T) (*RedisTrackingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisTrackingCache(client, time.Minute), mr
}

func TestTrackingCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	want := ports.DriverPosition{
		Coordinate: domain.Coordinate{Lat: 5.6037, Lng: -0.1870},
		RecordedAt: time.Date(2025, 7, 16, 9, 30, 0, 0, time.UTC),
	}

	if err := c.PutPosition(ctx, 7, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.GetPosition(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a cached position")
	}
	if got.Coordinate != want.Coordinate {
		t.Errorf("coordinate = %+v, want %+v", got.Coordinate, want.Coordinate)
	}
	if !got.RecordedAt.Equal(want.RecordedAt) {
		t.Errorf("recorded at = %v, want %v", got.RecordedAt, want.RecordedAt)
	}
}

func TestTrackingCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok, err := c.GetPosition(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a cache miss for an unknown driver")
	}
}

func TestTrackingCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	pos := ports.DriverPosition{
		Coordinate: domain.Coordinate{Lat: 5.6, Lng: -0.2},
		RecordedAt: time.Now().UTC(),
	}
	if err := c.PutPosition(ctx, 1, pos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.GetPosition(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected the entry to expire after the TTL")
	}
}
