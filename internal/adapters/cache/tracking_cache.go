package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Godhold/Waste-Management-App/internal/ports"
)

// Redis-backed cache of live driver positions. Entries expire after the
// configured TTL so stale drivers drop out of the live tracking view; the
// drivers table remains the durable fallback.
type RedisTrackingCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTrackingCache(client *redis.Client, ttl time.Duration) *RedisTrackingCache {
	return &RedisTrackingCache{Client: client, TTL: ttl}
}

func trackingKey(driverID int) string {
	return fmt.Sprintf("tracking:driver:%d", driverID)
}

// Store a driver's last reported position.
func (c *RedisTrackingCache) PutPosition(ctx context.Context, driverID int, pos ports.DriverPosition) error {
	if c.Client == nil {
		return errors.New("tracking cache: client is nil")
	}

	payload, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("put position: marshal: %w", err)
	}

	if err := c.Client.Set(ctx, trackingKey(driverID), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("put position driver=%d: %w", driverID, err)
	}
	return nil
}

// Fetch a driver's cached position; ok=false on miss or expiry.
func (c *RedisTrackingCache) GetPosition(ctx context.Context, driverID int) (ports.DriverPosition, bool, error) {
	if c.Client == nil {
		return ports.DriverPosition{}, false, errors.New("tracking cache: client is nil")
	}

	payload, err := c.Client.Get(ctx, trackingKey(driverID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.DriverPosition{}, false, nil
	}
	if err != nil {
		return ports.DriverPosition{}, false, fmt.Errorf("get position driver=%d: %w", driverID, err)
	}

	var pos ports.DriverPosition
	if err := json.Unmarshal(payload, &pos); err != nil {
		return ports.DriverPosition{}, false, fmt.Errorf("get position driver=%d: unmarshal: %w", driverID, err)
	}
	return pos, true, nil
}
