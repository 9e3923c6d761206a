package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pickup-coordination-service/internal/domain"
)

// RedisStatusCache stores resolved flight statuses under short TTLs so
// back-to-back reconciliation passes and repeated list reads for guests
// on the same flight do not each call the vendor.
//
// Keys are "flightstatus:<airline><flight>:<date>". A miss or an entry
// that no longer parses as a known status is reported as absent.
type RedisStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatusCache(client *redis.Client, ttl time.Duration) *RedisStatusCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisStatusCache{client: client, ttl: ttl}
}

func statusKey(airline, flightNumber string, date time.Time) string {
	return fmt.Sprintf("flightstatus:%s%s:%s", airline, flightNumber, date.Format("2006-01-02"))
}

// Get fetches a cached status for one flight and date.
func (c *RedisStatusCache) Get(
	ctx context.Context,
	airline string,
	flightNumber string,
	date time.Time,
) (domain.FlightStatus, bool, error) {
	if c.client == nil {
		return "", false, errors.New("status cache: client is nil")
	}

	v, err := c.client.Get(ctx, statusKey(airline, flightNumber, date)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get status cache: %w", err)
	}

	status, err := domain.ParseFlightStatus(v)
	if err != nil {
		return "", false, nil
	}

	return status, true, nil
}

// Put stores a resolved status for one flight and date.
func (c *RedisStatusCache) Put(
	ctx context.Context,
	airline string,
	flightNumber string,
	date time.Time,
	status domain.FlightStatus,
) error {
	if c.client == nil {
		return errors.New("status cache: client is nil")
	}

	key := statusKey(airline, flightNumber, date)
	if err := c.client.Set(ctx, key, string(status), c.ttl).Err(); err != nil {
		return fmt.Errorf("insert status cache key=%q: %w", key, err)
	}

	return nil
}
