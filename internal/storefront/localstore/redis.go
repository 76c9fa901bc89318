package localstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront/internal/storefront"
)

const redisOpTimeout = 2 * time.Second

// Redis keeps one device's values under storefront:<device>:<key>. With a
// TTL every write extends the key's lifetime, so an idle guest cart expires.
type Redis struct {
	client   *redis.Client
	deviceID string
	ttl      time.Duration
}

// NewRedis creates a Redis store for deviceID. ttl 0 keeps values forever.
func NewRedis(client *redis.Client, deviceID string, ttl time.Duration) (*Redis, error) {
	if deviceID == "" {
		return nil, errors.New("device id is required")
	}
	return &Redis{client: client, deviceID: deviceID, ttl: ttl}, nil
}

func (r *Redis) key(key string) string {
	return fmt.Sprintf("storefront:%s:%s", r.deviceID, key)
}

// Get returns the value stored at key
func (r *Redis) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storefront.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value at key
func (r *Redis) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (r *Redis) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
