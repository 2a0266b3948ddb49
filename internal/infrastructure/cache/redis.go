package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL creates a Redis client from a redis:// URL and verifies
// the connection with a ping.
func NewRedisFromURL(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// Close shuts the client down, ignoring errors on the way out.
func Close(rdb *redis.Client) {
	_ = rdb.Close()
}
