package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisURI    string
)

// InitRedis connects to addr (e.g. localhost:6379). An empty addr leaves RedisClient nil
// and every Redis-backed feature disabled.
func InitRedis(ctx context.Context, addr string) error {
	if addr == "" {
		return nil
	}
	c := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := c.Ping(ctx).Result(); err != nil {
		_ = c.Close()
		return fmt.Errorf("connect redis: %w", err)
	}
	RedisClient = c
	RedisURI = addr
	return nil
}
