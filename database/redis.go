package database

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient builds the cache client from a redis:// URL. An empty or
// unparsable URL yields a client pointed at the default address; cache
// lookups against an unreachable server degrade to the database path.
func NewRedisClient(redisURL string) *redis.Client {
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		zap.L().Warn("Failed to parse REDIS_URL, falling back to default", zap.Error(err))
		opts = &redis.Options{Addr: "localhost:6379", DB: 0}
	}
	return redis.NewClient(opts)
}
