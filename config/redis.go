package config

import "github.com/redis/go-redis/v9"

// NewRedisClient returns nil when no address is configured; the rate
// limiter falls back to its in-process bucket in that case.
func NewRedisClient(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: envStr("REDIS_PASSWORD", ""),
		DB:       envInt("REDIS_DB", 0),
	})
}
