package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a redis client, or nil when redis is unreachable.
// Callers treat a nil client as "caching and rate limiting disabled".
func ConnectRedis(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("redis no disponible (%v), cache deshabilitado", err)
		return nil
	}
	return client
}
