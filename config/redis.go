package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient is nil when redis is not configured or unreachable; callers must
// check before use. Redis only backs the rate limiter and the product cache,
// so running without it degrades gracefully.
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("WARNING: redis unavailable at %s: %v. Rate limiting and caching disabled.", addr, err)
		RedisClient = nil
		return
	}
	RedisClient = client
	log.Println("✅ Redis connected")
}
