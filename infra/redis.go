package infra

import (
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// SetupRedis はレートリミットカウンター用のRedisクライアントを設定
func SetupRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Invalid REDIS_DB %q, using 0", v)
		} else {
			db = parsed
		}
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
}
