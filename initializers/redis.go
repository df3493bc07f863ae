package initializers

import (
	"github.com/redis/go-redis/v9"
)

func ConnectToRedis(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}
