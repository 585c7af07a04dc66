package database

import (
	"context"
	"time"

	"ubwiza_rentals/config"
	"ubwiza_rentals/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var Redis *redis.Client

// ConnectRedis opens the cache/feed client. Redis is optional: with no
// address or no answer to PING, Redis stays nil and callers fall back.
func ConnectRedis() *redis.Client {
	logger := utils.GetLogger()
	cfg := config.AppConfig
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, room cache and live booking feed disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, continuing without it", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = client.Close()
		return nil
	}

	logger.Info("Connection opened to redis", zap.String("addr", cfg.RedisAddr))
	Redis = client
	return client
}
