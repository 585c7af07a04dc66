package catalog

import (
	"context"
	"encoding/json"
	"time"

	"ubwiza_rentals/database"
	"ubwiza_rentals/model"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const roomCachePrefix = "rooms:list:"

// RoomCache keeps room listings in redis. Every error degrades to a cache miss.
type RoomCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRoomCache returns nil when there is no client, which disables caching.
func NewRoomCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RoomCache {
	if client == nil {
		return nil
	}
	return &RoomCache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(q database.RoomQuery) string {
	key, _ := json.Marshal(q)
	return roomCachePrefix + string(key)
}

func (c *RoomCache) Get(ctx context.Context, q database.RoomQuery) ([]model.Room, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, cacheKey(q)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("room cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var rooms []model.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, false
	}
	return rooms, true
}

func (c *RoomCache) Set(ctx context.Context, q database.RoomQuery, rooms []model.Room) {
	if c == nil {
		return
	}
	data, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(q), data, c.ttl).Err(); err != nil {
		c.logger.Warn("room cache write failed", zap.Error(err))
	}
}

// Invalidate drops every cached listing.
func (c *RoomCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, roomCachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("room cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("room cache invalidation failed", zap.Error(err))
	}
}
