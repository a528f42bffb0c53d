package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/reservation/internal/model"
)

type cachedResources struct {
	ResourceRepository
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewCachedResources keeps available-resource listings in redis for ttl.
// A nil client disables caching.
func NewCachedResources(next ResourceRepository, rdb *redis.Client, ttl time.Duration, log *zap.Logger) ResourceRepository {
	if rdb == nil || ttl <= 0 {
		return next
	}
	return &cachedResources{
		ResourceRepository: next,
		rdb:                rdb,
		ttl:                ttl,
		log:                log.Named("cache"),
	}
}

func catalogKey(kind model.Kind) string {
	return fmt.Sprintf("catalog:available:%s", kind)
}

func (c *cachedResources) ListAvailable(ctx context.Context, kind model.Kind) ([]model.Resource, error) {
	key := catalogKey(kind)
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var items []model.Resource
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
	} else if err != redis.Nil {
		c.log.Warn("redis get", zap.String("key", key), zap.Error(err))
	}

	items, err := c.ResourceRepository.ListAvailable(ctx, kind)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(items); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn("redis set", zap.String("key", key), zap.Error(err))
		}
	}
	return items, nil
}
