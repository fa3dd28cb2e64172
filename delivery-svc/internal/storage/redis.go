package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"foodndeliv/delivery-svc/internal/domain"
)

// RedisMenuCache keeps each restaurant's full menu as one JSON value.
type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

func (c *RedisMenuCache) MenuKey(restaurantID int64) string {
	return "menu:" + strconv.FormatInt(restaurantID, 10)
}

func (c *RedisMenuCache) GetMenu(ctx context.Context, restaurantID int64) ([]domain.MenuItem, bool, error) {
	raw, err := c.Client.Get(ctx, c.MenuKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}
	if items == nil {
		items = make([]domain.MenuItem, 0)
	}
	return items, true, nil
}

func (c *RedisMenuCache) SetMenu(ctx context.Context, restaurantID int64, items []domain.MenuItem) error {
	if items == nil {
		items = make([]domain.MenuItem, 0)
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.MenuKey(restaurantID), raw, c.TTL).Err()
}

func (c *RedisMenuCache) InvalidateMenu(ctx context.Context, restaurantID int64) error {
	return c.Client.Del(ctx, c.MenuKey(restaurantID)).Err()
}
