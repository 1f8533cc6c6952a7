// Package cache обёртка над Redis для кеширования справочных данных
// (академии, master data, счётчики статистики).
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache read-through кеш с единым TTL
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New подключается к Redis и проверяет соединение
func New(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: ping redis at %s: %w", addr, err)
	}
	return &Cache{rdb: rdb, ttl: ttl}, nil
}

// GetJSON читает и декодирует значение; false — промах кеша
func (c *Cache) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: get %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON кодирует и сохраняет значение с TTL кеша
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

// Delete инвалидирует ключи
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache: delete %v: %w", keys, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (c *Cache) Close() error {
	return c.rdb.Close()
}
