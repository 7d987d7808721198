package convocatoriainfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/udistrital/unidoc_api/portal/convocatoria"
)

const cacheKeyAbiertas = "unidoc:convocatorias:abiertas"

// RedisCache implements the posting-board cache on Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-based posting cache
func NewRedisCache(client *redis.Client) convocatoria.Cache {
	return &RedisCache{client: client}
}

// GetAbiertas returns the cached open-posting list, or a miss
func (c *RedisCache) GetAbiertas(ctx context.Context) ([]convocatoria.Convocatoria, bool, error) {
	data, err := c.client.Get(ctx, cacheKeyAbiertas).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached postings: %w", err)
	}

	var items []convocatoria.Convocatoria
	if err := json.Unmarshal(data, &items); err != nil {
		// Entrada corrupta: se trata como miss y se repuebla
		return nil, false, nil
	}

	return items, true, nil
}

// SetAbiertas stores the open-posting list for the given TTL
func (c *RedisCache) SetAbiertas(ctx context.Context, items []convocatoria.Convocatoria, ttl time.Duration) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal postings: %w", err)
	}

	if err := c.client.Set(ctx, cacheKeyAbiertas, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache postings: %w", err)
	}

	return nil
}

// Invalidate drops the cached list
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, cacheKeyAbiertas).Err(); err != nil {
		return fmt.Errorf("invalidate posting cache: %w", err)
	}
	return nil
}
