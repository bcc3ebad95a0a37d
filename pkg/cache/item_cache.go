package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "item:"
)

// CachedItem is the denormalized read model stored in Redis as a JSON blob.
// It serves GET-by-id reads only; existence checks behind lifecycle gates
// always go to the authoritative store.
type CachedItem struct {
	EntityID    string   `json:"entity_id"`
	ArticleName string   `json:"article_name"`
	Count       string   `json:"count"`
	Done        bool     `json:"done"`
	Owners      []string `json:"owners"`
}

// ItemCache provides read/write operations for item cache entries.
// Key format: "item:{entityID}".
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates an ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item. Returns redis.Nil when the key does not exist
// or has expired.
func (c *ItemCache) Get(ctx context.Context, entityID string) (*CachedItem, error) {
	data, err := c.client.Client().Get(ctx, itemCacheKeyPrefix+entityID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var item CachedItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &item, nil
}

// Set writes a cached item with a 24-hour TTL.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, itemCacheKeyPrefix+item.EntityID, data, ItemCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item.
func (c *ItemCache) Delete(ctx context.Context, entityID string) error {
	if err := c.client.Client().Del(ctx, itemCacheKeyPrefix+entityID).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
