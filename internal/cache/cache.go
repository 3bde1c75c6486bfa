package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/reelkit/reels-ms-go/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetFeedPage(ctx context.Context) ([]byte, error) {
	val, err := c.client.Get(ctx, getCacheKey(false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagFeedPage(ctx context.Context) (string, error) {
	val, err := c.client.Get(ctx, getCacheKey(true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetFeedPage(ctx context.Context, data []byte, ttl time.Duration) {
	log.Printf("creating cache entry for the feed first page, ttl %s...", ttl)

	if err := c.client.Set(ctx, getCacheKey(false), data, ttl).Err(); err != nil {
		log.Printf("redis set failed for feed page: %v", err)
	}
}

func (c *Cache) SetEtagFeedPage(ctx context.Context, etag string, ttl time.Duration) {
	if err := c.client.Set(ctx, getCacheKey(true), etag, ttl).Err(); err != nil {
		log.Printf("redis set failed for feed page etag: %v", err)
	}
}

func (c *Cache) InvalidateFeedPage(ctx context.Context) error {
	log.Print("invalidating cached feed first page...")

	if err := c.client.Del(ctx, getCacheKey(false), getCacheKey(true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(isEtag bool) string {
	if isEtag {
		return "videos:feed:page1:etag"
	}
	return "videos:feed:page1"
}
