package storage

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

var bgContext = context.Background()

const giftCodeCacheKey = "gift_code"

// InitializeRedis connects to the Redis instance at addr. The client is
// only used as a read-through cache; callers tolerate a nil cache.
func InitializeRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})

	log.Println("Redis initialized with address:", addr)
	return client
}

// GiftCodeCache caches the gift code in Redis with a short TTL. Misses
// and Redis failures both fall through to the database.
type GiftCodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGiftCodeCache(client *redis.Client) *GiftCodeCache {
	return &GiftCodeCache{client: client, ttl: 5 * time.Minute}
}

func (c *GiftCodeCache) Get() (string, bool) {
	code, err := c.client.Get(bgContext, giftCodeCacheKey).Result()
	if err != nil {
		return "", false
	}
	return code, true
}

func (c *GiftCodeCache) Set(code string) {
	if err := c.client.Set(bgContext, giftCodeCacheKey, code, c.ttl).Err(); err != nil {
		log.Println("Warning: failed to cache gift code:", err)
	}
}
