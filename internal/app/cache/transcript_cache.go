package cache

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TranscriptCache stores finished transcripts keyed by the SHA-256 of
// the audio file. Re-uploading the same recording is common (the team
// retries after fixing a recipient address), and a hit skips a paid
// Whisper call.
type TranscriptCache interface {
	Get(ctx context.Context, fileHash string) (string, bool)
	Set(ctx context.Context, fileHash, transcript string)
}

const (
	redisKeyPrefix = "followup:transcript:"
	transcriptTTL  = 7 * 24 * time.Hour
)

// RedisCache is the shared cache for deployments with a Redis instance.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the given address.
func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, fileHash string) (string, bool) {
	val, err := c.client.Get(ctx, redisKeyPrefix+fileHash).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, fileHash, transcript string) {
	// Cache writes are best effort; a failed Set only costs a future
	// re-transcription.
	c.client.Set(ctx, redisKeyPrefix+fileHash, transcript, transcriptTTL)
}

// MemoryCache is the in-process fallback when REDIS_ADDR is unset.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

func (c *MemoryCache) Get(ctx context.Context, fileHash string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.entries[fileHash]
	return val, ok
}

func (c *MemoryCache) Set(ctx context.Context, fileHash, transcript string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fileHash] = transcript
}

// NewFromEnv picks Redis when REDIS_ADDR is set, memory otherwise.
func NewFromEnv() TranscriptCache {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return NewRedisCache(addr)
	}
	return NewMemoryCache()
}
