package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok := c.Get(ctx, "deadbeef")
	assert.False(t, ok)

	c.Set(ctx, "deadbeef", "We discussed the portfolio.")

	val, ok := c.Get(ctx, "deadbeef")
	assert.True(t, ok)
	assert.Equal(t, "We discussed the portfolio.", val)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "hash", "first")
	c.Set(ctx, "hash", "second")

	val, _ := c.Get(ctx, "hash")
	assert.Equal(t, "second", val)
}

func TestNewFromEnv_DefaultsToMemory(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")

	_, ok := NewFromEnv().(*MemoryCache)
	assert.True(t, ok)
}

func TestNewFromEnv_RedisWhenConfigured(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")

	_, ok := NewFromEnv().(*RedisCache)
	assert.True(t, ok)
}
