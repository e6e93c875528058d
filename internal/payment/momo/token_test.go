package momo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryTokenCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	c := NewMemoryTokenCache()
	c.now = func() time.Time { return now }

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	c.Set(ctx, "k", "tok", time.Minute)
	token, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	now = now.Add(time.Minute)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok, "token must expire at its deadline")

	c.Set(ctx, "k", "tok-2", time.Hour)
	c.Delete(ctx, "k")
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}
