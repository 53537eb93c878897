package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	c, err := NewMemoryCache(nil)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	require.NoError(t, c.Set("k", []byte("v"), nil))
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)

	c.Delete("k")
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c, err := NewMemoryCache(map[string]any{"expiration_seconds": 60})
	require.NoError(t, err)

	short := time.Millisecond
	require.NoError(t, c.Set("k", []byte("v"), &short))
	time.Sleep(10 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCacheBadSettings(t *testing.T) {
	_, err := NewMemoryCache(map[string]any{"expiration_seconds": "never"})
	assert.Error(t, err)
}

func TestMemoryCacheDefaultExpiry(t *testing.T) {
	c, err := NewMemoryCache(map[string]any{})
	require.NoError(t, err)

	before := time.Now()
	require.NoError(t, c.Set("k", []byte("v"), nil))

	_, expiresAt, ok := c.c.GetWithExpiration("k")
	require.True(t, ok)
	require.False(t, expiresAt.IsZero(), "entries must expire by default")
	assert.WithinDuration(t, before.Add(DefaultExpiration), expiresAt, 5*time.Second)
}
