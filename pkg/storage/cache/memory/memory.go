package memory

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/scratchdata/linkfeed/pkg/util"
)

// DefaultExpiration applies when no expiration_seconds is configured, so
// writes made outside this process show up within a bounded time.
const DefaultExpiration = time.Minute

type settings struct {
	ExpirationSeconds      int `mapstructure:"expiration_seconds"`
	CleanupIntervalSeconds int `mapstructure:"cleanup_interval_seconds"`
}

type MemoryCache struct {
	c *gocache.Cache
}

func NewMemoryCache(conf map[string]any) (*MemoryCache, error) {
	s, err := util.ConfigToStruct[settings](conf)
	if err != nil {
		return nil, err
	}

	expiration := DefaultExpiration
	if s.ExpirationSeconds > 0 {
		expiration = time.Duration(s.ExpirationSeconds) * time.Second
	}

	cleanup := 5 * time.Minute
	if s.CleanupIntervalSeconds > 0 {
		cleanup = time.Duration(s.CleanupIntervalSeconds) * time.Second
	}

	return &MemoryCache{c: gocache.New(expiration, cleanup)}, nil
}

func (m *MemoryCache) Get(key string) ([]byte, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Set stores value under key. A nil expires uses the cache default.
func (m *MemoryCache) Set(key string, value []byte, expires *time.Duration) error {
	d := gocache.DefaultExpiration
	if expires != nil {
		d = *expires
	}
	m.c.Set(key, value, d)
	return nil
}

func (m *MemoryCache) Delete(key string) {
	m.c.Delete(key)
}
