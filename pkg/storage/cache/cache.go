package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/scratchdata/linkfeed/pkg/config"
	"github.com/scratchdata/linkfeed/pkg/storage/cache/memory"
)

var ErrUnknownType = errors.New("unknown cache type")

type Cache interface {
	Get(key string) (value []byte, ok bool)
	Set(key string, value []byte, expires *time.Duration) error
	Delete(key string)
}

// NewCache returns nil when caching is disabled.
func NewCache(conf config.Cache) (Cache, error) {
	switch conf.Type {
	case "", "none":
		return nil, nil
	case "memory":
		c, err := memory.NewMemoryCache(conf.Settings)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownType, conf.Type)
}
