package database

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/scratchdata/linkfeed/pkg/storage/cache"
	"github.com/scratchdata/linkfeed/pkg/storage/database/models"
)

const feedCacheKey = "links:feed"

// CachedDatabase serves ListLinks from a cache and drops the cached
// listing whenever a link is appended. Filling the cache and appending
// are mutually exclusive, so a listing read before an append is never
// stored after that append has invalidated the cache.
type CachedDatabase struct {
	Database
	cache cache.Cache
	mu    sync.RWMutex
}

// NewCachedDatabase returns db unchanged when c is nil.
func NewCachedDatabase(db Database, c cache.Cache) Database {
	if c == nil {
		return db
	}
	return &CachedDatabase{Database: db, cache: c}
}

func (d *CachedDatabase) ListLinks(ctx context.Context) ([]models.Link, error) {
	if data, ok := d.cache.Get(feedCacheKey); ok {
		var links []models.Link
		err := json.Unmarshal(data, &links)
		if err == nil {
			return links, nil
		}
		log.Warn().Err(err).Msg("Discarding unreadable cached feed")
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	links, err := d.Database.ListLinks(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(links)
	if err != nil {
		return links, nil
	}
	if err := d.cache.Set(feedCacheKey, data, nil); err != nil {
		log.Error().Err(err).Msg("Unable to cache feed")
	}

	return links, nil
}

func (d *CachedDatabase) AppendLink(ctx context.Context, description string, url string) (models.Link, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	link, err := d.Database.AppendLink(ctx, description, url)
	if err != nil {
		return link, err
	}

	d.cache.Delete(feedCacheKey)
	return link, nil
}
