package storage

import (
	"github.com/scratchdata/linkfeed/pkg/config"
	"github.com/scratchdata/linkfeed/pkg/storage/cache"
	"github.com/scratchdata/linkfeed/pkg/storage/database"
)

type Services struct {
	Database database.Database
	Cache    cache.Cache
}

// New opens the configured backends. When a cache is configured the
// database is wrapped so feed listings are served from it.
func New(c config.LinkFeedConfig) (*Services, error) {
	rc := &Services{}

	var err error
	if rc.Cache, err = cache.NewCache(c.Cache); err != nil {
		return nil, err
	}

	db, err := database.NewConnection(c.Database)
	if err != nil {
		return nil, err
	}
	rc.Database = database.NewCachedDatabase(db, rc.Cache)

	return rc, nil
}

func (s *Services) Close() error {
	return s.Database.Close()
}
