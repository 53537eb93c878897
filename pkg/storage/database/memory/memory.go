package memory

import (
	"context"
	"sync"
	"time"

	"github.com/scratchdata/linkfeed/pkg/storage/database/models"
)

// MemoryDatabase keeps links for the lifetime of the process.
// Ids come from a counter rather than the slice length so that
// concurrent appends never hand out the same id.
type MemoryDatabase struct {
	mu     sync.RWMutex
	links  []models.Link
	lastID int64
}

func NewMemoryDatabase() *MemoryDatabase {
	db := &MemoryDatabase{}
	for _, link := range models.SeedLinks() {
		db.links = append(db.links, link)
		db.lastID = max(db.lastID, link.ID)
	}
	return db
}

func (db *MemoryDatabase) ListLinks(ctx context.Context) ([]models.Link, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rc := make([]models.Link, len(db.links))
	copy(rc, db.links)
	return rc, nil
}

func (db *MemoryDatabase) AppendLink(ctx context.Context, description string, url string) (models.Link, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.lastID++
	link := models.Link{
		ID:          db.lastID,
		Description: description,
		URL:         url,
		CreatedAt:   time.Now().UTC(),
	}
	db.links = append(db.links, link)

	return link, nil
}

func (db *MemoryDatabase) Ping(ctx context.Context) error {
	return nil
}

func (db *MemoryDatabase) Close() error {
	return nil
}
