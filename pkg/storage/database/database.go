package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/scratchdata/linkfeed/pkg/config"
	"github.com/scratchdata/linkfeed/pkg/storage/database/gorm"
	"github.com/scratchdata/linkfeed/pkg/storage/database/memory"
	"github.com/scratchdata/linkfeed/pkg/storage/database/models"
)

var ErrUnknownType = errors.New("unknown database type")

type Database interface {
	// ListLinks returns every link in insertion order.
	ListLinks(ctx context.Context) ([]models.Link, error)
	// AppendLink stores a new link and returns it with its assigned id.
	AppendLink(ctx context.Context, description string, url string) (models.Link, error)

	Ping(ctx context.Context) error
	Close() error
}

func NewConnection(conf config.Database) (Database, error) {
	switch conf.Type {
	case "", "memory":
		return memory.NewMemoryDatabase(), nil
	case "sqlite", "postgres":
		db, err := gorm.NewGorm(conf)
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownType, conf.Type)
}
