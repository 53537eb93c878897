package gorm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/scratchdata/linkfeed/pkg/config"
	"github.com/scratchdata/linkfeed/pkg/storage/database/models"
	"github.com/scratchdata/linkfeed/pkg/util"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Gorm struct {
	DSN  string `mapstructure:"dsn"`
	Seed bool   `mapstructure:"seed"`
	db   *gorm.DB
}

func NewGorm(conf config.Database) (*Gorm, error) {
	rc, err := util.ConfigToStruct[Gorm](conf.Settings)
	if err != nil {
		return nil, err
	}
	if rc.DSN == "" {
		return nil, fmt.Errorf("%s database: dsn is required", conf.Type)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var db *gorm.DB
	switch conf.Type {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(rc.DSN), gormConfig)
	case "postgres":
		db, err = gorm.Open(postgres.Open(rc.DSN), gormConfig)
	default:
		return nil, fmt.Errorf("unknown database type: %s", conf.Type)
	}
	if err != nil {
		return nil, err
	}

	rc.db = db

	if err := db.AutoMigrate(&models.Link{}); err != nil {
		return nil, err
	}

	if rc.Seed {
		if err := rc.seed(); err != nil {
			return nil, err
		}
	}

	return rc, nil
}

// seed inserts the seed links when the table is empty. The ids are left
// to the database so the sequence stays in step on postgres.
func (s *Gorm) seed() error {
	var linkCount int64
	if res := s.db.Model(&models.Link{}).Count(&linkCount); res.Error != nil {
		return res.Error
	}
	if linkCount > 0 {
		return nil
	}

	seeds := models.SeedLinks()
	for i := range seeds {
		seeds[i].ID = 0
	}

	if res := s.db.Create(&seeds); res.Error != nil {
		return res.Error
	}

	log.Debug().Int("count", len(seeds)).Msg("Seeded links table")
	return nil
}

func (s *Gorm) ListLinks(ctx context.Context) ([]models.Link, error) {
	var links []models.Link
	res := s.db.WithContext(ctx).Order("id").Find(&links)
	if res.Error != nil {
		return nil, res.Error
	}
	return links, nil
}

func (s *Gorm) AppendLink(ctx context.Context, description string, url string) (models.Link, error) {
	link := models.Link{
		Description: description,
		URL:         url,
	}

	res := s.db.WithContext(ctx).Create(&link)
	if res.Error != nil {
		return models.Link{}, res.Error
	}

	return link, nil
}

func (s *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Gorm) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
