// Command seed inserts one link into the configured database and logs
// every link stored there.
//
//	seed config.yaml
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/scratchdata/linkfeed/cmd/linkfeed"
	"github.com/scratchdata/linkfeed/pkg/config"
	"github.com/scratchdata/linkfeed/pkg/storage/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: seed <config file>")
	}

	c, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load config file")
	}
	linkfeed.SetupLogs(c.Logging)

	db, err := database.NewConnection(c.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to connect to database")
	}

	if err := run(context.Background(), db); err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("Unable to close database")
	}
}

func run(ctx context.Context, db database.Database) error {
	link, err := db.AppendLink(ctx, "Fullstack tutorial for GraphQL", "www.howtographql.com")
	if err != nil {
		return err
	}
	log.Info().Int64("id", link.ID).Msg("Created link")

	links, err := db.ListLinks(ctx)
	if err != nil {
		return err
	}
	for _, l := range links {
		log.Info().
			Int64("id", l.ID).
			Str("description", l.Description).
			Str("url", l.URL).
			Time("created_at", l.CreatedAt).
			Msg("Link")
	}
	log.Info().Int("count", len(links)).Msg("Listed links")

	return nil
}
