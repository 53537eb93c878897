package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog/log"
	"github.com/scratchdata/linkfeed/pkg/config"
	"github.com/scratchdata/linkfeed/pkg/graph"
	"github.com/scratchdata/linkfeed/pkg/storage"
)

type LinkFeedAPIStruct struct {
	config          config.API
	storageServices *storage.Services
	schema          *graphql.Schema
}

func NewLinkFeedAPI(c config.API, storageServices *storage.Services) (*LinkFeedAPIStruct, error) {
	schema, err := graph.NewSchema(storageServices.Database, graph.SchemaOptions{
		MaxDepth:       c.MaxDepth,
		MaxParallelism: c.MaxParallelism,
	})
	if err != nil {
		return nil, fmt.Errorf("building schema: %w", err)
	}

	rc := LinkFeedAPIStruct{
		config:          c,
		storageServices: storageServices,
		schema:          schema,
	}

	return &rc, nil
}

// RunAPI serves handler until ctx is cancelled, then shuts down gracefully.
func RunAPI(ctx context.Context, config config.API, handler http.Handler) {
	log.Debug().Int("port", config.Port).Msg("Starting API")

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", config.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Err(err).Msg("Error serving API")
			serverStopCtx()
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
		case <-serverCtx.Done():
			return
		}

		log.Debug().Msg("Stopping API")

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Error().Err(err).Msg("Error shutting down API")
		}

		serverStopCtx()
	}()

	log.Debug().Msg("Waiting for graceful shutdown")
	<-serverCtx.Done()

	log.Debug().Msg("API server stopped")
}
