package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"
)

func (a *LinkFeedAPIStruct) Healthcheck(w http.ResponseWriter, r *http.Request) {
	if a.config.HealthCheckFailFile != "" {
		_, err := os.Stat(a.config.HealthCheckFailFile)
		if err == nil {
			http.Error(w, "Status set to unhealthy", http.StatusServiceUnavailable)
			return
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Msg("Unable to check for unhealthy file")
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := a.storageServices.Database.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("Database ping failed")
		http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	render.PlainText(w, r, "ok")
}
