package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/scratchdata/linkfeed/pkg/config"
)

func CreateMux(c config.LinkFeedConfig, apiFunctions *LinkFeedAPIStruct) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(PrometheusMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Origin", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	graphqlPath := c.API.GraphQLPath
	if graphqlPath == "" {
		graphqlPath = "/graphql"
	}
	r.Get(graphqlPath, apiFunctions.GraphQL)
	r.Post(graphqlPath, apiFunctions.GraphQL)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == graphqlPath {
			apiFunctions.GraphQL(w, r)
			return
		}
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	r.Get("/healthcheck", apiFunctions.Healthcheck)

	if c.Prometheus.Enabled {
		metrics := chi.NewRouter()
		if c.Prometheus.Username != "" {
			metrics.Use(middleware.BasicAuth("metrics", map[string]string{
				c.Prometheus.Username: c.Prometheus.Password,
			}))
		}
		metrics.Handle("/", promhttp.Handler())
		r.Mount("/metrics", metrics)
	}

	return r
}
