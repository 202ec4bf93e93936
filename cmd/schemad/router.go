package main

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/schemakit/pkg/httpserver"
	"github.com/dmitrymomot/schemakit/pkg/httpvalidate"
	"github.com/dmitrymomot/schemakit/pkg/requestid"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

type routerConfig struct {
	maxBodyBytes int64
	logger       *slog.Logger
	registry     *prometheus.Registry
}

func newRouter(schemas map[string]*validator.Schema, cfg routerConfig) http.Handler {
	metrics := httpvalidate.NewMetrics(cfg.registry)

	opts := []httpvalidate.Option{
		httpvalidate.WithMetrics(metrics),
		httpvalidate.WithLogger(cfg.logger),
	}
	if cfg.maxBodyBytes > 0 {
		opts = append(opts, httpvalidate.WithMaxBodySize(cfg.maxBodyBytes))
	}

	handlers := make(map[string]http.Handler, len(schemas))
	for name, schema := range schemas {
		handlers[name] = httpvalidate.Handler(schema, opts...)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthHandler())
	r.Handle("/metrics", promhttp.HandlerFor(cfg.registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/schemas", func(w http.ResponseWriter, _ *http.Request) {
			names := make([]string, 0, len(schemas))
			for name := range schemas {
				names = append(names, name)
			}
			slices.Sort(names)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_ = json.NewEncoder(w).Encode(map[string][]string{"schemas": names})
		})

		r.Post("/validate/{schema}", func(w http.ResponseWriter, req *http.Request) {
			h, ok := handlers[chi.URLParam(req, "schema")]
			if !ok {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]map[string]string{
					"error": {"message": "unknown schema"},
				})
				return
			}
			h.ServeHTTP(w, req)
		})
	})

	return r
}
