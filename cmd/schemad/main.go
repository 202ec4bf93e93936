// Command schemad serves the built-in validation schemas over HTTP.
//
//	POST /v1/validate/{schema}   validate a JSON body against a named schema
//	GET  /v1/schemas             list schema names
//	GET  /healthz                liveness probe
//	GET  /metrics                Prometheus metrics
package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/schemakit/pkg/config"
	"github.com/dmitrymomot/schemakit/pkg/httpserver"
	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/requestid"
)

type Config struct {
	Env          string `env:"APP_ENV" envDefault:"production"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"json"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	HTTP         httpserver.Config
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithService("schemad", cfg.Env),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := newRouter(builtinSchemas(log), routerConfig{
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       log,
		registry:     reg,
	})

	if err := httpserver.New(cfg.HTTP, log).Run(context.Background(), router); err != nil {
		log.Error("schemad stopped", logger.Error(err))
		os.Exit(1)
	}
}
