// Package config loads service configuration from environment variables
// into tagged Go structs.
//
// It wraps github.com/joho/godotenv for optional .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//	    Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithEnvFiles(".env")); err != nil {
//	    // handle
//	}
//
// Variables already present in the process environment win over values
// from .env files. Missing .env files are ignored.
package config
