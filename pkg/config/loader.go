package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	files  []string
	prefix string
}

// Option configures Load.
type Option func(*options)

// WithEnvFiles sets the .env files read before parsing. Defaults to ".env".
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = files }
}

// WithPrefix prepends prefix to every env tag, e.g. "SCHEMAD_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load populates v from the environment.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{files: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	for _, file := range o.files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
