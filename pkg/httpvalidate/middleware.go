package httpvalidate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

const defaultMaxBodySize = 1 << 20

// Option configures the middleware.
type Option func(*config)

type config struct {
	maxBodySize int64
	metrics     *Metrics
	logger      *slog.Logger
}

// WithMaxBodySize limits the accepted body size in bytes.
func WithMaxBodySize(n int64) Option {
	if n <= 0 {
		panic("WithMaxBodySize: size must be > 0")
	}
	return func(c *config) { c.maxBodySize = n }
}

// WithMetrics records every outcome on m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithLogger logs rejected requests at info level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

type recordKey struct{}

// RecordFromContext returns the record accepted by Middleware.
func RecordFromContext(ctx context.Context) (map[string]any, bool) {
	record, ok := ctx.Value(recordKey{}).(map[string]any)
	return record, ok
}

// Middleware rejects requests whose JSON body does not satisfy schema.
func Middleware(schema *validator.Schema, opts ...Option) func(http.Handler) http.Handler {
	g := newGuard(schema, opts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			record, ok := g.check(w, r)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), recordKey{}, record)))
		})
	}
}

// Handler validates the body and answers {"message":"Validation successful"}
// for accepted records.
func Handler(schema *validator.Schema, opts ...Option) http.Handler {
	g := newGuard(schema, opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := g.check(w, r); ok {
			writeJSON(w, http.StatusOK, successResponse{Message: validator.MsgSuccess})
		}
	})
}

type guard struct {
	schema *validator.Schema
	cfg    *config
}

func newGuard(schema *validator.Schema, opts []Option) *guard {
	if schema == nil {
		panic("httpvalidate: nil schema")
	}
	cfg := &config{maxBodySize: defaultMaxBodySize, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}
	return &guard{schema: schema, cfg: cfg}
}

func (g *guard) check(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	name := g.schema.Name()

	if err := checkContentType(r); err != nil {
		g.reject(w, r, http.StatusUnsupportedMediaType, OutcomeUnsupported, errorBody{Message: err.Error()})
		return nil, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, g.cfg.maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			g.reject(w, r, http.StatusRequestEntityTooLarge, OutcomeTooLarge, errorBody{Message: ErrBodyTooLarge.Error()})
			return nil, false
		}
		g.reject(w, r, http.StatusBadRequest, OutcomeMalformed, errorBody{Message: ErrInvalidBody.Error()})
		return nil, false
	}

	record, keys, err := validator.DecodeRecord(body)
	if err != nil {
		g.reject(w, r, http.StatusBadRequest, OutcomeMalformed, errorBody{Message: ErrInvalidBody.Error()})
		return nil, false
	}

	if _, err := g.schema.ValidateOrdered(record, keys); err != nil {
		ve, ok := validator.ExtractValidationError(err)
		if !ok {
			g.reject(w, r, http.StatusBadRequest, OutcomeMalformed, errorBody{Message: err.Error()})
			return nil, false
		}
		g.reject(w, r, http.StatusUnprocessableEntity, OutcomeRejected, errorBody{Field: ve.Field, Message: ve.Message})
		return nil, false
	}

	g.cfg.metrics.observe(name, OutcomeValid)
	return record, true
}

func (g *guard) reject(w http.ResponseWriter, r *http.Request, status int, outcome string, body errorBody) {
	g.cfg.metrics.observe(g.schema.Name(), outcome)
	g.cfg.logger.InfoContext(r.Context(), "request body rejected",
		logger.Schema(g.schema.Name()),
		logger.Outcome(outcome),
		slog.Int("status", status),
		logger.Field(body.Field),
		logger.Reason(body.Message),
	)
	writeJSON(w, status, errorResponse{Error: body})
}

func checkContentType(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrUnsupportedMediaType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: expected application/json", ErrUnsupportedMediaType)
	}
	return nil
}

type errorBody struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type successResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
