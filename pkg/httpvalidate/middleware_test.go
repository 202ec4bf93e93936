package httpvalidate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/httpvalidate"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func signupSchema() *validator.Schema {
	return validator.CreateSchema(validator.Definition{
		{Name: "email", Validator: validator.String().Required().Email()},
		{Name: "age", Validator: validator.Number().Min(18)},
	}, validator.Strict(), validator.WithName("signup"))
}

func post(h http.Handler, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type errorPayload struct {
	Error struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorPayload {
	t.Helper()
	var p errorPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func TestMiddleware(t *testing.T) {
	var reached bool
	var record map[string]any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		record, _ = httpvalidate.RecordFromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
	})

	reg := prometheus.NewRegistry()
	metrics := httpvalidate.NewMetrics(reg)
	h := httpvalidate.Middleware(signupSchema(), httpvalidate.WithMetrics(metrics), httpvalidate.WithMaxBodySize(64))(next)

	t.Run("passes valid body with record in context", func(t *testing.T) {
		reached = false
		rec := post(h, "application/json; charset=utf-8", `{"email":"a@b.co","age":30}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, reached)
		assert.Equal(t, "a@b.co", record["email"])
	})

	t.Run("rejects schema violations with 422", func(t *testing.T) {
		reached = false
		rec := post(h, "application/json", `{"email":"a@b.co","age":12}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.False(t, reached)

		p := decodeError(t, rec)
		assert.Equal(t, "age", p.Error.Field)
		assert.Equal(t, "Value must be greater than or equal to 18", p.Error.Message)
	})

	t.Run("reports first unexpected key in body order", func(t *testing.T) {
		rec := post(h, "application/json", `{"email":"a@b.co","zz":1,"aa":2}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "zz", decodeError(t, rec).Error.Field)
	})

	t.Run("rejects wrong content type", func(t *testing.T) {
		rec := post(h, "text/plain", `{}`)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		rec = post(h, "", `{}`)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		rec := post(h, "application/json", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, httpvalidate.ErrInvalidBody.Error(), decodeError(t, rec).Error.Message)
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		rec := post(h, "application/json", `{"email":"`+strings.Repeat("a", 100)+`@b.co"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("counts outcomes", func(t *testing.T) {
		assert.Equal(t, float64(1), counterValue(t, reg, "valid"))
		assert.Equal(t, float64(2), counterValue(t, reg, "rejected"))
		assert.Equal(t, float64(2), counterValue(t, reg, "unsupported"))
		assert.Equal(t, float64(1), counterValue(t, reg, "malformed"))
		assert.Equal(t, float64(1), counterValue(t, reg, "too_large"))
	})
}

func counterValue(t *testing.T, reg *prometheus.Registry, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "schemakit_validations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["schema"] == "signup" && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestHandler(t *testing.T) {
	h := httpvalidate.Handler(signupSchema())

	t.Run("answers success message", func(t *testing.T) {
		rec := post(h, "application/json", `{"email":"a@b.co"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Validation successful"}`, rec.Body.String())
	})

	t.Run("answers missing required field", func(t *testing.T) {
		rec := post(h, "application/json", `{"age":40}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"error":{"field":"email","message":"Field is required"}}`, rec.Body.String())
	})
}

func TestMiddleware_NilSchemaPanics(t *testing.T) {
	assert.Panics(t, func() { httpvalidate.Middleware(nil) })
}
