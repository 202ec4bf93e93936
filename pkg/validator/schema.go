package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/schemakit/pkg/logger"
)

// Field binds a validator to a record key.
type Field struct {
	Name      string
	Validator FieldValidator
}

// Definition lists schema fields in declaration order. Fields are checked
// in this order, so the first failing field wins.
type Definition []Field

// SchemaOption configures a Schema.
type SchemaOption func(*Schema)

// Strict rejects record keys that the schema does not declare.
func Strict() SchemaOption {
	return func(s *Schema) { s.only = true }
}

// WithName labels the schema in log records.
func WithName(name string) SchemaOption {
	return func(s *Schema) { s.name = name }
}

// WithLogger sets the logger used to report rejected records at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) SchemaOption {
	return func(s *Schema) {
		if l != nil {
			s.logger = l
		}
	}
}

// Schema validates whole records against a fixed set of field validators.
// It is immutable once created and safe for concurrent use.
type Schema struct {
	name     string
	fields   Definition
	declared map[string]struct{}
	only     bool
	logger   *slog.Logger
}

// CreateSchema builds a Schema from def. It panics on empty or duplicate
// field names and on nil validators.
func CreateSchema(def Definition, opts ...SchemaOption) *Schema {
	s := &Schema{
		fields:   slices.Clone(def),
		declared: make(map[string]struct{}, len(def)),
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, f := range s.fields {
		if f.Name == "" {
			panic(fmt.Errorf("%w: empty field name", ErrInvalidSchema))
		}
		if f.Validator == nil {
			panic(fmt.Errorf("%w: field %q has no validator", ErrInvalidSchema, f.Name))
		}
		if _, dup := s.declared[f.Name]; dup {
			panic(fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f.Name))
		}
		s.declared[f.Name] = struct{}{}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the label set with WithName.
func (s *Schema) Name() string {
	return s.name
}

// Strict reports whether undeclared keys are rejected.
func (s *Schema) Strict() bool {
	return s.only
}

// Validate checks record and returns MsgSuccess when it passes. In strict
// mode undeclared keys are reported in lexical order, since Go maps carry
// no key order; use ValidateJSON to report them in document order.
func (s *Schema) Validate(record map[string]any) (string, error) {
	return s.validate(record, slices.Sorted(maps.Keys(record)))
}

// ValidateJSON decodes data as a JSON object and validates it. Numbers are
// decoded as json.Number. Decoding failures wrap ErrInvalidRecord and are
// not ValidationErrors.
func (s *Schema) ValidateJSON(data []byte) (string, error) {
	record, keys, err := DecodeRecord(data)
	if err != nil {
		return "", err
	}
	return s.ValidateOrdered(record, keys)
}

// ValidateOrdered is Validate with an explicit key enumeration order for
// record, as returned by DecodeRecord. Strict mode reports the first
// undeclared key in that order. Entries of keys absent from record are
// ignored, and record keys missing from keys follow in lexical order.
func (s *Schema) ValidateOrdered(record map[string]any, keys []string) (string, error) {
	return s.validate(record, enumerationOrder(record, keys))
}

// enumerationOrder returns every key of record exactly once: first those
// listed in keys, then the rest sorted.
func enumerationOrder(record map[string]any, keys []string) []string {
	order := make([]string, 0, len(record))
	seen := make(map[string]struct{}, len(record))
	for _, key := range keys {
		if _, ok := record[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		order = append(order, key)
	}
	if len(order) == len(record) {
		return order
	}
	for _, key := range slices.Sorted(maps.Keys(record)) {
		if _, ok := seen[key]; !ok {
			order = append(order, key)
		}
	}
	return order
}

func (s *Schema) validate(record map[string]any, keys []string) (string, error) {
	if err := s.check(record, keys); err != nil {
		if ve, ok := ExtractValidationError(err); ok {
			s.logger.Debug("record rejected",
				logger.Schema(s.name),
				logger.Field(ve.Field),
				logger.Reason(ve.Message),
			)
		}
		return "", err
	}
	return MsgSuccess, nil
}

func (s *Schema) check(record map[string]any, keys []string) error {
	if s.only {
		for _, key := range keys {
			if _, ok := s.declared[key]; !ok {
				return newValidationError(key, fmt.Sprintf(MsgUnexpectedField, key))
			}
		}
	}

	for _, f := range s.fields {
		if _, ok := record[f.Name]; !ok && f.Validator.IsRequired() {
			return newValidationError(f.Name, MsgFieldRequired)
		}
	}

	for _, f := range s.fields {
		value, ok := record[f.Name]
		if !ok {
			continue
		}
		if err := f.Validator.Validate(value, f.Name); err != nil {
			return err
		}
	}

	return nil
}

// DecodeRecord decodes a JSON object and returns its top-level keys in
// document order. Duplicate keys keep their first position and last value.
func DecodeRecord(data []byte) (map[string]any, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, errors.Join(ErrInvalidRecord, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, ErrInvalidRecord
	}

	record := make(map[string]any)
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, errors.Join(ErrInvalidRecord, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, ErrInvalidRecord
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, nil, errors.Join(ErrInvalidRecord, err)
		}
		if _, seen := record[key]; !seen {
			keys = append(keys, key)
		}
		record[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, errors.Join(ErrInvalidRecord, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidRecord)
	}

	return record, keys, nil
}
