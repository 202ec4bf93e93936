package main

import (
	"log/slog"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// builtinSchemas returns the schemas served by schemad, keyed by name.
func builtinSchemas(log *slog.Logger) map[string]*validator.Schema {
	opts := func(name string) []validator.SchemaOption {
		return []validator.SchemaOption{validator.WithName(name), validator.WithLogger(log)}
	}

	return map[string]*validator.Schema{
		"signup": validator.CreateSchema(validator.Definition{
			{Name: "email", Validator: validator.String().Required().Email()},
			{Name: "password", Validator: validator.String().Required().Min(8).Max(72)},
			{Name: "age", Validator: validator.Number().Min(13).Max(130)},
			{Name: "plan", Validator: validator.String().OneOf("free", "pro", "team")},
			{Name: "newsletter", Validator: validator.Boolean()},
		}, append(opts("signup"), validator.Strict())...),

		"contact": validator.CreateSchema(validator.Definition{
			{Name: "name", Validator: validator.String().Required().Min(2).Max(100)},
			{Name: "phone", Validator: validator.Number().Required().Phone()},
			{Name: "tags", Validator: validator.Array().MaxLength(10).Items(validator.String().Reg(`^[a-z0-9-]+$`))},
			{Name: "metadata", Validator: validator.JSON()},
		}, opts("contact")...),
	}
}
