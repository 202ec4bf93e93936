// Package validator provides fluent, chainable field validators and a
// record-level Schema that checks map-shaped input against them.
//
// Validators are built with the factory functions String, Number, Boolean,
// Array and JSON, then refined with chained constraint methods. Every method
// appends one Rule to the validator and returns the same instance, so the
// declaration order of constraints is the order in which they run.
// Evaluation is fail-fast: the first failing Rule produces a
// *ValidationError and nothing after it runs.
//
// # Usage
//
//	signup := validator.CreateSchema(validator.Definition{
//	    {Name: "email", Validator: validator.String().Required().Email()},
//	    {Name: "age", Validator: validator.Number().Min(18).Max(130)},
//	    {Name: "tags", Validator: validator.Array().MaxLength(5).Items(validator.String().Min(2))},
//	    {Name: "newsletter", Validator: validator.Boolean()},
//	}, validator.Strict())
//
//	if _, err := signup.Validate(record); err != nil {
//	    if ve, ok := validator.ExtractValidationError(err); ok {
//	        // ve.Field, ve.Message
//	    }
//	}
//
// # Semantics
//
// A nil value is treated as unset: it passes unless Required was called, in
// which case the required Rule reports MsgRequired (empty strings count as
// missing too). Boolean and JSON validators run a type guard before their
// rules, including Required, so a required Boolean given nil reports
// MsgNotBoolean. Other validators guard types inside each Rule and report
// MsgNotString, MsgNotNumber or MsgNotArray for mismatched values. Numbers
// are never coerced from strings.
//
// Schema.Validate runs, in order: the strict-mode unknown-key check, the
// missing-required-key check, then each declared field's validator. The
// first failure wins.
//
// # Concurrency
//
// Validators and schemas must be fully built before they are shared.
// After that they are read-only and safe for concurrent use.
package validator
