// Package httpvalidate validates JSON request bodies against a
// validator.Schema before they reach a handler.
//
//	signup := validator.CreateSchema(def, validator.Strict(), validator.WithName("signup"))
//	r.With(httpvalidate.Middleware(signup, httpvalidate.WithMetrics(m))).Post("/signup", createAccount)
//
// Rejected bodies never reach the next handler:
//
//   - 415 when Content-Type is not application/json
//   - 413 when the body exceeds the configured limit
//   - 400 when the body is not a JSON object
//   - 422 with {"error":{"field":...,"message":...}} when the schema rejects it
//
// Accepted records are stored in the request context; see RecordFromContext.
package httpvalidate
