package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Schema records the schema name under the key "schema".
// An empty name yields an empty Attr.
func Schema(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("schema", name)
}

// Field records the offending field under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Reason records a failure message under the key "reason".
func Reason(msg string) slog.Attr {
	return slog.String("reason", msg)
}

// Outcome records a validation outcome under the key "outcome".
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
