package httpvalidate

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrInvalidBody          = errors.New("request body must be a JSON object")
)
