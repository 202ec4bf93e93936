package httpserver

import "errors"

var (
	// ErrStart wraps every failure returned by Run, including listen errors.
	ErrStart = errors.New("httpserver: start failed")

	// ErrAlreadyRunning is joined with ErrStart when Run is called twice.
	ErrAlreadyRunning = errors.New("httpserver: already running")

	// ErrShutdown wraps errors from http.Server.Shutdown.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
