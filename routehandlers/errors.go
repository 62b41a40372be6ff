package routehandlers

import "errors"

var (
	// ErrNoLogger is returned when a logging middleware is configured
	// without a logger.
	ErrNoLogger = errors.New("routehandlers: logger is required")

	// ErrNoRouter is returned when a middleware that navigates is
	// configured without a router.
	ErrNoRouter = errors.New("routehandlers: router is required")
)
