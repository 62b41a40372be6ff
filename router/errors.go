package router

import "errors"

var (
	// ErrConfiguration is returned when a router or route is set up with
	// invalid options, e.g. a route without middleware or an unknown
	// location adapter.
	ErrConfiguration = errors.New("router: invalid configuration")

	// ErrReference is returned when a route reference passed to a lookup or
	// navigation helper is empty or does not resolve to a registered route.
	ErrReference = errors.New("router: invalid route reference")
)
