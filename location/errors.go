package location

import "errors"

var (
	// ErrNotImplemented is raised when a Base is used without a bound
	// adapter providing the capability methods.
	ErrNotImplemented = errors.New("location: capability not implemented by the adapter")

	// ErrUnknownAdapter is returned when no factory is registered under
	// the requested adapter name.
	ErrUnknownAdapter = errors.New("location: unknown adapter")

	// ErrInvalidURL is returned when a host environment URL is not an
	// absolute URL or its host cannot be normalised.
	ErrInvalidURL = errors.New("location: invalid URL")
)
