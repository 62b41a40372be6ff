package pathmatch

import "errors"

// Compilation errors.
var (
	// ErrInvalidPattern is returned when a pattern cannot be parsed:
	// unbalanced groups, a parameter without a name, a duplicated
	// parameter name or a custom expression that is not a valid regexp.
	ErrInvalidPattern = errors.New("pathmatch: invalid pattern")
)

// Generation errors.
var (
	// ErrMissingParameter is returned by Matcher.Generate when a required
	// parameter has no value in the supplied mapping.
	ErrMissingParameter = errors.New("pathmatch: missing parameter")

	// ErrInvalidParameter is returned by Matcher.Generate when a value does
	// not satisfy the expression of its parameter.
	ErrInvalidParameter = errors.New("pathmatch: invalid parameter value")
)
