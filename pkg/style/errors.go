package style

import "github.com/vango-dev/tagkit/internal/errors"

// Errors returned by this package, for use with errors.Is.
var (
	// ErrValidation reports a flat stylesheet rendered without a selector,
	// a malformed declaration or an invalid stylesheet document.
	ErrValidation = errors.ErrValidation

	// ErrUnrenderable reports a rule value that is not a string, a number or
	// a nested rule set.
	ErrUnrenderable = errors.ErrUnrenderable
)
