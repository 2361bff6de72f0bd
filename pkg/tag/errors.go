package tag

import "github.com/vango-dev/tagkit/internal/errors"

// Errors returned by this package, for use with errors.Is.
var (
	// ErrValidation reports a self-closing element given children.
	ErrValidation = errors.ErrValidation

	// ErrCyclicGraph reports an insertion that would make a node its own
	// descendant. The tree is left unchanged.
	ErrCyclicGraph = errors.ErrCyclicGraph

	// ErrNotFound reports a popping query that matched nothing.
	ErrNotFound = errors.ErrNotFound

	// ErrUsage reports a node instance or unsupported value used as a
	// selector, and other misuse such as an invalid callback.
	ErrUsage = errors.ErrUsage

	// ErrUnrenderable reports a child that is not a node, text or Renderable.
	ErrUnrenderable = errors.ErrUnrenderable
)
