package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryCycle      Category = "cycle"
	CategoryNotFound   Category = "not_found"
	CategoryUsage      Category = "usage"
	CategoryType       Category = "type"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// Sentinel errors, one per category. Every *Error unwraps to the sentinel of
// its category.
var (
	ErrValidation   = stderrors.New("tagkit: validation failed")
	ErrCyclicGraph  = stderrors.New("tagkit: cyclic node graph")
	ErrNotFound     = stderrors.New("tagkit: no matching node")
	ErrUsage        = stderrors.New("tagkit: invalid usage")
	ErrUnrenderable = stderrors.New("tagkit: value cannot be rendered")
	ErrConfig       = stderrors.New("tagkit: invalid configuration")
)

var sentinels = map[Category]error{
	CategoryValidation: ErrValidation,
	CategoryCycle:      ErrCyclicGraph,
	CategoryNotFound:   ErrNotFound,
	CategoryUsage:      ErrUsage,
	CategoryType:       ErrUnrenderable,
	CategoryConfig:     ErrConfig,
}

// Sentinel returns the sentinel error for a category, or nil.
func (c Category) Sentinel() error {
	return sentinels[c]
}

// Error is a structured error with a code, an explanation and a fix hint.
type Error struct {
	// Code is a unique error identifier (e.g., "T001").
	Code string

	// Category is the error type (validation, cycle, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap exposes both the category sentinel and the wrapped error to
// errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Category.Sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Wrapped != nil {
		errs = append(errs, e.Wrapped)
	}
	return errs
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted explanation to the error.
func (e *Error) WithDetailf(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := GetTemplate(code)
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error. Errors that already are an
// *Error are returned unchanged.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var te *Error
	if stderrors.As(err, &te) {
		return te
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first *Error in err's chain, or "".
func Code(err error) string {
	var te *Error
	if stderrors.As(err, &te) {
		return te.Code
	}
	return ""
}
