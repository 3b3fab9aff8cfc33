// Package errors provides error types and utilities for webchain.
// It extends the standard errors package with sentinel errors for the recon
// pipeline and a small wrapping helper.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrInvalidInput indicates invalid input was provided (flags, targets, settings)
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested file or resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrToolNotFound indicates an external executable is not in PATH
	ErrToolNotFound = errors.New("executable not found")

	// ErrOutputDir indicates the output directory could not be created
	ErrOutputDir = errors.New("output directory not usable")

	// ErrInterrupted indicates the operator interrupted the run
	ErrInterrupted = errors.New("interrupted")

	// ErrStageFailed indicates a stage failed and the failure policy is abort
	ErrStageFailed = errors.New("stage failed")

	// ErrNoURLs indicates there is nothing to hand to the AI collaborator
	ErrNoURLs = errors.New("no urls to analyze")

	// ErrUnauthorized indicates authentication or authorization failed
	ErrUnauthorized = errors.New("unauthorized")

	// ErrServiceUnavailable indicates a service is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidResponse indicates a response could not be parsed or was malformed
	ErrInvalidResponse = errors.New("invalid response")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	if err := os.MkdirAll(dir, 0o755); err != nil {
//	    return errors.Wrap(err, "create domain directory")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsInterrupted reports whether the error comes from an operator interrupt
func IsInterrupted(err error) bool {
	return Is(err, ErrInterrupted)
}

// IsToolNotFound reports whether an executable was missing
func IsToolNotFound(err error) bool {
	return Is(err, ErrToolNotFound)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}

// IsNotFound reports whether the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}
