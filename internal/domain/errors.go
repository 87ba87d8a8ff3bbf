package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a keyed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks user input that could not be parsed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotPositioned is returned by a cursor read before the first advance.
	ErrNotPositioned = errors.New("cursor not positioned")
	// ErrExhausted is returned by a cursor read after the last element.
	ErrExhausted = errors.New("cursor exhausted")
	// ErrInvalidConfig wraps configuration that fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// InputError describes a value typed at the console that failed to parse.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s %q", e.Field, e.Value)
}

// Unwrap lets errors.Is match both ErrInvalidInput and the parse cause.
func (e *InputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Err}
}

// ExportError reports a report file that could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
