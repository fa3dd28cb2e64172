package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds. Match with errors.Is; the HTTP layer maps each kind to one status code.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }

func NotFound(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, message: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...any) error {
	return &kindError{kind: ErrInvalidArgument, message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &kindError{kind: ErrConflict, message: fmt.Sprintf(format, args...)}
}

// ValidationError reports per-field input problems.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }
