package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the actor lacks permission. Callers surface a generic
	// forbidden response without leaking why.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidState means the operation is not legal in the entity's current
	// lifecycle state, e.g. responding to an already-answered request.
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError collects field-level messages for malformed or out-of-range
// input. Every violated field is reported, not just the first one.
type ValidationError struct {
	Fields map[string][]string `json:"errors"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message for the given field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ErrOrNil returns the error when any field failed, nil otherwise. Keeps
// callers from returning a typed nil inside an error interface.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// AsValidationError unwraps err into a *ValidationError if there is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
