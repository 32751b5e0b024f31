// Package service contains the business logic for the chat cache service.
package service

import (
	"errors"
	"fmt"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ValidationError reports a record that is missing required identity fields
// and was rejected before being cached.
type ValidationError struct {
	Kind   string
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: field %q %s", e.Kind, e.Field, e.Reason)
}

// newMissingFieldError builds a ValidationError for an empty required field.
func newMissingFieldError(kind, field string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Reason: "must not be empty"}
}

// CacheOperationError reports a failed read-through: the entity was not
// cached and the backing fetch failed. It wraps the underlying cause.
type CacheOperationError struct {
	Op   string
	Kind string
	Key  string
	Err  error
}

// Error implements the error interface.
func (e *CacheOperationError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", e.Op, e.Kind, e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CacheOperationError) Unwrap() error {
	return e.Err
}

// newFetchError builds a CacheOperationError for a failed read-through fetch.
func newFetchError(kind, key string, err error) *CacheOperationError {
	return &CacheOperationError{Op: "fetch", Kind: kind, Key: key, Err: err}
}
