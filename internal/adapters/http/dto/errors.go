// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"strings"
)

// ErrBinding indicates the request body could not be bound or failed validation.
var ErrBinding = errors.New("binding failed")

// APIError is the body of every classified failure response:
//
//	{ "errors": ["msg1", "msg2"] }
type APIError struct {
	Errors []string `json:"errors"`
}

// NewAPIError creates an error body from the given messages.
// The messages are copied; the returned value is never mutated afterwards.
func NewAPIError(messages ...string) *APIError {
	errs := make([]string, len(messages))
	copy(errs, messages)

	return &APIError{Errors: errs}
}

// BindingError reports a request that could not be parsed into its DTO.
// It is produced by the binding layer, not by business rules.
type BindingError struct {
	Messages []string
	Err      error
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	if e == nil {
		return ErrBinding.Error()
	}

	return ErrBinding.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *BindingError) Unwrap() []error {
	if e == nil || e.Err == nil {
		return []error{ErrBinding}
	}

	return []error{ErrBinding, e.Err}
}
