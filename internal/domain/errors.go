// Package domain contains business logic types and errors.
// Domain failures represent business-level rule violations, NOT HTTP errors.
// They are infrastructure-agnostic and are mapped to HTTP responses by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrContentNotAllowed indicates submitted content contains denylisted terms.
	ErrContentNotAllowed = errors.New("content not allowed")
)

// Failure is the closed set of business failures a handler may raise.
// Only types in this package can implement it; adapters switch over the
// concrete variants and treat any other error as unclassified.
type Failure interface {
	error

	// Messages renders the human-readable messages carried by the failure.
	Messages() []string

	failure()
}

// UserNotFoundError reports that no user exists for a username.
type UserNotFoundError struct {
	Username string
}

// Error implements the error interface.
func (e *UserNotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}

	return fmt.Sprintf("User `%s` not found", e.Username)
}

// Messages returns exactly one message.
func (e *UserNotFoundError) Messages() []string {
	return []string{e.Error()}
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UserNotFoundError) Unwrap() error {
	return ErrNotFound
}

func (*UserNotFoundError) failure() {}

// NewUserNotFoundError creates a user not found failure.
func NewUserNotFoundError(username string) error {
	return &UserNotFoundError{Username: username}
}

// ContentNotAllowedError reports the denylisted terms found in submitted content.
type ContentNotAllowedError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *ContentNotAllowedError) Error() string {
	if e == nil {
		return ErrContentNotAllowed.Error()
	}

	switch len(e.Violations) {
	case 0:
		return ErrContentNotAllowed.Error()
	case 1:
		return fmt.Sprintf("%s: %s", ErrContentNotAllowed, e.Violations[0])
	default:
		return fmt.Sprintf("%s: %s (and %d more)", ErrContentNotAllowed, e.Violations[0], len(e.Violations)-1)
	}
}

// Messages returns one message per violation, preserving order.
func (e *ContentNotAllowedError) Messages() []string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.String())
	}

	return msgs
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ContentNotAllowedError) Unwrap() error {
	return ErrContentNotAllowed
}

func (*ContentNotAllowedError) failure() {}

// NewContentNotAllowedError creates a content failure from the given violations.
// The slice is copied so later changes by the caller are not observed.
func NewContentNotAllowedError(violations []Violation) error {
	vs := make([]Violation, len(violations))
	copy(vs, violations)

	return &ContentNotAllowedError{Violations: vs}
}

// AsFailure extracts a Failure from an error chain.
func AsFailure(err error) (Failure, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f, true
	}

	return nil, false
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsContentNotAllowed checks if an error is a content not allowed error.
func IsContentNotAllowed(err error) bool {
	return errors.Is(err, ErrContentNotAllowed)
}
