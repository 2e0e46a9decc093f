package services

import (
	"errors"
	"fmt"
)

// ErrNoSleepData is returned by the sleep-duration average when the
// lookback window contains no records: an empty mean is undefined, not zero.
var ErrNoSleepData = errors.New("no sleep records in window")

// ValidationError reports caller input that is missing or violates a
// documented constraint. Correcting the input makes the call succeed.
type ValidationError struct {
	Field  string
	Reason string
}

func (validationError *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", validationError.Field, validationError.Reason)
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Field string
	Value string
}

func (conflictError *ConflictError) Error() string {
	return fmt.Sprintf("%s %q is already in use", conflictError.Field, conflictError.Value)
}

// NotFoundError reports a referenced record that does not exist, including
// child records looked up under the wrong owner.
type NotFoundError struct {
	Kind string
	ID   string
}

func (notFoundError *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", notFoundError.Kind, notFoundError.ID)
}

// InvalidStateError reports stored data outside a closed domain. It means
// the store was corrupted upstream; the value is surfaced, never coerced.
type InvalidStateError struct {
	Kind  string
	Field string
	Value string
}

func (invalidStateError *InvalidStateError) Error() string {
	return fmt.Sprintf("%s has out-of-domain %s %q", invalidStateError.Kind, invalidStateError.Field, invalidStateError.Value)
}

func IsValidation(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

func IsConflict(err error) bool {
	var conflictError *ConflictError
	return errors.As(err, &conflictError)
}

func IsNotFound(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

func IsInvalidState(err error) bool {
	var invalidStateError *InvalidStateError
	return errors.As(err, &invalidStateError)
}
