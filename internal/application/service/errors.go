package service

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotFound is returned when the referenced record does not exist
	ErrRecordNotFound = errors.New("record not found")

	// ErrRenderingUnavailable is returned when a document type that requires
	// approved status is requested for a record that is not approved
	ErrRenderingUnavailable = errors.New("document not available for current status")
)

// ValidationError reports a missing or malformed field on a workflow
// operation. The operation is rejected with no state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
