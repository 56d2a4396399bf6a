package workflow

import "errors"

var (
	// ErrIllegalTransition is returned when a trigger is not permitted from
	// the current status, or the acting role may not fire it
	ErrIllegalTransition = errors.New("illegal transition")

	// ErrInvalidStatus is returned when a status is not a defined lifecycle value
	ErrInvalidStatus = errors.New("invalid status")
)
