package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownPattern is reported when a rule references a name missing from the table.
	ErrUnknownPattern = errors.New("unknown validation pattern")
)
