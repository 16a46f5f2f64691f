package lineup

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two input-validation failure modes. Everything
// else in this package is total: given valid inputs, computation cannot fail.
var (
	ErrInvalidSlotModel      = errors.New("invalid slot model")
	ErrMalformedRosterPlayer = errors.New("malformed roster player")
)

// SlotModelError describes why a slot model failed validation. It unwraps
// to ErrInvalidSlotModel so callers can match with errors.Is.
type SlotModelError struct {
	Reason string
}

func (e *SlotModelError) Error() string {
	return fmt.Sprintf("invalid slot model: %s", e.Reason)
}

func (e *SlotModelError) Unwrap() error {
	return ErrInvalidSlotModel
}

func invalidSlotModel(format string, args ...interface{}) error {
	return &SlotModelError{Reason: fmt.Sprintf(format, args...)}
}
