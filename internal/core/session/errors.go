package session

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration indicates a goal that is not positive or exceeds
// model.MaxGoalMinutes.
var ErrInvalidDuration = errors.New("goal duration out of range")

// InvalidDurationError reports the rejected goal.
type InvalidDurationError struct {
	Minutes int
}

func (e *InvalidDurationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid goal of %d minutes: %v", e.Minutes, ErrInvalidDuration)
}

func (e *InvalidDurationError) Unwrap() error { return ErrInvalidDuration }
