package tracker

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownUser      = errors.New("unknown user")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrSelectionReturn  = errors.New("return requested")
	ErrUserExists       = errors.New("user already exists")
	ErrEmptyUsername    = errors.New("username must not be empty")
	ErrInvalidText      = errors.New("text must not contain ';' or line breaks")
	ErrTaskCompleted    = errors.New("task is already completed")
	ErrTaskNotFound     = errors.New("task not found")
)

// UnknownUserError reports a username missing from the user registry.
type UnknownUserError struct {
	Username string
}

func (e *UnknownUserError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownUser, e.Username)
}

func (e *UnknownUserError) Unwrap() error { return ErrUnknownUser }

// InvalidDateError reports input that is not a YYYY-MM-DD calendar date.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s %q: use the format YYYY-MM-DD", ErrInvalidDate, e.Input)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// InvalidSelectionError reports a task number that is not a number or is
// outside 1..Max.
type InvalidSelectionError struct {
	Input string
	Max   int
}

func (e *InvalidSelectionError) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("%s %q: no tasks to select", ErrInvalidSelection, e.Input)
	}
	return fmt.Sprintf("%s %q: choose a number from 1 to %d", ErrInvalidSelection, e.Input, e.Max)
}

func (e *InvalidSelectionError) Unwrap() error { return ErrInvalidSelection }

func invalidText(field string) error {
	return fmt.Errorf("%w: %s", ErrInvalidText, field)
}
