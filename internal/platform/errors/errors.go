package apperrors

import (
	"errors"
)

// User conditions. Anything that does not wrap one of these is a system
// condition.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("already exists")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrClockRunning    = errors.New("clock already running")
	ErrNoClockRunning  = errors.New("no clock is running")
	ErrEndBeforeStart  = errors.New("end time must be after start time")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrMissingTiming   = errors.New("provide either --start/--end or --duration")
)

var userConditions = []error{
	ErrInvalidInput,
	ErrNotFound,
	ErrDuplicate,
	ErrEmptyName,
	ErrClockRunning,
	ErrNoClockRunning,
	ErrEndBeforeStart,
	ErrInvalidDuration,
	ErrMissingTiming,
}

const (
	ExitOK     = 0
	ExitUser   = 1
	ExitSystem = 2
)

// IsUser reports whether err is correctable by the caller supplying
// different input.
func IsUser(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range userConditions {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUser(err):
		return ExitUser
	default:
		return ExitSystem
	}
}

// Usage marks a command-line parsing failure as a user condition.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() []error { return []error{e.err, ErrInvalidInput} }
