package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrStorage marks a failed durable read or write. Callers surface it as
	// "couldn't save, try again"; retrying the same action is always safe.
	ErrStorage = errors.New("storage failure")
)
