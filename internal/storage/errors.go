package storage

import "errors"

// Common storage errors
var (
	ErrNotFound = errors.New("task not found")
)

// IsNotFound returns true if the error is a missing-task error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
