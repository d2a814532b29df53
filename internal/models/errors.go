package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("task not found")

	// ErrNoDeadline is returned when a due date is set on a cycle.
	ErrNoDeadline = errors.New("recurring projects have no due date")

	// ErrNilTask is returned by UpdateTask for a nil replacement.
	ErrNilTask = errors.New("task is nil")
)

// NotFoundError reports a pid that is not a current key of the project.
type NotFoundError struct {
	PID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with pid %d does not exist", e.PID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
