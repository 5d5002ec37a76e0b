package scheduler

import (
	"errors"
	"fmt"

	"extensible-calendar/internal/model"
)

var (
	ErrSchedulingConflict   = errors.New("scheduling conflict")
	ErrEventNotFound        = errors.New("event not found")
	ErrInvalidPropertyValue = errors.New("invalid property value")
)

// ConflictError reports the existing event a candidate collided with.
// It matches ErrSchedulingConflict under errors.Is.
type ConflictError struct {
	Candidate model.Event
	Existing  model.Event
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict with existing event: %s", e.Existing.Name)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrSchedulingConflict
}
