package recurrence

import "errors"

var (
	ErrInvalidRecurrenceTemplate = errors.New("recurring event must start and end on the same day")
	ErrInvalidDayCode            = errors.New("invalid day code")
	ErrMissingDayCode            = errors.New("repeat rule is missing day codes")
	ErrInvalidRepeatCount        = errors.New("repeat count must be positive")
	ErrInvalidRecurrenceRule     = errors.New("invalid repeat rule")
)
