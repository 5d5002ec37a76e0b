package calendar

import "errors"

var (
	ErrInvalidTimezone         = errors.New("invalid timezone")
	ErrCalendarNotFound        = errors.New("calendar not found")
	ErrDuplicateCalendarName   = errors.New("calendar name already exists")
	ErrNoCalendarSelected      = errors.New("no calendar selected")
	ErrInvalidCalendarProperty = errors.New("invalid calendar property")
	ErrInvalidCalendarName     = errors.New("calendar name cannot be empty")
)
