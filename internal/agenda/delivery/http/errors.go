package http

import (
	"errors"
	"fmt"
	"net/http"

	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/calendar"
	"extensible-calendar/internal/csvio"
	"extensible-calendar/internal/model"
	"extensible-calendar/internal/recurrence"
	"extensible-calendar/internal/scheduler"
	"extensible-calendar/pkg/datemath"
	pkgErrors "extensible-calendar/pkg/errors"
)

var (
	badRequestErrors = []error{
		agenda.ErrInvalidInput,
		agenda.ErrInvalidEditMode,
		agenda.ErrUnsupportedProperty,
		model.ErrInvalidTimeRange,
		datemath.ErrInvalidDate,
		datemath.ErrInvalidDateTime,
		recurrence.ErrInvalidRecurrenceTemplate,
		recurrence.ErrInvalidDayCode,
		recurrence.ErrMissingDayCode,
		recurrence.ErrInvalidRepeatCount,
		recurrence.ErrInvalidRecurrenceRule,
		scheduler.ErrInvalidPropertyValue,
		calendar.ErrInvalidTimezone,
		calendar.ErrInvalidCalendarProperty,
		calendar.ErrInvalidCalendarName,
		csvio.ErrMalformedRow,
	}
	notFoundErrors = []error{
		calendar.ErrCalendarNotFound,
		calendar.ErrNoCalendarSelected,
		scheduler.ErrEventNotFound,
	}
	conflictErrors = []error{
		scheduler.ErrSchedulingConflict,
		calendar.ErrDuplicateCalendarName,
	}
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// The domain message is kept so callers see which event or calendar failed.
func (h *handler) mapError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("csv document exceeds %d bytes", tooLarge.Limit))
	case isAny(err, conflictErrors):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case isAny(err, notFoundErrors):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case isAny(err, badRequestErrors):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
