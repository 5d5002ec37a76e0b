package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/calendar"
	"extensible-calendar/internal/model"
	"extensible-calendar/internal/scheduler"
	"extensible-calendar/pkg/datemath"
)

// resolve returns the named calendar, or the current one when name is empty.
// Callers must hold uc.mu.
func (uc *implUseCase) resolve(name string) (*calendar.Calendar, error) {
	if strings.TrimSpace(name) == "" {
		return uc.manager.Current()
	}
	return uc.manager.Get(name)
}

// parseDay accepts an ISO date or a relative phrase such as "tomorrow", read
// in the calendar's zone.
func (uc *implUseCase) parseDay(cal *calendar.Calendar, value string) (model.Date, error) {
	parser := datemath.NewParser(cal.Timezone())
	t, err := parser.ParseDay(value, uc.now().In(cal.Timezone()))
	if err != nil {
		return model.Date{}, err
	}
	return model.DateOf(t), nil
}

func parseDateTime(cal *calendar.Calendar, value string) (time.Time, error) {
	return datemath.NewParser(cal.Timezone()).ParseDateTime(strings.TrimSpace(value))
}

func (uc *implUseCase) info(cal *calendar.Calendar) agenda.CalendarInfo {
	return agenda.CalendarInfo{
		Name:       cal.Name(),
		Timezone:   cal.Timezone().String(),
		Current:    uc.manager.CurrentName() == cal.Name(),
		EventCount: cal.Scheduler().Len(),
	}
}

// observe records the outcome of operation op.
func (uc *implUseCase) observe(op string, err error) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.Operation(op, err)
	if errors.Is(err, scheduler.ErrSchedulingConflict) {
		uc.metrics.Conflict(op)
	}
}

func (uc *implUseCase) scheduled(source string, n int) {
	if uc.metrics != nil {
		uc.metrics.EventsScheduled(source, n)
	}
}

func (uc *implUseCase) countCalendars() {
	if uc.metrics != nil {
		uc.metrics.SetCalendars(len(uc.manager.Names()))
	}
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", agenda.ErrInvalidInput, field)
	}
	return nil
}
