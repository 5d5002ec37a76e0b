package usecase

import (
	"context"
	"strings"

	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/calendar"
)

func (uc *implUseCase) CreateCalendar(ctx context.Context, input agenda.CreateCalendarInput) (out agenda.CalendarOutput, err error) {
	defer func() { uc.observe("create_calendar", err) }()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cal, err := uc.manager.Create(input.Name, input.Timezone)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateCalendar: %v", err)
		return out, err
	}
	uc.countCalendars()
	uc.l.Infof(ctx, "uc.CreateCalendar: created %s (%s)", cal.Name(), cal.Timezone())

	return agenda.CalendarOutput{Calendar: uc.info(cal)}, nil
}

func (uc *implUseCase) UseCalendar(ctx context.Context, name string) (err error) {
	defer func() { uc.observe("use_calendar", err) }()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.manager.Use(name); err != nil {
		uc.l.Warnf(ctx, "uc.UseCalendar: %v", err)
		return err
	}
	uc.l.Debugf(ctx, "uc.UseCalendar: now using %s", name)
	return nil
}

func (uc *implUseCase) EditCalendar(ctx context.Context, input agenda.EditCalendarInput) (out agenda.CalendarOutput, err error) {
	defer func() { uc.observe("edit_calendar", err) }()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.manager.Edit(input.Name, input.Property, input.Value); err != nil {
		uc.l.Warnf(ctx, "uc.EditCalendar: %v", err)
		return out, err
	}

	name := input.Name
	if strings.EqualFold(strings.TrimSpace(input.Property), calendar.PropertyName) {
		name = input.Value
	}
	cal, err := uc.manager.Get(name)
	if err != nil {
		uc.l.Errorf(ctx, "uc.EditCalendar: %v", err)
		return out, err
	}
	return agenda.CalendarOutput{Calendar: uc.info(cal)}, nil
}

func (uc *implUseCase) ListCalendars(ctx context.Context) (agenda.ListCalendarsOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	names := uc.manager.Names()
	out := agenda.ListCalendarsOutput{
		Calendars: make([]agenda.CalendarInfo, 0, len(names)),
		Current:   uc.manager.CurrentName(),
	}
	for _, name := range names {
		cal, err := uc.manager.Get(name)
		if err != nil {
			uc.l.Errorf(ctx, "uc.ListCalendars: %v", err)
			return agenda.ListCalendarsOutput{}, err
		}
		out.Calendars = append(out.Calendars, uc.info(cal))
	}
	return out, nil
}
