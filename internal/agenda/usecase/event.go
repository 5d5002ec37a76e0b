package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/calendar"
	"extensible-calendar/internal/model"
	"extensible-calendar/internal/recurrence"
	"extensible-calendar/internal/scheduler"
)

func (uc *implUseCase) CreateEvent(ctx context.Context, input agenda.CreateEventInput) (out agenda.CreateEventOutput, err error) {
	defer func() { uc.observe("create_event", err) }()

	if err := required("name", input.Name); err != nil {
		return out, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cal, err := uc.resolve(input.Calendar)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateEvent.resolve: %v", err)
		return out, err
	}

	start, end, fullDay, err := uc.eventSpan(cal, input)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateEvent.eventSpan: %v", err)
		return out, err
	}

	s := cal.Scheduler()
	var events []*model.Event
	if strings.TrimSpace(input.Repeat) != "" {
		events, err = s.CreateRecurring(recurrence.Input{
			Name:    input.Name,
			Start:   start,
			End:     end,
			Rule:    input.Repeat,
			FullDay: fullDay,
		})
	} else {
		var ev *model.Event
		ev, err = s.Create(input.Name, start, end, fullDay)
		events = []*model.Event{ev}
	}
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateEvent.create: %v", err)
		return out, err
	}

	for _, ev := range events {
		ev.Description = input.Description
		ev.Location = input.Location
		ev.Public = !input.Private
	}

	if err := s.ScheduleBatch(events); err != nil {
		uc.l.Warnf(ctx, "uc.CreateEvent.ScheduleBatch: %v", err)
		return out, err
	}

	source := "single"
	if strings.TrimSpace(input.Repeat) != "" {
		source = "recurring"
	}
	uc.scheduled(source, len(events))
	uc.l.Infof(ctx, "uc.CreateEvent: scheduled %d event(s) %q in %s", len(events), input.Name, cal.Name())

	out = agenda.CreateEventOutput{
		Calendar: cal.Name(),
		Events:   make([]model.Event, 0, len(events)),
	}
	for _, ev := range events {
		out.Events = append(out.Events, *ev)
	}
	return out, nil
}

// eventSpan derives the event bounds from the input shape.
func (uc *implUseCase) eventSpan(cal *calendar.Calendar, input agenda.CreateEventInput) (time.Time, time.Time, bool, error) {
	hasStart := strings.TrimSpace(input.Start) != ""
	hasEnd := strings.TrimSpace(input.End) != ""
	hasDate := strings.TrimSpace(input.Date) != ""
	hasRepeat := strings.TrimSpace(input.Repeat) != ""

	switch {
	case hasDate && (hasStart || hasEnd):
		return time.Time{}, time.Time{}, false, fmt.Errorf("%w: date cannot be combined with start or end", agenda.ErrInvalidInput)

	case hasDate:
		day, err := uc.parseDay(cal, input.Date)
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		loc := cal.Timezone()
		return day.In(loc), day.AddDays(1).In(loc), true, nil

	case hasStart && hasEnd:
		start, err := parseDateTime(cal, input.Start)
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		end, err := parseDateTime(cal, input.End)
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		return start, end, false, nil

	case hasStart:
		if hasRepeat {
			return time.Time{}, time.Time{}, false, fmt.Errorf("%w: a recurring event needs start and end, or a date", agenda.ErrInvalidInput)
		}
		start, err := parseDateTime(cal, input.Start)
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		return start, model.DateOf(start).AddDays(1).In(cal.Timezone()), true, nil

	default:
		return time.Time{}, time.Time{}, false, fmt.Errorf("%w: start or date is required", agenda.ErrInvalidInput)
	}
}

func (uc *implUseCase) EditEvents(ctx context.Context, input agenda.EditEventsInput) (out agenda.EditEventsOutput, err error) {
	defer func() { uc.observe("edit_events", err) }()

	if err := required("name", input.Name); err != nil {
		return out, err
	}
	switch scheduler.ParseProperty(input.Property) {
	case scheduler.PropertyName, scheduler.PropertyDescription, scheduler.PropertyLocation, scheduler.PropertyPublic:
	default:
		return out, fmt.Errorf("%w: %q", agenda.ErrUnsupportedProperty, input.Property)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cal, err := uc.resolve(input.Calendar)
	if err != nil {
		uc.l.Warnf(ctx, "uc.EditEvents.resolve: %v", err)
		return out, err
	}
	s := cal.Scheduler()

	switch input.Mode {
	case agenda.EditModeSingle:
		start, end, err := parseBounds(cal, input.Start, input.End)
		if err != nil {
			return out, err
		}
		ok, err := s.UpdateSingle(input.Property, input.Name, start, end, input.Value)
		if err != nil {
			uc.l.Warnf(ctx, "uc.EditEvents.UpdateSingle: %v", err)
			return out, err
		}
		if ok {
			out.Updated = 1
		}

	case agenda.EditModeFrom:
		if err := required("start", input.Start); err != nil {
			return out, err
		}
		from, err := parseDateTime(cal, input.Start)
		if err != nil {
			return out, err
		}
		out.Updated = s.UpdateFromStart(input.Property, input.Name, from, input.Value)

	case agenda.EditModeAll:
		out.Updated, err = s.UpdateAllByName(input.Property, input.Name, input.Value)
		if err != nil {
			uc.l.Warnf(ctx, "uc.EditEvents.UpdateAllByName: %v", err)
			return out, err
		}

	default:
		return out, fmt.Errorf("%w: %q", agenda.ErrInvalidEditMode, input.Mode)
	}

	uc.l.Infof(ctx, "uc.EditEvents: %s of %q updated on %d event(s) in %s", input.Property, input.Name, out.Updated, cal.Name())
	return out, nil
}

func parseBounds(cal *calendar.Calendar, rawStart, rawEnd string) (time.Time, time.Time, error) {
	if err := required("start", rawStart); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if err := required("end", rawEnd); err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, err := parseDateTime(cal, rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateTime(cal, rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
