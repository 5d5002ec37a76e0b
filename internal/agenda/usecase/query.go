package usecase

import (
	"context"
	"fmt"

	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/model"
)

func (uc *implUseCase) EventsOn(ctx context.Context, input agenda.EventsOnInput) (agenda.EventsOutput, error) {
	if err := required("date", input.Date); err != nil {
		return agenda.EventsOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cal, err := uc.resolve(input.Calendar)
	if err != nil {
		uc.l.Warnf(ctx, "uc.EventsOn.resolve: %v", err)
		return agenda.EventsOutput{}, err
	}
	day, err := uc.parseDay(cal, input.Date)
	if err != nil {
		return agenda.EventsOutput{}, err
	}

	return agenda.EventsOutput{
		Calendar: cal.Name(),
		Events:   cal.Scheduler().FetchOnDate(day),
	}, nil
}

func (uc *implUseCase) EventsInRange(ctx context.Context, input agenda.EventsInRangeInput) (agenda.EventsOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cal, err := uc.resolve(input.Calendar)
	if err != nil {
		uc.l.Warnf(ctx, "uc.EventsInRange.resolve: %v", err)
		return agenda.EventsOutput{}, err
	}
	start, end, err := parseBounds(cal, input.Start, input.End)
	if err != nil {
		return agenda.EventsOutput{}, err
	}
	if end.Before(start) {
		return agenda.EventsOutput{}, fmt.Errorf("%w: range end before start", model.ErrInvalidTimeRange)
	}

	return agenda.EventsOutput{
		Calendar: cal.Name(),
		Events:   cal.Scheduler().FetchInRange(start, end),
	}, nil
}

func (uc *implUseCase) Status(ctx context.Context, input agenda.StatusInput) (agenda.StatusOutput, error) {
	if err := required("at", input.At); err != nil {
		return agenda.StatusOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cal, err := uc.resolve(input.Calendar)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Status.resolve: %v", err)
		return agenda.StatusOutput{}, err
	}
	at, err := parseDateTime(cal, input.At)
	if err != nil {
		return agenda.StatusOutput{}, err
	}

	return agenda.StatusOutput{
		Calendar: cal.Name(),
		At:       at,
		Busy:     cal.Scheduler().IsOccupiedAt(at),
	}, nil
}
