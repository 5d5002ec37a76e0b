package usecase

import (
	"context"

	"extensible-calendar/internal/agenda"
)

func (uc *implUseCase) CopyEvent(ctx context.Context, input agenda.CopyEventInput) (out agenda.CopyOutput, err error) {
	defer func() { uc.observe("copy_event", err) }()

	if err := required("name", input.Name); err != nil {
		return out, err
	}
	if err := required("target", input.Target); err != nil {
		return out, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	source, err := uc.resolve(input.Source)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CopyEvent.resolve: %v", err)
		return out, err
	}
	target, err := uc.manager.Get(input.Target)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CopyEvent.Get: %v", err)
		return out, err
	}
	sourceStart, err := parseDateTime(source, input.SourceStart)
	if err != nil {
		return out, err
	}
	targetStart, err := parseDateTime(target, input.TargetStart)
	if err != nil {
		return out, err
	}

	if err := source.CopyEvent(input.Name, sourceStart, target, targetStart); err != nil {
		uc.l.Warnf(ctx, "uc.CopyEvent: %v", err)
		return out, err
	}
	uc.scheduled("copy", 1)
	uc.l.Infof(ctx, "uc.CopyEvent: copied %q from %s to %s", input.Name, source.Name(), target.Name())

	return agenda.CopyOutput{Copied: 1}, nil
}

func (uc *implUseCase) CopyEventsOn(ctx context.Context, input agenda.CopyEventsOnInput) (out agenda.CopyOutput, err error) {
	defer func() { uc.observe("copy_events_on", err) }()

	if err := required("target", input.Target); err != nil {
		return out, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	source, err := uc.resolve(input.Source)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CopyEventsOn.resolve: %v", err)
		return out, err
	}
	target, err := uc.manager.Get(input.Target)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CopyEventsOn.Get: %v", err)
		return out, err
	}
	day, err := uc.parseDay(source, input.Date)
	if err != nil {
		return out, err
	}
	targetDay, err := uc.parseDay(target, input.TargetDate)
	if err != nil {
		return out, err
	}

	out.Copied, err = source.CopyEventsOnDate(day, target, targetDay)
	uc.scheduled("copy", out.Copied)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CopyEventsOn: copied %d before failure: %v", out.Copied, err)
		return out, err
	}
	uc.l.Infof(ctx, "uc.CopyEventsOn: copied %d event(s) from %s to %s", out.Copied, source.Name(), target.Name())
	return out, nil
}

func (uc *implUseCase) CopyEventsBetween(ctx context.Context, input agenda.CopyEventsBetweenInput) (out agenda.CopyOutput, err error) {
	defer func() { uc.observe("copy_events_between", err) }()

	if err := required("target", input.Target); err != nil {
		return out, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	source, err := uc.resolve(input.Source)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CopyEventsBetween.resolve: %v", err)
		return out, err
	}
	target, err := uc.manager.Get(input.Target)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CopyEventsBetween.Get: %v", err)
		return out, err
	}
	from, err := uc.parseDay(source, input.StartDate)
	if err != nil {
		return out, err
	}
	to, err := uc.parseDay(source, input.EndDate)
	if err != nil {
		return out, err
	}
	targetDay, err := uc.parseDay(target, input.TargetDate)
	if err != nil {
		return out, err
	}

	out.Copied, err = source.CopyEventsBetweenDates(from, to, target, targetDay)
	uc.scheduled("copy", out.Copied)
	if err != nil {
		uc.l.Warnf(ctx, "uc.CopyEventsBetween: copied %d before failure: %v", out.Copied, err)
		return out, err
	}
	uc.l.Infof(ctx, "uc.CopyEventsBetween: copied %d event(s) from %s to %s", out.Copied, source.Name(), target.Name())
	return out, nil
}
