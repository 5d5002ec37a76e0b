package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"extensible-calendar/internal/model"
)

// Expander turns a recurring template into concrete event instances.
// It never checks conflicts; that is the scheduler's job.
type Expander struct{}

func NewExpander() *Expander {
	return &Expander{}
}

// Expand walks forward day by day from the template's start date and emits
// an instance on every selected weekday until the rule's bound is reached.
// Instances keep the template's wall-clock times in the template's zone.
func (e *Expander) Expand(in Input) ([]*model.Event, error) {
	if in.End.Before(in.Start) {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidTimeRange, in.Name)
	}

	loc := in.Start.Location()
	start := in.Start
	end := in.End.In(loc)
	if !in.FullDay && model.DateOf(start) != model.DateOf(end) {
		return nil, fmt.Errorf("%w: %s spans %s to %s",
			ErrInvalidRecurrenceTemplate, in.Name, model.DateOf(start), model.DateOf(end))
	}

	rule, err := ParseRule(in.Rule, loc, in.FullDay)
	if err != nil {
		return nil, err
	}

	anchor := start
	if in.FullDay {
		anchor = model.DateOf(start).In(loc)
	}

	r, err := rrule.NewRRule(rule.options(anchor))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecurrenceRule, err)
	}

	occurrences := r.All()
	events := make([]*model.Event, 0, len(occurrences))
	for _, occ := range occurrences {
		ev := instance(in, model.DateOf(occ.In(loc)), end, loc)
		if rule.HasUntil() && (ev.Start.After(rule.Until) || ev.End.After(rule.Until)) {
			break
		}
		events = append(events, ev)
	}

	return events, nil
}

func (r Rule) options(dtstart time.Time) rrule.ROption {
	byDay := make([]rrule.Weekday, 0, len(r.Days))
	for _, d := range r.Days {
		byDay = append(byDay, rruleWeekdays[d])
	}

	opt := rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   dtstart,
		Byweekday: byDay,
	}
	if r.HasUntil() {
		opt.Until = r.Until
	} else {
		opt.Count = r.Count
	}
	return opt
}

func instance(in Input, day model.Date, end time.Time, loc *time.Location) *model.Event {
	ev := &model.Event{
		Name:    in.Name,
		FullDay: in.FullDay,
		Public:  true,
	}
	if in.FullDay {
		ev.Start = day.In(loc)
		ev.End = day.At(23, 59, 59, 0, loc)
		return ev
	}
	ev.Start = wallClock(day, in.Start, loc)
	ev.End = wallClock(day, end, loc)
	return ev
}

// wallClock places clock's time of day on day in loc. A time that falls in a
// DST gap is moved forward by the length of the gap, so 02:30 on a spring
// forward night becomes 03:30.
func wallClock(day model.Date, clock time.Time, loc *time.Location) time.Time {
	h, m, s := clock.Clock()
	t := day.At(h, m, s, 0, loc)
	if th, tm, ts := t.Clock(); th == h && tm == m && ts == s {
		return t
	}
	_, offset := t.Zone()
	return day.At(h, m, s, 0, time.UTC).Add(-time.Duration(offset) * time.Second).In(loc)
}
