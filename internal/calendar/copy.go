package calendar

import (
	"fmt"
	"time"

	"extensible-calendar/internal/model"
	"extensible-calendar/internal/scheduler"
)

// CopyEvent copies the event named name whose start reads sourceStart on the
// wall clock into target, starting at targetStart read as wall-clock time in
// the target's zone. Duration and attributes are kept.
func (c *Calendar) CopyEvent(name string, sourceStart time.Time, target *Calendar, targetStart time.Time) error {
	src, ok := c.scheduler.FindByNameAndStart(name, sourceStart)
	if !ok {
		return fmt.Errorf("%w: %s at %s in calendar %s", scheduler.ErrEventNotFound,
			name, sourceStart.Format("2006-01-02T15:04"), c.name)
	}

	start := wallClockIn(targetStart, target.loc)
	return target.scheduler.Schedule(cloneAt(src, start))
}

// CopyEventsOnDate copies every event starting on sourceDate into target,
// shifted so sourceDate lands on targetDate. Events copied before a conflict
// stay in target; the returned count is the number inserted.
func (c *Calendar) CopyEventsOnDate(sourceDate model.Date, target *Calendar, targetDate model.Date) (int, error) {
	return c.copyShifted(c.scheduler.FetchStartingOnDate(sourceDate), target, targetDate)
}

// CopyEventsBetweenDates copies every event touching [startDate, endDate] in
// the source zone into target. Each event is shifted by the days between its
// own start date and targetDate. Same partial-copy behavior as CopyEventsOnDate.
func (c *Calendar) CopyEventsBetweenDates(startDate, endDate model.Date, target *Calendar, targetDate model.Date) (int, error) {
	from := startDate.In(c.loc)
	to := endDate.AddDays(1).In(c.loc)
	return c.copyShifted(c.scheduler.FetchInRange(from, to), target, targetDate)
}

func (c *Calendar) copyShifted(events []model.Event, target *Calendar, targetDate model.Date) (int, error) {
	copied := 0
	for _, ev := range events {
		start := shiftedStart(ev.Start, targetDate, target.loc)
		if err := target.scheduler.Schedule(cloneAt(ev, start)); err != nil {
			return copied, fmt.Errorf("copy %s to calendar %s: %w", ev.Name, target.name, err)
		}
		copied++
	}
	return copied, nil
}

// shiftedStart moves start by the whole days between its own date and
// targetDate. The shift is applied in UTC and the result expressed in loc.
func shiftedStart(start time.Time, targetDate model.Date, loc *time.Location) time.Time {
	days := model.DateOf(start).DaysUntil(targetDate)
	return start.In(time.UTC).AddDate(0, 0, days).In(loc)
}

func cloneAt(src model.Event, start time.Time) *model.Event {
	return &model.Event{
		Name:        src.Name,
		Start:       start,
		End:         start.Add(src.Duration()),
		FullDay:     src.FullDay,
		Description: src.Description,
		Location:    src.Location,
		Public:      src.Public,
	}
}

func wallClockIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
