package scheduler

import (
	"time"

	"extensible-calendar/internal/model"
)

// FetchOnDate returns the events active on date. A full-day event is active
// on its start date only; a timed event on every date from its start date to
// its end date inclusive.
func (s *Scheduler) FetchOnDate(date model.Date) []model.Event {
	return snapshot(s.events, func(ev *model.Event) bool {
		startDate := model.DateOf(ev.Start)
		if ev.FullDay {
			return startDate == date
		}
		return !startDate.After(date) && !model.DateOf(ev.End).Before(date)
	})
}

// FetchStartingOnDate returns the events whose start falls on date.
func (s *Scheduler) FetchStartingOnDate(date model.Date) []model.Event {
	return snapshot(s.events, func(ev *model.Event) bool {
		return model.DateOf(ev.Start) == date
	})
}

// FetchInRange returns the events that touch [start, end], bounds inclusive.
func (s *Scheduler) FetchInRange(start, end time.Time) []model.Event {
	return snapshot(s.events, func(ev *model.Event) bool {
		return !ev.End.Before(start) && !ev.Start.After(end)
	})
}

// IsOccupiedAt reports whether some event satisfies Start <= t < End.
func (s *Scheduler) IsOccupiedAt(t time.Time) bool {
	for _, ev := range s.events {
		if !ev.Start.After(t) && ev.End.After(t) {
			return true
		}
	}
	return false
}

// FindByNameAndStart returns the first event with the given name whose start
// has the given wall-clock reading, ignoring zones.
func (s *Scheduler) FindByNameAndStart(name string, wallStart time.Time) (model.Event, bool) {
	for _, ev := range s.events {
		if ev.Name == name && sameWallClock(ev.Start, wallStart) {
			return *ev, true
		}
	}
	return model.Event{}, false
}

func sameWallClock(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute() &&
		a.Second() == b.Second() && a.Nanosecond() == b.Nanosecond()
}
