package scheduler

import (
	"slices"
	"time"

	"extensible-calendar/internal/model"
	"extensible-calendar/internal/recurrence"
)

// Scheduler owns the ordered, conflict-free event set of one calendar.
// It is not safe for concurrent use.
type Scheduler struct {
	events   []*model.Event
	expander Expander
}

// New creates an empty scheduler. A nil expander falls back to the rrule
// based recurrence.Expander.
func New(expander Expander) *Scheduler {
	if expander == nil {
		expander = recurrence.NewExpander()
	}
	return &Scheduler{expander: expander}
}

// Create builds an event without scheduling it.
func (s *Scheduler) Create(name string, start, end time.Time, fullDay bool) (*model.Event, error) {
	return model.NewEvent(name, start, end, fullDay)
}

// Schedule inserts ev unless it overlaps an existing event.
func (s *Scheduler) Schedule(ev *model.Event) error {
	if existing := s.firstConflict(ev); existing != nil {
		return &ConflictError{Candidate: *ev, Existing: *existing}
	}
	s.insert(ev)
	return nil
}

// CheckConflicts reports the first candidate that overlaps an existing event
// or an earlier candidate. Nothing is modified.
func (s *Scheduler) CheckConflicts(candidates []*model.Event) error {
	for i, c := range candidates {
		if existing := s.firstConflict(c); existing != nil {
			return &ConflictError{Candidate: *c, Existing: *existing}
		}
		for _, prev := range candidates[:i] {
			if prev.OverlapsWith(c) {
				return &ConflictError{Candidate: *c, Existing: *prev}
			}
		}
	}
	return nil
}

// ScheduleBatch inserts every candidate or none of them.
func (s *Scheduler) ScheduleBatch(candidates []*model.Event) error {
	if err := s.CheckConflicts(candidates); err != nil {
		return err
	}
	s.events = append(s.events, candidates...)
	s.sort()
	return nil
}

// CreateRecurring expands a template into instances. The instances are not
// scheduled.
func (s *Scheduler) CreateRecurring(in recurrence.Input) ([]*model.Event, error) {
	return s.expander.Expand(in)
}

// RetrieveAll returns a snapshot of every event in start order.
func (s *Scheduler) RetrieveAll() []model.Event {
	return snapshot(s.events, func(*model.Event) bool { return true })
}

// Len is the number of scheduled events.
func (s *Scheduler) Len() int {
	return len(s.events)
}

// AdjustTimezone re-expresses every event in loc. Instants do not change,
// so ordering and overlaps are unaffected.
func (s *Scheduler) AdjustTimezone(loc *time.Location) {
	for _, ev := range s.events {
		ev.In(loc)
	}
}

func (s *Scheduler) firstConflict(ev *model.Event) *model.Event {
	for _, existing := range s.events {
		if existing.OverlapsWith(ev) {
			return existing
		}
	}
	return nil
}

func (s *Scheduler) insert(ev *model.Event) {
	s.events = append(s.events, ev)
	s.sort()
}

func (s *Scheduler) sort() {
	slices.SortStableFunc(s.events, func(a, b *model.Event) int {
		return a.Start.Compare(b.Start)
	})
}

func snapshot(events []*model.Event, keep func(*model.Event) bool) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if keep(ev) {
			out = append(out, *ev)
		}
	}
	return out
}
