package calendar

import (
	"fmt"
	"strings"
	"time"

	"extensible-calendar/internal/scheduler"
)

// Calendar pairs a name and a timezone with the scheduler holding its events.
type Calendar struct {
	name      string
	loc       *time.Location
	scheduler *scheduler.Scheduler
}

// New creates a calendar. A nil scheduler gets a fresh one.
func New(name string, loc *time.Location, s *scheduler.Scheduler) *Calendar {
	if s == nil {
		s = scheduler.New(nil)
	}
	return &Calendar{name: name, loc: loc, scheduler: s}
}

func (c *Calendar) Name() string {
	return c.name
}

func (c *Calendar) Timezone() *time.Location {
	return c.loc
}

func (c *Calendar) Scheduler() *scheduler.Scheduler {
	return c.scheduler
}

// SetTimezone moves the calendar to loc and re-expresses every event there.
func (c *Calendar) SetTimezone(loc *time.Location) {
	c.loc = loc
	c.scheduler.AdjustTimezone(loc)
}

func (c *Calendar) setName(name string) {
	c.name = name
}

// LoadTimezone resolves an IANA timezone id. The empty id and "Local" are
// rejected so calendars never depend on the host's zone.
func LoadTimezone(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, id)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, id)
	}
	return loc, nil
}
