package model

import (
	"fmt"
	"strings"
	"time"
)

// eventTimeLayout is the wall-clock part of a rendered instant. The IANA zone
// id follows it in brackets.
const eventTimeLayout = "2006-01-02T15:04"

// Event is a single calendar entry. Start and End are absolute instants
// carrying the zone of the calendar that owns the event.
type Event struct {
	Name        string
	Start       time.Time
	End         time.Time
	FullDay     bool
	Description string
	Location    string
	Public      bool
}

// NewEvent builds a public event with empty description and location.
// It fails with ErrInvalidTimeRange when end is before start.
func NewEvent(name string, start, end time.Time, fullDay bool) (*Event, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s ends at %s before it starts at %s",
			ErrInvalidTimeRange, name, formatInstant(end), formatInstant(start))
	}
	return &Event{
		Name:    name,
		Start:   start,
		End:     end,
		FullDay: fullDay,
		Public:  true,
	}, nil
}

// OverlapsWith reports whether the two events share any instant, or start at
// the same instant. The same-start clause also catches two zero-length events.
func (e *Event) OverlapsWith(other *Event) bool {
	if e.Start.Before(other.End) && other.Start.Before(e.End) {
		return true
	}
	return e.Start.Equal(other.Start)
}

// Duration is End minus Start.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Clone returns an independent copy.
func (e *Event) Clone() *Event {
	c := *e
	return &c
}

// In re-expresses Start and End in loc without changing the instants.
func (e *Event) In(loc *time.Location) {
	e.Start = e.Start.In(loc)
	e.End = e.End.In(loc)
}

func (e *Event) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s from %s to %s", e.Name, formatInstant(e.Start), formatInstant(e.End))
	if e.FullDay {
		sb.WriteString(", Full Day")
	}
	if e.Description != "" {
		fmt.Fprintf(&sb, ", Description: %s", e.Description)
	}
	if e.Location != "" {
		fmt.Fprintf(&sb, ", Location: %s", e.Location)
	}
	if e.Public {
		sb.WriteString(", Public")
	} else {
		sb.WriteString(", Private")
	}
	return sb.String()
}

// formatInstant renders t as 2025-03-24T09:00[America/New_York].
func formatInstant(t time.Time) string {
	return t.Format(eventTimeLayout) + "[" + t.Location().String() + "]"
}
