package scheduler

import (
	"fmt"
	"time"

	"extensible-calendar/internal/model"
)

// UpdateSingle edits the event matching name, start and end exactly.
// It returns false for an unrecognized property. A "public" value other than
// true/false leaves the event unchanged but still reports true.
func (s *Scheduler) UpdateSingle(property, name string, start, end time.Time, value string) (bool, error) {
	for _, ev := range s.events {
		if ev.Name == name && ev.Start.Equal(start) && ev.End.Equal(end) {
			return applyProperty(ev, ParseProperty(property), value), nil
		}
	}
	return false, fmt.Errorf("%w: %s from %s to %s", ErrEventNotFound, name,
		start.Format(time.RFC3339), end.Format(time.RFC3339))
}

// UpdateFromStart edits every event named name starting at or after from
// and returns how many were edited.
func (s *Scheduler) UpdateFromStart(property, name string, from time.Time, value string) int {
	prop := ParseProperty(property)
	count := 0
	for _, ev := range s.events {
		if ev.Name == name && !ev.Start.Before(from) {
			if applyProperty(ev, prop, value) {
				count++
			}
		}
	}
	return count
}

// UpdateAllByName edits every event named name. For "public" the value must
// be true or false; otherwise the call fails at the first matching event and
// nothing is edited.
func (s *Scheduler) UpdateAllByName(property, name, value string) (int, error) {
	prop := ParseProperty(property)
	count := 0
	for _, ev := range s.events {
		if ev.Name != name {
			continue
		}
		if prop == PropertyPublic {
			if _, ok := parseBoolValue(value); !ok {
				return 0, fmt.Errorf("%w: public must be true or false, got %q", ErrInvalidPropertyValue, value)
			}
		}
		if applyProperty(ev, prop, value) {
			count++
		}
	}
	return count, nil
}

func applyProperty(ev *model.Event, prop Property, value string) bool {
	switch prop {
	case PropertyName:
		ev.Name = value
	case PropertyDescription:
		ev.Description = value
	case PropertyLocation:
		ev.Location = value
	case PropertyPublic:
		if public, ok := parseBoolValue(value); ok {
			ev.Public = public
		}
	default:
		return false
	}
	return true
}
