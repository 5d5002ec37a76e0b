package scheduler

import (
	"strings"

	"extensible-calendar/internal/model"
	"extensible-calendar/internal/recurrence"
)

// Expander expands a recurring template into instances.
type Expander interface {
	Expand(in recurrence.Input) ([]*model.Event, error)
}

// Property names an editable event field. Start and end are never editable
// through bulk edits.
type Property string

const (
	PropertyName        Property = "name"
	PropertyDescription Property = "description"
	PropertyLocation    Property = "location"
	PropertyPublic      Property = "public"
)

// ParseProperty normalizes a user supplied property name. Unknown names are
// returned as-is and are ignored by the edit operations.
func ParseProperty(s string) Property {
	return Property(strings.ToLower(strings.TrimSpace(s)))
}

// parseBoolValue accepts only "true" and "false", case-insensitively.
func parseBoolValue(s string) (bool, bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	default:
		return false, false
	}
}
