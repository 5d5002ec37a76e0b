package calendar

import (
	"fmt"
	"sort"
	"strings"
)

// Editable calendar properties.
const (
	PropertyName     = "name"
	PropertyTimezone = "timezone"
)

// Manager holds the calendars by unique name plus the current selection.
// It is not safe for concurrent use.
type Manager struct {
	calendars map[string]*Calendar
	current   string
}

func NewManager() *Manager {
	return &Manager{calendars: make(map[string]*Calendar)}
}

// Create adds an empty calendar.
func (m *Manager) Create(name, timezone string) (*Calendar, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidCalendarName
	}
	if _, exists := m.calendars[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCalendarName, name)
	}
	loc, err := LoadTimezone(timezone)
	if err != nil {
		return nil, err
	}

	cal := New(name, loc, nil)
	m.calendars[name] = cal
	return cal, nil
}

// Use makes name the current calendar.
func (m *Manager) Use(name string) error {
	if _, ok := m.calendars[name]; !ok {
		return fmt.Errorf("%w: %s", ErrCalendarNotFound, name)
	}
	m.current = name
	return nil
}

// Current returns the selected calendar.
func (m *Manager) Current() (*Calendar, error) {
	if m.current == "" {
		return nil, ErrNoCalendarSelected
	}
	return m.calendars[m.current], nil
}

// CurrentName is empty when nothing is selected.
func (m *Manager) CurrentName() string {
	return m.current
}

func (m *Manager) Get(name string) (*Calendar, error) {
	cal, ok := m.calendars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCalendarNotFound, name)
	}
	return cal, nil
}

// Names lists the calendar names in lexical order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.calendars))
	for name := range m.calendars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Edit changes a calendar's name or timezone. Renaming the current calendar
// keeps it selected; a timezone change re-bases every event.
func (m *Manager) Edit(name, property, value string) error {
	cal, err := m.Get(name)
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(property)) {
	case PropertyName:
		return m.rename(cal, value)
	case PropertyTimezone:
		loc, err := LoadTimezone(value)
		if err != nil {
			return err
		}
		cal.SetTimezone(loc)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidCalendarProperty, property)
	}
}

func (m *Manager) rename(cal *Calendar, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrInvalidCalendarName
	}
	if newName == cal.name {
		return nil
	}
	if _, exists := m.calendars[newName]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCalendarName, newName)
	}

	oldName := cal.name
	delete(m.calendars, oldName)
	cal.setName(newName)
	m.calendars[newName] = cal
	if m.current == oldName {
		m.current = newName
	}
	return nil
}
