package agenda

import (
	"time"

	"extensible-calendar/internal/model"
)

// EditMode selects which events an edit applies to.
type EditMode string

const (
	// EditModeSingle edits the one event matching name, start and end.
	EditModeSingle EditMode = "single"
	// EditModeFrom edits every event with the name starting at or after start.
	EditModeFrom EditMode = "from"
	// EditModeAll edits every event with the name.
	EditModeAll EditMode = "all"
)

// --- Calendar ---

// CalendarInfo describes one calendar.
type CalendarInfo struct {
	Name       string
	Timezone   string
	Current    bool
	EventCount int
}

// --- UseCase Inputs ---

type CreateCalendarInput struct {
	Name     string
	Timezone string
}

type EditCalendarInput struct {
	Name     string
	Property string
	Value    string
}

// CreateEventInput describes a single, full-day or recurring event. Times are
// read as wall-clock values in the calendar's zone. Calendar empty means the
// current calendar.
//
//   - Start and End: a timed event.
//   - Start only: a full-day event from Start to the next midnight.
//   - Date: a full-day event covering that day.
//   - Repeat with Start+End or Date: a recurring event.
type CreateEventInput struct {
	Calendar    string
	Name        string
	Start       string
	End         string
	Date        string
	Repeat      string
	Description string
	Location    string
	Private     bool
}

type EditEventsInput struct {
	Calendar string
	Mode     EditMode
	Property string
	Name     string
	Start    string
	End      string
	Value    string
}

type EventsOnInput struct {
	Calendar string
	Date     string
}

type EventsInRangeInput struct {
	Calendar string
	Start    string
	End      string
}

type StatusInput struct {
	Calendar string
	At       string
}

type CopyEventInput struct {
	Source      string
	Name        string
	SourceStart string
	Target      string
	TargetStart string
}

type CopyEventsOnInput struct {
	Source     string
	Date       string
	Target     string
	TargetDate string
}

type CopyEventsBetweenInput struct {
	Source     string
	StartDate  string
	EndDate    string
	Target     string
	TargetDate string
}

// --- UseCase Outputs ---

type CalendarOutput struct {
	Calendar CalendarInfo
}

type ListCalendarsOutput struct {
	Calendars []CalendarInfo
	Current   string
}

type CreateEventOutput struct {
	Calendar string
	Events   []model.Event
}

type EditEventsOutput struct {
	Updated int
}

type EventsOutput struct {
	Calendar string
	Events   []model.Event
}

type StatusOutput struct {
	Calendar string
	At       time.Time
	Busy     bool
}

type CopyOutput struct {
	Copied int
}

type ImportOutput struct {
	Imported int
}
