package agenda

import (
	"context"
	"io"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Calendars
	CreateCalendar(ctx context.Context, input CreateCalendarInput) (CalendarOutput, error)
	UseCalendar(ctx context.Context, name string) error
	EditCalendar(ctx context.Context, input EditCalendarInput) (CalendarOutput, error)
	ListCalendars(ctx context.Context) (ListCalendarsOutput, error)

	// Events
	CreateEvent(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	EditEvents(ctx context.Context, input EditEventsInput) (EditEventsOutput, error)
	EventsOn(ctx context.Context, input EventsOnInput) (EventsOutput, error)
	EventsInRange(ctx context.Context, input EventsInRangeInput) (EventsOutput, error)
	Status(ctx context.Context, input StatusInput) (StatusOutput, error)

	// Copy
	CopyEvent(ctx context.Context, input CopyEventInput) (CopyOutput, error)
	CopyEventsOn(ctx context.Context, input CopyEventsOnInput) (CopyOutput, error)
	CopyEventsBetween(ctx context.Context, input CopyEventsBetweenInput) (CopyOutput, error)

	// CSV
	ExportCSV(ctx context.Context, calendar string, w io.Writer) error
	ImportCSV(ctx context.Context, calendar string, r io.Reader) (ImportOutput, error)
}
