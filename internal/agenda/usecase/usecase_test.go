package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/calendar"
	"extensible-calendar/internal/metric"
	"extensible-calendar/internal/model"
	"extensible-calendar/internal/scheduler"
	"extensible-calendar/pkg/datemath"
	pkgLog "extensible-calendar/pkg/log"
)

// newTestUseCase returns a use case with "work" (UTC, current) and
// "home" (America/New_York) calendars.
func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	reg := prometheus.NewRegistry()
	uc := New(pkgLog.NewNop(), metric.NewWithRegistry(reg, reg), nil)
	uc.now = func() time.Time { return time.Date(2025, 3, 24, 8, 0, 0, 0, time.UTC) }

	ctx := context.Background()
	if _, err := uc.CreateCalendar(ctx, agenda.CreateCalendarInput{Name: "work", Timezone: "UTC"}); err != nil {
		t.Fatalf("CreateCalendar(work): %v", err)
	}
	if _, err := uc.CreateCalendar(ctx, agenda.CreateCalendarInput{Name: "home", Timezone: "America/New_York"}); err != nil {
		t.Fatalf("CreateCalendar(home): %v", err)
	}
	if err := uc.UseCalendar(ctx, "work"); err != nil {
		t.Fatalf("UseCalendar: %v", err)
	}
	return uc
}

func mustCreate(t *testing.T, uc *implUseCase, in agenda.CreateEventInput) []model.Event {
	t.Helper()
	out, err := uc.CreateEvent(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateEvent(%+v): %v", in, err)
	}
	return out.Events
}

func TestCreateEvent(t *testing.T) {
	tests := []struct {
		name      string
		input     agenda.CreateEventInput
		wantCount int
		wantStart string
		wantEnd   string
		wantFull  bool
	}{
		{
			name:      "timed",
			input:     agenda.CreateEventInput{Name: "Standup", Start: "2025-03-24T09:00", End: "2025-03-24T09:15"},
			wantCount: 1,
			wantStart: "2025-03-24T09:00",
			wantEnd:   "2025-03-24T09:15",
		},
		{
			name:      "start only spans to next midnight",
			input:     agenda.CreateEventInput{Name: "Offsite", Start: "2025-03-25T13:00"},
			wantCount: 1,
			wantStart: "2025-03-25T13:00",
			wantEnd:   "2025-03-26T00:00",
			wantFull:  true,
		},
		{
			name:      "full day by date",
			input:     agenda.CreateEventInput{Name: "Holiday", Date: "2025-03-27"},
			wantCount: 1,
			wantStart: "2025-03-27T00:00",
			wantEnd:   "2025-03-28T00:00",
			wantFull:  true,
		},
		{
			name:      "relative date",
			input:     agenda.CreateEventInput{Name: "Dentist", Date: "tomorrow"},
			wantCount: 1,
			wantStart: "2025-03-25T00:00",
			wantEnd:   "2025-03-26T00:00",
			wantFull:  true,
		},
		{
			name: "recurring timed",
			input: agenda.CreateEventInput{
				Name: "Gym", Start: "2025-03-24T18:00", End: "2025-03-24T19:00", Repeat: "MW for 4 times",
			},
			wantCount: 4,
			wantStart: "2025-03-24T18:00",
			wantEnd:   "2025-03-24T19:00",
		},
		{
			name:      "recurring full day",
			input:     agenda.CreateEventInput{Name: "Review", Date: "2025-03-28", Repeat: "F for 2 times"},
			wantCount: 2,
			wantStart: "2025-03-28T00:00",
			wantEnd:   "2025-03-28T23:59",
			wantFull:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUseCase(t)
			events := mustCreate(t, uc, tc.input)

			if len(events) != tc.wantCount {
				t.Fatalf("got %d events, want %d", len(events), tc.wantCount)
			}
			first := events[0]
			if got := first.Start.Format(datemath.DateTimeLayout); got != tc.wantStart {
				t.Errorf("start = %s, want %s", got, tc.wantStart)
			}
			if got := first.End.Format(datemath.DateTimeLayout); got != tc.wantEnd {
				t.Errorf("end = %s, want %s", got, tc.wantEnd)
			}
			if first.FullDay != tc.wantFull {
				t.Errorf("full day = %v, want %v", first.FullDay, tc.wantFull)
			}

			cal, _ := uc.manager.Get("work")
			if got := cal.Scheduler().Len(); got != tc.wantCount {
				t.Errorf("calendar holds %d events, want %d", got, tc.wantCount)
			}
		})
	}
}

func TestCreateEventAttributes(t *testing.T) {
	uc := newTestUseCase(t)
	events := mustCreate(t, uc, agenda.CreateEventInput{
		Calendar:    "home",
		Name:        "Dinner",
		Start:       "2025-03-24T19:00",
		End:         "2025-03-24T21:00",
		Description: "with friends",
		Location:    "Downtown",
		Private:     true,
	})

	ev := events[0]
	if ev.Description != "with friends" || ev.Location != "Downtown" || ev.Public {
		t.Errorf("attributes not applied: %+v", ev)
	}
	if ev.Start.Location().String() != "America/New_York" {
		t.Errorf("start zone = %s, want America/New_York", ev.Start.Location())
	}
}

func TestCreateEventErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   agenda.CreateEventInput
		wantErr error
	}{
		{"missing name", agenda.CreateEventInput{Date: "2025-03-24"}, agenda.ErrInvalidInput},
		{"no time given", agenda.CreateEventInput{Name: "x"}, agenda.ErrInvalidInput},
		{"date with start", agenda.CreateEventInput{Name: "x", Date: "2025-03-24", Start: "2025-03-24T09:00"}, agenda.ErrInvalidInput},
		{"repeat needs end", agenda.CreateEventInput{Name: "x", Start: "2025-03-24T09:00", Repeat: "M for 2 times"}, agenda.ErrInvalidInput},
		{"end before start", agenda.CreateEventInput{Name: "x", Start: "2025-03-24T10:00", End: "2025-03-24T09:00"}, model.ErrInvalidTimeRange},
		{"bad datetime", agenda.CreateEventInput{Name: "x", Start: "24/03/2025", End: "2025-03-24T09:00"}, datemath.ErrInvalidDateTime},
		{"bad date", agenda.CreateEventInput{Name: "x", Date: "someday"}, datemath.ErrInvalidDate},
		{"unknown calendar", agenda.CreateEventInput{Calendar: "gym", Name: "x", Date: "2025-03-24"}, calendar.ErrCalendarNotFound},
		{"conflict", agenda.CreateEventInput{Name: "x", Start: "2025-03-24T09:30", End: "2025-03-24T10:30"}, scheduler.ErrSchedulingConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUseCase(t)
			mustCreate(t, uc, agenda.CreateEventInput{Name: "Standup", Start: "2025-03-24T09:00", End: "2025-03-24T10:00"})

			_, err := uc.CreateEvent(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreateRecurringIsAllOrNothing(t *testing.T) {
	uc := newTestUseCase(t)
	mustCreate(t, uc, agenda.CreateEventInput{Name: "Review", Start: "2025-03-31T18:30", End: "2025-03-31T19:30"})

	_, err := uc.CreateEvent(context.Background(), agenda.CreateEventInput{
		Name: "Gym", Start: "2025-03-24T18:00", End: "2025-03-24T19:00", Repeat: "MW for 4 times",
	})
	if !errors.Is(err, scheduler.ErrSchedulingConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}

	cal, _ := uc.manager.Get("work")
	if got := cal.Scheduler().Len(); got != 1 {
		t.Errorf("calendar holds %d events, want only the original", got)
	}
}

func TestCreateEventWithoutCurrentCalendar(t *testing.T) {
	uc := New(pkgLog.NewNop(), nil, nil)
	_, err := uc.CreateEvent(context.Background(), agenda.CreateEventInput{Name: "x", Date: "2025-03-24"})
	if !errors.Is(err, calendar.ErrNoCalendarSelected) {
		t.Errorf("err = %v, want ErrNoCalendarSelected", err)
	}
}

func TestEditEvents(t *testing.T) {
	seed := func(t *testing.T) *implUseCase {
		uc := newTestUseCase(t)
		mustCreate(t, uc, agenda.CreateEventInput{
			Name: "Gym", Start: "2025-03-24T18:00", End: "2025-03-24T19:00", Repeat: "MW for 4 times",
		})
		return uc
	}

	tests := []struct {
		name        string
		input       agenda.EditEventsInput
		wantUpdated int
		wantErr     error
	}{
		{
			name:        "single",
			input:       agenda.EditEventsInput{Mode: agenda.EditModeSingle, Property: "location", Name: "Gym", Start: "2025-03-26T18:00", End: "2025-03-26T19:00", Value: "Pool"},
			wantUpdated: 1,
		},
		{
			name:    "single not found",
			input:   agenda.EditEventsInput{Mode: agenda.EditModeSingle, Property: "location", Name: "Gym", Start: "2025-03-25T18:00", End: "2025-03-25T19:00", Value: "Pool"},
			wantErr: scheduler.ErrEventNotFound,
		},
		{
			name:        "from start",
			input:       agenda.EditEventsInput{Mode: agenda.EditModeFrom, Property: "description", Name: "Gym", Start: "2025-03-26T18:00", Value: "legs"},
			wantUpdated: 3,
		},
		{
			name:        "all",
			input:       agenda.EditEventsInput{Mode: agenda.EditModeAll, Property: "public", Name: "Gym", Value: "false"},
			wantUpdated: 4,
		},
		{
			name:    "all with bad public value",
			input:   agenda.EditEventsInput{Mode: agenda.EditModeAll, Property: "public", Name: "Gym", Value: "maybe"},
			wantErr: scheduler.ErrInvalidPropertyValue,
		},
		{
			name:    "unsupported property",
			input:   agenda.EditEventsInput{Mode: agenda.EditModeAll, Property: "start", Name: "Gym", Value: "x"},
			wantErr: agenda.ErrUnsupportedProperty,
		},
		{
			name:    "unknown mode",
			input:   agenda.EditEventsInput{Mode: "some", Property: "name", Name: "Gym", Value: "x"},
			wantErr: agenda.ErrInvalidEditMode,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := seed(t)
			out, err := uc.EditEvents(context.Background(), tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("EditEvents: %v", err)
			}
			if out.Updated != tc.wantUpdated {
				t.Errorf("updated = %d, want %d", out.Updated, tc.wantUpdated)
			}
		})
	}
}

func TestQueries(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	mustCreate(t, uc, agenda.CreateEventInput{Name: "Standup", Start: "2025-03-24T09:00", End: "2025-03-24T09:15"})
	mustCreate(t, uc, agenda.CreateEventInput{Name: "Trip", Start: "2025-03-24T20:00", End: "2025-03-26T10:00"})
	mustCreate(t, uc, agenda.CreateEventInput{Name: "Holiday", Date: "2025-03-27"})

	for date, want := range map[string]string{
		"2025-03-24": "Standup,Trip",
		"2025-03-25": "Trip",
		"2025-03-27": "Holiday",
		"2025-03-28": "",
	} {
		on, err := uc.EventsOn(ctx, agenda.EventsOnInput{Date: date})
		if err != nil {
			t.Fatalf("EventsOn(%s): %v", date, err)
		}
		if got := eventNames(on.Events); got != want {
			t.Errorf("events on %s = %q, want %q", date, got, want)
		}
	}

	rng, err := uc.EventsInRange(ctx, agenda.EventsInRangeInput{Start: "2025-03-24T09:10", End: "2025-03-24T23:00"})
	if err != nil {
		t.Fatalf("EventsInRange: %v", err)
	}
	if got := eventNames(rng.Events); got != "Standup,Trip" {
		t.Errorf("events in range = %s, want Standup,Trip", got)
	}

	if _, err := uc.EventsInRange(ctx, agenda.EventsInRangeInput{Start: "2025-03-25T00:00", End: "2025-03-24T00:00"}); !errors.Is(err, model.ErrInvalidTimeRange) {
		t.Errorf("reversed range err = %v, want ErrInvalidTimeRange", err)
	}

	busy, err := uc.Status(ctx, agenda.StatusInput{At: "2025-03-24T09:00"})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !busy.Busy {
		t.Errorf("expected busy at start of standup")
	}
	free, _ := uc.Status(ctx, agenda.StatusInput{At: "2025-03-24T09:15"})
	if free.Busy {
		t.Errorf("expected free at end of standup")
	}
}

func TestCopy(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	mustCreate(t, uc, agenda.CreateEventInput{Name: "Standup", Start: "2025-03-24T09:00", End: "2025-03-24T09:30"})
	mustCreate(t, uc, agenda.CreateEventInput{Name: "Lunch", Start: "2025-03-24T12:00", End: "2025-03-24T13:00"})
	mustCreate(t, uc, agenda.CreateEventInput{Name: "Retro", Start: "2025-03-25T15:00", End: "2025-03-25T16:00"})

	out, err := uc.CopyEvent(ctx, agenda.CopyEventInput{
		Name: "Standup", SourceStart: "2025-03-24T09:00", Target: "home", TargetStart: "2025-04-01T08:00",
	})
	if err != nil || out.Copied != 1 {
		t.Fatalf("CopyEvent = %+v, %v", out, err)
	}

	on, err := uc.CopyEventsOn(ctx, agenda.CopyEventsOnInput{Date: "2025-03-24", Target: "home", TargetDate: "2025-04-07"})
	if err != nil || on.Copied != 2 {
		t.Fatalf("CopyEventsOn = %+v, %v", on, err)
	}

	between, err := uc.CopyEventsBetween(ctx, agenda.CopyEventsBetweenInput{
		StartDate: "2025-03-24", EndDate: "2025-03-25", Target: "home", TargetDate: "2025-04-14",
	})
	if err != nil || between.Copied != 3 {
		t.Fatalf("CopyEventsBetween = %+v, %v", between, err)
	}

	home, _ := uc.manager.Get("home")
	if got := home.Scheduler().Len(); got != 6 {
		t.Errorf("home holds %d events, want 6", got)
	}
	first := home.Scheduler().RetrieveAll()[0]
	if got := first.Start.Format(datemath.DateTimeLayout); got != "2025-04-01T08:00" || first.Duration() != 30*time.Minute {
		t.Errorf("copied event = %s lasting %s", got, first.Duration())
	}

	_, err = uc.CopyEvent(ctx, agenda.CopyEventInput{
		Name: "Standup", SourceStart: "2025-03-24T09:00", Target: "home", TargetStart: "2025-04-01T08:15",
	})
	if !errors.Is(err, scheduler.ErrSchedulingConflict) {
		t.Errorf("err = %v, want conflict", err)
	}

	_, err = uc.CopyEvent(ctx, agenda.CopyEventInput{
		Name: "Missing", SourceStart: "2025-03-24T09:00", Target: "home", TargetStart: "2025-05-01T08:00",
	})
	if !errors.Is(err, scheduler.ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}

func TestEditCalendar(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	mustCreate(t, uc, agenda.CreateEventInput{Name: "Standup", Start: "2025-03-24T09:00", End: "2025-03-24T09:30"})

	out, err := uc.EditCalendar(ctx, agenda.EditCalendarInput{Name: "work", Property: "Name", Value: "office"})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if out.Calendar.Name != "office" || !out.Calendar.Current || out.Calendar.EventCount != 1 {
		t.Errorf("renamed calendar = %+v", out.Calendar)
	}

	out, err = uc.EditCalendar(ctx, agenda.EditCalendarInput{Name: "office", Property: "timezone", Value: "Asia/Tokyo"})
	if err != nil {
		t.Fatalf("timezone: %v", err)
	}
	if out.Calendar.Timezone != "Asia/Tokyo" {
		t.Errorf("timezone = %s", out.Calendar.Timezone)
	}

	if _, err := uc.EditCalendar(ctx, agenda.EditCalendarInput{Name: "office", Property: "name", Value: "home"}); !errors.Is(err, calendar.ErrDuplicateCalendarName) {
		t.Errorf("err = %v, want ErrDuplicateCalendarName", err)
	}

	list, err := uc.ListCalendars(ctx)
	if err != nil {
		t.Fatalf("ListCalendars: %v", err)
	}
	if list.Current != "office" || len(list.Calendars) != 2 || list.Calendars[0].Name != "home" {
		t.Errorf("list = %+v", list)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	mustCreate(t, uc, agenda.CreateEventInput{Name: "Standup", Start: "2025-03-24T09:00", End: "2025-03-24T09:30", Location: "Room 4"})
	mustCreate(t, uc, agenda.CreateEventInput{Name: "Holiday", Date: "2025-03-25", Private: true})

	var buf bytes.Buffer
	if err := uc.ExportCSV(ctx, "", &buf); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if !strings.Contains(buf.String(), "Standup,03/24/2025,09:00 AM") {
		t.Errorf("unexpected export:\n%s", buf.String())
	}

	out, err := uc.ImportCSV(ctx, "home", &buf)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if out.Imported != 2 {
		t.Fatalf("imported %d, want 2", out.Imported)
	}

	home, _ := uc.manager.Get("home")
	events := home.Scheduler().RetrieveAll()
	if events[0].Location != "Room 4" || events[1].Public || !events[1].FullDay {
		t.Errorf("imported events = %+v", events)
	}
}

// stalledReader blocks every Read until release is closed, then reports EOF.
type stalledReader struct {
	release chan struct{}
}

func (r stalledReader) Read(p []byte) (int, error) {
	<-r.release
	return 0, io.EOF
}

func TestImportCSVDoesNotBlockWhileReading(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	body := stalledReader{release: make(chan struct{})}
	imported := make(chan error, 1)
	go func() {
		_, err := uc.ImportCSV(ctx, "home", body)
		imported <- err
	}()

	listed := make(chan error, 1)
	go func() {
		_, err := uc.ListCalendars(ctx)
		listed <- err
	}()

	select {
	case err := <-listed:
		if err != nil {
			t.Errorf("ListCalendars: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ListCalendars blocked behind a pending import read")
	}

	close(body.release)
	if err := <-imported; err != nil {
		t.Errorf("ImportCSV of an empty body: %v", err)
	}
}

func eventNames(events []model.Event) string {
	names := make([]string, 0, len(events))
	for _, ev := range events {
		names = append(names, ev.Name)
	}
	return strings.Join(names, ",")
}
