package calendar_test

import (
	"errors"
	"testing"

	"extensible-calendar/internal/calendar"
)

func TestManagerCreate(t *testing.T) {
	m := calendar.NewManager()

	if _, err := m.Create("Work", "America/New_York"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name     string
		calName  string
		timezone string
		wantErr  error
	}{
		{"duplicate", "Work", "UTC", calendar.ErrDuplicateCalendarName},
		{"bad zone", "Home", "Mars/Olympus", calendar.ErrInvalidTimezone},
		{"empty zone", "Home", "", calendar.ErrInvalidTimezone},
		{"local zone", "Home", "Local", calendar.ErrInvalidTimezone},
		{"empty name", " ", "UTC", calendar.ErrInvalidCalendarName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Create(tt.calName, tt.timezone); !errors.Is(err, tt.wantErr) {
				t.Errorf("Create(%q, %q) error = %v, want %v", tt.calName, tt.timezone, err, tt.wantErr)
			}
		})
	}

	if names := m.Names(); len(names) != 1 || names[0] != "Work" {
		t.Errorf("Names() = %v", names)
	}
}

func TestManagerUseAndCurrent(t *testing.T) {
	m := calendar.NewManager()

	if _, err := m.Current(); !errors.Is(err, calendar.ErrNoCalendarSelected) {
		t.Fatalf("expected ErrNoCalendarSelected, got %v", err)
	}
	if err := m.Use("Nope"); !errors.Is(err, calendar.ErrCalendarNotFound) {
		t.Fatalf("expected ErrCalendarNotFound, got %v", err)
	}
	if _, err := m.Get("Nope"); !errors.Is(err, calendar.ErrCalendarNotFound) {
		t.Fatalf("expected ErrCalendarNotFound, got %v", err)
	}

	if _, err := m.Create("Work", "UTC"); err != nil {
		t.Fatal(err)
	}
	if err := m.Use("Work"); err != nil {
		t.Fatal(err)
	}
	cur, err := m.Current()
	if err != nil || cur.Name() != "Work" {
		t.Fatalf("Current() = %v, %v", cur, err)
	}
}

func TestManagerEdit(t *testing.T) {
	newManager := func(t *testing.T) *calendar.Manager {
		m := calendar.NewManager()
		for _, name := range []string{"Work", "Home"} {
			if _, err := m.Create(name, "UTC"); err != nil {
				t.Fatal(err)
			}
		}
		if err := m.Use("Work"); err != nil {
			t.Fatal(err)
		}
		return m
	}

	t.Run("rename follows current", func(t *testing.T) {
		m := newManager(t)
		if err := m.Edit("Work", "NAME", "Office"); err != nil {
			t.Fatalf("Edit: %v", err)
		}
		if _, err := m.Get("Work"); !errors.Is(err, calendar.ErrCalendarNotFound) {
			t.Errorf("old name still resolvable")
		}
		cur, err := m.Current()
		if err != nil || cur.Name() != "Office" {
			t.Errorf("Current() = %v, %v", cur, err)
		}
	})

	t.Run("rename to existing", func(t *testing.T) {
		m := newManager(t)
		if err := m.Edit("Work", "name", "Home"); !errors.Is(err, calendar.ErrDuplicateCalendarName) {
			t.Errorf("expected ErrDuplicateCalendarName, got %v", err)
		}
	})

	t.Run("timezone", func(t *testing.T) {
		m := newManager(t)
		if err := m.Edit("Home", "timezone", "Asia/Kolkata"); err != nil {
			t.Skipf("tzdata unavailable: %v", err)
		}
		cal, _ := m.Get("Home")
		if cal.Timezone().String() != "Asia/Kolkata" {
			t.Errorf("timezone = %v", cal.Timezone())
		}
		if err := m.Edit("Home", "timezone", "Nowhere/City"); !errors.Is(err, calendar.ErrInvalidTimezone) {
			t.Errorf("expected ErrInvalidTimezone, got %v", err)
		}
	})

	t.Run("unknown property", func(t *testing.T) {
		m := newManager(t)
		if err := m.Edit("Work", "color", "blue"); !errors.Is(err, calendar.ErrInvalidCalendarProperty) {
			t.Errorf("expected ErrInvalidCalendarProperty, got %v", err)
		}
	})

	t.Run("unknown calendar", func(t *testing.T) {
		m := newManager(t)
		if err := m.Edit("Nope", "name", "x"); !errors.Is(err, calendar.ErrCalendarNotFound) {
			t.Errorf("expected ErrCalendarNotFound, got %v", err)
		}
	})
}
