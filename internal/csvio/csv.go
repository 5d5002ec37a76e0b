package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"extensible-calendar/internal/model"
)

const (
	dateLayout = "01/02/2006"
	timeLayout = "03:04 PM"

	columnCount = 9
)

var Header = []string{
	"Subject", "Start Date", "Start Time", "End Date", "End Time",
	"All Day Event", "Description", "Location", "Private",
}

var ErrMalformedRow = errors.New("malformed csv row")

// Export writes events in the spreadsheet-calendar CSV layout. Full-day rows
// leave both time columns empty and repeat the start date as end date.
func Export(w io.Writer, events []model.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, ev := range events {
		if err := cw.Write(record(ev)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(ev model.Event) []string {
	name := strings.TrimSuffix(strings.TrimPrefix(ev.Name, `"`), `"`)
	private := boolCell(!ev.Public)

	if ev.FullDay {
		day := ev.Start.Format(dateLayout)
		return []string{name, day, "", day, "", "True", ev.Description, ev.Location, private}
	}
	return []string{
		name,
		ev.Start.Format(dateLayout),
		ev.Start.Format(timeLayout),
		ev.End.Format(dateLayout),
		ev.End.Format(timeLayout),
		"False",
		ev.Description,
		ev.Location,
		private,
	}
}

func boolCell(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// Import reads rows written by Export back into events in loc. The header row
// is skipped, as are rows with fewer than nine columns. Full-day rows span
// from the start date's midnight to 23:59 on the end date.
func Import(r io.Reader, loc *time.Location) ([]*model.Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var events []*model.Event
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRow, line, err)
		}
		if line == 1 || len(rec) < columnCount {
			continue
		}

		ev, err := parseRecord(rec, loc)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseRecord(rec []string, loc *time.Location) (*model.Event, error) {
	fullDay := strings.EqualFold(rec[5], "true")

	startDate, err := time.ParseInLocation(dateLayout, rec[1], loc)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q", ErrMalformedRow, rec[1])
	}
	endDate, err := time.ParseInLocation(dateLayout, rec[3], loc)
	if err != nil {
		return nil, fmt.Errorf("%w: end date %q", ErrMalformedRow, rec[3])
	}

	var start, end time.Time
	if fullDay {
		start = startDate
		end = model.DateOf(endDate).At(23, 59, 0, 0, loc)
	} else {
		if start, err = combine(startDate, rec[2], loc); err != nil {
			return nil, err
		}
		if end, err = combine(endDate, rec[4], loc); err != nil {
			return nil, err
		}
	}

	ev, err := model.NewEvent(rec[0], start, end, fullDay)
	if err != nil {
		return nil, err
	}
	ev.Description = rec[6]
	ev.Location = rec[7]
	ev.Public = !strings.EqualFold(rec[8], "true")
	return ev, nil
}

func combine(day time.Time, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q", ErrMalformedRow, clock)
	}
	return model.DateOf(day).At(t.Hour(), t.Minute(), 0, 0, loc), nil
}
