package usecase

import (
	"context"
	"fmt"
	"io"

	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/csvio"
)

func (uc *implUseCase) ExportCSV(ctx context.Context, calendar string, w io.Writer) (err error) {
	defer func() { uc.observe("export_csv", err) }()

	uc.mu.Lock()
	cal, err := uc.resolve(calendar)
	if err != nil {
		uc.mu.Unlock()
		uc.l.Warnf(ctx, "uc.ExportCSV.resolve: %v", err)
		return err
	}
	events := cal.Scheduler().RetrieveAll()
	uc.mu.Unlock()

	if err := csvio.Export(w, events); err != nil {
		uc.l.Errorf(ctx, "uc.ExportCSV.Export: %v", err)
		return err
	}
	uc.l.Debugf(ctx, "uc.ExportCSV: exported %d event(s) from %s", len(events), cal.Name())
	return nil
}

// ImportCSV schedules rows one by one. Rows imported before a conflict stay
// in the calendar. The document is parsed without holding uc.mu, so a slow
// reader does not stall other operations.
func (uc *implUseCase) ImportCSV(ctx context.Context, calendar string, r io.Reader) (out agenda.ImportOutput, err error) {
	defer func() { uc.observe("import_csv", err) }()

	uc.mu.Lock()
	cal, err := uc.resolve(calendar)
	if err != nil {
		uc.mu.Unlock()
		uc.l.Warnf(ctx, "uc.ImportCSV.resolve: %v", err)
		return out, err
	}
	loc := cal.Timezone()
	uc.mu.Unlock()

	events, err := csvio.Import(r, loc)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ImportCSV.Import: %v", err)
		return out, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// The calendar may have changed while the document was parsed.
	if cal, err = uc.resolve(calendar); err != nil {
		uc.l.Warnf(ctx, "uc.ImportCSV.resolve: %v", err)
		return out, err
	}

	s := cal.Scheduler()
	for _, ev := range events {
		ev.In(cal.Timezone())
		if err := s.Schedule(ev); err != nil {
			uc.scheduled("import", out.Imported)
			uc.l.Warnf(ctx, "uc.ImportCSV: imported %d before failure: %v", out.Imported, err)
			return out, fmt.Errorf("import %s: %w", ev.Name, err)
		}
		out.Imported++
	}
	uc.scheduled("import", out.Imported)
	uc.l.Infof(ctx, "uc.ImportCSV: imported %d event(s) into %s", out.Imported, cal.Name())
	return out, nil
}
