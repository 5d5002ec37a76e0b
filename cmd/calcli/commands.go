package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"extensible-calendar/internal/agenda"
	"extensible-calendar/internal/agenda/usecase"
	"extensible-calendar/internal/model"
	"extensible-calendar/pkg/log"
)

// app backs every command with a calendar loaded from a CSV file.
type app struct {
	l       log.Logger
	csvPath string
	tz      string
	name    string

	uc agenda.UseCase
}

func newRootCmd(l log.Logger) *cobra.Command {
	a := &app{l: l}

	root := &cobra.Command{
		Use:           "calcli",
		Short:         "Query and edit a calendar stored as CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.csvPath, "csv", "calendar.csv", "CSV file holding the calendar")
	root.PersistentFlags().StringVar(&a.tz, "tz", "UTC", "IANA timezone the calendar is read in")
	root.PersistentFlags().StringVar(&a.name, "name", "default", "calendar name")

	root.AddCommand(
		a.onCmd(),
		a.rangeCmd(),
		a.statusCmd(),
		a.addCmd(),
		a.editCmd(),
		a.exportCmd(),
	)
	return root
}

// load creates the calendar and imports the CSV file when it exists.
func (a *app) load(ctx context.Context) error {
	uc := usecase.New(a.l, nil, nil)
	if _, err := uc.CreateCalendar(ctx, agenda.CreateCalendarInput{Name: a.name, Timezone: a.tz}); err != nil {
		return err
	}
	if err := uc.UseCalendar(ctx, a.name); err != nil {
		return err
	}
	a.uc = uc

	f, err := os.Open(a.csvPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := uc.ImportCSV(ctx, a.name, f); err != nil {
		return fmt.Errorf("load %s: %w", a.csvPath, err)
	}
	return nil
}

// save rewrites the CSV file through a temp file in the same directory.
func (a *app) save(ctx context.Context) error {
	tmp, err := os.CreateTemp(filepath.Dir(a.csvPath), ".calcli-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := a.uc.ExportCSV(ctx, a.name, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), a.csvPath)
}

func (a *app) onCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "on <date>",
		Short: "Print the events on a date (YYYY-MM-DD, today, tomorrow, in N days, next <weekday>)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.EventsOn(cmd.Context(), agenda.EventsOnInput{Date: args[0]})
			if err != nil {
				return err
			}
			printEvents(cmd, out.Events)
			return nil
		},
	}
}

func (a *app) rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <start> <end>",
		Short: "Print the events overlapping start..end (YYYY-MM-DDTHH:MM)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.EventsInRange(cmd.Context(), agenda.EventsInRangeInput{Start: args[0], End: args[1]})
			if err != nil {
				return err
			}
			printEvents(cmd, out.Events)
			return nil
		},
	}
}

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <datetime>",
		Short: "Print Busy or Available for a time (YYYY-MM-DDTHH:MM)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.uc.Status(cmd.Context(), agenda.StatusInput{At: args[0]})
			if err != nil {
				return err
			}
			if out.Busy {
				fmt.Fprintln(cmd.OutOrStdout(), "Busy")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Available")
			}
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var in agenda.CreateEventInput

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an event and save the calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			out, err := a.uc.CreateEvent(cmd.Context(), in)
			if err != nil {
				return err
			}
			if err := a.save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d event(s)\n", len(out.Events))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Start, "start", "", "start (YYYY-MM-DDTHH:MM)")
	f.StringVar(&in.End, "end", "", "end (YYYY-MM-DDTHH:MM)")
	f.StringVar(&in.Date, "date", "", "full-day date (YYYY-MM-DD)")
	f.StringVar(&in.Repeat, "repeat", "", `recurrence, e.g. "MWF for 6 times" or "TR until 2025-06-30T10:00"`)
	f.StringVar(&in.Description, "description", "", "description")
	f.StringVar(&in.Location, "location", "", "location")
	f.BoolVar(&in.Private, "private", false, "mark the event private")
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var (
		in   agenda.EditEventsInput
		mode string
	)

	cmd := &cobra.Command{
		Use:   "edit <property> <name> <value>",
		Short: "Edit name, description, location or public on events and save the calendar",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Property, in.Name, in.Value = args[0], args[1], args[2]
			in.Mode = agenda.EditMode(mode)
			out, err := a.uc.EditEvents(cmd.Context(), in)
			if err != nil {
				return err
			}
			if err := a.save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d event(s)\n", out.Updated)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&mode, "mode", string(agenda.EditModeAll), "single, from or all")
	f.StringVar(&in.Start, "start", "", "event start, for single and from")
	f.StringVar(&in.End, "end", "", "event end, for single")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the calendar as CSV to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.uc.ExportCSV(cmd.Context(), a.name, cmd.OutOrStdout())
		},
	}
}

func printEvents(cmd *cobra.Command, events []model.Event) {
	if len(events) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No events")
		return
	}
	for _, ev := range events {
		fmt.Fprintln(cmd.OutOrStdout(), ev.String())
	}
}
