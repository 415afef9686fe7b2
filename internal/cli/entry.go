package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/timetrackpro/internal/models"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

const dayOffNote = "Day off"

type entryFlags struct {
	date   string
	start  string
	end    string
	rate   int
	notes  string
	mood   int
	energy int
}

func (flags *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flags.date, "date", "", "entry date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&flags.start, "start", "", "start time HH:MM")
	cmd.Flags().StringVar(&flags.end, "end", "", "end time HH:MM")
	cmd.Flags().IntVar(&flags.rate, "rate", 0, "hourly rate in whole currency units")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "free-form notes")
	cmd.Flags().IntVar(&flags.mood, "mood", 0, "mood rating 1-5 (0 clears it on edit)")
	cmd.Flags().IntVar(&flags.energy, "energy", 0, "energy level 1-5 (0 clears it on edit)")
}

func newEntryCommand(env *environment) *cobra.Command {
	entry := &cobra.Command{
		Use:   "entry",
		Short: "Manage time entries in the local mirror",
	}
	entry.AddCommand(
		newEntryAddCommand(env),
		newEntryDayOffCommand(env),
		newEntryListCommand(env),
		newEntryEditCommand(env),
		newEntryDeleteCommand(env),
	)
	return entry
}

func newEntryAddCommand(env *environment) *cobra.Command {
	flags := &entryFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a worked span",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := openLocalSession(env)
			if err != nil {
				return err
			}
			defer session.Close()

			date := flags.date
			if date == "" {
				date = session.today().String()
			}
			input := services.TimeEntryInput{
				Date:       date,
				StartTime:  flags.start,
				EndTime:    flags.end,
				HourlyRate: flags.rate,
				Notes:      flags.notes,
			}
			if cmd.Flags().Changed("mood") {
				input.MoodRating = &flags.mood
			}
			if cmd.Flags().Changed("energy") {
				input.EnergyLevel = &flags.energy
			}

			created, err := session.entries.Create(session.user.ID, input)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Added entry %d: %s\n", created.ID, describeEntry(created))
			return nil
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newEntryDayOffCommand(env *environment) *cobra.Command {
	var date, notes string
	cmd := &cobra.Command{
		Use:   "dayoff",
		Short: "Mark a day off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := openLocalSession(env)
			if err != nil {
				return err
			}
			defer session.Close()

			if date == "" {
				date = session.today().String()
			}
			created, err := session.entries.Create(session.user.ID, services.TimeEntryInput{
				Date:      date,
				StartTime: models.DayOffClock,
				EndTime:   models.DayOffClock,
				Notes:     notes,
			})
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Added entry %d: %s\n", created.ID, describeEntry(created))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&notes, "notes", dayOffNote, "notes")
	return cmd
}

func newEntryListCommand(env *environment) *cobra.Command {
	var year, month int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a month's entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := openLocalSession(env)
			if err != nil {
				return err
			}
			defer session.Close()

			year, month = session.resolveMonth(year, month)
			entries, err := session.entries.ListForMonth(session.user.ID, year, month)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printf(cmd.OutOrStdout(), "No entries for %04d-%02d.\n", year, month)
				return nil
			}
			rendered, err := renderEntryTable(entries)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s\n", rendered)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	return cmd
}

func newEntryEditCommand(env *environment) *cobra.Command {
	flags := &entryFlags{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			session, err := openLocalSession(env)
			if err != nil {
				return err
			}
			defer session.Close()

			changed := cmd.Flags().Changed
			patch := services.TimeEntryPatch{}
			if changed("date") {
				patch.Date = &flags.date
			}
			if changed("start") {
				patch.StartTime = &flags.start
			}
			if changed("end") {
				patch.EndTime = &flags.end
			}
			if changed("rate") {
				patch.HourlyRate = &flags.rate
			}
			if changed("notes") {
				patch.Notes = &flags.notes
			}
			if changed("mood") {
				patch.MoodRating = &flags.mood
			}
			if changed("energy") {
				patch.EnergyLevel = &flags.energy
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change")
			}

			updated, err := session.entries.Update(session.user.ID, entryID, patch)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Updated entry %d: %s\n", updated.ID, describeEntry(updated))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newEntryDeleteCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			session, err := openLocalSession(env)
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.entries.Delete(session.user.ID, entryID); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "Deleted entry %d\n", entryID)
			return nil
		},
	}
}

func parseEntryID(raw string) (uint, error) {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, fmt.Errorf("invalid entry id %q", raw)
	}
	return uint(value), nil
}

func describeEntry(entry models.TimeEntry) string {
	if entry.IsDayOff() {
		return fmt.Sprintf("%s day off", entry.Date)
	}
	minutes, err := services.EntryMinutes(entry)
	if err != nil {
		return fmt.Sprintf("%s %s-%s", entry.Date, entry.StartTime, entry.EndTime)
	}
	return fmt.Sprintf("%s %s-%s (%s)", entry.Date, entry.StartTime, entry.EndTime, services.FormatDuration(minutes))
}
