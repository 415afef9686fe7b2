package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/timetrackpro/internal/models"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

func newSettingsCommand(env *environment) *cobra.Command {
	var (
		fullName  string
		hours     int
		workDays  string
		breakMins int
		autoBreak bool
	)
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the local user's work settings",
		Long:  "Show or change the local user's work settings. Reports already created keep the target they were created with.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := openLocalSession(env)
			if err != nil {
				return err
			}
			defer session.Close()

			changed := cmd.Flags().Changed
			patch := services.UserSettingsPatch{}
			if changed("full-name") {
				patch.FullName = &fullName
			}
			if changed("hours") {
				patch.WorkHoursPerDay = &hours
			}
			if changed("work-days") {
				days, err := models.ParseWorkDays(workDays)
				if err != nil {
					return err
				}
				patch.WorkDays = &days
			}
			if changed("break") {
				patch.BreakMinutes = &breakMins
			}
			if changed("auto-break") {
				patch.AutoBreak = &autoBreak
			}

			user := session.user
			if patch != (services.UserSettingsPatch{}) {
				user, err = services.UpdateUserSettings(session.store.Users, session.user.ID, patch)
				if err != nil {
					return err
				}
				session.user = user
			}
			describeSettings(cmd.OutOrStdout(), user)
			return nil
		},
	}
	cmd.Flags().StringVar(&fullName, "full-name", "", "full name shown on exports")
	cmd.Flags().IntVar(&hours, "hours", 0, "work hours per day 1-24")
	cmd.Flags().StringVar(&workDays, "work-days", "", "ISO weekdays worked, e.g. 1,2,3,4,5 (Monday=1)")
	cmd.Flags().IntVar(&breakMins, "break", 0, "break minutes 0-480")
	cmd.Flags().BoolVar(&autoBreak, "auto-break", true, "record breaks automatically")
	return cmd
}

func describeSettings(out io.Writer, user models.User) {
	printf(out, "%s\n", titleStyle.Render(user.Username))
	if user.FullName != "" {
		printf(out, "%s\n", labeled("Name", user.FullName))
	}
	printf(out, "%s\n", labeled("Hours per day", fmt.Sprintf("%d", user.WorkHoursPerDay)))
	printf(out, "%s\n", labeled("Work days", user.WorkDays.String()))
	printf(out, "%s\n", labeled("Break", services.FormatDuration(user.BreakMinutes)))
	printf(out, "%s\n", labeled("Auto break", fmt.Sprintf("%t", user.AutoBreak)))
}
