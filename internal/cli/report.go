package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/timetrackpro/internal/models"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

var errNoAdjustment = errors.New("nothing to adjust: pass --vacation-days, --carried-from or --carried-to")

func newReportCommand(env *environment) *cobra.Command {
	var year, month int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reconcile and show a month's report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := openLocalSession(env)
			if err != nil {
				return err
			}
			defer session.Close()

			year, month = session.resolveMonth(year, month)
			overview, err := session.stats.MonthOverview(&session.user, year, month, session.today())
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s\n", renderOverview(overview))
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	cmd.AddCommand(newReportAdjustCommand(env))
	return cmd
}

func newReportAdjustCommand(env *environment) *cobra.Command {
	var (
		reportID                             uint
		year, month                          int
		vacationDays, carriedFrom, carriedTo int
	)
	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Set vacation days and carried minutes on a month's report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			changed := cmd.Flags().Changed
			patch := services.ReportAdjustmentPatch{}
			if changed("vacation-days") {
				patch.VacationDays = &vacationDays
			}
			if changed("carried-from") {
				patch.CarriedFromMinutes = &carriedFrom
			}
			if changed("carried-to") {
				patch.CarriedToMinutes = &carriedTo
			}
			if patch == (services.ReportAdjustmentPatch{}) {
				return errNoAdjustment
			}

			session, err := openLocalSession(env)
			if err != nil {
				return err
			}
			defer session.Close()

			if reportID == 0 {
				year, month = session.resolveMonth(year, month)
				report, err := session.reports.GetOrReconcile(session.user.ID, year, month)
				if err != nil {
					return err
				}
				reportID = report.ID
			}
			adjusted, err := session.reports.Adjust(session.user.ID, reportID, patch)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s\n", renderReportTable([]models.MonthlyReport{adjusted}))
			return nil
		},
	}
	cmd.Flags().UintVar(&reportID, "id", 0, "report id (default the report of --year/--month)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	cmd.Flags().IntVar(&vacationDays, "vacation-days", 0, "vacation days 0-31")
	cmd.Flags().IntVar(&carriedFrom, "carried-from", 0, "minutes carried in from the previous month")
	cmd.Flags().IntVar(&carriedTo, "carried-to", 0, "minutes carried over to the next month")
	return cmd
}

func newReportsCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List stored monthly reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := openLocalSession(env)
			if err != nil {
				return err
			}
			defer session.Close()

			reports, err := session.reports.ListForUser(session.user.ID)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				printf(cmd.OutOrStdout(), "No reports yet. Run `timetrackpro report` to create one.\n")
				return nil
			}
			printf(cmd.OutOrStdout(), "%s\n", renderReportTable(reports))
			return nil
		},
	}
}
