package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

func newExportCommand(env *environment) *cobra.Command {
	var (
		year, month        int
		format, outputPath string
		noNotes, noSalary  bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a month as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("unsupported format %q (use csv or json)", format)
			}
			session, err := openLocalSession(env)
			if err != nil {
				return err
			}
			defer session.Close()

			year, month = session.resolveMonth(year, month)
			entries, report, err := session.export.LoadMonth(session.user.ID, year, month)
			if err != nil {
				return err
			}
			options := services.ExportOptions{IncludeNotes: !noNotes, IncludeSalary: !noSalary}
			document, err := services.BuildExportDocument(session.user, entries, report, options, session.now().In(session.location))
			if err != nil {
				return err
			}

			output := cmd.OutOrStdout()
			if outputPath != "" {
				file, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outputPath, err)
				}
				defer file.Close()
				output = file
			}
			return writeExport(output, format, document)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&noNotes, "no-notes", false, "leave notes out")
	cmd.Flags().BoolVar(&noSalary, "no-salary", false, "leave rates and payments out")
	return cmd
}

func writeExport(output io.Writer, format string, document services.ExportDocument) error {
	if format == "json" {
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(document)
	}
	return services.WriteExportCSV(output, document)
}
