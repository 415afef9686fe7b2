// Package cli wires the timetrackpro commands: the API server, local entry
// management against the offline mirror, and account maintenance against
// the server database.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/timetrackpro/internal/config"
)

type environment struct {
	configPath string
	now        func() time.Time
	stdin      *os.File
}

func (env *environment) loadConfig() (*config.Config, error) {
	return config.Load(env.configPath)
}

// Execute is the entry point called from main.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&environment{now: time.Now, stdin: os.Stdin})
}

func newRootCommand(env *environment) *cobra.Command {
	root := &cobra.Command{
		Use:           "timetrackpro",
		Short:         "Track working time and reconcile monthly reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&env.configPath, "config", "", "path to a TOML config file (default $TTP_CONFIG or ./timetrackpro.toml)")

	root.AddCommand(
		newServeCommand(env),
		newEntryCommand(env),
		newReportCommand(env),
		newReportsCommand(env),
		newSettingsCommand(env),
		newExportCommand(env),
		newResetPasswordCommand(env),
		newSetPasswordCommand(env),
	)
	return root
}

func printf(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(out, format, args...)
}
