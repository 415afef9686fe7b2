package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/timetrackpro/internal/db"
	"github.com/terraincognita07/timetrackpro/internal/models"
	"github.com/terraincognita07/timetrackpro/internal/security"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

const temporaryPasswordLength = 16

func newResetPasswordCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <username>",
		Short: "Replace a server account's password with a temporary one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.loadConfig()
			if err != nil {
				return err
			}
			return RunResetPasswordCommand(cfg.DBPath, args[0], cmd.OutOrStdout())
		},
	}
}

func RunResetPasswordCommand(dbPath string, username string, out io.Writer) error {
	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	if err := updateAccountPassword(dbPath, username, temporaryPassword); err != nil {
		return err
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "Change it after the next login.")
	return nil
}

func newSetPasswordCommand(env *environment) *cobra.Command {
	var fromStdin bool
	cmd := &cobra.Command{
		Use:   "set-password <username>",
		Short: "Set a server account's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.loadConfig()
			if err != nil {
				return err
			}

			var password string
			if fromStdin {
				password, err = readPromptLine(bufio.NewReader(cmd.InOrStdin()))
			} else {
				password, err = promptNewPassword(env.stdin, cmd.ErrOrStderr())
			}
			if err != nil {
				return err
			}
			if err := services.ValidatePasswordStrength(password); err != nil {
				return err
			}
			if err := updateAccountPassword(cfg.DBPath, args[0], password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password updated")
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read the password as one line from stdin")
	return cmd
}

func updateAccountPassword(dbPath string, usernameRaw string, password string) error {
	username, err := services.NormalizeUsername(usernameRaw)
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer db.Close(database)

	users := db.NewUserRepository(database)
	user, found, err := users.FindByUsername(username)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !found {
		return fmt.Errorf("user %s not found", username)
	}
	return setPassword(users, user, password)
}

type passwordWriter interface {
	UpdatePassword(userID uint, passwordHash string) error
}

func setPassword(users passwordWriter, user models.User, password string) error {
	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := users.UpdatePassword(user.ID, hash); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}
