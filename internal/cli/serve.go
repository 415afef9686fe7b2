package cli

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/timetrackpro/internal/api"
	"github.com/terraincognita07/timetrackpro/internal/db"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), env)
		},
	}
}

func runServe(ctx context.Context, env *environment) error {
	cfg, err := env.loadConfig()
	if err != nil {
		return err
	}
	secretKey, err := cfg.ResolveSecretKey()
	if err != nil {
		return err
	}
	port, err := cfg.ResolvePort()
	if err != nil {
		return err
	}
	location := cfg.Location()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer db.Close(database)

	handler, err := api.NewHandler(database, secretKey, location, cfg.CookieSecure)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newServerApp()
	api.RegisterRoutes(app, handler)

	if ctx == nil {
		ctx = context.Background()
	}
	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("timetrackpro listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, cfg.DBPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newServerApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "TimeTrackPro",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	return app
}
