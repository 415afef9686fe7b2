package cli

import (
	"fmt"
	"time"

	"github.com/terraincognita07/timetrackpro/internal/config"
	"github.com/terraincognita07/timetrackpro/internal/mirror"
	"github.com/terraincognita07/timetrackpro/internal/models"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

// localSession binds the services to the offline mirror and its owner.
type localSession struct {
	store    *mirror.Store
	user     models.User
	location *time.Location
	now      func() time.Time

	entries *services.EntryService
	reports *services.ReportService
	stats   *services.StatsService
	export  *services.ExportService
}

func openLocalSession(env *environment) (*localSession, error) {
	cfg, err := env.loadConfig()
	if err != nil {
		return nil, err
	}
	return openLocalSessionWithConfig(cfg, env.now)
}

func openLocalSessionWithConfig(cfg *config.Config, now func() time.Time) (*localSession, error) {
	username, err := services.NormalizeUsername(cfg.LocalUser)
	if err != nil {
		return nil, fmt.Errorf("local user: %w", err)
	}

	store, err := mirror.Open(cfg.MirrorPath)
	if err != nil {
		return nil, err
	}
	user, err := store.Users.EnsureUser(username)
	if err != nil {
		store.Close()
		return nil, err
	}

	entries := services.NewEntryService(store.Entries)
	reports := services.NewReportService(store.Entries, store.Reports, store.Users)
	return &localSession{
		store:    store,
		user:     user,
		location: cfg.Location(),
		now:      now,
		entries:  entries,
		reports:  reports,
		stats:    services.NewStatsService(reports, entries, store.Users),
		export:   services.NewExportService(entries, reports),
	}, nil
}

func (session *localSession) Close() error {
	return session.store.Close()
}

func (session *localSession) today() models.Date {
	return services.TodayIn(session.now(), session.location)
}

// resolveMonth fills unset year or month flags from today's date.
func (session *localSession) resolveMonth(year int, month int) (int, int) {
	today := session.today()
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
	}
	return year, month
}
