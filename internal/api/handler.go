package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/timetrackpro/internal/db"
	"github.com/terraincognita07/timetrackpro/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL = 7 * 24 * time.Hour
	loginAttemptLimit   = 8
	loginAttemptWindow  = 15 * time.Minute
	authCookieName      = "timetrackpro_auth"
	contextUserKey      = "current_user"
	bearerPrefix        = "Bearer "
	exportJSONType      = "application/json; charset=utf-8"
	exportCSVType       = "text/csv; charset=utf-8"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	now          func() time.Time
	loginLimiter *attemptLimiter

	repositories    *db.Repositories
	authService     *services.AuthService
	settingsService *services.SettingsService
	entryService    *services.EntryService
	reportService   *services.ReportService
	statsService    *services.StatsService
	exportService   *services.ExportService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		now:          time.Now,
		loginLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	repos := db.NewRepositories(database)
	handler.repositories = repos
	handler.authService = services.NewAuthService(repos.Users)
	handler.settingsService = services.NewSettingsService(repos.Users)
	handler.entryService = services.NewEntryService(repos.TimeEntries)
	handler.reportService = services.NewReportService(repos.TimeEntries, repos.MonthlyReports, repos.Users)
	handler.statsService = services.NewStatsService(handler.reportService, handler.entryService, repos.Users)
	handler.exportService = services.NewExportService(handler.entryService, handler.reportService)
	return handler
}
