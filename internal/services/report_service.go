package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

var (
	ErrReportNotFound        = errors.New("monthly report not found")
	ErrReportForbidden       = errors.New("monthly report belongs to another user")
	ErrReportSettingsMissing = errors.New("report owner settings not found")
)

type ReportEntryReader interface {
	ListByUserRange(userID uint, from models.Date, to models.Date) ([]models.TimeEntry, error)
}

type ReportRepository interface {
	FindByUserAndMonth(userID uint, year int, month int) (models.MonthlyReport, bool, error)
	FindByID(reportID uint) (models.MonthlyReport, bool, error)
	ListByUser(userID uint) ([]models.MonthlyReport, error)
	// CreateIfAbsent inserts the report unless one already exists for its
	// user and month, and reports whether a row was written.
	CreateIfAbsent(report *models.MonthlyReport) (bool, error)
	UpdateWorkedMinutes(reportID uint, workedMinutes int, overtimeMinutes int) error
	UpdateAdjustments(reportID uint, vacationDays int, carriedFromMinutes int, carriedToMinutes int) error
}

type ReportSettingsReader interface {
	LoadSettingsByID(userID uint) (models.User, error)
}

type ReportAdjustmentPatch struct {
	VacationDays       *int
	CarriedFromMinutes *int
	CarriedToMinutes   *int
}

type ReportService struct {
	entries ReportEntryReader
	reports ReportRepository
	users   ReportSettingsReader
}

func NewReportService(entries ReportEntryReader, reports ReportRepository, users ReportSettingsReader) *ReportService {
	return &ReportService{
		entries: entries,
		reports: reports,
		users:   users,
	}
}

// NewMonthlyReport builds the first version of a month's report from the
// owner's settings and the month's aggregate.
func NewMonthlyReport(user models.User, year int, month int, aggregate MonthlyAggregate) models.MonthlyReport {
	workDays := CountWorkDays(year, month, user.WorkDays)
	target := TargetMinutes(workDays, user.WorkHoursPerDay)
	return models.MonthlyReport{
		UserID:          user.ID,
		Year:            year,
		Month:           month,
		WorkDays:        workDays,
		WorkedMinutes:   aggregate.WorkedMinutes,
		TargetMinutes:   target,
		OvertimeMinutes: aggregate.WorkedMinutes - target,
	}
}

func (service *ReportService) AggregateMonth(userID uint, year int, month int) (MonthlyAggregate, error) {
	if err := ValidateYearMonth(year, month); err != nil {
		return MonthlyAggregate{}, err
	}
	from, to := MonthBounds(year, month)
	entries, err := service.entries.ListByUserRange(userID, from, to)
	if err != nil {
		return MonthlyAggregate{}, fmt.Errorf("load month entries: %w", err)
	}
	return AggregateEntries(entries)
}

// GetOrReconcile returns the month's report, creating it on first read and
// bringing its worked minutes in line with the current entries.
func (service *ReportService) GetOrReconcile(userID uint, year int, month int) (models.MonthlyReport, error) {
	aggregate, err := service.AggregateMonth(userID, year, month)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	report, found, err := service.reports.FindByUserAndMonth(userID, year, month)
	if err != nil {
		return models.MonthlyReport{}, fmt.Errorf("load monthly report: %w", err)
	}
	if !found {
		report, found, err = service.createReport(userID, year, month, aggregate)
		if err != nil {
			return models.MonthlyReport{}, err
		}
		if !found {
			return report, nil
		}
	}

	return service.reconcile(report, aggregate)
}

// reconcile writes the aggregate's worked minutes to a stored report when
// they differ. The stored target is kept.
func (service *ReportService) reconcile(report models.MonthlyReport, aggregate MonthlyAggregate) (models.MonthlyReport, error) {
	if report.WorkedMinutes == aggregate.WorkedMinutes {
		return report, nil
	}

	report.WorkedMinutes = aggregate.WorkedMinutes
	report.OvertimeMinutes = aggregate.WorkedMinutes - report.TargetMinutes
	if err := service.reports.UpdateWorkedMinutes(report.ID, report.WorkedMinutes, report.OvertimeMinutes); err != nil {
		return models.MonthlyReport{}, fmt.Errorf("update monthly report: %w", err)
	}
	return report, nil
}

// createReport inserts a new report. When another writer created the row
// first it returns the stored row with found set, so the caller reconciles it.
func (service *ReportService) createReport(userID uint, year int, month int, aggregate MonthlyAggregate) (models.MonthlyReport, bool, error) {
	user, err := service.users.LoadSettingsByID(userID)
	if err != nil {
		return models.MonthlyReport{}, false, fmt.Errorf("%w: %w", ErrReportSettingsMissing, err)
	}

	report := NewMonthlyReport(user, year, month, aggregate)
	report.UserID = userID
	created, err := service.reports.CreateIfAbsent(&report)
	if err != nil {
		return models.MonthlyReport{}, false, fmt.Errorf("create monthly report: %w", err)
	}
	if created {
		return report, false, nil
	}

	existing, found, err := service.reports.FindByUserAndMonth(userID, year, month)
	if err != nil {
		return models.MonthlyReport{}, false, fmt.Errorf("reload monthly report: %w", err)
	}
	if !found {
		return models.MonthlyReport{}, false, fmt.Errorf("reload monthly report: %w", ErrReportNotFound)
	}
	return existing, true, nil
}

// ListForUser returns the user's stored reports, most recent month first,
// each reconciled against its month's current entries.
func (service *ReportService) ListForUser(userID uint) ([]models.MonthlyReport, error) {
	reports, err := service.reports.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list monthly reports: %w", err)
	}
	for index, report := range reports {
		aggregate, err := service.AggregateMonth(userID, report.Year, report.Month)
		if err != nil {
			return nil, fmt.Errorf("aggregate %04d-%02d: %w", report.Year, report.Month, err)
		}
		if reports[index], err = service.reconcile(report, aggregate); err != nil {
			return nil, err
		}
	}
	SortReportsNewestFirst(reports)
	return reports, nil
}

func SortReportsNewestFirst(reports []models.MonthlyReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].Year != reports[j].Year {
			return reports[i].Year > reports[j].Year
		}
		return reports[i].Month > reports[j].Month
	})
}

func (service *ReportService) FindOwned(userID uint, reportID uint) (models.MonthlyReport, error) {
	report, found, err := service.reports.FindByID(reportID)
	if err != nil {
		return models.MonthlyReport{}, fmt.Errorf("load monthly report: %w", err)
	}
	if !found {
		return models.MonthlyReport{}, ErrReportNotFound
	}
	if report.UserID != userID {
		return models.MonthlyReport{}, ErrReportForbidden
	}
	return report, nil
}

// Adjust applies manual vacation and carried-minutes changes. Derived fields
// are left to reconciliation.
func (service *ReportService) Adjust(userID uint, reportID uint, patch ReportAdjustmentPatch) (models.MonthlyReport, error) {
	report, err := service.FindOwned(userID, reportID)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	if patch.VacationDays != nil {
		if *patch.VacationDays < 0 || *patch.VacationDays > 31 {
			return models.MonthlyReport{}, &ValidationError{Field: "vacationDays", Err: ErrInvalidAdjustment}
		}
		report.VacationDays = *patch.VacationDays
	}
	if patch.CarriedFromMinutes != nil {
		if *patch.CarriedFromMinutes < 0 {
			return models.MonthlyReport{}, &ValidationError{Field: "carriedFromMinutes", Err: ErrInvalidAdjustment}
		}
		report.CarriedFromMinutes = *patch.CarriedFromMinutes
	}
	if patch.CarriedToMinutes != nil {
		if *patch.CarriedToMinutes < 0 {
			return models.MonthlyReport{}, &ValidationError{Field: "carriedToMinutes", Err: ErrInvalidAdjustment}
		}
		report.CarriedToMinutes = *patch.CarriedToMinutes
	}

	if err := service.reports.UpdateAdjustments(report.ID, report.VacationDays, report.CarriedFromMinutes, report.CarriedToMinutes); err != nil {
		return models.MonthlyReport{}, fmt.Errorf("update report adjustments: %w", err)
	}
	return report, nil
}
