package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

var ExportCSVHeaders = []string{
	"Date",
	"Start",
	"End",
	"Duration",
	"Minutes",
	"Day off",
	"Hourly rate",
	"Payment",
	"Mood",
	"Energy",
	"Notes",
}

type ExportOptions struct {
	IncludeNotes  bool
	IncludeSalary bool
}

type ExportMonthReader interface {
	ListForMonth(userID uint, year int, month int) ([]models.TimeEntry, error)
}

type ExportReportReader interface {
	GetOrReconcile(userID uint, year int, month int) (models.MonthlyReport, error)
}

type ExportService struct {
	entries ExportMonthReader
	reports ExportReportReader
}

type ExportRow struct {
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Duration    string `json:"duration"`
	Minutes     int    `json:"minutes"`
	DayOff      bool   `json:"dayOff"`
	HourlyRate  *int   `json:"hourlyRate,omitempty"`
	Payment     *int   `json:"payment,omitempty"`
	MoodRating  *int   `json:"moodRating,omitempty"`
	EnergyLevel *int   `json:"energyLevel,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type ExportSummary struct {
	WorkDays           int    `json:"workDays"`
	DaysWorked         int    `json:"daysWorked"`
	WorkedMinutes      int    `json:"workedMinutes"`
	TargetMinutes      int    `json:"targetMinutes"`
	OvertimeMinutes    int    `json:"overtimeMinutes"`
	Worked             string `json:"worked"`
	Overtime           string `json:"overtime"`
	VacationDays       int    `json:"vacationDays"`
	CarriedFromMinutes int    `json:"carriedFromMinutes"`
	CarriedToMinutes   int    `json:"carriedToMinutes"`
	TotalPayment       *int   `json:"totalPayment,omitempty"`
}

type ExportDocument struct {
	ExportedAt string        `json:"exportedAt"`
	Username   string        `json:"username"`
	FullName   string        `json:"fullName,omitempty"`
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Summary    ExportSummary `json:"summary"`
	Entries    []ExportRow   `json:"entries"`
}

func NewExportService(entries ExportMonthReader, reports ExportReportReader) *ExportService {
	return &ExportService{
		entries: entries,
		reports: reports,
	}
}

// LoadMonth reconciles the month and returns the data an export is built
// from.
func (service *ExportService) LoadMonth(userID uint, year int, month int) ([]models.TimeEntry, models.MonthlyReport, error) {
	report, err := service.reports.GetOrReconcile(userID, year, month)
	if err != nil {
		return nil, models.MonthlyReport{}, err
	}
	entries, err := service.entries.ListForMonth(userID, year, month)
	if err != nil {
		return nil, models.MonthlyReport{}, err
	}
	return entries, report, nil
}

// BuildExportDocument is a read-only projection of the month for export
// renderers.
func BuildExportDocument(user models.User, entries []models.TimeEntry, report models.MonthlyReport, options ExportOptions, now time.Time) (ExportDocument, error) {
	rows := make([]ExportRow, 0, len(entries))
	total := 0
	for _, entry := range entries {
		minutes, err := EntryMinutes(entry)
		if err != nil {
			return ExportDocument{}, fmt.Errorf("entry %d: %w", entry.ID, err)
		}
		row := ExportRow{
			Date:        entry.Date.String(),
			StartTime:   entry.StartTime,
			EndTime:     entry.EndTime,
			Duration:    FormatDuration(minutes),
			Minutes:     minutes,
			DayOff:      entry.IsDayOff(),
			MoodRating:  entry.MoodRating,
			EnergyLevel: entry.EnergyLevel,
		}
		if options.IncludeSalary {
			payment, err := EntryPayment(entry)
			if err != nil {
				return ExportDocument{}, fmt.Errorf("entry %d: %w", entry.ID, err)
			}
			rate := entry.HourlyRate
			row.HourlyRate = &rate
			row.Payment = &payment
			total += payment
		}
		if options.IncludeNotes {
			row.Notes = entry.Notes
		}
		rows = append(rows, row)
	}

	aggregate, err := AggregateEntries(entries)
	if err != nil {
		return ExportDocument{}, err
	}

	summary := ExportSummary{
		WorkDays:           report.WorkDays,
		DaysWorked:         aggregate.DaysWorked,
		WorkedMinutes:      report.WorkedMinutes,
		TargetMinutes:      report.TargetMinutes,
		OvertimeMinutes:    report.OvertimeMinutes,
		Worked:             FormatDuration(report.WorkedMinutes),
		Overtime:           FormatSignedDuration(report.OvertimeMinutes),
		VacationDays:       report.VacationDays,
		CarriedFromMinutes: report.CarriedFromMinutes,
		CarriedToMinutes:   report.CarriedToMinutes,
	}
	if options.IncludeSalary {
		summary.TotalPayment = &total
	}

	return ExportDocument{
		ExportedAt: now.Format(time.RFC3339),
		Username:   user.Username,
		FullName:   user.FullName,
		Year:       report.Year,
		Month:      report.Month,
		Summary:    summary,
		Entries:    rows,
	}, nil
}

func WriteExportCSV(output io.Writer, document ExportDocument) error {
	writer := csv.NewWriter(output)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return err
	}
	for _, row := range document.Entries {
		if err := writer.Write(row.Columns()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (row ExportRow) Columns() []string {
	return []string{
		row.Date,
		row.StartTime,
		row.EndTime,
		row.Duration,
		strconv.Itoa(row.Minutes),
		csvYesNo(row.DayOff),
		optionalInt(row.HourlyRate),
		optionalInt(row.Payment),
		optionalInt(row.MoodRating),
		optionalInt(row.EnergyLevel),
		row.Notes,
	}
}

func csvYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func optionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func ExportFilename(year int, month int, extension string) string {
	return fmt.Sprintf("timetrackpro-%04d-%02d.%s", year, month, extension)
}
