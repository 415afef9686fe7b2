package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/terraincognita07/timetrackpro/internal/models"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

var (
	colorPrimary = lipgloss.Color("#6C63FF")
	colorMuted   = lipgloss.Color("#666666")
	colorSuccess = lipgloss.Color("#2ECC71")
	colorError   = lipgloss.Color("#E74C3C")
	colorSubtle  = lipgloss.Color("#414868")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	labelStyle    = lipgloss.NewStyle().Foreground(colorMuted).Width(14)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Padding(0, 1)
	positiveStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	negativeStyle = lipgloss.NewStyle().Foreground(colorError)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
)

// renderOverview draws the month panel shown by the report command.
func renderOverview(overview services.MonthOverview) string {
	report := overview.Report
	title := titleStyle.Render(fmt.Sprintf("%s %d", time.Month(report.Month), report.Year))

	overtime := positiveStyle
	if report.OvertimeMinutes < 0 {
		overtime = negativeStyle
	}

	lines := []string{
		title,
		"",
		labeled("Worked", fmt.Sprintf("%s of %s (%.1f%%)", overview.WorkedDisplay, overview.TargetDisplay, overview.ProgressPercentage)),
		labeled("Overtime", overtime.Render(overview.OvertimeDisplay)),
		labeled("Work days", fmt.Sprintf("%d worked of %d", overview.DaysWorked, report.WorkDays)),
		labeled("Entries", strconv.Itoa(overview.EntryCount)),
		labeled("Payment", strconv.Itoa(overview.TotalPayment)),
		labeled("Efficiency", fmt.Sprintf("%.1f%%", overview.Efficiency)),
		labeled("Streak", fmt.Sprintf("%d current, %d best", overview.Streaks.Current, overview.Streaks.Best)),
	}
	if report.VacationDays > 0 {
		lines = append(lines, labeled("Vacation", fmt.Sprintf("%d days", report.VacationDays)))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func labeled(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorSubtle)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderEntryTable(entries []models.TimeEntry) (string, error) {
	rendered := newTable("ID", "Date", "Start", "End", "Duration", "Rate", "Notes")
	for _, entry := range entries {
		minutes, err := services.EntryMinutes(entry)
		if err != nil {
			return "", fmt.Errorf("entry %d: %w", entry.ID, err)
		}
		duration := services.FormatDuration(minutes)
		if entry.IsDayOff() {
			duration = "day off"
		}
		rendered.Row(
			strconv.FormatUint(uint64(entry.ID), 10),
			entry.Date.String(),
			entry.StartTime,
			entry.EndTime,
			duration,
			strconv.Itoa(entry.HourlyRate),
			entry.Notes,
		)
	}
	return rendered.String(), nil
}

func renderReportTable(reports []models.MonthlyReport) string {
	rendered := newTable("ID", "Month", "Work days", "Worked", "Target", "Overtime", "Vacation", "Carried in", "Carried out")
	for _, report := range reports {
		rendered.Row(
			strconv.FormatUint(uint64(report.ID), 10),
			fmt.Sprintf("%04d-%02d", report.Year, report.Month),
			strconv.Itoa(report.WorkDays),
			services.FormatDuration(report.WorkedMinutes),
			services.FormatDuration(report.TargetMinutes),
			services.FormatSignedDuration(report.OvertimeMinutes),
			strconv.Itoa(report.VacationDays),
			services.FormatDuration(report.CarriedFromMinutes),
			services.FormatDuration(report.CarriedToMinutes),
		)
	}
	return rendered.String()
}
