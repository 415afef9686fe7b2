package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

const (
	MinReportYear = 2000
	MaxReportYear = 2100
)

var ErrInvalidMonth = errors.New("invalid year or month")

type MonthlyAggregate struct {
	WorkedMinutes int
	DaysWorked    int
}

// AggregateEntries sums worked minutes and counts distinct worked dates over
// entries already filtered to one month. Day-off entries count for neither.
func AggregateEntries(entries []models.TimeEntry) (MonthlyAggregate, error) {
	aggregate := MonthlyAggregate{}
	workedDates := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		if entry.IsDayOff() {
			continue
		}
		minutes, err := MinutesBetween(entry.StartTime, entry.EndTime)
		if err != nil {
			return MonthlyAggregate{}, fmt.Errorf("entry %d: %w", entry.ID, err)
		}
		aggregate.WorkedMinutes += minutes
		workedDates[entry.Date.String()] = struct{}{}
	}

	aggregate.DaysWorked = len(workedDates)
	return aggregate, nil
}

func ValidateYearMonth(year int, month int) error {
	if year < MinReportYear || year > MaxReportYear || month < 1 || month > 12 {
		return fmt.Errorf("%w: %d-%02d", ErrInvalidMonth, year, month)
	}
	return nil
}

// MonthBounds returns the first day of the month and the first day of the
// next month.
func MonthBounds(year int, month int) (models.Date, models.Date) {
	from := models.NewDate(year, time.Month(month), 1)
	return from, models.NewDate(year, time.Month(month)+1, 1)
}

// CountWorkDays counts the days of the month whose ISO weekday is in
// workDays.
func CountWorkDays(year int, month int, workDays models.WorkDays) int {
	from, to := MonthBounds(year, month)
	count := 0
	for day := from; day.Before(to); day = day.AddDays(1) {
		if workDays.Contains(day.ISOWeekday()) {
			count++
		}
	}
	return count
}

func TargetMinutes(workDays int, workHoursPerDay int) int {
	return workDays * workHoursPerDay * 60
}
