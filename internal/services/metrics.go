package services

import (
	"github.com/shopspring/decimal"
	"github.com/terraincognita07/timetrackpro/internal/models"
)

var minutesPerHour = decimal.NewFromInt(60)

// ProgressPercentage is worked/target as a percentage clamped to [0,100].
// A zero target yields 0.
func ProgressPercentage(workedMinutes int, targetMinutes int) float64 {
	if targetMinutes == 0 {
		return 0
	}
	progress := float64(workedMinutes) / float64(targetMinutes) * 100
	switch {
	case progress < 0:
		return 0
	case progress > 100:
		return 100
	default:
		return progress
	}
}

// EfficiencyPercentage is the unclamped ratio of worked to target minutes
// over several reports.
func EfficiencyPercentage(reports []models.MonthlyReport) float64 {
	worked := 0
	target := 0
	for _, report := range reports {
		worked += report.WorkedMinutes
		target += report.TargetMinutes
	}
	if target == 0 {
		return 0
	}
	return float64(worked) / float64(target) * 100
}

// EntryPayment is minutes/60 * rate rounded to a whole unit, half away from
// zero.
func EntryPayment(entry models.TimeEntry) (int, error) {
	minutes, err := EntryMinutes(entry)
	if err != nil {
		return 0, err
	}
	payment := decimal.NewFromInt(int64(minutes)).
		Mul(decimal.NewFromInt(int64(entry.HourlyRate))).
		Div(minutesPerHour).
		Round(0)
	return int(payment.IntPart()), nil
}

// TotalPaymentForEntries sums the rounded payment of each entry.
func TotalPaymentForEntries(entries []models.TimeEntry) (int, error) {
	total := 0
	for _, entry := range entries {
		payment, err := EntryPayment(entry)
		if err != nil {
			return 0, err
		}
		total += payment
	}
	return total, nil
}
