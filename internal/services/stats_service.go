package services

import (
	"fmt"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

type StatsReportSource interface {
	GetOrReconcile(userID uint, year int, month int) (models.MonthlyReport, error)
	ListForUser(userID uint) ([]models.MonthlyReport, error)
}

type StatsEntrySource interface {
	ListForMonth(userID uint, year int, month int) ([]models.TimeEntry, error)
	WorkedDates(userID uint) ([]models.Date, error)
}

type StreakRecorder interface {
	// RaiseBestStreak stores best only when it exceeds the stored value.
	RaiseBestStreak(userID uint, best int) error
}

type StatsService struct {
	reports StatsReportSource
	entries StatsEntrySource
	streaks StreakRecorder
}

type MonthOverview struct {
	Report             models.MonthlyReport `json:"report"`
	DaysWorked         int                  `json:"daysWorked"`
	EntryCount         int                  `json:"entryCount"`
	ProgressPercentage float64              `json:"progressPercentage"`
	WorkedDisplay      string               `json:"workedDisplay"`
	TargetDisplay      string               `json:"targetDisplay"`
	OvertimeDisplay    string               `json:"overtimeDisplay"`
	TotalPayment       int                  `json:"totalPayment"`
	Efficiency         float64              `json:"efficiencyPercentage"`
	Streaks            Streaks              `json:"streaks"`
}

func NewStatsService(reports StatsReportSource, entries StatsEntrySource, streaks StreakRecorder) *StatsService {
	return &StatsService{
		reports: reports,
		entries: entries,
		streaks: streaks,
	}
}

// MonthOverview reconciles the month and projects display metrics from it.
// A longer best streak than the one stored on user is persisted.
func (service *StatsService) MonthOverview(user *models.User, year int, month int, today models.Date) (MonthOverview, error) {
	report, err := service.reports.GetOrReconcile(user.ID, year, month)
	if err != nil {
		return MonthOverview{}, err
	}
	entries, err := service.entries.ListForMonth(user.ID, year, month)
	if err != nil {
		return MonthOverview{}, fmt.Errorf("list month entries: %w", err)
	}
	aggregate, err := AggregateEntries(entries)
	if err != nil {
		return MonthOverview{}, err
	}
	payment, err := TotalPaymentForEntries(entries)
	if err != nil {
		return MonthOverview{}, err
	}
	reports, err := service.reports.ListForUser(user.ID)
	if err != nil {
		return MonthOverview{}, err
	}
	workedDates, err := service.entries.WorkedDates(user.ID)
	if err != nil {
		return MonthOverview{}, err
	}

	streaks := BuildStreaks(workedDates, today, user.BestStreak)
	if streaks.Best > user.BestStreak {
		if err := service.streaks.RaiseBestStreak(user.ID, streaks.Best); err != nil {
			return MonthOverview{}, fmt.Errorf("record best streak: %w", err)
		}
		user.BestStreak = streaks.Best
	}

	return MonthOverview{
		Report:             report,
		DaysWorked:         aggregate.DaysWorked,
		EntryCount:         len(entries),
		ProgressPercentage: ProgressPercentage(report.WorkedMinutes, report.TargetMinutes),
		WorkedDisplay:      FormatDuration(report.WorkedMinutes),
		TargetDisplay:      FormatDuration(report.TargetMinutes),
		OvertimeDisplay:    FormatSignedDuration(report.OvertimeMinutes),
		TotalPayment:       payment,
		Efficiency:         EfficiencyPercentage(reports),
		Streaks:            streaks,
	}, nil
}
