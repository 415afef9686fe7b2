package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

type Streaks struct {
	Current   int `json:"current"`
	Best      int `json:"best"`
	ThisWeek  int `json:"thisWeek"`
	ThisMonth int `json:"thisMonth"`
}

// BuildStreaks derives streak counts from worked dates. The current streak
// ends at the latest worked day when that day is today or yesterday. Best
// never drops below storedBest.
func BuildStreaks(workedDates []models.Date, today models.Date, storedBest int) Streaks {
	days := uniqueSortedDates(workedDates, today)
	streaks := Streaks{Best: storedBest}
	if len(days) == 0 {
		return streaks
	}

	run := 1
	for index := 1; index < len(days); index++ {
		if days[index-1].DaysUntil(days[index]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > streaks.Best {
			streaks.Best = run
		}
	}
	if streaks.Best < 1 {
		streaks.Best = 1
	}

	latest := days[len(days)-1]
	if latest.DaysUntil(today) <= 1 {
		streaks.Current = 1
		for index := len(days) - 1; index > 0; index-- {
			if days[index-1].DaysUntil(days[index]) != 1 {
				break
			}
			streaks.Current++
		}
	}

	weekStart := today.AddDays(1 - today.ISOWeekday())
	monthStart := models.NewDate(today.Year(), today.Month(), 1)
	for _, day := range days {
		if !day.Before(weekStart) {
			streaks.ThisWeek++
		}
		if !day.Before(monthStart) {
			streaks.ThisMonth++
		}
	}
	return streaks
}

// uniqueSortedDates returns distinct dates up to today in ascending order.
func uniqueSortedDates(dates []models.Date, today models.Date) []models.Date {
	seen := make(map[string]struct{}, len(dates))
	unique := make([]models.Date, 0, len(dates))
	for _, date := range dates {
		if date.IsZero() || date.After(today) {
			continue
		}
		key := date.String()
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, date)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Before(unique[j])
	})
	return unique
}

// TodayIn returns the calendar date of now in location.
func TodayIn(now time.Time, location *time.Location) models.Date {
	if location == nil {
		location = time.UTC
	}
	return models.DateOf(now.In(location))
}
