package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

func octoberDates(days ...int) []models.Date {
	dates := make([]models.Date, 0, len(days))
	for _, day := range days {
		dates = append(dates, models.NewDate(2026, time.October, day))
	}
	return dates
}

func TestBuildStreaks(t *testing.T) {
	t.Parallel()

	today := models.NewDate(2026, time.October, 15)

	tests := []struct {
		name       string
		dates      []models.Date
		storedBest int
		want       Streaks
	}{
		{
			name: "no dates",
			want: Streaks{},
		},
		{
			name:  "run ending today",
			dates: octoberDates(12, 13, 14, 15, 15),
			want:  Streaks{Current: 4, Best: 4, ThisWeek: 4, ThisMonth: 4},
		},
		{
			name:  "run ending yesterday is still current",
			dates: octoberDates(13, 14),
			want:  Streaks{Current: 2, Best: 2, ThisWeek: 2, ThisMonth: 2},
		},
		{
			name:  "gap breaks current streak",
			dates: octoberDates(1, 2, 3, 4, 5, 13),
			want:  Streaks{Current: 0, Best: 5, ThisWeek: 1, ThisMonth: 6},
		},
		{
			name:       "stored best never drops",
			dates:      octoberDates(14, 15),
			storedBest: 9,
			want:       Streaks{Current: 2, Best: 9, ThisWeek: 2, ThisMonth: 2},
		},
		{
			name:  "future dates ignored",
			dates: octoberDates(15, 16, 17),
			want:  Streaks{Current: 1, Best: 1, ThisWeek: 1, ThisMonth: 1},
		},
		{
			name:  "crosses month boundary",
			dates: []models.Date{models.NewDate(2026, time.September, 30), models.NewDate(2026, time.October, 1)},
			want:  Streaks{Current: 0, Best: 2, ThisWeek: 0, ThisMonth: 1},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := BuildStreaks(test.dates, today, test.storedBest)
			if got != test.want {
				t.Fatalf("BuildStreaks = %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestTodayInUsesLocation(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 15, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)
	if got := TodayIn(now, tokyo).String(); got != "2026-10-16" {
		t.Fatalf("expected 2026-10-16, got %s", got)
	}
	if got := TodayIn(now, nil).String(); got != "2026-10-15" {
		t.Fatalf("expected 2026-10-15, got %s", got)
	}
}
