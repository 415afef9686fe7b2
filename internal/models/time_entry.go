package models

import "time"

// DayOffClock is the start and end time of a non-working day entry.
const DayOffClock = "00:00"

type TimeEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index:idx_time_entries_user_date" json:"userId"`
	Date        Date      `gorm:"type:text;not null;index:idx_time_entries_user_date" json:"date"`
	StartTime   string    `gorm:"not null" json:"startTime"`
	EndTime     string    `gorm:"not null" json:"endTime"`
	HourlyRate  int       `gorm:"not null;default:0" json:"hourlyRate"`
	Notes       string    `json:"notes"`
	MoodRating  *int      `json:"moodRating"`
	EnergyLevel *int      `json:"energyLevel"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsDayOff reports whether the entry marks a day off rather than a work span.
func (entry TimeEntry) IsDayOff() bool {
	return entry.StartTime == DayOffClock && entry.EndTime == DayOffClock
}
