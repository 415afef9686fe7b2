package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

const (
	MaxEntryNotesLength = 2000
	MinRating           = 1
	MaxRating           = 5
	// ClearRating in a patch removes a stored mood or energy rating.
	ClearRating = 0
)

var (
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
	ErrEndBeforeStart    = errors.New("end time is before start time")
	ErrInvalidMood       = errors.New("mood rating must be between 1 and 5")
	ErrInvalidEnergy     = errors.New("energy level must be between 1 and 5")
	ErrNegativeRate      = errors.New("hourly rate must not be negative")
	ErrNotesTooLong      = errors.New("notes are too long")
	ErrInvalidAdjustment = errors.New("adjustment must not be negative")
)

// ValidationError ties a rejected value to the input field it came from.
type ValidationError struct {
	Field string
	Err   error
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", err.Field, err.Err)
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

type TimeEntryInput struct {
	Date        string
	StartTime   string
	EndTime     string
	HourlyRate  int
	Notes       string
	MoodRating  *int
	EnergyLevel *int
}

// TimeEntryPatch carries the fields of an entry update. A nil field is left
// unchanged. A rating set to ClearRating removes the stored rating.
type TimeEntryPatch struct {
	Date        *string
	StartTime   *string
	EndTime     *string
	HourlyRate  *int
	Notes       *string
	MoodRating  *int
	EnergyLevel *int
}

func (patch TimeEntryPatch) IsEmpty() bool {
	return patch.Date == nil && patch.StartTime == nil && patch.EndTime == nil &&
		patch.HourlyRate == nil && patch.Notes == nil && patch.MoodRating == nil && patch.EnergyLevel == nil
}

// BuildTimeEntry validates input and returns the entry it describes.
func BuildTimeEntry(userID uint, input TimeEntryInput) (models.TimeEntry, error) {
	date, err := parseEntryDate(input.Date)
	if err != nil {
		return models.TimeEntry{}, err
	}

	entry := models.TimeEntry{
		UserID:      userID,
		Date:        date,
		StartTime:   strings.TrimSpace(input.StartTime),
		EndTime:     strings.TrimSpace(input.EndTime),
		HourlyRate:  input.HourlyRate,
		Notes:       strings.TrimSpace(input.Notes),
		MoodRating:  input.MoodRating,
		EnergyLevel: input.EnergyLevel,
	}
	if err := NormalizeTimeEntry(&entry); err != nil {
		return models.TimeEntry{}, err
	}
	return entry, nil
}

// ApplyTimeEntryPatch validates each present field, applies it to entry and
// then validates the merged entry as a whole.
func ApplyTimeEntryPatch(entry models.TimeEntry, patch TimeEntryPatch) (models.TimeEntry, error) {
	if patch.Date != nil {
		date, err := parseEntryDate(*patch.Date)
		if err != nil {
			return models.TimeEntry{}, err
		}
		entry.Date = date
	}
	if patch.StartTime != nil {
		start := strings.TrimSpace(*patch.StartTime)
		if _, err := ParseClock(start); err != nil {
			return models.TimeEntry{}, &ValidationError{Field: "startTime", Err: ErrInvalidClock}
		}
		entry.StartTime = start
	}
	if patch.EndTime != nil {
		end := strings.TrimSpace(*patch.EndTime)
		if _, err := ParseClock(end); err != nil {
			return models.TimeEntry{}, &ValidationError{Field: "endTime", Err: ErrInvalidClock}
		}
		entry.EndTime = end
	}
	if patch.HourlyRate != nil {
		entry.HourlyRate = *patch.HourlyRate
	}
	if patch.Notes != nil {
		entry.Notes = strings.TrimSpace(*patch.Notes)
	}
	if patch.MoodRating != nil {
		entry.MoodRating = patchedRating(*patch.MoodRating)
	}
	if patch.EnergyLevel != nil {
		entry.EnergyLevel = patchedRating(*patch.EnergyLevel)
	}

	if err := NormalizeTimeEntry(&entry); err != nil {
		return models.TimeEntry{}, err
	}
	return entry, nil
}

// NormalizeTimeEntry checks every field of entry. Day-off entries are forced
// to a zero rate so they never contribute to payments.
func NormalizeTimeEntry(entry *models.TimeEntry) error {
	if entry.Date.IsZero() {
		return &ValidationError{Field: "date", Err: ErrInvalidDate}
	}
	start, err := ParseClock(entry.StartTime)
	if err != nil {
		return &ValidationError{Field: "startTime", Err: ErrInvalidClock}
	}
	end, err := ParseClock(entry.EndTime)
	if err != nil {
		return &ValidationError{Field: "endTime", Err: ErrInvalidClock}
	}
	if end < start {
		return &ValidationError{Field: "endTime", Err: ErrEndBeforeStart}
	}
	if entry.HourlyRate < 0 {
		return &ValidationError{Field: "hourlyRate", Err: ErrNegativeRate}
	}
	if !isValidRating(entry.MoodRating) {
		return &ValidationError{Field: "moodRating", Err: ErrInvalidMood}
	}
	if !isValidRating(entry.EnergyLevel) {
		return &ValidationError{Field: "energyLevel", Err: ErrInvalidEnergy}
	}
	if utf8.RuneCountInString(entry.Notes) > MaxEntryNotesLength {
		return &ValidationError{Field: "notes", Err: ErrNotesTooLong}
	}

	if entry.IsDayOff() {
		entry.HourlyRate = 0
	}
	return nil
}

func parseEntryDate(raw string) (models.Date, error) {
	date, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, &ValidationError{Field: "date", Err: ErrInvalidDate}
	}
	if ValidateYearMonth(date.Year(), int(date.Month())) != nil {
		return models.Date{}, &ValidationError{Field: "date", Err: ErrInvalidDate}
	}
	return date, nil
}

func patchedRating(value int) *int {
	if value == ClearRating {
		return nil
	}
	return &value
}

func isValidRating(value *int) bool {
	return value == nil || (*value >= MinRating && *value <= MaxRating)
}
