package api

import "github.com/terraincognita07/timetrackpro/internal/models"

type credentialsInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type timeEntryPayload struct {
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	HourlyRate  int    `json:"hourlyRate"`
	Notes       string `json:"notes"`
	MoodRating  *int   `json:"moodRating"`
	EnergyLevel *int   `json:"energyLevel"`
}

type timeEntryPatchPayload struct {
	Date        *string `json:"date"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	HourlyRate  *int    `json:"hourlyRate"`
	Notes       *string `json:"notes"`
	MoodRating  *int    `json:"moodRating"`
	EnergyLevel *int    `json:"energyLevel"`
}

type userSettingsPayload struct {
	FullName        *string          `json:"fullName"`
	Email           *string          `json:"email"`
	Phone           *string          `json:"phone"`
	Position        *string          `json:"position"`
	WorkHoursPerDay *int             `json:"workHoursPerDay"`
	WorkDays        *models.WorkDays `json:"workDays"`
	BreakMinutes    *int             `json:"breakMinutes"`
	AutoBreak       *bool            `json:"autoBreak"`
}

type reportAdjustmentPayload struct {
	VacationDays       *int `json:"vacationDays"`
	CarriedFromMinutes *int `json:"carriedFromMinutes"`
	CarriedToMinutes   *int `json:"carriedToMinutes"`
}
