package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/timetrackpro/internal/models"
	"github.com/terraincognita07/timetrackpro/internal/security"
)

const (
	maxProfileFieldLength = 128
	MaxWorkHoursPerDay    = 24
	MaxBreakMinutes       = 480
)

var (
	ErrInvalidWorkHours          = errors.New("work hours per day must be between 1 and 24")
	ErrInvalidBreakMinutes       = errors.New("break minutes must be between 0 and 480")
	ErrEmptyWorkDays             = errors.New("at least one work day is required")
	ErrProfileFieldTooLong       = errors.New("profile field too long")
	ErrInvalidCurrentPassword    = errors.New("current password is invalid")
	ErrNewPasswordMustDiffer     = errors.New("new password must differ from the current one")
	ErrPasswordChangeInvalidData = errors.New("current and new password are required")
)

// SettingsRepository is the part of a user store that holds profile and work
// settings. The offline mirror implements only this part.
type SettingsRepository interface {
	LoadSettingsByID(userID uint) (models.User, error)
	SaveSettings(user *models.User) error
}

type SettingsUserRepository interface {
	SettingsRepository
	UpdatePassword(userID uint, passwordHash string) error
}

// UserSettingsPatch carries the editable profile and work settings. A nil
// field is left unchanged.
type UserSettingsPatch struct {
	FullName        *string
	Email           *string
	Phone           *string
	Position        *string
	WorkHoursPerDay *int
	WorkDays        *models.WorkDays
	BreakMinutes    *int
	AutoBreak       *bool
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

// Update applies the patch. Reports created before the change keep the
// target they were created with.
func (service *SettingsService) Update(userID uint, patch UserSettingsPatch) (models.User, error) {
	return UpdateUserSettings(service.users, userID, patch)
}

// UpdateUserSettings validates patch against the stored settings of userID
// and saves the result.
func UpdateUserSettings(users SettingsRepository, userID uint, patch UserSettingsPatch) (models.User, error) {
	user, err := users.LoadSettingsByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("load settings: %w", err)
	}

	profileFields := []struct {
		name   string
		source *string
		target *string
	}{
		{name: "fullName", source: patch.FullName, target: &user.FullName},
		{name: "email", source: patch.Email, target: &user.Email},
		{name: "phone", source: patch.Phone, target: &user.Phone},
		{name: "position", source: patch.Position, target: &user.Position},
	}
	for _, field := range profileFields {
		if field.source == nil {
			continue
		}
		value := strings.TrimSpace(*field.source)
		if utf8.RuneCountInString(value) > maxProfileFieldLength {
			return models.User{}, &ValidationError{Field: field.name, Err: ErrProfileFieldTooLong}
		}
		*field.target = value
	}

	if patch.WorkHoursPerDay != nil {
		if *patch.WorkHoursPerDay < 1 || *patch.WorkHoursPerDay > MaxWorkHoursPerDay {
			return models.User{}, &ValidationError{Field: "workHoursPerDay", Err: ErrInvalidWorkHours}
		}
		user.WorkHoursPerDay = *patch.WorkHoursPerDay
	}
	if patch.WorkDays != nil {
		days, err := patch.WorkDays.Normalize()
		if err != nil {
			return models.User{}, &ValidationError{Field: "workDays", Err: err}
		}
		if len(days) == 0 {
			return models.User{}, &ValidationError{Field: "workDays", Err: ErrEmptyWorkDays}
		}
		user.WorkDays = days
	}
	if patch.BreakMinutes != nil {
		if *patch.BreakMinutes < 0 || *patch.BreakMinutes > MaxBreakMinutes {
			return models.User{}, &ValidationError{Field: "breakMinutes", Err: ErrInvalidBreakMinutes}
		}
		user.BreakMinutes = *patch.BreakMinutes
	}
	if patch.AutoBreak != nil {
		user.AutoBreak = *patch.AutoBreak
	}

	if err := users.SaveSettings(&user); err != nil {
		return models.User{}, fmt.Errorf("save settings: %w", err)
	}
	return user, nil
}

func (service *SettingsService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	currentPassword = strings.TrimSpace(currentPassword)
	newPassword = strings.TrimSpace(newPassword)
	if currentPassword == "" || newPassword == "" {
		return ErrPasswordChangeInvalidData
	}

	user, err := service.users.LoadSettingsByID(userID)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if security.ComparePassword(user.PasswordHash, currentPassword) != nil {
		return ErrInvalidCurrentPassword
	}
	if currentPassword == newPassword {
		return ErrNewPasswordMustDiffer
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return &ValidationError{Field: "newPassword", Err: err}
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return service.users.UpdatePassword(userID, hash)
}
