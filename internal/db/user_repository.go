package db

import (
	"errors"

	"github.com/terraincognita07/timetrackpro/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) LoadSettingsByID(userID uint) (models.User, error) {
	return repo.FindByID(userID)
}

func (repo *UserRepository) FindByUsername(username string) (models.User, bool, error) {
	var user models.User
	err := repo.database.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).Where("username = ?", username).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// SaveSettings writes the profile and work settings columns only.
func (repo *UserRepository) SaveSettings(user *models.User) error {
	return repo.database.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"full_name":          user.FullName,
		"email":              user.Email,
		"phone":              user.Phone,
		"position":           user.Position,
		"work_hours_per_day": user.WorkHoursPerDay,
		"work_days":          user.WorkDays,
		"break_minutes":      user.BreakMinutes,
		"auto_break":         user.AutoBreak,
	}).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}

// RaiseBestStreak only ever increases the stored value, so concurrent writers
// cannot lower it.
func (repo *UserRepository) RaiseBestStreak(userID uint, best int) error {
	return repo.database.Model(&models.User{}).
		Where("id = ? AND best_streak < ?", userID, best).
		Update("best_streak", best).Error
}
