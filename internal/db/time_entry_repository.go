package db

import (
	"errors"

	"github.com/terraincognita07/timetrackpro/internal/models"
	"gorm.io/gorm"
)

type TimeEntryRepository struct {
	database *gorm.DB
}

func NewTimeEntryRepository(database *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{database: database}
}

func (repo *TimeEntryRepository) FindByID(entryID uint) (models.TimeEntry, bool, error) {
	var entry models.TimeEntry
	err := repo.database.First(&entry, entryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.TimeEntry{}, false, nil
	}
	if err != nil {
		return models.TimeEntry{}, false, err
	}
	return entry, true, nil
}

func (repo *TimeEntryRepository) ListByUser(userID uint) ([]models.TimeEntry, error) {
	entries := make([]models.TimeEntry, 0)
	err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

// ListByUserRange returns entries dated in [from, to). Dates are stored as
// YYYY-MM-DD text, so text comparison orders them by day.
func (repo *TimeEntryRepository) ListByUserRange(userID uint, from models.Date, to models.Date) ([]models.TimeEntry, error) {
	entries := make([]models.TimeEntry, 0)
	err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, start_time ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

func (repo *TimeEntryRepository) Create(entry *models.TimeEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *TimeEntryRepository) Save(entry *models.TimeEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *TimeEntryRepository) Delete(entryID uint) error {
	return repo.database.Delete(&models.TimeEntry{}, entryID).Error
}
