package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

var (
	ErrEntryNotFound  = errors.New("time entry not found")
	ErrEntryForbidden = errors.New("time entry belongs to another user")
)

type EntryRepository interface {
	FindByID(entryID uint) (models.TimeEntry, bool, error)
	ListByUser(userID uint) ([]models.TimeEntry, error)
	ListByUserRange(userID uint, from models.Date, to models.Date) ([]models.TimeEntry, error)
	Create(entry *models.TimeEntry) error
	Save(entry *models.TimeEntry) error
	Delete(entryID uint) error
}

// EntryService owns entry writes. Reports are not touched here; the next
// report read re-aggregates the affected months.
type EntryService struct {
	entries EntryRepository
}

func NewEntryService(entries EntryRepository) *EntryService {
	return &EntryService{entries: entries}
}

func (service *EntryService) ListForMonth(userID uint, year int, month int) ([]models.TimeEntry, error) {
	if err := ValidateYearMonth(year, month); err != nil {
		return nil, err
	}
	from, to := MonthBounds(year, month)
	return service.entries.ListByUserRange(userID, from, to)
}

func (service *EntryService) ListAll(userID uint) ([]models.TimeEntry, error) {
	return service.entries.ListByUser(userID)
}

func (service *EntryService) Get(userID uint, entryID uint) (models.TimeEntry, error) {
	entry, found, err := service.entries.FindByID(entryID)
	if err != nil {
		return models.TimeEntry{}, fmt.Errorf("load time entry: %w", err)
	}
	if !found {
		return models.TimeEntry{}, ErrEntryNotFound
	}
	if entry.UserID != userID {
		return models.TimeEntry{}, ErrEntryForbidden
	}
	return entry, nil
}

func (service *EntryService) Create(userID uint, input TimeEntryInput) (models.TimeEntry, error) {
	entry, err := BuildTimeEntry(userID, input)
	if err != nil {
		return models.TimeEntry{}, err
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.TimeEntry{}, fmt.Errorf("create time entry: %w", err)
	}
	return entry, nil
}

func (service *EntryService) Update(userID uint, entryID uint, patch TimeEntryPatch) (models.TimeEntry, error) {
	entry, err := service.Get(userID, entryID)
	if err != nil {
		return models.TimeEntry{}, err
	}
	if patch.IsEmpty() {
		return entry, nil
	}

	updated, err := ApplyTimeEntryPatch(entry, patch)
	if err != nil {
		return models.TimeEntry{}, err
	}
	if err := service.entries.Save(&updated); err != nil {
		return models.TimeEntry{}, fmt.Errorf("update time entry: %w", err)
	}
	return updated, nil
}

func (service *EntryService) Delete(userID uint, entryID uint) error {
	if _, err := service.Get(userID, entryID); err != nil {
		return err
	}
	if err := service.entries.Delete(entryID); err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}

// WorkedDates returns the dates of all non day-off entries of the user.
func (service *EntryService) WorkedDates(userID uint) ([]models.Date, error) {
	entries, err := service.entries.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	dates := make([]models.Date, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDayOff() {
			continue
		}
		dates = append(dates, entry.Date)
	}
	return dates, nil
}
