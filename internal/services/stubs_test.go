package services

import (
	"errors"
	"sort"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

type memoryEntryRepository struct {
	entries map[uint]models.TimeEntry
	nextID  uint
	listErr error
}

func newMemoryEntryRepository(entries ...models.TimeEntry) *memoryEntryRepository {
	repo := &memoryEntryRepository{entries: make(map[uint]models.TimeEntry)}
	for _, entry := range entries {
		if entry.ID == 0 {
			repo.nextID++
			entry.ID = repo.nextID
		} else if entry.ID > repo.nextID {
			repo.nextID = entry.ID
		}
		repo.entries[entry.ID] = entry
	}
	return repo
}

func (repo *memoryEntryRepository) FindByID(entryID uint) (models.TimeEntry, bool, error) {
	entry, ok := repo.entries[entryID]
	return entry, ok, nil
}

func (repo *memoryEntryRepository) ListByUser(userID uint) ([]models.TimeEntry, error) {
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	result := make([]models.TimeEntry, 0, len(repo.entries))
	for _, entry := range repo.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (repo *memoryEntryRepository) ListByUserRange(userID uint, from models.Date, to models.Date) ([]models.TimeEntry, error) {
	all, err := repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	result := make([]models.TimeEntry, 0, len(all))
	for _, entry := range all {
		if !entry.Date.Before(from) && entry.Date.Before(to) {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (repo *memoryEntryRepository) Create(entry *models.TimeEntry) error {
	repo.nextID++
	entry.ID = repo.nextID
	repo.entries[entry.ID] = *entry
	return nil
}

func (repo *memoryEntryRepository) Save(entry *models.TimeEntry) error {
	if _, ok := repo.entries[entry.ID]; !ok {
		return errors.New("save unknown entry")
	}
	repo.entries[entry.ID] = *entry
	return nil
}

func (repo *memoryEntryRepository) Delete(entryID uint) error {
	delete(repo.entries, entryID)
	return nil
}

type memoryReportRepository struct {
	reports       map[uint]models.MonthlyReport
	nextID        uint
	createCalls   int
	updateCalls   int
	concurrentRow *models.MonthlyReport
}

func newMemoryReportRepository() *memoryReportRepository {
	return &memoryReportRepository{reports: make(map[uint]models.MonthlyReport)}
}

func (repo *memoryReportRepository) FindByUserAndMonth(userID uint, year int, month int) (models.MonthlyReport, bool, error) {
	for _, report := range repo.reports {
		if report.UserID == userID && report.Year == year && report.Month == month {
			return report, true, nil
		}
	}
	return models.MonthlyReport{}, false, nil
}

func (repo *memoryReportRepository) FindByID(reportID uint) (models.MonthlyReport, bool, error) {
	report, ok := repo.reports[reportID]
	return report, ok, nil
}

func (repo *memoryReportRepository) ListByUser(userID uint) ([]models.MonthlyReport, error) {
	result := make([]models.MonthlyReport, 0, len(repo.reports))
	for _, report := range repo.reports {
		if report.UserID == userID {
			result = append(result, report)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// CreateIfAbsent inserts concurrentRow first when set, as if another process
// won the race for the same month.
func (repo *memoryReportRepository) CreateIfAbsent(report *models.MonthlyReport) (bool, error) {
	repo.createCalls++
	if repo.concurrentRow != nil {
		winner := *repo.concurrentRow
		repo.concurrentRow = nil
		repo.nextID++
		winner.ID = repo.nextID
		repo.reports[winner.ID] = winner
	}
	if _, found, _ := repo.FindByUserAndMonth(report.UserID, report.Year, report.Month); found {
		return false, nil
	}
	repo.nextID++
	report.ID = repo.nextID
	repo.reports[report.ID] = *report
	return true, nil
}

func (repo *memoryReportRepository) UpdateWorkedMinutes(reportID uint, workedMinutes int, overtimeMinutes int) error {
	repo.updateCalls++
	report := repo.reports[reportID]
	report.WorkedMinutes = workedMinutes
	report.OvertimeMinutes = overtimeMinutes
	repo.reports[reportID] = report
	return nil
}

func (repo *memoryReportRepository) UpdateAdjustments(reportID uint, vacationDays int, carriedFromMinutes int, carriedToMinutes int) error {
	report := repo.reports[reportID]
	report.VacationDays = vacationDays
	report.CarriedFromMinutes = carriedFromMinutes
	report.CarriedToMinutes = carriedToMinutes
	repo.reports[reportID] = report
	return nil
}

type stubSettingsReader struct {
	users map[uint]models.User
}

func newStubSettingsReader(users ...models.User) *stubSettingsReader {
	reader := &stubSettingsReader{users: make(map[uint]models.User)}
	for _, user := range users {
		reader.users[user.ID] = user
	}
	return reader
}

func (reader *stubSettingsReader) LoadSettingsByID(userID uint) (models.User, error) {
	user, ok := reader.users[userID]
	if !ok {
		return models.User{}, errors.New("user not found")
	}
	return user, nil
}

func defaultTestUser(id uint) models.User {
	user := models.NewUser("worker", "")
	user.ID = id
	return user
}
