package db

import (
	"errors"

	"github.com/terraincognita07/timetrackpro/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MonthlyReportRepository struct {
	database *gorm.DB
}

func NewMonthlyReportRepository(database *gorm.DB) *MonthlyReportRepository {
	return &MonthlyReportRepository{database: database}
}

func (repo *MonthlyReportRepository) FindByUserAndMonth(userID uint, year int, month int) (models.MonthlyReport, bool, error) {
	var report models.MonthlyReport
	err := repo.database.
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.MonthlyReport{}, false, nil
	}
	if err != nil {
		return models.MonthlyReport{}, false, err
	}
	return report, true, nil
}

func (repo *MonthlyReportRepository) FindByID(reportID uint) (models.MonthlyReport, bool, error) {
	var report models.MonthlyReport
	err := repo.database.First(&report, reportID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.MonthlyReport{}, false, nil
	}
	if err != nil {
		return models.MonthlyReport{}, false, err
	}
	return report, true, nil
}

func (repo *MonthlyReportRepository) ListByUser(userID uint) ([]models.MonthlyReport, error) {
	reports := make([]models.MonthlyReport, 0)
	err := repo.database.
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&reports).Error
	return reports, err
}

// CreateIfAbsent inserts report with ON CONFLICT DO NOTHING on the
// (user_id, year, month) key. It returns false when another writer holds the
// row.
func (repo *MonthlyReportRepository) CreateIfAbsent(report *models.MonthlyReport) (bool, error) {
	result := repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}},
		DoNothing: true,
	}).Create(report)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *MonthlyReportRepository) UpdateWorkedMinutes(reportID uint, workedMinutes int, overtimeMinutes int) error {
	return repo.database.Model(&models.MonthlyReport{}).Where("id = ?", reportID).Updates(map[string]any{
		"worked_minutes":   workedMinutes,
		"overtime_minutes": overtimeMinutes,
	}).Error
}

func (repo *MonthlyReportRepository) UpdateAdjustments(reportID uint, vacationDays int, carriedFromMinutes int, carriedToMinutes int) error {
	return repo.database.Model(&models.MonthlyReport{}).Where("id = ?", reportID).Updates(map[string]any{
		"vacation_days":        vacationDays,
		"carried_from_minutes": carriedFromMinutes,
		"carried_to_minutes":   carriedToMinutes,
	}).Error
}
