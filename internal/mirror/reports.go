package mirror

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

const reportColumns = `id, user_id, year, month, work_days, worked_minutes, target_minutes, overtime_minutes, vacation_days, carried_from_minutes, carried_to_minutes`

type ReportStore struct {
	db *sql.DB
}

func scanReport(row rowScanner) (models.MonthlyReport, error) {
	var report models.MonthlyReport
	err := row.Scan(
		&report.ID, &report.UserID, &report.Year, &report.Month, &report.WorkDays,
		&report.WorkedMinutes, &report.TargetMinutes, &report.OvertimeMinutes,
		&report.VacationDays, &report.CarriedFromMinutes, &report.CarriedToMinutes,
	)
	return report, err
}

func (store *ReportStore) findOne(query string, args ...any) (models.MonthlyReport, bool, error) {
	report, err := scanReport(store.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MonthlyReport{}, false, nil
	}
	if err != nil {
		return models.MonthlyReport{}, false, fmt.Errorf("find report: %w", err)
	}
	return report, true, nil
}

func (store *ReportStore) FindByUserAndMonth(userID uint, year int, month int) (models.MonthlyReport, bool, error) {
	return store.findOne(`SELECT `+reportColumns+` FROM monthly_reports WHERE user_id = ? AND year = ? AND month = ?`, userID, year, month)
}

func (store *ReportStore) FindByID(reportID uint) (models.MonthlyReport, bool, error) {
	return store.findOne(`SELECT `+reportColumns+` FROM monthly_reports WHERE id = ?`, reportID)
}

func (store *ReportStore) ListByUser(userID uint) ([]models.MonthlyReport, error) {
	rows, err := store.db.Query(`SELECT `+reportColumns+` FROM monthly_reports WHERE user_id = ? ORDER BY year DESC, month DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.MonthlyReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// CreateIfAbsent inserts the report unless its (user_id, year, month) row
// already exists.
func (store *ReportStore) CreateIfAbsent(report *models.MonthlyReport) (bool, error) {
	result, err := store.db.Exec(`INSERT INTO monthly_reports
		(user_id, year, month, work_days, worked_minutes, target_minutes, overtime_minutes, vacation_days, carried_from_minutes, carried_to_minutes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, year, month) DO NOTHING`,
		report.UserID, report.Year, report.Month, report.WorkDays, report.WorkedMinutes, report.TargetMinutes,
		report.OvertimeMinutes, report.VacationDays, report.CarriedFromMinutes, report.CarriedToMinutes,
	)
	if err != nil {
		return false, fmt.Errorf("insert report: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert report rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}
	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("insert report id: %w", err)
	}
	report.ID = uint(id)
	return true, nil
}

func (store *ReportStore) UpdateWorkedMinutes(reportID uint, workedMinutes int, overtimeMinutes int) error {
	_, err := store.db.Exec(`UPDATE monthly_reports SET worked_minutes = ?, overtime_minutes = ? WHERE id = ?`, workedMinutes, overtimeMinutes, reportID)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	return nil
}

func (store *ReportStore) UpdateAdjustments(reportID uint, vacationDays int, carriedFromMinutes int, carriedToMinutes int) error {
	_, err := store.db.Exec(`UPDATE monthly_reports SET vacation_days = ?, carried_from_minutes = ?, carried_to_minutes = ? WHERE id = ?`,
		vacationDays, carriedFromMinutes, carriedToMinutes, reportID)
	if err != nil {
		return fmt.Errorf("update report adjustments: %w", err)
	}
	return nil
}
