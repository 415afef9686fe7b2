package mirror

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

const userColumns = `id, username, full_name, work_hours_per_day, work_days, break_minutes, auto_break, best_streak`

// UserStore keeps the local owner's work settings. The mirror holds no
// credentials.
type UserStore struct {
	db *sql.DB
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.FullName, &user.WorkHoursPerDay, &user.WorkDays,
		&user.BreakMinutes, &user.AutoBreak, &user.BestStreak)
	return user, err
}

func (store *UserStore) LoadSettingsByID(userID uint) (models.User, error) {
	user, err := scanUser(store.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, userID))
	if err != nil {
		return models.User{}, fmt.Errorf("load user %d: %w", userID, err)
	}
	return user, nil
}

// EnsureUser returns the local user called username, creating it with
// default work settings on first use.
func (store *UserStore) EnsureUser(username string) (models.User, error) {
	user, err := scanUser(store.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	fresh := models.NewUser(username, "")
	result, err := store.db.Exec(`INSERT INTO users (username, work_hours_per_day, work_days, break_minutes, auto_break)
		VALUES (?, ?, ?, ?, ?)`,
		fresh.Username, fresh.WorkHoursPerDay, fresh.WorkDays.String(), fresh.BreakMinutes, fresh.AutoBreak)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("create user id: %w", err)
	}
	fresh.ID = uint(id)
	return fresh, nil
}

func (store *UserStore) SaveSettings(user *models.User) error {
	_, err := store.db.Exec(`UPDATE users
		SET full_name = ?, work_hours_per_day = ?, work_days = ?, break_minutes = ?, auto_break = ?
		WHERE id = ?`,
		user.FullName, user.WorkHoursPerDay, user.WorkDays.String(), user.BreakMinutes, user.AutoBreak, user.ID)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (store *UserStore) RaiseBestStreak(userID uint, best int) error {
	_, err := store.db.Exec(`UPDATE users SET best_streak = ? WHERE id = ? AND best_streak < ?`, best, userID, best)
	if err != nil {
		return fmt.Errorf("raise best streak: %w", err)
	}
	return nil
}
