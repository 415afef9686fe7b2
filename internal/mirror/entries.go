package mirror

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/timetrackpro/internal/models"
)

const entryColumns = `id, user_id, date, start_time, end_time, hourly_rate, notes, mood_rating, energy_level, created_at, updated_at`

const timestampLayout = "2006-01-02 15:04:05"

type EntryStore struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.TimeEntry, error) {
	var (
		entry     models.TimeEntry
		mood      sql.NullInt64
		energy    sql.NullInt64
		createdAt string
		updatedAt string
	)
	if err := row.Scan(
		&entry.ID, &entry.UserID, &entry.Date, &entry.StartTime, &entry.EndTime,
		&entry.HourlyRate, &entry.Notes, &mood, &energy, &createdAt, &updatedAt,
	); err != nil {
		return models.TimeEntry{}, err
	}
	entry.MoodRating = nullableInt(mood)
	entry.EnergyLevel = nullableInt(energy)

	var err error
	if entry.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return models.TimeEntry{}, fmt.Errorf("entry %d created_at: %w", entry.ID, err)
	}
	if entry.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return models.TimeEntry{}, fmt.Errorf("entry %d updated_at: %w", entry.ID, err)
	}
	return entry, nil
}

// parseTimestamp reads the UTC text written by Create and Save, and the
// RFC 3339 form SQLite drivers may hand back for the same column.
func parseTimestamp(raw string) (time.Time, error) {
	if parsed, err := time.Parse(timestampLayout, raw); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func nullableInt(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	converted := int(value.Int64)
	return &converted
}

func nullInt(value *int) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}

func (store *EntryStore) FindByID(entryID uint) (models.TimeEntry, bool, error) {
	row := store.db.QueryRow(`SELECT `+entryColumns+` FROM time_entries WHERE id = ?`, entryID)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TimeEntry{}, false, nil
	}
	if err != nil {
		return models.TimeEntry{}, false, fmt.Errorf("find entry: %w", err)
	}
	return entry, true, nil
}

func (store *EntryStore) ListByUser(userID uint) ([]models.TimeEntry, error) {
	return store.query(`SELECT `+entryColumns+` FROM time_entries
		WHERE user_id = ?
		ORDER BY date DESC, start_time DESC, id DESC`, userID)
}

// ListByUserRange returns entries dated in [from, to).
func (store *EntryStore) ListByUserRange(userID uint, from models.Date, to models.Date) ([]models.TimeEntry, error) {
	return store.query(`SELECT `+entryColumns+` FROM time_entries
		WHERE user_id = ? AND date >= ? AND date < ?
		ORDER BY date ASC, start_time ASC, id ASC`, userID, from.String(), to.String())
}

func (store *EntryStore) query(query string, args ...any) ([]models.TimeEntry, error) {
	rows, err := store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.TimeEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (store *EntryStore) Create(entry *models.TimeEntry) error {
	now := time.Now().UTC().Truncate(time.Second)
	result, err := store.db.Exec(`INSERT INTO time_entries
		(user_id, date, start_time, end_time, hourly_rate, notes, mood_rating, energy_level, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.Date.String(), entry.StartTime, entry.EndTime, entry.HourlyRate, entry.Notes,
		nullInt(entry.MoodRating), nullInt(entry.EnergyLevel), now.Format(timestampLayout), now.Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert entry id: %w", err)
	}
	entry.ID = uint(id)
	entry.CreatedAt = now
	entry.UpdatedAt = now
	return nil
}

func (store *EntryStore) Save(entry *models.TimeEntry) error {
	now := time.Now().UTC().Truncate(time.Second)
	_, err := store.db.Exec(`UPDATE time_entries
		SET date = ?, start_time = ?, end_time = ?, hourly_rate = ?, notes = ?, mood_rating = ?, energy_level = ?, updated_at = ?
		WHERE id = ?`,
		entry.Date.String(), entry.StartTime, entry.EndTime, entry.HourlyRate, entry.Notes,
		nullInt(entry.MoodRating), nullInt(entry.EnergyLevel), now.Format(timestampLayout), entry.ID,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	entry.UpdatedAt = now
	return nil
}

func (store *EntryStore) Delete(entryID uint) error {
	if _, err := store.db.Exec(`DELETE FROM time_entries WHERE id = ?`, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
