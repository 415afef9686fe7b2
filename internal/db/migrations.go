package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/terraincognita07/timetrackpro/migrations"
	"gorm.io/gorm"
)

var schemaFiles fs.FS = migrations.Files

var (
	migrationFilePattern      = regexp.MustCompile(`^(\d+)_.*\.sql$`)
	addColumnStatementPattern = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+([^\s]+)\s+ADD\s+COLUMN\s+([^\s]+)\b`)
)

// ErrSchemaDrift means an applied migration version is now embedded under a
// different file name.
var ErrSchemaDrift = errors.New("embedded migrations do not match the applied schema")

type schemaMigration struct {
	Version int
	Name    string
	SQL     string
}

// applySchemaMigrations runs every migration in files that is not yet
// recorded in schema_migrations, each inside its own transaction, and returns
// the file names it ran.
func applySchemaMigrations(database *gorm.DB, files fs.FS) ([]string, error) {
	if err := database.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`).Error; err != nil {
		return nil, fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := readSchemaMigrations(files)
	if err != nil {
		return nil, err
	}

	applied, err := appliedSchemaVersions(database)
	if err != nil {
		return nil, err
	}

	ran := make([]string, 0, len(pending))
	for _, migration := range pending {
		if name, done := applied[strconv.Itoa(migration.Version)]; done {
			if name != migration.Name {
				return nil, fmt.Errorf("%w: version %d applied as %s, embedded as %s", ErrSchemaDrift, migration.Version, name, migration.Name)
			}
			continue
		}
		if err := runSchemaMigration(database, migration); err != nil {
			return nil, err
		}
		ran = append(ran, migration.Name)
	}
	return ran, nil
}

func readSchemaMigrations(files fs.FS) ([]schemaMigration, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("read schema migrations: %w", err)
	}

	found := make([]schemaMigration, 0, len(entries))
	byVersion := make(map[int]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := migrationFilePattern.FindStringSubmatch(entry.Name())
		if len(matches) != 2 {
			continue
		}

		version, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", entry.Name(), err)
		}
		if previous, exists := byVersion[version]; exists {
			return nil, fmt.Errorf("duplicate migration version %d in %s and %s", version, previous, entry.Name())
		}
		byVersion[version] = entry.Name()

		body, err := fs.ReadFile(files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		found = append(found, schemaMigration{Version: version, Name: entry.Name(), SQL: string(body)})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Version < found[j].Version
	})
	return found, nil
}

// appliedSchemaVersions maps each recorded version to the file it was applied
// from.
func appliedSchemaVersions(database *gorm.DB) (map[string]string, error) {
	var rows []struct {
		Version string `gorm:"column:version"`
		Name    string `gorm:"column:name"`
	}
	if err := database.Raw(`SELECT version, name FROM schema_migrations`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	applied := make(map[string]string, len(rows))
	for _, row := range rows {
		applied[row.Version] = row.Name
	}
	return applied, nil
}

// SchemaVersion returns the highest applied migration version, 0 for none.
func SchemaVersion(database *gorm.DB) (int, error) {
	applied, err := appliedSchemaVersions(database)
	if err != nil {
		return 0, err
	}
	highest := 0
	for raw := range applied {
		version, err := strconv.Atoi(raw)
		if err == nil && version > highest {
			highest = version
		}
	}
	return highest, nil
}

func runSchemaMigration(database *gorm.DB, migration schemaMigration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		statements := splitSQLStatements(migration.SQL)
		if len(statements) == 0 {
			return errors.New("migration has no SQL statements")
		}

		for _, statement := range statements {
			exists, err := addsExistingColumn(tx, statement)
			if err != nil {
				return fmt.Errorf("inspect migration %s: %w", migration.Name, err)
			}
			if exists {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s statement %q: %w", migration.Name, statement, err)
			}
		}

		return tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			strconv.Itoa(migration.Version),
			migration.Name,
		).Error
	})
}

func splitSQLStatements(sqlText string) []string {
	var statements []string
	for _, part := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

// addsExistingColumn reports whether statement is an ADD COLUMN for a column
// the table already has, which SQLite would reject.
func addsExistingColumn(database *gorm.DB, statement string) (bool, error) {
	matches := addColumnStatementPattern.FindStringSubmatch(statement)
	if len(matches) != 3 {
		return false, nil
	}
	table := strings.Trim(matches[1], "\"`[]")
	column := strings.Trim(matches[2], "\"`[]")

	var columns []struct {
		Name string `gorm:"column:name"`
	}
	query := fmt.Sprintf(`PRAGMA table_info("%s")`, strings.ReplaceAll(table, `"`, `""`))
	if err := database.Raw(query).Scan(&columns).Error; err != nil {
		return false, fmt.Errorf("load table_info for %s: %w", table, err)
	}
	for _, existing := range columns {
		if strings.EqualFold(existing.Name, column) {
			return true, nil
		}
	}
	return false, nil
}
