// Package store is the persistence collaborator for the theme engine: it
// loads and saves theme records so the editor can checkpoint against them.
// The engine itself owns no schema beyond the record fields.
package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sitewise/themekit/internal/color"
	"github.com/sitewise/themekit/internal/theme"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrThemeNotFound is returned when a record ID has no row.
var ErrThemeNotFound = errors.New("theme not found")

// Record is a persisted theme: token styles plus adjustments and preset
// attribution, exactly the fields the editor loads and checkpoints against.
type Record struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Styles      theme.Styles      `json:"styles"`
	Adjustments color.Adjustments `json:"hslAdjustments"`
	PresetID    string            `json:"presetId,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Store wraps the SQLite theme database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the theme database at path and applies
// embedded migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", ensureForeignKeysEnabledDSN(path))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTheme inserts or updates a record. A record without an ID gets a
// fresh UUID. The stored row wins no ordering race: the caller sequences
// acknowledgements (last-acknowledgement-wins).
func (s *Store) SaveTheme(ctx context.Context, record Record) (Record, error) {
	stylesJSON, err := json.Marshal(record.Styles)
	if err != nil {
		return Record{}, fmt.Errorf("error encoding styles: %w", err)
	}
	adjustmentsJSON, err := json.Marshal(record.Adjustments.Clamped())
	if err != nil {
		return Record{}, fmt.Errorf("error encoding adjustments: %w", err)
	}

	now := time.Now().UTC()
	if record.ID == "" {
		record.ID = uuid.NewString()
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO themes (id, name, styles, hsl_adjustments, preset_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			styles = excluded.styles,
			hsl_adjustments = excluded.hsl_adjustments,
			preset_id = excluded.preset_id,
			updated_at = excluded.updated_at`,
		record.ID, record.Name, string(stylesJSON), string(adjustmentsJSON),
		nullableString(record.PresetID), now, now,
	)
	if err != nil {
		return Record{}, fmt.Errorf("error saving theme: %w", err)
	}

	return s.GetTheme(ctx, record.ID)
}

// GetTheme loads one record by ID.
func (s *Store) GetTheme(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, styles, hsl_adjustments, preset_id, created_at, updated_at
		FROM themes WHERE id = ?`, id)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrThemeNotFound
		}
		return Record{}, fmt.Errorf("error loading theme: %w", err)
	}
	return record, nil
}

// ListThemes returns all records, most recently updated first.
func (s *Store) ListThemes(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, styles, hsl_adjustments, preset_id, created_at, updated_at
		FROM themes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing themes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning theme: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing themes: %w", err)
	}
	return records, nil
}

// DeleteTheme removes a record by ID.
func (s *Store) DeleteTheme(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM themes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting theme: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting theme: %w", err)
	}
	if affected == 0 {
		return ErrThemeNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var record Record
	var stylesJSON, adjustmentsJSON string
	var presetID sql.NullString

	err := row.Scan(&record.ID, &record.Name, &stylesJSON, &adjustmentsJSON,
		&presetID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return Record{}, err
	}

	if err := json.Unmarshal([]byte(stylesJSON), &record.Styles); err != nil {
		return Record{}, fmt.Errorf("error decoding styles: %w", err)
	}
	if err := json.Unmarshal([]byte(adjustmentsJSON), &record.Adjustments); err != nil {
		return Record{}, fmt.Errorf("error decoding adjustments: %w", err)
	}
	if presetID.Valid {
		record.PresetID = presetID.String
	}
	return record, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// ensureForeignKeysEnabledDSN appends _fk=1 unless the DSN already sets it.
func ensureForeignKeysEnabledDSN(dataSourceName string) string {
	if strings.Contains(dataSourceName, "_fk=") {
		return dataSourceName
	}
	if strings.Contains(dataSourceName, "?") {
		return dataSourceName + "&_fk=1"
	}
	return dataSourceName + "?_fk=1"
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("could not create migrate driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not create source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}
	return nil
}
