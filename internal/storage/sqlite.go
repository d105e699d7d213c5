// Package storage provides SQLite-based persistence for the clock's palette
// selection and phrase history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-wordclock/internal/clock"
)

// Settings keys.
const (
	keyPaletteColor      = "palette.color"
	keyPaletteBrightness = "palette.brightness"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Transition is one recorded phrase change.
type Transition struct {
	ID        int64
	Phrase    string
	HourIdx   int
	MinuteIdx int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS transitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			phrase TEXT NOT NULL,
			hour_idx INTEGER NOT NULL,
			minute_idx INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_transitions_created ON transitions(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePalette stores the palette selection, replacing any previous one.
func (s *Store) SavePalette(colorIndex, brightness int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for key, value := range map[string]int{
		keyPaletteColor:      colorIndex,
		keyPaletteBrightness: brightness,
	} {
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, strconv.Itoa(value),
		); err != nil {
			return fmt.Errorf("storage: cannot save %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit palette: %w", err)
	}
	return nil
}

// LoadPalette returns the stored palette selection.
// Returns false if none was saved or the stored one is out of range.
func (s *Store) LoadPalette() (clock.PaletteState, bool, error) {
	var state clock.PaletteState

	color, ok, err := s.setting(keyPaletteColor)
	if err != nil || !ok {
		return state, false, err
	}
	brightness, ok, err := s.setting(keyPaletteBrightness)
	if err != nil || !ok {
		return state, false, err
	}

	state.ColorIndex = color
	state.Brightness = clock.Brightness(brightness)
	if !state.Valid() {
		return clock.PaletteState{}, false, nil
	}
	return state, true, nil
}

// setting reads an integer setting.
func (s *Store) setting(key string) (int, bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query %s: %w", key, err)
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("storage: malformed %s %q: %w", key, raw, err)
	}
	return v, true, nil
}

// RecordTransition appends a phrase change to the history.
func (s *Store) RecordTransition(phrase string, hourIdx, minuteIdx int) error {
	_, err := s.db.Exec(
		"INSERT INTO transitions (phrase, hour_idx, minute_idx) VALUES (?, ?, ?)",
		phrase, hourIdx, minuteIdx,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record transition: %w", err)
	}
	return nil
}

// RecentTransitions retrieves the most recent phrase changes, newest first.
func (s *Store) RecentTransitions(limit int) ([]Transition, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, phrase, hour_idx, minute_idx, created_at
		 FROM transitions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query transitions: %w", err)
	}
	defer rows.Close()

	var entries []Transition
	for rows.Next() {
		var e Transition
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Phrase, &e.HourIdx, &e.MinuteIdx, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CountTransitions returns the number of recorded phrase changes.
func (s *Store) CountTransitions() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM transitions").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count transitions: %w", err)
	}
	return n, nil
}

// ClearHistory deletes all recorded transitions.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM transitions"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
// CURRENT_TIMESTAMP is UTC; the result is converted to local time.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.Local()
	case string:
		if parsed, err := time.ParseInLocation("2006-01-02 15:04:05", t, time.UTC); err == nil {
			return parsed.Local()
		}
	}
	return time.Time{}
}

// Ensure Store can back the engine's persistence.
var _ clock.Recorder = (*Store)(nil)
