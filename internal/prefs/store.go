// Package prefs persists the small amount of state FacilitatorStyles keeps
// between runs: the id of the last result type, used to highlight that
// type on the top screen.
//
// It uses SQLite through the pure-Go modernc driver, so the binary stays
// cgo-free.
package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// keyLastResultType is the preference holding the last result type id.
const keyLastResultType = "last_result_type"

// dbFile is the database file name inside the data directory.
const dbFile = "prefs.db"

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds preference store configuration.
type Config struct {
	DataDir string
	MaxAge  time.Duration
}

// DefaultConfig returns the default configuration: ~/.facilistyles and a
// one-year lifetime for the last result.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir: filepath.Join(home, ".facilistyles"),
		MaxAge:  365 * 24 * time.Hour,
	}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the SQLite-backed preference store.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New creates the data directory if needed, opens the database with WAL
// mode and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("prefs: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("prefs: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("prefs: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("prefs: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS preferences (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`)
	return err
}

// ─── Preferences ─────────────────────────────────────────────────────────────

// LastResultType returns the id of the last result type. ok is false when
// nothing is stored or the value is older than the configured max age.
func (s *Store) LastResultType() (id string, ok bool, err error) {
	var value, updated string
	err = s.db.QueryRow(
		`SELECT value, updated_at FROM preferences WHERE key = ?`, keyLastResultType,
	).Scan(&value, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("prefs: read last result: %w", err)
	}

	at, err := time.Parse(time.RFC3339, updated)
	if err != nil {
		return "", false, fmt.Errorf("prefs: parse updated_at %q: %w", updated, err)
	}
	if s.cfg.MaxAge > 0 && timeNow().Sub(at) > s.cfg.MaxAge {
		return "", false, nil
	}
	return value, true, nil
}

// SetLastResultType stores id as the last result type.
func (s *Store) SetLastResultType(id string) error {
	if id == "" {
		return errors.New("prefs: empty result type id")
	}
	now := timeNow().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		keyLastResultType, id, now,
	)
	if err != nil {
		return fmt.Errorf("prefs: write last result: %w", err)
	}
	return nil
}

// Clear removes every stored preference.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM preferences`); err != nil {
		return fmt.Errorf("prefs: clear: %w", err)
	}
	return nil
}
