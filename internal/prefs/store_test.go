package prefs

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// newTestStore creates a Store backed by a temp directory for isolation.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Config{DataDir: t.TempDir(), MaxAge: 365 * 24 * time.Hour})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// freezeTime pins timeNow for the duration of a test.
func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
}

// ─── New / Initialization ───────────────────────────────────────────────────

func TestNew_CreatesDBFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s, err := New(Config{DataDir: dir})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, dbFile)); err != nil {
		t.Fatalf("database file not created: %v", err)
	}
}

func TestNew_OpenError(t *testing.T) {
	orig := openDB
	openDB = func(string, string) (*sql.DB, error) { return nil, errors.New("boom") }
	defer func() { openDB = orig }()

	if _, err := New(Config{DataDir: t.TempDir()}); err == nil {
		t.Fatal("expected error when the database cannot be opened")
	}
}

func TestNew_IdempotentReopen(t *testing.T) {
	cfg := Config{DataDir: t.TempDir(), MaxAge: time.Hour}

	s1, err := New(cfg)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s1.SetLastResultType("compass"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s1.Close()

	s2, err := New(cfg)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	id, ok, err := s2.LastResultType()
	if err != nil || !ok || id != "compass" {
		t.Errorf("after reopen: id=%q ok=%v err=%v", id, ok, err)
	}
}

// ─── Last result ────────────────────────────────────────────────────────────

func TestLastResultType_Empty(t *testing.T) {
	s := newTestStore(t)
	id, ok, err := s.LastResultType()
	if err != nil || ok || id != "" {
		t.Errorf("empty store: id=%q ok=%v err=%v", id, ok, err)
	}
}

func TestSetLastResultType_Overwrites(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetLastResultType("spark"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetLastResultType("guardian"); err != nil {
		t.Fatal(err)
	}
	id, ok, _ := s.LastResultType()
	if !ok || id != "guardian" {
		t.Errorf("id=%q ok=%v, want guardian", id, ok)
	}

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}

func TestSetLastResultType_EmptyID(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetLastResultType(""); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestLastResultType_Expires(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	freezeTime(t, base)
	if err := s.SetLastResultType("tuner"); err != nil {
		t.Fatal(err)
	}

	freezeTime(t, base.Add(364*24*time.Hour))
	if _, ok, _ := s.LastResultType(); !ok {
		t.Error("value should still be valid after 364 days")
	}

	freezeTime(t, base.Add(366*24*time.Hour))
	if id, ok, err := s.LastResultType(); ok || err != nil {
		t.Errorf("expired value returned: id=%q ok=%v err=%v", id, ok, err)
	}
}

func TestLastResultType_NoMaxAge(t *testing.T) {
	s, err := New(Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	freezeTime(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	_ = s.SetLastResultType("director")
	freezeTime(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	if id, ok, _ := s.LastResultType(); !ok || id != "director" {
		t.Errorf("zero MaxAge should never expire: id=%q ok=%v", id, ok)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	_ = s.SetLastResultType("engine")
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := s.LastResultType(); ok {
		t.Error("value survived Clear")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if filepath.Base(cfg.DataDir) != ".facilistyles" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.MaxAge != 365*24*time.Hour {
		t.Errorf("MaxAge = %v", cfg.MaxAge)
	}
}
