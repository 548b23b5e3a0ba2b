// Package store provides SQLite persistence for previously fetched
// readings, liturgical days, prayer sets, and favorite marks.
//
// The store is the single source of truth for persisted state. Writes
// are serialized behind an internal mutex so readers never observe a
// half-written category replace or a half-finished eviction pass.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jmcarver/missal/internal/model"
)

// CacheError wraps a persistence failure. Callers treat it as a cache
// miss: it is logged and never fatal.
type CacheError struct {
	Op  string
	Err error
}

func (e *CacheError) Error() string { return fmt.Sprintf("cache %s: %v", e.Op, e.Err) }

func (e *CacheError) Unwrap() error { return e.Err }

func cacheErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &CacheError{Op: op, Err: err}
}

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates a Store at the given database path, creating tables if
// they don't exist. Uses WAL mode for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same
		// in-memory database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// createTables creates the required tables and indexes if they don't exist.
// Readings and calendar days are keyed by date, prayers by category with
// insertion order preserved via rowid, favorites by prayer name.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readings (
		date TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		saved_at DATETIME NOT NULL,
		payload BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS calendar_days (
		date TEXT PRIMARY KEY,
		saved_at DATETIME NOT NULL,
		payload BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS prayers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		saved_at DATETIME NOT NULL,
		payload BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS favorites (
		name TEXT PRIMARY KEY,
		added_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_readings_saved ON readings(saved_at);
	CREATE INDEX IF NOT EXISTS idx_days_saved ON calendar_days(saved_at);
	CREATE INDEX IF NOT EXISTS idx_prayers_category ON prayers(category);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// PutReadings upserts the readings for their date, overwriting any
// existing entry and stamping saved_at with the current time.
func (s *Store) PutReadings(r model.DailyReadings) error {
	return s.putReadingsAt(r, time.Now())
}

// putReadingsAt is the upsert with an explicit saved_at, used by
// retention tests to plant aged entries.
func (s *Store) putReadingsAt(r model.DailyReadings, savedAt time.Time) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return cacheErr("encode readings", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO readings (date, source, saved_at, payload)
		VALUES (?, ?, ?, ?)
	`, r.Date, r.Source, savedAt, payload)
	return cacheErr("put readings", err)
}

// GetReadings returns the stored readings for a date. A miss is
// (zero, false, nil). Reads never enforce retention; expiry happens
// only in the explicit eviction pass.
func (s *Store) GetReadings(date string) (model.DailyReadings, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload []byte
	err := s.db.QueryRow("SELECT payload FROM readings WHERE date = ?", date).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DailyReadings{}, false, nil
	}
	if err != nil {
		return model.DailyReadings{}, false, cacheErr("get readings", err)
	}

	var r model.DailyReadings
	if err := json.Unmarshal(payload, &r); err != nil {
		return model.DailyReadings{}, false, cacheErr("decode readings", err)
	}
	return r, true, nil
}

// PutDay upserts a liturgical day keyed by its date.
func (s *Store) PutDay(d model.LiturgicalDay) error {
	return s.putDayAt(d, time.Now())
}

func (s *Store) putDayAt(d model.LiturgicalDay, savedAt time.Time) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return cacheErr("encode day", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO calendar_days (date, saved_at, payload)
		VALUES (?, ?, ?)
	`, d.Date, savedAt, payload)
	return cacheErr("put day", err)
}

// GetDay returns the stored liturgical day for a date; miss is
// (zero, false, nil).
func (s *Store) GetDay(date string) (model.LiturgicalDay, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload []byte
	err := s.db.QueryRow("SELECT payload FROM calendar_days WHERE date = ?", date).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.LiturgicalDay{}, false, nil
	}
	if err != nil {
		return model.LiturgicalDay{}, false, cacheErr("get day", err)
	}

	var d model.LiturgicalDay
	if err := json.Unmarshal(payload, &d); err != nil {
		return model.LiturgicalDay{}, false, cacheErr("decode day", err)
	}
	return d, true, nil
}

// PutPrayers replaces the entire stored set for a category. The delete
// and inserts run in one transaction, so a partial update is never
// visible to readers.
func (s *Store) PutPrayers(category string, prayers []model.Prayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return cacheErr("put prayers", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM prayers WHERE category = ?", category); err != nil {
		return cacheErr("put prayers", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO prayers (name, category, saved_at, payload)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return cacheErr("put prayers", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, p := range prayers {
		payload, err := json.Marshal(p)
		if err != nil {
			return cacheErr("encode prayer", err)
		}
		if _, err := stmt.Exec(p.Name, category, now, payload); err != nil {
			return cacheErr("put prayers", err)
		}
	}

	return cacheErr("put prayers", tx.Commit())
}

// GetPrayers returns the stored prayers for a category in insertion
// order. A missing category is an empty slice, not an error.
func (s *Store) GetPrayers(category string) ([]model.Prayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT payload FROM prayers WHERE category = ? ORDER BY id ASC", category)
	if err != nil {
		return nil, cacheErr("get prayers", err)
	}
	defer rows.Close()

	var prayers []model.Prayer
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, cacheErr("get prayers", err)
		}
		var p model.Prayer
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, cacheErr("decode prayer", err)
		}
		prayers = append(prayers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, cacheErr("get prayers", err)
	}
	return prayers, nil
}

// ToggleFavorite flips the favorite mark for a prayer name and returns
// the new state. Two toggles in sequence restore the original state.
func (s *Store) ToggleFavorite(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM favorites WHERE name = ?", name)
	if err != nil {
		return false, cacheErr("toggle favorite", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, cacheErr("toggle favorite", err)
	}
	if removed > 0 {
		return false, nil
	}

	_, err = s.db.Exec("INSERT INTO favorites (name, added_at) VALUES (?, ?)", name, time.Now())
	if err != nil {
		return false, cacheErr("toggle favorite", err)
	}
	return true, nil
}

// IsFavorite reports whether a prayer name carries a favorite mark.
func (s *Store) IsFavorite(name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM favorites WHERE name = ?", name).Scan(&n)
	if err != nil {
		return false, cacheErr("is favorite", err)
	}
	return n > 0, nil
}

// Favorites returns all favorited prayer names, oldest mark first.
func (s *Store) Favorites() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT name FROM favorites ORDER BY added_at ASC")
	if err != nil {
		return nil, cacheErr("favorites", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, cacheErr("favorites", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, cacheErr("favorites", err)
	}
	return names, nil
}

// EvictOlderThan deletes readings and calendar-day entries whose
// saved_at precedes now minus retentionDays. Prayers and favorites are
// never touched. Returns the number of rows removed.
func (s *Store) EvictOlderThan(retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, table := range []string{"readings", "calendar_days"} {
		res, err := s.db.Exec("DELETE FROM "+table+" WHERE saved_at < ?", cutoff)
		if err != nil {
			return total, cacheErr("evict "+table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, cacheErr("evict "+table, err)
		}
		total += int(n)
	}
	return total, nil
}
