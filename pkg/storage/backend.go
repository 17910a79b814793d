package storage

import (
	"database/sql"
	"fmt"
	"log"

	"coursedb/pkg/schedule"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores a snapshot of a loaded schedule.
type SQLiteBackend struct {
	db *sql.DB
}

func Open(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS schedule (
		key        TEXT PRIMARY KEY,
		subject    TEXT NOT NULL,
		catalog    TEXT NOT NULL,
		section    TEXT NOT NULL,
		component  TEXT,
		session    TEXT,
		units      INTEGER,
		tot_enrl   INTEGER,
		cap_enrl   INTEGER,
		instructor TEXT
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("init table: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
	`)
	if err != nil {
		log.Printf("[Snapshot] Warning: Failed to set PRAGMA: %v", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// SaveAll writes items in one transaction. Rows with an existing key are replaced.
func (s *SQLiteBackend) SaveAll(items []schedule.Item) error {
	if len(items) == 0 {
		return nil
	}
	return s.withTx(func(tx *sql.Tx) error {
		return insertItems(tx, items)
	})
}

// SaveSchedule replaces the snapshot contents with sched.
// On failure the previous snapshot is left untouched.
func (s *SQLiteBackend) SaveSchedule(sched *schedule.Schedule) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM schedule"); err != nil {
			return err
		}
		return insertItems(tx, sched.All())
	})
}

func (s *SQLiteBackend) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertItems(tx *sql.Tx, items []schedule.Item) error {
	if len(items) == 0 {
		return nil
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO schedule
		(key, subject, catalog, section, component, session, units, tot_enrl, cap_enrl, instructor)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err := stmt.Exec(it.Key(), it.Subject, it.Catalog, it.Section, it.Component,
			it.Session, it.Units, it.TotEnrl, it.CapEnrl, it.Instructor); err != nil {
			return fmt.Errorf("save %s: %w", it.Key(), err)
		}
	}
	return nil
}

// LoadAll returns every stored item in key order.
func (s *SQLiteBackend) LoadAll() ([]schedule.Item, error) {
	rows, err := s.db.Query(`SELECT subject, catalog, section, component, session,
		units, tot_enrl, cap_enrl, instructor FROM schedule ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []schedule.Item
	for rows.Next() {
		var it schedule.Item
		if err := rows.Scan(&it.Subject, &it.Catalog, &it.Section, &it.Component, &it.Session,
			&it.Units, &it.TotEnrl, &it.CapEnrl, &it.Instructor); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// LoadSchedule builds a Schedule from the stored snapshot.
func (s *SQLiteBackend) LoadSchedule() (*schedule.Schedule, error) {
	items, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	sched := schedule.New()
	for _, it := range items {
		sched.Add(it)
	}
	return sched, nil
}

func (s *SQLiteBackend) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM schedule").Scan(&n)
	return n, err
}

func (s *SQLiteBackend) Truncate() error {
	_, err := s.db.Exec("DELETE FROM schedule")
	return err
}

func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}
