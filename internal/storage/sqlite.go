package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

import (
	_ "modernc.org/sqlite"
)

type SQLite struct {
	DB *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	// Some environments restrict SQLite creating new files under $HOME, but allow
	// opening an existing file. Pre-create the DB file to avoid SQLITE_CANTOPEN.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("precreate sqlite db %s: %w", path, err)
	}
	_ = f.Close()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	s := &SQLite{DB: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) Close() error { return s.DB.Close() }

func (s *SQLite) init() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA synchronous=NORMAL;`,
		`PRAGMA foreign_keys=ON;`,
	}
	for _, st := range stmts {
		if _, err := s.DB.Exec(st); err != nil {
			// Some environments open the DB read-only unexpectedly; treat this as
			// non-fatal so listing can still read the DB.
			if strings.Contains(err.Error(), "readonly") {
				continue
			}
			return fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	var userVersion int
	if err := s.DB.QueryRow(`PRAGMA user_version;`).Scan(&userVersion); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if userVersion == 0 {
		if err := s.migrateToV1(); err != nil {
			return err
		}
		if _, err := s.DB.Exec(`PRAGMA user_version=1;`); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
		userVersion = 1
	}
	if userVersion != 1 {
		return fmt.Errorf("unsupported sqlite schema version %d", userVersion)
	}
	return nil
}

func (s *SQLite) migrateToV1() error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS reports(
			id TEXT PRIMARY KEY,
			generated_ts INTEGER,
			source TEXT,
			cutoff_ts INTEGER,
			profile_filter TEXT,
			known_count INTEGER,
			unparsed_count INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS events(
			report_id TEXT,
			seq INTEGER,
			profile TEXT,
			kind TEXT,
			count INTEGER,
			ts INTEGER,
			summary TEXT,
			fix TEXT,
			PRIMARY KEY(report_id, seq)
		);`,
		`CREATE TABLE IF NOT EXISTS unparsed(
			report_id TEXT,
			seq INTEGER,
			raw TEXT,
			PRIMARY KEY(report_id, seq)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_report_profile ON events(report_id, profile);`,
		`CREATE INDEX IF NOT EXISTS idx_events_report_kind ON events(report_id, kind);`,
		`CREATE INDEX IF NOT EXISTS idx_reports_generated ON reports(generated_ts);`,
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, st := range ddl {
		if _, err := tx.Exec(st); err != nil {
			return fmt.Errorf("sqlite ddl: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLite) InsertReport(r ReportRow) error {
	_, err := s.DB.Exec(
		`INSERT INTO reports(id, generated_ts, source, cutoff_ts, profile_filter, known_count, unparsed_count)
		 VALUES(?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GeneratedTS, r.Source, r.CutoffTS, r.ProfileFilter, r.KnownCount, r.UnparsedCount,
	)
	return err
}

func (s *SQLite) UpdateReportCounts(id string, known, unparsed int) error {
	_, err := s.DB.Exec(
		`UPDATE reports SET known_count=?, unparsed_count=? WHERE id=?`,
		known, unparsed, id,
	)
	return err
}

func (s *SQLite) InsertEvent(rec Record) error {
	_, err := s.DB.Exec(
		`INSERT INTO events(report_id, seq, profile, kind, count, ts, summary, fix)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ReportID, rec.Seq, rec.Profile, rec.Kind, rec.Count, rec.TS, rec.Summary, rec.Fix,
	)
	return err
}

func (s *SQLite) InsertUnparsed(rec Record) error {
	_, err := s.DB.Exec(
		`INSERT INTO unparsed(report_id, seq, raw) VALUES(?, ?, ?)`,
		rec.ReportID, rec.Seq, rec.Raw,
	)
	return err
}
