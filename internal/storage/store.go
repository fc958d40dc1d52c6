package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store persists one exported report to two sinks at once: a JSONL file
// under <stateDir>/reports/ and the shared SQLite index at
// <stateDir>/index.sqlite.
type Store struct {
	mu sync.Mutex

	reportID string
	seq      int64

	known    int
	unparsed int

	jsonl *JSONLWriter
	sql   *SQLite
}

type OpenParams struct {
	ReportID      string
	StateDir      string
	GeneratedTS   int64
	Source        string
	CutoffTS      int64
	ProfileFilter string
}

func Open(p OpenParams) (*Store, error) {
	dir := filepath.Join(p.StateDir, "reports")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	jsonl, err := NewJSONLWriter(filepath.Join(dir, p.ReportID+".jsonl"))
	if err != nil {
		return nil, err
	}
	sqlite, err := OpenSQLite(filepath.Join(p.StateDir, "index.sqlite"))
	if err != nil {
		_ = jsonl.Close()
		return nil, err
	}
	if err := sqlite.InsertReport(ReportRow{
		ID:            p.ReportID,
		GeneratedTS:   p.GeneratedTS,
		Source:        p.Source,
		CutoffTS:      p.CutoffTS,
		ProfileFilter: p.ProfileFilter,
	}); err != nil {
		_ = sqlite.Close()
		_ = jsonl.Close()
		return nil, fmt.Errorf("insert report: %w", err)
	}
	return &Store{reportID: p.ReportID, jsonl: jsonl, sql: sqlite}, nil
}

// AppendEvent stores one deduplicated known event and returns its sequence
// number within the report.
func (s *Store) AppendEvent(profile, kind string, count int, ts int64, summary, fix string) (int64, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.known += count
	s.mu.Unlock()

	rec := Record{
		ReportID: s.reportID,
		Seq:      seq,
		Kind:     kind,
		Profile:  profile,
		Count:    count,
		TS:       ts,
		Summary:  summary,
		Fix:      fix,
	}
	if err := s.jsonl.Append(rec); err != nil {
		return 0, err
	}
	if err := s.sql.InsertEvent(rec); err != nil {
		return 0, err
	}
	return seq, nil
}

// AppendUnparsed stores one unique unparsed line.
func (s *Store) AppendUnparsed(raw string) (int64, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.unparsed++
	s.mu.Unlock()

	rec := Record{ReportID: s.reportID, Seq: seq, Kind: KindUnparsed, Raw: raw}
	if err := s.jsonl.Append(rec); err != nil {
		return 0, err
	}
	if err := s.sql.InsertUnparsed(rec); err != nil {
		return 0, err
	}
	return seq, nil
}

// Close flushes both sinks and writes the final counters into the index.
func (s *Store) Close() error {
	s.mu.Lock()
	known, unparsed := s.known, s.unparsed
	s.mu.Unlock()

	var errs []error
	if s.sql != nil {
		if err := s.sql.UpdateReportCounts(s.reportID, known, unparsed); err != nil {
			errs = append(errs, err)
		}
		if err := s.sql.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.jsonl != nil {
		if err := s.jsonl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return joinErrors(errs)
}

// NewReportID derives a sortable report id from a timestamp.
func NewReportID(t time.Time) string {
	return t.UTC().Format("20060102-150405")
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	var out error
	for _, e := range errs {
		if e == nil {
			continue
		}
		if out == nil {
			out = e
		} else {
			out = fmt.Errorf("%v; %w", out, e)
		}
	}
	return out
}
