package storage

import (
	"path/filepath"
	"testing"
)

func TestStore_SQLiteAndJSONL(t *testing.T) {
	stateDir := t.TempDir()
	reportID := "20260829-120000"

	s, err := Open(OpenParams{
		ReportID:      reportID,
		StateDir:      stateDir,
		GeneratedTS:   100,
		Source:        "/var/log/audit/audit.log",
		CutoffTS:      50,
		ProfileFilter: "",
	})
	if err != nil {
		t.Fatal(err)
	}

	seq1, err := s.AppendEvent("app", "file", 3, 60, "app: open(r/r) /etc/x (DENIED|60)", "/etc/x r,")
	if err != nil {
		t.Fatal(err)
	}
	if seq1 != 1 {
		t.Fatalf("seq1=%d", seq1)
	}
	seq2, err := s.AppendUnparsed("gibberish line")
	if err != nil {
		t.Fatal(err)
	}
	if seq2 != 2 {
		t.Fatalf("seq2=%d", seq2)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	sqlite, err := OpenSQLite(filepath.Join(stateDir, "index.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	defer sqlite.Close()

	reports, err := sqlite.ListReports(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].ID != reportID {
		t.Fatalf("reports: %+v", reports)
	}
	if reports[0].KnownCount != 3 || reports[0].UnparsedCount != 1 {
		t.Fatalf("counts: %+v", reports[0])
	}

	byProfile, err := sqlite.CountEventsByProfile(reportID)
	if err != nil {
		t.Fatal(err)
	}
	if byProfile["app"] != 3 {
		t.Fatalf("byProfile: %v", byProfile)
	}

	recs, err := ReadRecords(filepath.Join(stateDir, "reports", reportID+".jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Count != 3 || recs[1].Raw != "gibberish line" {
		t.Fatalf("records: %+v", recs)
	}
}
