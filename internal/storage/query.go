package storage

// ListReports returns index entries newest first.
func (s *SQLite) ListReports(limit int) ([]ReportRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.DB.Query(
		`SELECT id, generated_ts, source, cutoff_ts, profile_filter, known_count, unparsed_count
		 FROM reports
		 ORDER BY generated_ts DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ReportRow, 0, limit)
	for rows.Next() {
		var r ReportRow
		if err := rows.Scan(&r.ID, &r.GeneratedTS, &r.Source, &r.CutoffTS, &r.ProfileFilter, &r.KnownCount, &r.UnparsedCount); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountEventsByProfile sums occurrence counts per profile for one report.
func (s *SQLite) CountEventsByProfile(reportID string) (map[string]int, error) {
	rows, err := s.DB.Query(
		`SELECT profile, SUM(count) FROM events WHERE report_id=? GROUP BY profile`,
		reportID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var p string
		var c int
		if err := rows.Scan(&p, &c); err != nil {
			return nil, err
		}
		out[p] = c
	}
	return out, rows.Err()
}
