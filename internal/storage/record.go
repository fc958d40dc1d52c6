package storage

// Record is one stored row of an exported report: either a deduplicated
// known event (Count, Profile, Summary, Fix) or an unparsed line (Raw).
type Record struct {
	ReportID string `json:"report_id"`
	Seq      int64  `json:"seq"`
	Kind     string `json:"kind"`
	Profile  string `json:"profile,omitempty"`
	Count    int    `json:"count,omitempty"`
	TS       int64  `json:"ts,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Fix      string `json:"fix,omitempty"`
	Raw      string `json:"raw,omitempty"`
}

const KindUnparsed = "unparsed"

// ReportRow is the index entry for one exported report.
type ReportRow struct {
	ID            string
	GeneratedTS   int64 // unix seconds
	Source        string
	CutoffTS      int64
	ProfileFilter string
	KnownCount    int
	UnparsedCount int
}
