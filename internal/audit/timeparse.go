package audit

import (
	"fmt"
	"regexp"
	"strconv"
)

var envelopeRe = regexp.MustCompile(`audit\(([0-9]+)\.`)

// EpochFrom extracts the epoch-seconds instant embedded in an audit envelope
// such as "audit(1614105087.888:94155)". It is used both for cutoff filtering
// of raw lines and for the time field of constructed events; the two must
// agree, so both go through here.
func EpochFrom(s string) (int64, error) {
	m := envelopeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w in %q", ErrTimeParse, truncateRaw(s))
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTimeParse, err)
	}
	return n, nil
}

func truncateRaw(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
