// Package reldate parses the compact human-readable ages used by the -since
// flag: "1d", "2h", "30m", "90s", a bare number of seconds, or compounds
// like "1d12h".
package reldate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var units = map[byte]time.Duration{
	'd': 24 * time.Hour,
	'h': time.Hour,
	'm': time.Minute,
	's': time.Second,
}

// Parse converts an age expression to a duration. Units may repeat in any
// order and simply add up; an empty expression is an error.
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty age")
	}

	var total time.Duration
	num := ""
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			num += string(c)
			continue
		}
		unit, ok := units[c]
		if !ok {
			return 0, fmt.Errorf("invalid age %q: unknown unit %q", s, string(c))
		}
		if num == "" {
			return 0, fmt.Errorf("invalid age %q: unit %q without a number", s, string(c))
		}
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid age %q: %v", s, err)
		}
		total += time.Duration(n) * unit
		num = ""
	}
	if num != "" {
		// Trailing bare number counts as seconds.
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid age %q: %v", s, err)
		}
		total += time.Duration(n) * time.Second
	}
	return total, nil
}

// CutoffFrom resolves an age expression to an epoch-seconds cutoff relative
// to now.
func CutoffFrom(now time.Time, s string) (int64, error) {
	d, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return now.Add(-d).Unix(), nil
}
