package cliui

import (
	"fmt"
	"strings"
	"time"
)

// FormatEpoch renders an audit epoch-seconds instant for listings.
func FormatEpoch(sec int64) string {
	if sec <= 0 {
		return "-"
	}
	return time.Unix(sec, 0).UTC().Format("2006-01-02 15:04:05Z")
}

// FormatAge renders how long ago an epoch instant was, relative to now,
// using the same compact units -since accepts.
func FormatAge(sec int64, now time.Time) string {
	if sec <= 0 {
		return "-"
	}
	d := now.Sub(time.Unix(sec, 0))
	if d < 0 {
		return "0s"
	}
	parts := make([]string, 0, 2)
	if days := int64(d / (24 * time.Hour)); days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
		d -= time.Duration(days) * 24 * time.Hour
	}
	if h := int64(d / time.Hour); h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
		d -= time.Duration(h) * time.Hour
	}
	if len(parts) >= 2 {
		return strings.Join(parts, "")
	}
	if m := int64(d / time.Minute); m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
		d -= time.Duration(m) * time.Minute
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", int64(d/time.Second)))
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, "")
}
