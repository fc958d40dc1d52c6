package cliui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type Colorizer struct {
	Enabled bool
}

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid --color %q (expected auto|always|never)", v)
	}
}

func NewColorizer(mode ColorMode, out io.Writer) Colorizer {
	switch mode {
	case ColorNever:
		return Colorizer{}
	case ColorAlways:
		return Colorizer{Enabled: true}
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return Colorizer{}
	}
	if forceColorEnabled() {
		return Colorizer{Enabled: true}
	}
	f, ok := out.(*os.File)
	if !ok {
		return Colorizer{}
	}
	fi, err := f.Stat()
	if err != nil {
		return Colorizer{}
	}
	if fi.Mode()&os.ModeCharDevice == 0 {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func forceColorEnabled() bool {
	for _, k := range []string{"CLICOLOR_FORCE", "FORCE_COLOR"} {
		v := strings.TrimSpace(os.Getenv(k))
		if v == "" || v == "0" {
			continue
		}
		return true
	}
	return false
}

// Verdict colors an apparmor verdict: denials red, allowances green, profile
// status messages cyan.
func (c Colorizer) Verdict(v string) string {
	if !c.Enabled {
		return v
	}
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "DENIED":
		return wrap(v, "31")
	case "ALLOWED":
		return wrap(v, "32")
	case "STATUS":
		return wrap(v, "36")
	default:
		return v
	}
}

// Header colors a report section header.
func (c Colorizer) Header(v string) string {
	if !c.Enabled {
		return v
	}
	return wrap(v, "1")
}

// Warn colors the admin-discretion banner shown before fix suggestions.
func (c Colorizer) Warn(v string) string {
	if !c.Enabled {
		return v
	}
	return wrap(v, "91")
}

func wrap(s, code string) string {
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
