package audit

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Options narrows the engine's view of the outside world to the two knobs
// the CLI layer owns: a cutoff instant and an optional profile filter.
type Options struct {
	// Cutoff in epoch seconds; lines strictly older are discarded before
	// tokenization. A line whose envelope timestamp cannot be read is
	// never discarded here — it falls through to classification, which
	// demotes it to an unparsed line. One policy, no aborts.
	Cutoff int64
	// ProfileFilter, when non-nil, excludes lines whose profile attribute
	// does not match. Applied before classification.
	ProfileFilter *regexp.Regexp
}

// Result is the engine output: deduplicated known events grouped by profile,
// and unique unparsed lines in first-seen order.
type Result struct {
	Groups   []ProfileGroup
	Unparsed []*UnparsedLine
}

// KnownCount sums occurrence counts across all groups.
func (r Result) KnownCount() int {
	n := 0
	for _, g := range r.Groups {
		for _, c := range g.Events {
			n += c.Count
		}
	}
	return n
}

// Process runs the whole batch pipeline over one input: tokenize, filter,
// classify, deduplicate, group. Only I/O failures are returned as errors;
// per-line parse failures surface in Result.Unparsed instead.
func Process(r io.Reader, opts Options) (Result, error) {
	var known []Event
	var unparsed []*UnparsedLine

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if ts, err := EpochFrom(line); err == nil && ts < opts.Cutoff {
			continue
		}

		m := Tokenize(line)
		if m["type"] != "AVC" {
			continue
		}
		if opts.ProfileFilter != nil && !opts.ProfileFilter.MatchString(m["profile"]) {
			continue
		}

		switch ev := ClassifyLine(line, m).(type) {
		case *UnparsedLine:
			unparsed = append(unparsed, ev)
		default:
			known = append(known, ev)
		}
	}
	if err := s.Err(); err != nil {
		return Result{}, fmt.Errorf("read audit input: %w", err)
	}

	return Result{
		Groups:   GroupByProfile(Dedupe(known)),
		Unparsed: DedupeUnparsed(unparsed),
	}, nil
}
