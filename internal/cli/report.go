package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/jseverin/aatriage/internal/audit"
	"github.com/jseverin/aatriage/internal/cliui"
)

type reportEventOut struct {
	Kind    string `json:"kind"`
	Count   int    `json:"count"`
	TS      int64  `json:"ts"`
	Summary string `json:"summary"`
	Fix     string `json:"fix,omitempty"`
}

type reportGroupOut struct {
	Profile string           `json:"profile"`
	Events  []reportEventOut `json:"events"`
}

type reportOut struct {
	Groups   []reportGroupOut `json:"groups"`
	Unparsed []string         `json:"unparsed"`
}

// ReportCommand prints the grouped, counted triage report.
func ReportCommand(ctx context.Context, args []string) error {
	_ = ctx

	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var ef engineFlags
	ef.register(fs)
	var unknownOnly, asJSON bool
	fs.BoolVar(&unknownOnly, "unknown-only", false, "show only unrecognized lines")
	fs.BoolVar(&asJSON, "json", false, "emit the report as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	run, err := ef.run()
	if err != nil {
		return err
	}

	if asJSON {
		return writeReportJSON(os.Stdout, run.res)
	}

	mode, err := cliui.ParseColorMode(firstNonEmpty(ef.color, run.cfg.Color))
	if err != nil {
		return err
	}
	c := cliui.NewColorizer(mode, os.Stdout)
	writeReport(os.Stdout, run.res, c, unknownOnly)
	return nil
}

// writeReport renders the per-profile sections followed by the unparsed
// section (only when non-empty). Layout is stable: groups come pre-sorted
// by profile, events and unparsed lines in first-seen order.
func writeReport(w io.Writer, res audit.Result, c cliui.Colorizer, unknownOnly bool) {
	if !unknownOnly {
		for _, g := range res.Groups {
			fmt.Fprintln(w, c.Header(fmt.Sprintf("===== profile %s ======", g.Profile)))
			for _, ev := range g.Events {
				fmt.Fprintf(w, "%3dx: %s\n", ev.Count, colorizeVerdicts(c, ev.Event.String()))
			}
		}
	}
	if len(res.Unparsed) > 0 {
		fmt.Fprintln(w, c.Header("===== Unknown/unparseable lines ======"))
		for _, u := range res.Unparsed {
			fmt.Fprintln(w, u.String())
		}
	}
}

// colorizeVerdicts recolors the verdict token in a rendered event line.
// Only the trailing "(VERDICT|epoch)" suffix is touched: a path or peer name
// that happens to contain the same text stays as-is.
func colorizeVerdicts(c cliui.Colorizer, line string) string {
	if !c.Enabled {
		return line
	}
	m := verdictSuffixRe.FindStringSubmatchIndex(line)
	if m == nil {
		return line
	}
	verdict := line[m[2]:m[3]]
	return line[:m[2]] + c.Verdict(verdict) + line[m[3]:]
}

var verdictSuffixRe = regexp.MustCompile(`\((DENIED|ALLOWED)\|[0-9]+\)$`)

func writeReportJSON(w io.Writer, res audit.Result) error {
	out := reportOut{
		Groups:   make([]reportGroupOut, 0, len(res.Groups)),
		Unparsed: make([]string, 0, len(res.Unparsed)),
	}
	for _, g := range res.Groups {
		og := reportGroupOut{Profile: g.Profile, Events: make([]reportEventOut, 0, len(g.Events))}
		for _, ev := range g.Events {
			fix, _ := ev.Event.Fix()
			og.Events = append(og.Events, reportEventOut{
				Kind:    string(ev.Event.Kind()),
				Count:   ev.Count,
				TS:      ev.Event.Epoch(),
				Summary: ev.Event.String(),
				Fix:     fix,
			})
		}
		out.Groups = append(out.Groups, og)
	}
	for _, u := range res.Unparsed {
		out.Unparsed = append(out.Unparsed, u.Raw)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
