package cli

import (
	"strings"
	"testing"

	"github.com/jseverin/aatriage/internal/audit"
	"github.com/jseverin/aatriage/internal/cliui"
)

const sampleInput = `type=AVC msg=audit(1000.0:1): apparmor="DENIED" operation="open" profile="app" name="/etc/x" requested_mask="r" denied_mask="r"
type=AVC msg=audit(1000.0:2): apparmor="DENIED" operation="open" profile="app" name="/etc/x" requested_mask="r" denied_mask="r"
type=AVC msg=audit(1000.0:3): apparmor="DENIED" operation="open" profile="app" name="/etc/x" requested_mask="r" denied_mask="r"
type=AVC msg=audit(1001.0:4): apparmor="DENIED" operation="capable" profile="aux" capname="net_admin"
type=AVC msg=audit(1002.0:5): apparmor="DENIED" operation="frobnicate" profile="app"
`

func sampleResult(t *testing.T) audit.Result {
	t.Helper()
	res, err := audit.Process(strings.NewReader(sampleInput), audit.Options{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return res
}

func TestWriteReport(t *testing.T) {
	var b strings.Builder
	writeReport(&b, sampleResult(t), cliui.Colorizer{}, false)
	out := b.String()

	wantLines := []string{
		"===== profile app ======",
		"  3x: app: open(r/r) /etc/x (DENIED|1000)",
		"===== profile aux ======",
		"  1x: aux: capability net_admin. (DENIED|1001)",
		"===== Unknown/unparseable lines ======",
		`Unrecognized line: type=AVC msg=audit(1002.0:5): apparmor="DENIED" operation="frobnicate" profile="app"`,
	}
	for _, l := range wantLines {
		if !strings.Contains(out, l) {
			t.Fatalf("missing %q in:\n%s", l, out)
		}
	}
	// app sorts before aux.
	if strings.Index(out, "profile app ") > strings.Index(out, "profile aux ") {
		t.Fatalf("groups out of order:\n%s", out)
	}
}

func TestWriteReport_UnknownOnly(t *testing.T) {
	var b strings.Builder
	writeReport(&b, sampleResult(t), cliui.Colorizer{}, true)
	out := b.String()
	if strings.Contains(out, "profile app") {
		t.Fatalf("known sections should be suppressed:\n%s", out)
	}
	if !strings.Contains(out, "Unrecognized line:") {
		t.Fatalf("unparsed section missing:\n%s", out)
	}
}

func TestWriteReport_NoUnparsedSectionWhenEmpty(t *testing.T) {
	res, err := audit.Process(strings.NewReader(
		`type=AVC msg=audit(1000.0:1): apparmor="DENIED" operation="capable" profile="app" capname="chown"`+"\n"), audit.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	writeReport(&b, res, cliui.Colorizer{}, false)
	if strings.Contains(b.String(), "Unknown/unparseable") {
		t.Fatalf("empty unparsed section should be omitted:\n%s", b.String())
	}
}

func TestWriteFixes(t *testing.T) {
	var b strings.Builder
	writeFixes(&b, sampleResult(t), cliui.Colorizer{})
	out := b.String()
	if !strings.Contains(out, "Admins discretion needed") {
		t.Fatalf("banner missing:\n%s", out)
	}
	if !strings.Contains(out, "/etc/x r,") {
		t.Fatalf("file fix missing:\n%s", out)
	}
	if !strings.Contains(out, "capability net_admin,") {
		t.Fatalf("capability fix missing:\n%s", out)
	}
}

func TestWriteFixes_SkipsSuggestionlessProfiles(t *testing.T) {
	res, err := audit.Process(strings.NewReader(
		`type=AVC msg=audit(1000.0:1): operation="profile_replace" profile="unconfined" name="app"`+"\n"), audit.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	writeFixes(&b, res, cliui.Colorizer{})
	if strings.Contains(b.String(), "===== profile") {
		t.Fatalf("profiles with no suggestions should be skipped:\n%s", b.String())
	}
}

func TestWriteReportJSON(t *testing.T) {
	var b strings.Builder
	if err := writeReportJSON(&b, sampleResult(t)); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, frag := range []string{`"profile": "app"`, `"count": 3`, `"fix": "/etc/x r,"`, `"unparsed"`} {
		if !strings.Contains(out, frag) {
			t.Fatalf("missing %q in:\n%s", frag, out)
		}
	}
}

func TestColorizeVerdicts(t *testing.T) {
	c := cliui.Colorizer{Enabled: true}
	got := colorizeVerdicts(c, "app: open(r/r) /etc/x (DENIED|1000)")
	if !strings.Contains(got, "\x1b[31mDENIED\x1b[0m") {
		t.Fatalf("verdict not colored: %q", got)
	}
	if !strings.Contains(got, "/etc/x") {
		t.Fatalf("rest of line mangled: %q", got)
	}
}

func TestColorizeVerdicts_OnlyTrailingSuffix(t *testing.T) {
	c := cliui.Colorizer{Enabled: true}
	// A file name that embeds verdict-looking text must stay untouched.
	line := "app: open(r/r) /srv/(DENIED|1/x (DENIED|1000)"
	got := colorizeVerdicts(c, line)
	if !strings.Contains(got, "/srv/(DENIED|1/x ") {
		t.Fatalf("name recolored: %q", got)
	}
	if strings.Count(got, "\x1b[31m") != 1 || !strings.HasSuffix(got, "(\x1b[31mDENIED\x1b[0m|1000)") {
		t.Fatalf("trailing verdict not colored exactly once: %q", got)
	}

	// Lines without the suffix pass through whole.
	plain := "app replaced at: 1000"
	if got := colorizeVerdicts(c, plain); got != plain {
		t.Fatalf("suffix-less line changed: %q", got)
	}
}
