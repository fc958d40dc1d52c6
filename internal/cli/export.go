package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jseverin/aatriage/internal/storage"
)

// ExportCommand runs the engine and persists the deduplicated report to the
// JSONL + SQLite state directory for later listing.
func ExportCommand(ctx context.Context, args []string) error {
	_ = ctx

	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var ef engineFlags
	ef.register(fs)
	var stateDir string
	fs.StringVar(&stateDir, "state", "", "state directory (default: config, ~/.aatriage)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	run, err := ef.run()
	if err != nil {
		return err
	}
	if stateDir == "" {
		stateDir = run.cfg.StateDir
	}

	now := time.Now()
	reportID := storage.NewReportID(now)
	st, err := storage.Open(storage.OpenParams{
		ReportID:      reportID,
		StateDir:      stateDir,
		GeneratedTS:   now.Unix(),
		Source:        run.source,
		CutoffTS:      run.cutoff,
		ProfileFilter: run.profile,
	})
	if err != nil {
		return err
	}

	for _, g := range run.res.Groups {
		for _, ev := range g.Events {
			fix, _ := ev.Event.Fix()
			if _, err := st.AppendEvent(g.Profile, string(ev.Event.Kind()), ev.Count, ev.Event.Epoch(), ev.Event.String(), fix); err != nil {
				_ = st.Close()
				return fmt.Errorf("append event: %w", err)
			}
		}
	}
	for _, u := range run.res.Unparsed {
		if _, err := st.AppendUnparsed(u.Raw); err != nil {
			_ = st.Close()
			return fmt.Errorf("append unparsed: %w", err)
		}
	}
	if err := st.Close(); err != nil {
		return err
	}

	run.log.Debug().Str("report", reportID).Str("dir", stateDir).Msg("export written")
	fmt.Printf("exported report %s (%d events, %d unparsed) to %s\n",
		reportID, run.res.KnownCount(), len(run.res.Unparsed), filepath.Join(stateDir, "reports", reportID+".jsonl"))
	return nil
}
