package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jseverin/aatriage/internal/audit"
	"github.com/jseverin/aatriage/internal/cliui"
)

const fixBanner = `*****************************************************************************
** WARNING! These are only suggestions. Admins discretion needed! WARNING! **
*****************************************************************************`

// FixCommand prints suggested profile rule fragments instead of event lines.
func FixCommand(ctx context.Context, args []string) error {
	_ = ctx

	fs := flag.NewFlagSet("fix", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var ef engineFlags
	ef.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	run, err := ef.run()
	if err != nil {
		return err
	}

	mode, err := cliui.ParseColorMode(firstNonEmpty(ef.color, run.cfg.Color))
	if err != nil {
		return err
	}
	c := cliui.NewColorizer(mode, os.Stdout)
	writeFixes(os.Stdout, run.res, c)
	return nil
}

// writeFixes renders the admin-discretion banner, then one suggestion per
// deduplicated event that has one, grouped by profile. Variants with no
// suggestion (profile lifecycle, change_profile) are skipped.
func writeFixes(w io.Writer, res audit.Result, c cliui.Colorizer) {
	fmt.Fprintln(w, c.Warn(fixBanner))
	for _, g := range res.Groups {
		fixes := make([]string, 0, len(g.Events))
		for _, ev := range g.Events {
			if fix, ok := ev.Event.Fix(); ok {
				fixes = append(fixes, fix)
			}
		}
		if len(fixes) == 0 {
			continue
		}
		fmt.Fprintln(w, c.Header(fmt.Sprintf("===== profile %s ======", g.Profile)))
		for _, fix := range fixes {
			fmt.Fprintln(w, fix)
		}
	}
}
