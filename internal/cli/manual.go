package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
)

const manualText = `These are basic hints for AppArmor profile.

r - read
w - write
a - append (implied by w)
x - execute
m - memory map executable
k - lock (requires r or w, AppArmor 2.1 and later)
l - link
Ix - the new process should run under the current profile
Cx - the new process should run under a child profile that matches the name of the executable
Px - the new process should run under another profile that matches the name of the executable
Ux - the new process should run unconfined

More info at: https://gitlab.com/apparmor/apparmor/-/wikis/QuickProfileLanguage`

// ManualCommand prints the abridged AppArmor permission reference.
func ManualCommand(ctx context.Context, args []string) error {
	_ = ctx

	fs := flag.NewFlagSet("manual", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Println(manualText)
	return nil
}
