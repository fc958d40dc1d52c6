package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jseverin/aatriage/internal/cli"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	prog := filepath.Base(os.Args[0])
	if len(os.Args) < 2 {
		printRootHelp(os.Stderr, prog)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	cmd := os.Args[1]
	args := normalizeSubcommandHelpArgs(os.Args[2:])

	switch cmd {
	case "report":
		err = cli.ReportCommand(ctx, args)
	case "fix":
		err = cli.FixCommand(ctx, args)
	case "export":
		err = cli.ExportCommand(ctx, args)
	case "reports":
		err = cli.ReportsCommand(ctx, args)
	case "manual":
		err = cli.ManualCommand(ctx, args)
	case "help", "-h", "--help":
		return runHelp(ctx, prog, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		printRootHelp(os.Stderr, prog)
		return 2
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func normalizeSubcommandHelpArgs(args []string) []string {
	// Support: `aatriage <subcommand> help`
	if len(args) > 0 && args[0] == "help" {
		return []string{"-h"}
	}
	return args
}

func runHelp(ctx context.Context, prog string, args []string) int {
	// `aatriage -h`, `aatriage help`
	if len(args) == 0 {
		printRootHelp(os.Stdout, prog)
		return 0
	}

	// `aatriage help <subcommand>`
	sub := args[0]
	switch sub {
	case "report":
		_ = cli.ReportCommand(ctx, []string{"-h"})
		return 0
	case "fix":
		_ = cli.FixCommand(ctx, []string{"-h"})
		return 0
	case "export":
		_ = cli.ExportCommand(ctx, []string{"-h"})
		return 0
	case "reports":
		_ = cli.ReportsCommand(ctx, []string{"-h"})
		return 0
	case "manual":
		_ = cli.ManualCommand(ctx, []string{"-h"})
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", sub)
		printRootHelp(os.Stderr, prog)
		return 2
	}
}

func printRootHelp(w io.Writer, prog string) {
	fmt.Fprintf(w, "%s: AppArmor audit log triage (classify, count, suggest)\n\n", prog)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s <command> [args]\n", prog)
	fmt.Fprintf(w, "  %s help [command]\n\n", prog)

	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  report     Classify and count AVC events, grouped by profile.")
	fmt.Fprintln(w, "  fix        Show suggested profile rule fragments instead of events.")
	fmt.Fprintln(w, "  export     Persist a parsed report (JSONL + SQLite index).")
	fmt.Fprintln(w, "  reports    List previously exported reports.")
	fmt.Fprintln(w, "  manual     Show the abridged AppArmor permission reference.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  %s report -since 2h\n", prog)
	fmt.Fprintf(w, "  %s report -profile '^nginx' -unknown-only\n", prog)
	fmt.Fprintf(w, "  journalctl -t audit | %s report -stdin -since 1d\n", prog)
	fmt.Fprintf(w, "  %s fix -log /var/log/audit/audit.log\n", prog)
	fmt.Fprintf(w, "  %s export -since 1d && %s reports\n\n", prog, prog)

	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  AATRIAGE_HOME   State directory for exports (default: ~/.aatriage)")
	fmt.Fprintln(w, "  NO_COLOR        Disable ANSI colors")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Help:")
	fmt.Fprintf(w, "  %s -h\n", prog)
	fmt.Fprintf(w, "  %s <command> -h\n", prog)
	fmt.Fprintf(w, "  %s <command> help\n", prog)
}
