package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jseverin/aatriage/internal/cliui"
	"github.com/jseverin/aatriage/internal/config"
	"github.com/jseverin/aatriage/internal/storage"
)

// ReportsCommand lists previously exported reports from the SQLite index.
func ReportsCommand(ctx context.Context, args []string) error {
	_ = ctx

	fs := flag.NewFlagSet("reports", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var stateDir, configPath string
	var limit int
	fs.StringVar(&stateDir, "state", "", "state directory (default: config, ~/.aatriage)")
	fs.StringVar(&configPath, "config", "", "config file")
	fs.IntVar(&limit, "limit", 20, "max reports to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if stateDir == "" {
		stateDir = cfg.StateDir
	}

	dbPath := filepath.Join(stateDir, "index.sqlite")
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Println("no exported reports yet")
			return nil
		}
		return err
	}

	db, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	reports, err := db.ListReports(limit)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("no exported reports yet")
		return nil
	}

	now := time.Now()
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		filter := r.ProfileFilter
		if filter == "" {
			filter = "-"
		}
		rows = append(rows, []string{
			r.ID,
			cliui.FormatEpoch(r.GeneratedTS),
			cliui.FormatAge(r.GeneratedTS, now),
			cliui.Truncate(r.Source, 40),
			filter,
			strconv.Itoa(r.KnownCount),
			strconv.Itoa(r.UnparsedCount),
		})
	}
	cliui.RenderTable(os.Stdout,
		[]cliui.Column{
			{Name: "id"},
			{Name: "generated"},
			{Name: "age"},
			{Name: "source", MaxWidth: 40},
			{Name: "filter", MaxWidth: 20},
			{Name: "events", AlignRight: true},
			{Name: "unparsed", AlignRight: true},
		},
		rows,
	)
	return nil
}
