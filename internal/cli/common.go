package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/jseverin/aatriage/internal/audit"
	"github.com/jseverin/aatriage/internal/config"
	"github.com/jseverin/aatriage/internal/logger"
	"github.com/jseverin/aatriage/internal/reldate"
)

// engineFlags are the flags shared by every command that runs the parsing
// engine. Flag values win over the config file; the config file wins over
// built-in defaults.
type engineFlags struct {
	logPath    string
	stdin      bool
	since      string
	profile    string
	color      string
	configPath string
	verbose    bool
}

func (f *engineFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.logPath, "log", "", "audit log file (default: config, /var/log/audit/audit.log)")
	fs.BoolVar(&f.stdin, "stdin", false, "read log data from stdin instead of a file")
	fs.StringVar(&f.since, "since", "", "age window like 1d, 2h, 30m (default: config, 1d)")
	fs.StringVar(&f.profile, "profile", "", "only report lines whose profile matches this regexp")
	fs.StringVar(&f.color, "color", "", "colorize output: auto|always|never")
	fs.StringVar(&f.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/aatriage/config.yaml)")
	fs.BoolVar(&f.verbose, "v", false, "verbose diagnostics on stderr")
}

// engineRun is everything a command needs after the engine has done its one
// pass over the input.
type engineRun struct {
	cfg     config.Config
	res     audit.Result
	source  string
	cutoff  int64
	profile string
	log     *logger.Logger
}

// run resolves config, opens the input, and executes the pipeline.
func (f *engineFlags) run() (*engineRun, error) {
	log := logger.New(os.Stderr, f.verbose)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	since := f.since
	if since == "" {
		since = cfg.Since
	}
	cutoff, err := reldate.CutoffFrom(time.Now(), since)
	if err != nil {
		return nil, err
	}

	var pat *regexp.Regexp
	if f.profile != "" {
		pat, err = regexp.Compile(f.profile)
		if err != nil {
			return nil, fmt.Errorf("invalid -profile pattern: %w", err)
		}
	}

	var in io.Reader
	source := "stdin"
	if f.stdin {
		in = os.Stdin
	} else {
		path := f.logPath
		if path == "" {
			path = cfg.LogFile
		}
		fh, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("no such logfile: %s", path)
		}
		defer fh.Close()
		in = fh
		source = path
	}

	log.Debug().Str("source", source).Int64("cutoff", cutoff).Str("profile", f.profile).Msg("processing audit input")

	res, err := audit.Process(in, audit.Options{Cutoff: cutoff, ProfileFilter: pat})
	if err != nil {
		return nil, err
	}
	log.Debug().Int("known", res.KnownCount()).Int("unparsed", len(res.Unparsed)).Msg("pipeline done")

	return &engineRun{
		cfg:     cfg,
		res:     res,
		source:  source,
		cutoff:  cutoff,
		profile: f.profile,
		log:     log,
	}, nil
}
