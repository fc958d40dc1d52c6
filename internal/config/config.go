package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults a user can pin in a YAML file instead of
// repeating flags. Flags always win over file values.
type Config struct {
	// LogFile is the audit log to read when -log/-stdin are not given.
	LogFile string `yaml:"logFile"`
	// Since is the default age window, e.g. "1d".
	Since string `yaml:"since"`
	// Color is auto, always or never.
	Color string `yaml:"color"`
	// StateDir is where exported reports are kept.
	StateDir string `yaml:"stateDir"`
}

const defaultLogFile = "/var/log/audit/audit.log"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogFile:  defaultLogFile,
		Since:    "1d",
		Color:    "auto",
		StateDir: defaultStateDir(),
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error: built-in defaults apply.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultPath()
	}
	c := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return c, nil
		}
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	if c.LogFile == "" {
		c.LogFile = defaultLogFile
	}
	if c.Since == "" {
		c.Since = "1d"
	}
	if c.Color == "" {
		c.Color = "auto"
	}
	if c.StateDir == "" {
		c.StateDir = defaultStateDir()
	}
	return c, nil
}

func defaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "aatriage", "config.yaml")
	}
	return ""
}

// defaultStateDir resolves the export directory, honoring AATRIAGE_HOME.
func defaultStateDir() string {
	if v := os.Getenv("AATRIAGE_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aatriage"
	}
	return filepath.Join(home, ".aatriage")
}
