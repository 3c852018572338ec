package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NOTE: This file provides the tool configuration model and full
// YAML-based load/save behavior, including first-run config creation and
// 0600 permissions. It configures the bring-up tool only — panel timings
// and init sequences are compiled-in variant data, never configuration.

// ScheduleConfig holds optional cron expressions for signage-style display
// blanking: the tool disables the panel at Blank and re-enables it at Wake.
type ScheduleConfig struct {
	// Blank is a cron-style schedule (e.g. "0 22 * * *") at which the
	// display is turned off.
	Blank string `yaml:"blank" json:"blank"`
	// Wake re-enables the display.
	Wake string `yaml:"wake" json:"wake"`
}

// Config is the top-level tool configuration.
type Config struct {
	// Model is the panel model identifier to bring up.
	Model string `yaml:"model" json:"model"`

	// ResetPin is the periph.io name of the panel reset GPIO.
	ResetPin string `yaml:"reset_pin" json:"reset_pin"`

	// ResetActiveLow selects the reset wiring polarity.
	ResetActiveLow bool `yaml:"reset_active_low" json:"reset_active_low"`

	// DryRun replays the bring-up sequence against a tracing bus instead
	// of hardware. Defaults to true: this tool is primarily a sequence
	// auditor on hosts without a DSI link.
	DryRun bool `yaml:"dry_run" json:"dry_run"`

	// RealDelays makes dry runs honor the mandated delays in real time.
	RealDelays bool `yaml:"real_delays" json:"real_delays"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Schedule, if non-nil, enables cron-driven display blank/wake.
	Schedule *ScheduleConfig `yaml:"schedule,omitempty" json:"schedule,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:          "luckfox,lf101-8001280-ama",
		ResetPin:       "GPIO24",
		ResetActiveLow: true,
		DryRun:         true,
		RealDelays:     false,
		LogLevel:       "info",
		Schedule:       nil,
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.Model == "" {
		c.Model = "luckfox,lf101-8001280-ama"
	}
	if c.ResetPin == "" {
		c.ResetPin = "GPIO24"
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// ok
	default:
		c.LogLevel = "info"
	}
	if c.Schedule != nil && c.Schedule.Blank == "" && c.Schedule.Wake == "" {
		c.Schedule = nil
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists (0700).
//   - Marshals cfg to YAML.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Atomic write: write to temp file in same directory then rename.
	tmp, err := os.CreateTemp(dir, ".dsipanel-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	// Flush and close before chmod/rename.
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	return nil
}

// Save is a convenience method on Config that delegates to the
// package-level Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
