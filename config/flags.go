package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Flags holds command-line overrides. Register binds them to a flag set;
// ApplyFlags copies only the ones the user actually set.
type Flags struct {
	// Core
	DataDir string
	Config  string

	// Export
	ExportDir string
	Overwrite bool

	// Entropy
	EntropyTimeout time.Duration

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	fs *pflag.FlagSet
}

// Register adds the global flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.DataDir, "datadir", "", "Data directory (default: ~/.injwallet)")
	fs.StringVarP(&f.Config, "config", "c", "", "Config file path (default: <datadir>/injwallet.conf)")

	fs.StringVar(&f.ExportDir, "export-dir", "", "Directory for saved wallet exports (default: ~/Desktop)")
	fs.BoolVar(&f.Overwrite, "overwrite", false, "Replace an existing export file")

	fs.DurationVar(&f.EntropyTimeout, "entropy-timeout", 0, "Give up on the random source after this long (default: 5s)")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error, disabled)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	f.fs = fs
}

// changed reports whether a flag was explicitly set.
func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.changed("datadir") {
		cfg.DataDir = f.DataDir
	}
	if f.changed("export-dir") {
		cfg.Export.Dir = expandHome(f.ExportDir)
	}
	if f.changed("overwrite") {
		cfg.Export.Overwrite = f.Overwrite
	}
	if f.changed("entropy-timeout") {
		cfg.Entropy.Timeout = f.EntropyTimeout
	}
	if f.changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if f.changed("log-file") {
		cfg.Log.File = expandHome(f.LogFile)
	}
	if f.changed("log-json") {
		cfg.Log.JSON = f.LogJSON
	}
}

// Load loads configuration with the following precedence:
// 1. Default values
// 2. Auto-create data dir + default config (idempotent)
// 3. Config file
// 4. Command-line flags (f may be nil)
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	if f != nil && f.changed("datadir") {
		cfg.DataDir = f.DataDir
	}

	if err := EnsureDataDirs(cfg); err != nil {
		return nil, fmt.Errorf("ensuring data dirs: %w", err)
	}

	configPath := cfg.ConfigFile()
	if f != nil && f.Config != "" {
		configPath = f.Config
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	// A datadir set in the file never beats the flag that located the file.
	ApplyFlags(cfg, f)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
