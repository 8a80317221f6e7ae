// Package config handles settings for the wallet host applications.
//
// Settings come from three layers, later ones winning:
//   - Built-in defaults
//   - The config file (<datadir>/injwallet.conf)
//   - Command-line flags
//
// The address prefix is not a setting: Injective addresses always use "inj".
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config holds host application settings.
type Config struct {
	DataDir string `conf:"datadir"`

	// Export file location for saved wallets.
	Export ExportConfig

	// Entropy source limits.
	Entropy EntropyConfig

	// Logging
	Log LogConfig
}

// ExportConfig controls where wallet exports are written.
type ExportConfig struct {
	Dir       string `conf:"export.dir"`
	Filename  string `conf:"export.filename"`
	Overwrite bool   `conf:"export.overwrite"` // replace instead of numbering
}

// EntropyConfig bounds reads from the random source.
type EntropyConfig struct {
	Timeout time.Duration `conf:"entropy.timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// =============================================================================
// Directory helpers
// =============================================================================

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.injwallet
//	macOS:   ~/Library/Application Support/InjWallet
//	Windows: %APPDATA%\InjWallet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".injwallet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "InjWallet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "InjWallet")
		}
		return filepath.Join(home, "AppData", "Roaming", "InjWallet")
	default:
		return filepath.Join(home, ".injwallet")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "injwallet.conf")
}

// SettingsFile returns the desktop app's persisted settings path.
func (c *Config) SettingsFile() string {
	return filepath.Join(c.DataDir, "qt-settings.json")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ExportPath returns the full path of the export file.
func (c *Config) ExportPath() string {
	return filepath.Join(c.Export.Dir, c.Export.Filename)
}
