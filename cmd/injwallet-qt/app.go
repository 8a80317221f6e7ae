package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/Klingon-tech/injwallet/config"
	"github.com/Klingon-tech/injwallet/internal/log"
	"github.com/Klingon-tech/injwallet/internal/wallet"
)

// qtSettings is the persistent configuration written to qt-settings.json.
// It overrides the export settings from injwallet.conf.
type qtSettings struct {
	ExportDir string `json:"export_dir,omitempty"`
	Overwrite bool   `json:"overwrite"`
}

// App manages application lifecycle and settings.
type App struct {
	ctx context.Context
	cfg *config.Config

	mu        sync.RWMutex
	exportDir string
	overwrite bool

	wallet *WalletService
}

// NewApp creates the application from injwallet.conf and the saved settings.
func NewApp() *App {
	cfg, err := config.Load(nil)
	if err != nil {
		log.App.Warn().Err(err).Msg("Falling back to default config")
		cfg = config.Default()
	}
	return newApp(cfg)
}

func newApp(cfg *config.Config) *App {
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		log.App.Warn().Err(err).Str("file", cfg.Log.File).Msg("Cannot open log file")
	}

	app := &App{
		ctx:       context.Background(),
		cfg:       cfg,
		exportDir: cfg.Export.Dir,
		overwrite: cfg.Export.Overwrite,
	}
	app.wallet = &WalletService{
		app: app,
		gen: wallet.NewGenerator(wallet.WithEntropyTimeout(cfg.Entropy.Timeout)),
	}
	app.loadSettings()
	return app
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	log.App.Info().Str("export_dir", a.GetExportDir()).Msg("Desktop app started")
}

func (a *App) shutdown(_ context.Context) {}

// settingsPath returns the path to qt-settings.json.
func (a *App) settingsPath() string {
	return a.cfg.SettingsFile()
}

// ── Settings persistence ─────────────────────────────────────────────

func (a *App) loadSettings() {
	data, err := os.ReadFile(a.settingsPath())
	if err != nil {
		return // first launch or missing file, use config values
	}
	var s qtSettings
	if err := json.Unmarshal(data, &s); err != nil {
		log.App.Warn().Err(err).Msg("Ignoring unreadable settings file")
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if s.ExportDir != "" {
		a.exportDir = s.ExportDir
	}
	a.overwrite = s.Overwrite
}

func (a *App) saveSettings() {
	a.mu.RLock()
	s := qtSettings{
		ExportDir: a.exportDir,
		Overwrite: a.overwrite,
	}
	a.mu.RUnlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(a.settingsPath()), 0700)
	if err := os.WriteFile(a.settingsPath(), data, 0600); err != nil {
		log.App.Warn().Err(err).Msg("Cannot save settings")
	}
}

// ── Getters / Setters (each setter persists) ─────────────────────────

// GetExportDir returns the directory wallet exports are saved to.
func (a *App) GetExportDir() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.exportDir
}

// SetExportDir updates the export directory.
func (a *App) SetExportDir(dir string) {
	a.mu.Lock()
	a.exportDir = dir
	a.mu.Unlock()
	a.saveSettings()
}

// GetOverwrite reports whether saving replaces an existing export file.
func (a *App) GetOverwrite() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.overwrite
}

// SetOverwrite updates the overwrite setting.
func (a *App) SetOverwrite(overwrite bool) {
	a.mu.Lock()
	a.overwrite = overwrite
	a.mu.Unlock()
	a.saveSettings()
}

// GetExportPath returns the full path "Save" writes to.
func (a *App) GetExportPath() string {
	return filepath.Join(a.GetExportDir(), a.cfg.Export.Filename)
}

// exportOptions returns the save behaviour for the current settings.
func (a *App) exportOptions() wallet.ExportOptions {
	if a.GetOverwrite() {
		return wallet.ExportOptions{Overwrite: true}
	}
	return wallet.ExportOptions{Rename: true}
}
