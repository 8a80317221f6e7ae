package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func writeConf(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "injwallet.conf")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	f := &Flags{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return f
}

func TestLoadFile(t *testing.T) {
	path := writeConf(t, t.TempDir(), `
# comment
export.filename = "my_wallet.txt"
export.overwrite = yes
entropy.timeout = 250ms
log.level = 'debug'
`)
	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if values["export.filename"] != "my_wallet.txt" {
		t.Errorf("export.filename = %q", values["export.filename"])
	}
	if values["log.level"] != "debug" {
		t.Errorf("log.level = %q", values["log.level"])
	}

	cfg := Default()
	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}
	if !cfg.Export.Overwrite {
		t.Error("export.overwrite should be true")
	}
	if cfg.Entropy.Timeout != 250*time.Millisecond {
		t.Errorf("entropy.timeout = %s", cfg.Entropy.Timeout)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	values, err := LoadFile(filepath.Join(t.TempDir(), "nope.conf"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("values = %v, want empty", values)
	}
}

func TestLoadFile_BadLine(t *testing.T) {
	path := writeConf(t, t.TempDir(), "export.dir\n")
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error = %v, want line 1 format error", err)
	}
}

func TestApplyFileConfig_BadDuration(t *testing.T) {
	err := ApplyFileConfig(Default(), map[string]string{"entropy.timeout": "soon"})
	if err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestApplyFlags_OnlyChanged(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "warn"
	cfg.Export.Overwrite = true

	f := parseFlags(t, "--log-json", "--export-dir", "/srv/exports")
	ApplyFlags(cfg, f)

	if !cfg.Log.JSON {
		t.Error("--log-json should apply")
	}
	if cfg.Export.Dir != "/srv/exports" {
		t.Errorf("export dir = %q", cfg.Export.Dir)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("unset --log-level overrode file value: %q", cfg.Log.Level)
	}
	if !cfg.Export.Overwrite {
		t.Error("unset --overwrite overrode file value")
	}
}

func TestApplyFlags_ExplicitFalse(t *testing.T) {
	cfg := Default()
	cfg.Export.Overwrite = true
	ApplyFlags(cfg, parseFlags(t, "--overwrite=false"))
	if cfg.Export.Overwrite {
		t.Error("--overwrite=false should override the file")
	}
}

func TestLoad(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	f := parseFlags(t, "--datadir", dataDir, "--log-level", "error")

	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != dataDir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dataDir)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if _, err := os.Stat(cfg.ConfigFile()); err != nil {
		t.Errorf("default config file not created: %v", err)
	}
	if cfg.Export.Filename != "injective_wallet.txt" {
		t.Errorf("Export.Filename = %q", cfg.Export.Filename)
	}
	if cfg.Entropy.Timeout != 5*time.Second {
		t.Errorf("Entropy.Timeout = %s", cfg.Entropy.Timeout)
	}
}

func TestLoad_FileThenFlags(t *testing.T) {
	dataDir := t.TempDir()
	writeConf(t, dataDir, "export.filename = from_file.txt\nlog.level = debug\n")

	cfg, err := Load(parseFlags(t, "--datadir", dataDir, "--log-level", "warn"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Export.Filename != "from_file.txt" {
		t.Errorf("Export.Filename = %q, want file value", cfg.Export.Filename)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want flag value", cfg.Log.Level)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dataDir := t.TempDir()
	writeConf(t, dataDir, "entropy.timeout = 0s\n")

	if _, err := Load(parseFlags(t, "--datadir", dataDir)); err == nil {
		t.Error("expected validation error for zero timeout")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty datadir", func(c *Config) { c.DataDir = "" }, true},
		{"empty export dir", func(c *Config) { c.Export.Dir = "" }, true},
		{"empty filename", func(c *Config) { c.Export.Filename = "" }, true},
		{"filename with slash", func(c *Config) { c.Export.Filename = "a/b.txt" }, true},
		{"filename dotdot", func(c *Config) { c.Export.Filename = ".." }, true},
		{"negative timeout", func(c *Config) { c.Entropy.Timeout = -time.Second }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"disabled logging", func(c *Config) { c.Log.Level = "disabled" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}

func TestConfig_Paths(t *testing.T) {
	cfg := &Config{DataDir: "/data", Export: ExportConfig{Dir: "/out", Filename: "w.txt"}}
	if cfg.ConfigFile() != filepath.Join("/data", "injwallet.conf") {
		t.Errorf("ConfigFile() = %s", cfg.ConfigFile())
	}
	if cfg.SettingsFile() != filepath.Join("/data", "qt-settings.json") {
		t.Errorf("SettingsFile() = %s", cfg.SettingsFile())
	}
	if cfg.ExportPath() != filepath.Join("/out", "w.txt") {
		t.Errorf("ExportPath() = %s", cfg.ExportPath())
	}
}
