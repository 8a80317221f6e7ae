package config

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/injwallet/internal/log"
)

// Validate checks config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}
	if cfg.Export.Dir == "" {
		return fmt.Errorf("export.dir must not be empty")
	}
	name := cfg.Export.Filename
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("export.filename must be a file name")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("export.filename must not contain path separators, use export.dir")
	}
	if cfg.Entropy.Timeout <= 0 {
		return fmt.Errorf("entropy.timeout must be positive, got %s", cfg.Entropy.Timeout)
	}
	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, error or disabled, got %q", cfg.Log.Level)
	}
	return nil
}
