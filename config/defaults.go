package config

import (
	"github.com/Klingon-tech/injwallet/internal/wallet"
	"github.com/Klingon-tech/injwallet/pkg/crypto"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Export: ExportConfig{
			Dir:      wallet.DefaultExportDir(),
			Filename: wallet.DefaultExportFilename,
		},
		Entropy: EntropyConfig{
			Timeout: crypto.DefaultEntropyTimeout,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
