package main

import (
	"path/filepath"
	"strings"

	"github.com/Klingon-tech/injwallet/internal/wallet"
)

// savedMessage is the confirmation shown after a successful save.
func savedMessage(path string) string {
	dir := filepath.Dir(path)
	if filepath.Base(dir) == "Desktop" && filepath.Base(path) == wallet.DefaultExportFilename {
		return "Wallet saved to desktop successfully"
	}
	return "Wallet saved to " + path
}

// shortAddress abbreviates an address for notifications and titles.
func shortAddress(addr string) string {
	if len(addr) <= 16 {
		return addr
	}
	return addr[:10] + "…" + addr[len(addr)-6:]
}

// sanitizeNotification strips characters the OS notification helpers
// would have to escape.
func sanitizeNotification(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', '\'', '`', '$', '\\', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
