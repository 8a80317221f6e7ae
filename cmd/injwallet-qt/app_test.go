package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Klingon-tech/injwallet/config"
	"github.com/Klingon-tech/injwallet/internal/wallet"
)

func testApp(t *testing.T, dataDir string) *App {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = dataDir
	cfg.Export.Dir = filepath.Join(dataDir, "exports")
	cfg.Log.Level = "disabled"
	return newApp(cfg)
}

func TestApp_SettingsPersist(t *testing.T) {
	dir := t.TempDir()
	app := testApp(t, dir)

	if app.GetOverwrite() {
		t.Error("overwrite should default to false")
	}
	if got := app.exportOptions(); got != (wallet.ExportOptions{Rename: true}) {
		t.Errorf("exportOptions() = %+v, want rename", got)
	}

	other := filepath.Join(dir, "elsewhere")
	app.SetExportDir(other)
	app.SetOverwrite(true)

	reloaded := testApp(t, dir)
	if reloaded.GetExportDir() != other {
		t.Errorf("export dir = %s, want %s", reloaded.GetExportDir(), other)
	}
	if !reloaded.GetOverwrite() {
		t.Error("overwrite setting not persisted")
	}
	if got := reloaded.exportOptions(); got != (wallet.ExportOptions{Overwrite: true}) {
		t.Errorf("exportOptions() = %+v, want overwrite", got)
	}
	if want := filepath.Join(other, wallet.DefaultExportFilename); reloaded.GetExportPath() != want {
		t.Errorf("GetExportPath() = %s, want %s", reloaded.GetExportPath(), want)
	}
}

func TestWalletService_GenerateAndExportText(t *testing.T) {
	app := testApp(t, t.TempDir())

	rec, err := app.wallet.GenerateWallet()
	if err != nil {
		t.Fatalf("GenerateWallet: %v", err)
	}
	if err := rec.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	text := app.wallet.GetExportText(rec.Address, rec.PrivateKey)
	if !strings.HasPrefix(text, "Injective Wallet Export\n") ||
		!strings.HasSuffix(text, "Address: "+rec.Address+"\nPrivate Key: "+rec.PrivateKey+"\n") {
		t.Errorf("export text = %q", text)
	}
}

func TestWalletService_SaveRejectsMismatch(t *testing.T) {
	app := testApp(t, t.TempDir())
	_, err := app.wallet.SaveWalletToDesktop(
		"inj19dddt3retspx298cx9785g27yxxue4k0ne85ue",
		"0x0000000000000000000000000000000000000000000000000000000000000001",
	)
	if err == nil {
		t.Fatal("expected error for mismatched pair")
	}
}
