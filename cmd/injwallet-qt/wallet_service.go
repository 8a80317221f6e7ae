package main

import (
	"fmt"
	"path/filepath"

	"github.com/Klingon-tech/injwallet/internal/log"
	"github.com/Klingon-tech/injwallet/internal/wallet"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// WalletService exposes wallet generation and export to the frontend.
// It keeps no wallet between calls: the frontend holds the generated
// record and passes it back when saving.
type WalletService struct {
	app *App
	gen *wallet.Generator
}

// GenerateWallet creates a new Injective account.
func (w *WalletService) GenerateWallet() (*wallet.Record, error) {
	rec, err := w.gen.GenerateWallet()
	if err != nil {
		return nil, fmt.Errorf("generate wallet: %w", err)
	}
	log.Wallet.Info().Str("address", rec.Address).Msg("Wallet generated")
	return rec, nil
}

// GetExportText returns the export document for the given pair.
func (w *WalletService) GetExportText(address, privateKey string) string {
	return w.gen.ExportText(wallet.Record{Address: address, PrivateKey: privateKey})
}

// SaveWalletToDesktop writes the export document to the configured export
// path and returns a confirmation message.
func (w *WalletService) SaveWalletToDesktop(address, privateKey string) (string, error) {
	written, err := w.save(address, privateKey, w.app.GetExportPath(), w.app.exportOptions())
	if err != nil {
		return "", err
	}
	return savedMessage(written), nil
}

// SaveWalletAs asks the user for a location and writes the export there.
// An empty result with a nil error means the dialog was cancelled.
func (w *WalletService) SaveWalletAs(address, privateKey string) (string, error) {
	path, err := runtime.SaveFileDialog(w.app.ctx, runtime.SaveDialogOptions{
		Title:            "Save Injective wallet",
		DefaultDirectory: w.app.GetExportDir(),
		DefaultFilename:  w.app.cfg.Export.Filename,
		Filters: []runtime.FileFilter{
			{DisplayName: "Text files (*.txt)", Pattern: "*.txt"},
		},
	})
	if err != nil {
		return "", fmt.Errorf("save dialog: %w", err)
	}
	if path == "" {
		return "", nil
	}
	// The dialog already asked about replacing an existing file.
	written, err := w.save(address, privateKey, path, wallet.ExportOptions{Overwrite: true})
	if err != nil {
		return "", err
	}
	return savedMessage(written), nil
}

func (w *WalletService) save(address, privateKey, path string, opts wallet.ExportOptions) (string, error) {
	rec := wallet.Record{Address: address, PrivateKey: privateKey}
	if err := rec.Verify(); err != nil {
		return "", fmt.Errorf("refusing to save inconsistent wallet: %w", err)
	}

	written, err := wallet.SaveExport(path, w.gen.ExportText(rec), opts)
	if err != nil {
		log.Export.Error().Err(err).Msg("Saving wallet export failed")
		return "", err
	}
	sendOSNotification("Injective Wallet", sanitizeNotification(shortAddress(address)+" saved to "+filepath.Base(written)))
	return written, nil
}
