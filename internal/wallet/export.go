package wallet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Klingon-tech/injwallet/internal/log"
)

// Export document constants.
const (
	ExportTitle           = "Injective Wallet Export"
	TimestampLayout       = "2006-01-02 15:04:05"
	DefaultExportFilename = "injective_wallet.txt"
)

// maxRenameAttempts bounds the search for a free file name.
const maxRenameAttempts = 1000

// FormatExport renders the export document:
//
//	Injective Wallet Export
//	Generated at: 2006-01-02 15:04:05
//
//	Address: inj1...
//	Private Key: 0x...
//
// The timestamp is printed in at's location.
func FormatExport(address, privateKey string, at time.Time) string {
	var sb strings.Builder
	sb.Grow(len(ExportTitle) + len(address) + len(privateKey) + 64)
	sb.WriteString(ExportTitle)
	sb.WriteString("\nGenerated at: ")
	sb.WriteString(at.Format(TimestampLayout))
	sb.WriteString("\n\nAddress: ")
	sb.WriteString(address)
	sb.WriteString("\nPrivate Key: ")
	sb.WriteString(privateKey)
	sb.WriteByte('\n')
	return sb.String()
}

// PersistenceError reports a failed export write. It unwraps to the
// underlying filesystem error.
type PersistenceError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save wallet export to %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ExportOptions controls what SaveExport does when the target exists.
// With neither flag set an existing file is an error.
type ExportOptions struct {
	Overwrite bool // replace the existing file
	Rename    bool // write to "<name>-N<ext>" instead
}

// SaveExport writes content to path as a 0600 UTF-8 text file, creating the
// parent directory. It returns the path actually written.
func SaveExport(path, content string, opts ExportOptions) (string, error) {
	if path == "" {
		return "", &PersistenceError{Path: path, Err: errors.New("empty path")}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", &PersistenceError{Path: path, Err: err}
	}

	target := path
	for attempt := 1; ; attempt++ {
		err := writeNew(target, content, opts.Overwrite)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) || !opts.Rename || attempt >= maxRenameAttempts {
			return "", &PersistenceError{Path: target, Err: err}
		}
		target = numbered(path, attempt)
	}

	log.Export.Info().Str("path", target).Msg("Wallet export saved")
	return target, nil
}

// writeNew writes content to path. Without overwrite an existing file fails
// with fs.ErrExist. A partially written file is removed.
func writeNew(path, content string, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0600)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// numbered returns "dir/name-n.ext" for "dir/name.ext".
func numbered(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), n, ext)
}

// DefaultExportDir returns the user's desktop directory, falling back to
// the home directory (or the working directory) when it cannot be found.
func DefaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	desktop := filepath.Join(home, "Desktop")
	if st, err := os.Stat(desktop); err == nil && st.IsDir() {
		return desktop
	}
	return home
}

// DefaultExportPath returns <desktop>/injective_wallet.txt.
func DefaultExportPath() string {
	return filepath.Join(DefaultExportDir(), DefaultExportFilename)
}
