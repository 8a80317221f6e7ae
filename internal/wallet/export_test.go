package wallet

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestFormatExport(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got := FormatExport("inj1abc", "0xdead", at)
	want := "Injective Wallet Export\n" +
		"Generated at: 2024-01-02 03:04:05\n" +
		"\n" +
		"Address: inj1abc\n" +
		"Private Key: 0xdead\n"
	if got != want {
		t.Errorf("FormatExport() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatExport_LocalTime(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	at := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC).In(loc)
	got := FormatExport("a", "k", at)
	want := "Injective Wallet Export\nGenerated at: 2025-01-01 07:59:59\n\nAddress: a\nPrivate Key: k\n"
	if got != want {
		t.Errorf("FormatExport() = %q, want %q", got, want)
	}
}

func TestSaveExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", DefaultExportFilename)
	content := FormatExport(scalarOneAddress, scalarOneHex, time.Now())

	written, err := SaveExport(path, content, ExportOptions{})
	if err != nil {
		t.Fatalf("SaveExport: %v", err)
	}
	if written != path {
		t.Errorf("written = %s, want %s", written, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != content {
		t.Errorf("file content = %q, want %q", data, content)
	}

	if runtime.GOOS != "windows" {
		st, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if st.Mode().Perm() != 0600 {
			t.Errorf("mode = %v, want 0600", st.Mode().Perm())
		}
	}
}

func TestSaveExport_Exists(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultExportFilename)
	if err := os.WriteFile(path, []byte("previous wallet"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := SaveExport(path, "new", ExportOptions{})
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("error = %v, want fs.ErrExist", err)
	}
	var pe *PersistenceError
	if !errors.As(err, &pe) || pe.Path != path {
		t.Errorf("error = %v, want *PersistenceError for %s", err, path)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "previous wallet" {
		t.Errorf("existing export was modified: %q", data)
	}
}

func TestSaveExport_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultExportFilename)
	if err := os.WriteFile(path, []byte("previous wallet, longer than the new one"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := SaveExport(path, "new", ExportOptions{Overwrite: true}); err != nil {
		t.Fatalf("SaveExport: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}

func TestSaveExport_Rename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultExportFilename)

	var got []string
	for i := 0; i < 3; i++ {
		written, err := SaveExport(path, "wallet", ExportOptions{Rename: true})
		if err != nil {
			t.Fatalf("SaveExport #%d: %v", i, err)
		}
		got = append(got, filepath.Base(written))
	}

	want := []string{"injective_wallet.txt", "injective_wallet-1.txt", "injective_wallet-2.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("save #%d wrote %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSaveExport_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// Parent "directory" is a regular file.
	_, err := SaveExport(filepath.Join(blocker, "wallet.txt"), "x", ExportOptions{})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *PersistenceError", err)
	}
	if pe.Unwrap() == nil {
		t.Error("PersistenceError must carry the underlying cause")
	}
}

func TestSaveExport_EmptyPath(t *testing.T) {
	var pe *PersistenceError
	if _, err := SaveExport("", "x", ExportOptions{}); !errors.As(err, &pe) {
		t.Errorf("error = %v, want *PersistenceError", err)
	}
}

func TestNumbered(t *testing.T) {
	tests := []struct {
		path string
		n    int
		want string
	}{
		{"/tmp/injective_wallet.txt", 1, "/tmp/injective_wallet-1.txt"},
		{"/tmp/wallet", 2, "/tmp/wallet-2"},
	}
	for _, tt := range tests {
		if got := numbered(tt.path, tt.n); got != tt.want {
			t.Errorf("numbered(%q, %d) = %q, want %q", tt.path, tt.n, got, tt.want)
		}
	}
}

func TestDefaultExportPath(t *testing.T) {
	if filepath.Base(DefaultExportPath()) != DefaultExportFilename {
		t.Errorf("DefaultExportPath() = %s", DefaultExportPath())
	}
}
