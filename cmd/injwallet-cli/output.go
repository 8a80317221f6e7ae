package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Klingon-tech/injwallet/internal/wallet"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// writeRecord prints rec in the human or JSON layout.
func writeRecord(w io.Writer, rec *wallet.Record, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal wallet: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintf(w, "Address:     %s\nPrivate Key: %s\n", rec.Address, rec.PrivateKey)
	return err
}

// warnIfPiped warns when key material is about to leave the terminal.
func warnIfPiped(cmd *cobra.Command) {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || term.IsTerminal(int(f.Fd())) {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Warning: writing a private key to a non-terminal output")
}

// readLine returns the first line of r without its line ending.
func readLine(r io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.ErrUnexpectedEOF
	}
	return sc.Bytes(), nil
}
