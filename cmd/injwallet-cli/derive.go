package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (c *cli) newDeriveCmd() *cobra.Command {
	var (
		privateKey string
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Print the address for an existing private key",
		Long: `Print the Injective address of a hex private key.

Without --private-key the key is read from the terminal without echo, or
from the first line of stdin when stdin is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keyHex := privateKey
			if keyHex == "" {
				b, err := readSecret(cmd, "Private key: ")
				if err != nil {
					return fmt.Errorf("read private key: %w", err)
				}
				keyHex = strings.TrimSpace(string(b))
			}

			rec, err := c.gen.FromPrivateKey(keyHex)
			if err != nil {
				return err
			}
			if asJSON {
				return writeRecord(cmd.OutOrStdout(), rec, true)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Address: %s\n", rec.Address)
			return nil
		},
	}
	cmd.Flags().StringVar(&privateKey, "private-key", "", "hex private key, 0x optional (prompted when omitted)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print address and key as JSON")
	return cmd
}

// readSecret prompts on stderr and reads without echo from a terminal, or
// reads one line from the command's input otherwise.
func readSecret(cmd *cobra.Command, prompt string) ([]byte, error) {
	if in, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(in.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		secret, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr()) // newline after hidden input
		return secret, err
	}
	return readLine(cmd.InOrStdin())
}
