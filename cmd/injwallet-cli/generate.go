package main

import (
	"fmt"

	"github.com/Klingon-tech/injwallet/internal/wallet"
	"github.com/spf13/cobra"
)

func (c *cli) newGenerateCmd() *cobra.Command {
	var (
		asJSON bool
		save   bool
		out    string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new wallet",
		Long: `Generate a new secp256k1 key and its Injective address.

With --save the export document is written to the export path
(<export.dir>/<export.filename>, default ~/Desktop/injective_wallet.txt).
An existing file is never replaced unless --force or export.overwrite is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := c.gen.GenerateWallet()
			if err != nil {
				return fmt.Errorf("generate wallet: %w", err)
			}

			warnIfPiped(cmd)
			if err := writeRecord(cmd.OutOrStdout(), rec, asJSON); err != nil {
				return err
			}

			if !save && out == "" {
				return nil
			}
			path := out
			if path == "" {
				path = c.cfg.ExportPath()
			}
			written, err := wallet.SaveExport(path, c.gen.ExportText(*rec), wallet.ExportOptions{
				Overwrite: force || c.cfg.Export.Overwrite,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved to %s\n", written)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the wallet as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "write the export document to the export path")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the export document to this file (implies --save)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing export file")
	return cmd
}

func (c *cli) newExportCmd() *cobra.Command {
	var (
		address    string
		privateKey string
		out        string
		force      bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the export document for an existing wallet",
		Long: `Render the export document for an address and private key.

The pair is checked first: the address must be the one the key derives to.
Without --out the document is printed to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec := wallet.Record{Address: address, PrivateKey: privateKey}
			if err := rec.Verify(); err != nil {
				return err
			}
			text := c.gen.ExportText(rec)

			if out == "" {
				warnIfPiped(cmd)
				_, err := fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			written, err := wallet.SaveExport(out, text, wallet.ExportOptions{
				Overwrite: force || c.cfg.Export.Overwrite,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved to %s\n", written)
			return nil
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "wallet address (inj1...)")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "hex private key, 0x optional")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the document to this file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing file")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("private-key")
	return cmd
}
