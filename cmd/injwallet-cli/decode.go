package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/Klingon-tech/injwallet/pkg/types"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <address>",
		Short: "Decode an address and show its payload",
		Long: `Decode a bech32 or 0x-hex address and print its human-readable part,
raw payload and EIP-55 form. Invalid input reports the exact failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decodeAddress(cmd.OutOrStdout(), args[0])
		},
	}
}

func decodeAddress(w io.Writer, s string) error {
	hrp := types.InjectiveHRP
	addr, err := types.ParseAddress(s)
	if errors.Is(err, types.ErrWrongHRP) {
		// Still show what the string holds; it is valid, just not Injective.
		var data []byte
		hrp, data, _ = types.Bech32Decode(s)
		fmt.Fprintf(w, "HRP:     %s\n", hrp)
		fmt.Fprintf(w, "Payload: %s\n", hex.EncodeToString(data))
		return fmt.Errorf("%w: %s is not an Injective address", types.ErrWrongHRP, hrp)
	}
	if err != nil {
		return describeDecodeError(err)
	}

	fmt.Fprintf(w, "HRP:     %s\n", hrp)
	fmt.Fprintf(w, "Payload: %s\n", addr.Hex())
	fmt.Fprintf(w, "Bech32:  %s\n", addr.String())
	fmt.Fprintf(w, "EIP-55:  %s\n", addr.EthHex())
	return nil
}

// describeDecodeError names the failing check, with the position when one
// is known.
func describeDecodeError(err error) error {
	var be *types.Bech32Error
	if !errors.As(err, &be) {
		return err
	}
	switch {
	case errors.Is(be, types.ErrBech32InvalidChar):
		return fmt.Errorf("invalid character %q at position %d: %w", be.Char, be.Pos, be.Kind)
	case errors.Is(be, types.ErrBech32ChecksumMismatch):
		return fmt.Errorf("checksum mismatch, the address has a typo: %w", be.Kind)
	default:
		return fmt.Errorf("invalid address: %w", be.Kind)
	}
}
