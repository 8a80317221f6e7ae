// injwallet-cli generates Injective accounts and export documents from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/Klingon-tech/injwallet/config"
	"github.com/Klingon-tech/injwallet/internal/log"
	"github.com/Klingon-tech/injwallet/internal/wallet"
	"github.com/spf13/cobra"
)

// cli carries the state shared by every subcommand once the global flags
// have been resolved.
type cli struct {
	flags config.Flags
	cfg   *config.Config
	gen   *wallet.Generator
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "injwallet-cli",
		Short: "Generate Injective wallets",
		Long: `Generate Injective (inj1...) accounts offline and write their export documents.

Examples:
  # New wallet, printed to the terminal
  injwallet-cli generate

  # New wallet saved to ~/Desktop/injective_wallet.txt
  injwallet-cli generate --save

  # Address for an existing key (prompted without echo)
  injwallet-cli derive

  # Inspect an address
  injwallet-cli decode inj10e0525sfrf53yh2aljmm3sn9jq5njk7lwfmzjf`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	c.flags.Register(root.PersistentFlags())

	root.AddCommand(
		c.newGenerateCmd(),
		c.newExportCmd(),
		c.newDeriveCmd(),
		newDecodeCmd(),
	)
	return root
}

// setup loads the configuration and logger before any subcommand runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(&c.flags)
	if err != nil {
		return err
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	c.cfg = cfg
	c.gen = wallet.NewGenerator(wallet.WithEntropyTimeout(cfg.Entropy.Timeout))
	log.Config.Debug().Str("datadir", cfg.DataDir).Str("command", cmd.Name()).Msg("Configuration loaded")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal("%v", err)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
