// Package cli implements the wallet-classifier command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piyushdaiya/wallet-classifier/internal/config"
)

type rootOptions struct {
	verbose bool
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wallet-classifier",
		Short: "Identify the chain of a wallet address and verify its checksum",
		Long: `wallet-classifier recognises Bitcoin, Ethereum, Ripple, Monero, Dash and ZCash
addresses. Each chain rule checks the address shape first and then its
checksum (Base58Check double SHA-256, Keccak-256 or the EIP-55 mixed case).
The first rule that passes names the chain.

It only checks that an address is well formed. It does not check whether the
address is funded or was ever used.

Settings are read from the environment or a .env file:
	WATCHLIST_ENGINE_URL  engine queried by "classify --watchlist"
	LOG_LEVEL             debug, info, warn or error`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if opts.verbose {
				level = "debug"
			}
			return config.ConfigureLogging(level)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log rule outcomes at debug level")

	cmd.AddCommand(
		newClassifyCommand(),
		newChecksumCommand(),
		newVersionCommand(),
	)
	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
