// Package cli implements the walletctl command surface: a thin layer
// over internal/keyring and internal/mnemonic. It is not core logic —
// every command here is a few lines of flag plumbing into the library
// packages that do the actual work.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "walletctl",
	Short: "Multi-chain HD wallet toolkit",
	Long: `walletctl derives Bitcoin, Ethereum, Zcash, and Monero addresses
from a BIP39 mnemonic using BIP32/BIP44 hierarchical deterministic
derivation, and generates new mnemonic phrases.`,
	Version: version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "emit machine-readable JSON output")
}
