// Command walletctl is a thin CLI over internal/keyring and
// internal/mnemonic. It is not where the cryptography lives — see
// internal/ for that.
package main

import (
	"fmt"
	"os"

	"github.com/avalanche-wallets/hd-multichain/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
