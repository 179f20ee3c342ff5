package cli

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/avalanche-wallets/hd-multichain/internal/config"
	"github.com/avalanche-wallets/hd-multichain/internal/keyring"
	"github.com/avalanche-wallets/hd-multichain/internal/mnemonic"
	"github.com/avalanche-wallets/hd-multichain/pkg/models"
	"github.com/spf13/cobra"
)

// currencySpec binds a CLI currency name to its models.Network.
type currencySpec struct {
	name    string
	network models.Network
}

var currencies = []currencySpec{
	{"btc", models.NetworkBTC},
	{"eth", models.NetworkETH},
	{"zec", models.NetworkZEC},
	{"xmr", models.NetworkXMR},
}

func init() {
	for _, c := range currencies {
		rootCmd.AddCommand(newCurrencyCmd(c))
	}
}

// newCurrencyCmd builds the hd/import/import-hd subcommand trio for one
// currency.
func newCurrencyCmd(c currencySpec) *cobra.Command {
	cur := &cobra.Command{
		Use:   c.name,
		Short: fmt.Sprintf("%s address derivation", c.name),
	}
	cur.AddCommand(newHDCmd(c))
	cur.AddCommand(newImportCmd(c))
	cur.AddCommand(newImportHDCmd(c))
	return cur
}

func resolveAddress(w *keyring.Wallet, c currencySpec, preset, customPath string, index uint32) (*models.DerivedAddress, error) {
	if config.DerivationPreset(preset) == config.PresetCustom {
		if customPath == "" {
			return nil, fmt.Errorf("%s: --preset custom requires --path", c.name)
		}
		return w.ImportPath(c.network, customPath)
	}
	return w.AddressAt(c.network, config.DerivationPreset(preset), index)
}

func addDerivationFlags(cmd *cobra.Command) {
	cmd.Flags().String("preset", "ethereum", "derivation preset: ethereum, keepkey, ledger-legacy, ledger-live, trezor, custom")
	cmd.Flags().String("path", "", "explicit derivation path (required when --preset custom)")
	cmd.Flags().Uint32("index", 0, "account index")
	cmd.Flags().String("password", "", "BIP39 passphrase")
	cmd.Flags().String("language", string(mnemonic.English), "mnemonic wordlist language")
}

func emitAddresses(cmd *cobra.Command, mnemonicPhrase string, addrs []*models.DerivedAddress) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out := map[string]any{"addresses": addrs}
		if mnemonicPhrase != "" {
			out["mnemonic"] = mnemonicPhrase
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
	}
	if mnemonicPhrase != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Mnemonic: %s\n\n", mnemonicPhrase)
	}
	for _, a := range addrs {
		fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-24s %s\n", a.Network, a.DerivationPath, a.Address)
	}
	return nil
}

// newHDCmd generates a fresh mnemonic and derives count addresses from it.
func newHDCmd(c currencySpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hd",
		Short: fmt.Sprintf("generate a new mnemonic and derive %s addresses", c.name),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			wordCount, _ := cmd.Flags().GetInt("word-count")
			preset, _ := cmd.Flags().GetString("preset")
			path, _ := cmd.Flags().GetString("path")
			password, _ := cmd.Flags().GetString("password")
			lang, _ := cmd.Flags().GetString("language")

			phrase, err := mnemonic.Generate(rand.Reader, wordCount, mnemonic.Language(lang))
			if err != nil {
				return fmt.Errorf("generate mnemonic: %w", err)
			}
			w, err := keyring.NewFromMnemonic(phrase, password, mnemonic.Language(lang))
			if err != nil {
				return fmt.Errorf("build wallet: %w", err)
			}

			addrs := make([]*models.DerivedAddress, 0, count)
			for i := 0; i < count; i++ {
				addr, err := resolveAddress(w, c, preset, path, uint32(i))
				if err != nil {
					return err
				}
				addrs = append(addrs, addr)
			}
			return emitAddresses(cmd, phrase, addrs)
		},
	}
	cmd.Flags().IntP("count", "c", 1, "number of addresses to derive")
	cmd.Flags().Int("word-count", 24, "number of mnemonic words (12, 15, 18, 21, or 24)")
	addDerivationFlags(cmd)
	return cmd
}

// newImportCmd imports an existing mnemonic and derives a single address.
func newImportCmd(c currencySpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: fmt.Sprintf("derive a single %s address from an existing mnemonic", c.name),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, _ := cmd.Flags().GetString("mnemonic")
			if phrase == "" {
				return fmt.Errorf("--mnemonic is required")
			}
			preset, _ := cmd.Flags().GetString("preset")
			path, _ := cmd.Flags().GetString("path")
			password, _ := cmd.Flags().GetString("password")
			lang, _ := cmd.Flags().GetString("language")
			index, _ := cmd.Flags().GetUint32("index")

			w, err := keyring.NewFromMnemonic(phrase, password, mnemonic.Language(lang))
			if err != nil {
				return fmt.Errorf("build wallet: %w", err)
			}
			addr, err := resolveAddress(w, c, preset, path, index)
			if err != nil {
				return err
			}
			return emitAddresses(cmd, "", []*models.DerivedAddress{addr})
		},
	}
	cmd.Flags().StringP("mnemonic", "m", "", "existing mnemonic phrase (required)")
	addDerivationFlags(cmd)
	cmd.MarkFlagRequired("mnemonic")
	return cmd
}

// newImportHDCmd imports an existing mnemonic and derives count sequential addresses.
func newImportHDCmd(c currencySpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-hd",
		Short: fmt.Sprintf("derive %s addresses in bulk from an existing mnemonic", c.name),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, _ := cmd.Flags().GetString("mnemonic")
			if phrase == "" {
				return fmt.Errorf("--mnemonic is required")
			}
			count, _ := cmd.Flags().GetInt("count")
			preset, _ := cmd.Flags().GetString("preset")
			path, _ := cmd.Flags().GetString("path")
			password, _ := cmd.Flags().GetString("password")
			lang, _ := cmd.Flags().GetString("language")
			startIndex, _ := cmd.Flags().GetUint32("index")

			w, err := keyring.NewFromMnemonic(phrase, password, mnemonic.Language(lang))
			if err != nil {
				return fmt.Errorf("build wallet: %w", err)
			}

			addrs := make([]*models.DerivedAddress, 0, count)
			for i := 0; i < count; i++ {
				addr, err := resolveAddress(w, c, preset, path, startIndex+uint32(i))
				if err != nil {
					return err
				}
				addrs = append(addrs, addr)
			}
			return emitAddresses(cmd, "", addrs)
		},
	}
	cmd.Flags().StringP("mnemonic", "m", "", "existing mnemonic phrase (required)")
	cmd.Flags().IntP("count", "c", 1, "number of addresses to derive")
	addDerivationFlags(cmd)
	cmd.MarkFlagRequired("mnemonic")
	return cmd
}
