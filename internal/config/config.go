// Package config carries the ambient, non-cryptographic knobs the
// wallet core needs: PBKDF2 cost, mnemonic defaults, and the named
// derivation-path presets the CLI surface exposes.
package config

import (
	"os"
	"strconv"

	"github.com/avalanche-wallets/hd-multichain/internal/derivation"
	"github.com/avalanche-wallets/hd-multichain/internal/mnemonic"
)

// Config holds all configurable parameters for the wallet toolkit.
type Config struct {
	// PBKDF2 iteration count for mnemonic-to-seed stretching (BIP39
	// fixes this at 2048). mnemonic.ToSeed does not read this field; it
	// always uses 2048 rounds.
	PBKDF2Iterations int

	// Mnemonic generation defaults.
	DefaultWordCount int
	DefaultLanguage  mnemonic.Language

	// Default Ethereum chain id for EIP-155 signing.
	ETHChainID int64

	// BTC network selector.
	BTCMainnet bool
}

// Default returns a Config populated with spec-mandated default values.
func Default() Config {
	return Config{
		PBKDF2Iterations: 2048,
		DefaultWordCount: 24,
		DefaultLanguage:  mnemonic.English,
		ETHChainID:       1,
		BTCMainnet:       true,
	}
}

// FromEnv returns a Config populated from environment variables,
// falling back to defaults for unset values.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("PBKDF2_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PBKDF2Iterations = n
		}
	}
	if v := os.Getenv("MNEMONIC_WORD_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultWordCount = n
		}
	}
	if v := os.Getenv("ETH_CHAIN_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.ETHChainID = n
		}
	}
	if v := os.Getenv("BTC_MAINNET"); v == "false" {
		cfg.BTCMainnet = false
	}

	return cfg
}

// DerivationPreset names one of the CLI's six supported path families.
type DerivationPreset string

const (
	PresetEthereum     DerivationPreset = "ethereum"
	PresetKeepkey      DerivationPreset = "keepkey"
	PresetLedgerLegacy DerivationPreset = "ledger-legacy"
	PresetLedgerLive   DerivationPreset = "ledger-live"
	PresetTrezor       DerivationPreset = "trezor"
	PresetCustom       DerivationPreset = "custom"
)

// PathFor resolves a preset and account index into a concrete
// derivation path. PresetCustom ignores index and requires callers to
// parse their own path string directly via internal/derivation.Parse.
func PathFor(preset DerivationPreset, index uint32) (derivation.Path, error) {
	idx := strconv.FormatUint(uint64(index), 10)
	switch preset {
	case PresetEthereum, PresetLedgerLegacy, PresetTrezor:
		return derivation.Parse("m/44'/60'/0'/" + idx)
	case PresetKeepkey:
		return derivation.Parse("m/44'/60'/" + idx + "'/0")
	case PresetLedgerLive:
		return derivation.Parse("m/44'/60'/" + idx + "'/0/0")
	default:
		return nil, &Error{Kind: UnknownPreset, Preset: string(preset)}
	}
}
