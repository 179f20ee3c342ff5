package keyring

import (
	"fmt"
	"log/slog"

	"github.com/avalanche-wallets/hd-multichain/internal/config"
	"github.com/avalanche-wallets/hd-multichain/internal/derivation"
	"github.com/avalanche-wallets/hd-multichain/internal/mnemonic"
	"github.com/avalanche-wallets/hd-multichain/internal/network"
	"github.com/avalanche-wallets/hd-multichain/pkg/models"
)

// Wallet is the orchestration facade: mnemonic -> seed, plus an
// IndexCache for sequential per-account address derivation, and a
// registry of per-currency Generators covering BTC/ETH/ZEC/XMR.
type Wallet struct {
	seed       []byte
	generators map[models.Network]Generator
	indexes    *IndexCache
	logger     *slog.Logger
}

// NewFromMnemonic builds a Wallet from a BIP39 phrase and optional
// passphrase, registering the default generator set for every network.
func NewFromMnemonic(phrase, passphrase string, lang mnemonic.Language) (*Wallet, error) {
	if _, err := mnemonic.Parse(phrase, lang); err != nil {
		return nil, fmt.Errorf("validate mnemonic: %w", err)
	}
	seed := mnemonic.ToSeed(phrase, passphrase)

	w := &Wallet{
		seed:       seed,
		generators: make(map[models.Network]Generator),
		indexes:    NewIndexCache(),
		logger:     slog.Default().With("component", "keyring"),
	}
	w.RegisterGenerator(BitcoinGenerator{Tag: network.BitcoinMainnet})
	w.RegisterGenerator(EthereumGenerator{})
	w.RegisterGenerator(ZcashGenerator{Tag: network.ZcashMainnet, Format: "p2pkh"})
	w.RegisterGenerator(MoneroAccount{Tag: network.MoneroMainnet})
	return w, nil
}

// RegisterGenerator installs or replaces the Generator for its network.
func (w *Wallet) RegisterGenerator(g Generator) {
	w.generators[g.Network()] = g
}

// NextAddress derives the next sequential address for net under preset,
// advancing that network's index counter.
func (w *Wallet) NextAddress(net models.Network, preset config.DerivationPreset) (*models.DerivedAddress, error) {
	idx := w.indexes.NextIndex(string(net))
	return w.AddressAt(net, preset, idx)
}

// AddressAt derives the address for net at a specific account index,
// without touching the sequential counter.
func (w *Wallet) AddressAt(net models.Network, preset config.DerivationPreset, index uint32) (*models.DerivedAddress, error) {
	gen, ok := w.generators[net]
	if !ok {
		return nil, fmt.Errorf("keyring: no generator registered for network %q", net)
	}

	var path derivation.Path
	if net != models.NetworkXMR {
		p, err := config.PathFor(preset, index)
		if err != nil {
			return nil, err
		}
		path = p
	}

	addr, err := gen.GenerateFromSeed(w.seed, path)
	if err != nil {
		w.logger.Error("address derivation failed", "network", net, "index", index, "error", err)
		return nil, err
	}
	w.logger.Info("derived address", "network", net, "index", index, "address", addr.Address)
	return addr, nil
}

// ImportPath derives a single address at a caller-supplied derivation
// path string, bypassing presets entirely.
func (w *Wallet) ImportPath(net models.Network, pathStr string) (*models.DerivedAddress, error) {
	gen, ok := w.generators[net]
	if !ok {
		return nil, fmt.Errorf("keyring: no generator registered for network %q", net)
	}
	path, err := derivation.Parse(pathStr)
	if err != nil {
		return nil, err
	}
	return gen.GenerateFromSeed(w.seed, path)
}
