// Package keyring ties the mnemonic, derivation, extkey, address, and
// ethtx/monero packages together behind one high-level API, with a
// Generator interface per currency so address derivation stays uniform
// across BTC/ETH/ZEC/XMR.
package keyring

import (
	"encoding/hex"
	"fmt"

	"github.com/avalanche-wallets/hd-multichain/internal/address"
	"github.com/avalanche-wallets/hd-multichain/internal/derivation"
	"github.com/avalanche-wallets/hd-multichain/internal/extkey"
	"github.com/avalanche-wallets/hd-multichain/internal/monero"
	"github.com/avalanche-wallets/hd-multichain/internal/network"
	"github.com/avalanche-wallets/hd-multichain/pkg/models"
)

// Generator derives a single address from a BIP39 seed at a derivation
// path.
type Generator interface {
	Network() models.Network
	GenerateFromSeed(seed []byte, path derivation.Path) (*models.DerivedAddress, error)
}

// BitcoinGenerator derives P2PKH Bitcoin addresses via BIP32/BIP44.
type BitcoinGenerator struct{ Tag network.Tag }

func (g BitcoinGenerator) Network() models.Network { return models.NetworkBTC }

func (g BitcoinGenerator) GenerateFromSeed(seed []byte, path derivation.Path) (*models.DerivedAddress, error) {
	leaf, err := deriveLeaf(seed, g.Tag, path)
	if err != nil {
		return nil, err
	}
	pub := leaf.PublicKeyBytes()
	addr, err := address.BitcoinP2PKH(g.Tag, pub)
	if err != nil {
		return nil, err
	}
	return &models.DerivedAddress{
		Network:        models.NetworkBTC,
		Address:        addr,
		DerivationPath: path.String(),
		PublicKey:      hex.EncodeToString(pub),
	}, nil
}

// EthereumGenerator derives Ethereum addresses via BIP32/BIP44.
type EthereumGenerator struct{}

func (g EthereumGenerator) Network() models.Network { return models.NetworkETH }

func (g EthereumGenerator) GenerateFromSeed(seed []byte, path derivation.Path) (*models.DerivedAddress, error) {
	leaf, err := deriveLeaf(seed, network.EthereumMainnet, path)
	if err != nil {
		return nil, err
	}
	uncompressed := leaf.UncompressedPublicKeyBytes()
	addr := address.EthereumChecksum(address.Ethereum(uncompressed))
	return &models.DerivedAddress{
		Network:        models.NetworkETH,
		Address:        addr,
		DerivationPath: path.String(),
		PublicKey:      hex.EncodeToString(uncompressed),
	}, nil
}

// ZcashGenerator derives Zcash transparent addresses via BIP32/BIP44.
type ZcashGenerator struct {
	Tag    network.Tag
	Format string // "p2pkh", "p2sh", or "sprout"
}

func (g ZcashGenerator) Network() models.Network { return models.NetworkZEC }

func (g ZcashGenerator) GenerateFromSeed(seed []byte, path derivation.Path) (*models.DerivedAddress, error) {
	leaf, err := deriveLeaf(seed, network.BitcoinMainnet, path) // Zcash reuses Bitcoin's BIP32 tree shape
	if err != nil {
		return nil, err
	}
	pub := leaf.PublicKeyBytes()
	addr, err := address.ZcashTransparent(g.Tag, g.Format, pub)
	if err != nil {
		return nil, err
	}
	return &models.DerivedAddress{
		Network:        models.NetworkZEC,
		Address:        addr,
		DerivationPath: path.String(),
		PublicKey:      hex.EncodeToString(pub),
	}, nil
}

// MoneroAccount derives a Monero account's keys from a seed and renders
// its standard address. Monero diverges from the BIP32 tree entirely:
// its keys come from internal/monero.MasterKeysFromSeed, not extkey, so
// it implements Generator directly rather than going through deriveLeaf.
type MoneroAccount struct{ Tag network.Tag }

func (g MoneroAccount) Network() models.Network { return models.NetworkXMR }

func (g MoneroAccount) GenerateFromSeed(seed []byte, _ derivation.Path) (*models.DerivedAddress, error) {
	spendSecret, viewSecret := monero.MasterKeysFromSeed(seed)
	spendPub, err := monero.PublicKeyFromSecret(spendSecret)
	if err != nil {
		return nil, err
	}
	viewPub, err := monero.PublicKeyFromSecret(viewSecret)
	if err != nil {
		return nil, err
	}
	addr, err := address.MoneroStandard(g.Tag, spendPub, viewPub)
	if err != nil {
		return nil, err
	}
	return &models.DerivedAddress{
		Network:        models.NetworkXMR,
		Address:        addr,
		DerivationPath: "monero-account",
		PublicKey:      hex.EncodeToString(spendPub[:]) + hex.EncodeToString(viewPub[:]),
	}, nil
}

func deriveLeaf(seed []byte, tag network.Tag, path derivation.Path) (*extkey.Key, error) {
	master, err := extkey.NewMaster(seed, tag)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}
	return master.Derive(path)
}
