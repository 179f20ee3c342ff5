// Package network holds the per-currency, per-network version-byte and
// HRP tables that the extended-key and address layers key into. It is
// pure data: no computation lives here.
package network

// Currency identifies which coin a key or address belongs to.
type Currency string

const (
	Bitcoin  Currency = "bitcoin"
	Ethereum Currency = "ethereum"
	Zcash    Currency = "zcash"
	Monero   Currency = "monero"
)

// Tag names a concrete (currency, network) pair, e.g. Bitcoin-mainnet.
type Tag string

const (
	BitcoinMainnet  Tag = "bitcoin-mainnet"
	BitcoinTestnet  Tag = "bitcoin-testnet"
	EthereumMainnet Tag = "ethereum-mainnet"
	ZcashMainnet    Tag = "zcash-mainnet"
	ZcashTestnet    Tag = "zcash-testnet"
	MoneroMainnet   Tag = "monero-mainnet"
	MoneroTestnet   Tag = "monero-testnet"
)

// Currency returns the coin a network tag belongs to.
func (t Tag) Currency() Currency {
	switch t {
	case BitcoinMainnet, BitcoinTestnet:
		return Bitcoin
	case EthereumMainnet:
		return Ethereum
	case ZcashMainnet, ZcashTestnet:
		return Zcash
	case MoneroMainnet, MoneroTestnet:
		return Monero
	default:
		return ""
	}
}

// ExtendedKeyVersion is the 4-byte version prefix for a BIP32 extended
// key of the given kind (private/public) on the given network.
type ExtendedKeyVersion struct {
	Private uint32
	Public  uint32
}

// extendedKeyVersions holds the BIP32 version-byte table. Ethereum
// reuses the Bitcoin mainnet versions, since it has no extended-key
// serialization format of its own.
var extendedKeyVersions = map[Tag]ExtendedKeyVersion{
	BitcoinMainnet:  {Private: 0x0488ADE4, Public: 0x0488B21E},
	BitcoinTestnet:  {Private: 0x04358394, Public: 0x043587CF},
	EthereumMainnet: {Private: 0x0488ADE4, Public: 0x0488B21E},
}

// ExtendedKeyVersionOf returns the version-byte pair for a network tag,
// or ok=false if the network has no BIP32-style extended-key encoding
// (e.g. Monero and Zcash Sapling use their own textual prefixes).
func ExtendedKeyVersionOf(tag Tag) (ExtendedKeyVersion, bool) {
	v, ok := extendedKeyVersions[tag]
	return v, ok
}

// VersionForExtendedKey maps a 4-byte version back to its network tag and
// whether it denotes a private or public key.
func VersionForExtendedKey(version uint32) (tag Tag, private bool, ok bool) {
	for t, v := range extendedKeyVersions {
		switch version {
		case v.Private:
			return t, true, true
		case v.Public:
			return t, false, true
		}
	}
	return "", false, false
}

// AddressPrefix is a Bitcoin/Zcash-style Base58Check address version
// prefix, one or two bytes.
type AddressPrefix []byte

// bitcoinP2PKH and bitcoinP2SH: P2PKH and P2SH version bytes.
var bitcoinP2PKH = map[Tag]byte{
	BitcoinMainnet: 0x00,
	BitcoinTestnet: 0x6F,
}

var bitcoinP2SH = map[Tag]byte{
	BitcoinMainnet: 0x05,
	BitcoinTestnet: 0xC4,
}

// BitcoinP2PKHPrefix returns the single-byte P2PKH version for a Bitcoin network.
func BitcoinP2PKHPrefix(tag Tag) (byte, bool) {
	v, ok := bitcoinP2PKH[tag]
	return v, ok
}

// BitcoinP2SHPrefix returns the single-byte P2SH version for a Bitcoin network.
func BitcoinP2SHPrefix(tag Tag) (byte, bool) {
	v, ok := bitcoinP2SH[tag]
	return v, ok
}

// BitcoinBech32HRP returns the Bech32 human-readable part for a Bitcoin network.
func BitcoinBech32HRP(tag Tag) (string, bool) {
	switch tag {
	case BitcoinMainnet:
		return "bc", true
	case BitcoinTestnet:
		return "tb", true
	default:
		return "", false
	}
}

// zcashPrefixes carries the emitted 2-byte address prefixes per network.
// Testnet's accept-only 0x74 legacy Sprout alias is not in this table;
// it is ZcashTestnetLegacySproutAlias below.
type zcashPrefixSet struct {
	P2PKH  [2]byte
	P2SH   [2]byte
	Sprout [2]byte
}

var zcashPrefixes = map[Tag]zcashPrefixSet{
	ZcashMainnet: {P2PKH: [2]byte{0x1C, 0xB8}, P2SH: [2]byte{0x1C, 0xBD}, Sprout: [2]byte{0x16, 0x9A}},
	ZcashTestnet: {P2PKH: [2]byte{0x1D, 0x25}, P2SH: [2]byte{0x1C, 0xBA}, Sprout: [2]byte{0x16, 0xB6}},
}

// ZcashAddressPrefix returns the emitted 2-byte prefix for a Zcash
// address format.
func ZcashAddressPrefix(tag Tag, format string) ([2]byte, bool) {
	set, ok := zcashPrefixes[tag]
	if !ok {
		return [2]byte{}, false
	}
	switch format {
	case "p2pkh":
		return set.P2PKH, true
	case "p2sh":
		return set.P2SH, true
	case "sprout":
		return set.Sprout, true
	default:
		return [2]byte{}, false
	}
}

// ZcashTestnetLegacySproutAlias is the second byte 0x74 that testnet
// accepts on parse but never emits.
const ZcashTestnetLegacySproutAlias = 0x74

// ZcashAcceptsSecondByte reports whether a parsed Zcash address prefix's
// second byte is a recognized value for tag, including the legacy
// accept-only alias.
func ZcashAcceptsSecondByte(tag Tag, second byte) bool {
	set, ok := zcashPrefixes[tag]
	if !ok {
		return false
	}
	if second == set.P2PKH[1] || second == set.P2SH[1] || second == set.Sprout[1] {
		return true
	}
	return tag == ZcashTestnet && second == ZcashTestnetLegacySproutAlias
}

// WIFPrefix returns the WIF version byte for Bitcoin/Zcash private keys.
func WIFPrefix(tag Tag) (byte, bool) {
	switch tag {
	case BitcoinMainnet:
		return 0x80, true
	case BitcoinTestnet:
		return 0xEF, true
	case ZcashMainnet:
		return 0x80, true
	case ZcashTestnet:
		return 0xEF, true
	default:
		return 0, false
	}
}

// MoneroAddressByte returns the single network byte prefixed to Monero
// standard addresses.
func MoneroAddressByte(tag Tag) (byte, bool) {
	switch tag {
	case MoneroMainnet:
		return 0x12, true
	case MoneroTestnet:
		return 0x35, true
	default:
		return 0, false
	}
}

// MoneroIntegratedAddressByte returns the network byte for Monero
// integrated addresses (payment-id-bearing).
func MoneroIntegratedAddressByte(tag Tag) (byte, bool) {
	switch tag {
	case MoneroMainnet:
		return 0x13, true
	case MoneroTestnet:
		return 0x36, true
	default:
		return 0, false
	}
}

// MoneroSubaddressByte returns the network byte for Monero subaddresses.
func MoneroSubaddressByte(tag Tag) (byte, bool) {
	switch tag {
	case MoneroMainnet:
		return 0x2A, true
	case MoneroTestnet:
		return 0x3F, true
	default:
		return 0, false
	}
}

// EthereumChainID is a named chain id, kept alongside the version-byte
// tables since EIP-155 signing keys off it the same way a Bitcoin
// network keys off its version bytes.
type EthereumChainID int64

const (
	EthereumMainnetChainID EthereumChainID = 1
	EthereumRopstenChainID EthereumChainID = 3
	EthereumRinkebyChainID EthereumChainID = 4
	EthereumGoerliChainID  EthereumChainID = 5
	EthereumKovanChainID   EthereumChainID = 42
)
