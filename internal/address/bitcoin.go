// Package address derives per-currency addresses from public keys:
// Bitcoin/Ethereum/Zcash/Monero forms, one file per currency.
package address

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is required by HASH160

	"github.com/avalanche-wallets/hd-multichain/internal/network"
)

// Hash160 is SHA-256 followed by RIPEMD-160, the Bitcoin-family address
// digest (spec glossary: HASH160).
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}

func doubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

func base58CheckEncode(version byte, payload []byte) string {
	data := make([]byte, 0, 1+len(payload)+4)
	data = append(data, version)
	data = append(data, payload...)
	checksum := doubleSHA256(data)
	data = append(data, checksum[:4]...)
	return base58.Encode(data)
}

func base58CheckEncode2(version [2]byte, payload []byte) string {
	data := make([]byte, 0, 2+len(payload)+4)
	data = append(data, version[:]...)
	data = append(data, payload...)
	checksum := doubleSHA256(data)
	data = append(data, checksum[:4]...)
	return base58.Encode(data)
}

// BitcoinP2PKH renders the legacy pay-to-pubkey-hash address for a
// compressed (or uncompressed) public key.
func BitcoinP2PKH(tag network.Tag, compressedPubKey []byte) (string, error) {
	version, ok := network.BitcoinP2PKHPrefix(tag)
	if !ok {
		return "", &Error{Kind: NetworkMismatch}
	}
	return base58CheckEncode(version, Hash160(compressedPubKey)), nil
}

// BitcoinP2SHSegwit renders a P2SH-wrapped native-segwit (P2WPKH)
// address: redeem script 0x0014||HASH160(pub), address hashes the
// redeem script under the P2SH version.
func BitcoinP2SHSegwit(tag network.Tag, compressedPubKey []byte) (string, error) {
	version, ok := network.BitcoinP2SHPrefix(tag)
	if !ok {
		return "", &Error{Kind: NetworkMismatch}
	}
	redeem := make([]byte, 0, 22)
	redeem = append(redeem, 0x00, 0x14)
	redeem = append(redeem, Hash160(compressedPubKey)...)
	return base58CheckEncode(version, Hash160(redeem)), nil
}

// BitcoinBech32 renders a native SegWit v0 address: HRP per network,
// witness version 0, HASH160(pub) as the 5-bit-grouped program.
func BitcoinBech32(tag network.Tag, compressedPubKey []byte) (string, error) {
	hrp, ok := network.BitcoinBech32HRP(tag)
	if !ok {
		return "", &Error{Kind: NetworkMismatch}
	}
	program := Hash160(compressedPubKey)
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", &Error{Kind: DomainError, Err: err}
	}
	data := append([]byte{0x00}, converted...)
	return bech32.Encode(hrp, data)
}

// ZcashTransparent renders a Zcash transparent address: 2-byte version
// || HASH160(pub) || 4-byte checksum, Base58.
func ZcashTransparent(tag network.Tag, format string, compressedPubKey []byte) (string, error) {
	version, ok := network.ZcashAddressPrefix(tag, format)
	if !ok {
		if tag.Currency() == network.Zcash {
			return "", &Error{Kind: DomainError, Err: ErrUnsupportedFormat}
		}
		return "", &Error{Kind: NetworkMismatch}
	}
	return base58CheckEncode2(version, Hash160(compressedPubKey)), nil
}

// WIF encodes a 32-byte secret for Bitcoin/Zcash private-key interchange:
// network prefix || secret || optional 0x01 compression flag || 4-byte
// checksum, Base58.
func WIF(tag network.Tag, secret []byte, compressed bool) (string, error) {
	prefix, ok := network.WIFPrefix(tag)
	if !ok {
		return "", &Error{Kind: NetworkMismatch}
	}
	payload := make([]byte, 0, 33)
	payload = append(payload, secret...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return base58CheckEncode(prefix, payload), nil
}

// ParseWIF decodes a WIF string back into its secret and compression flag.
func ParseWIF(s string) (tag network.Tag, secret []byte, compressed bool, err error) {
	decoded := base58.Decode(s)
	if len(decoded) < 1+32+4 {
		return "", nil, false, &Error{Kind: ParseError}
	}
	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]
	want := doubleSHA256(payload)
	for i := range checksum {
		if checksum[i] != want[i] {
			return "", nil, false, &Error{Kind: ChecksumError}
		}
	}

	prefix := payload[0]
	rest := payload[1:]
	switch len(rest) {
	case 32:
		compressed = false
	case 33:
		if rest[32] != 0x01 {
			return "", nil, false, &Error{Kind: ParseError}
		}
		compressed = true
		rest = rest[:32]
	default:
		return "", nil, false, &Error{Kind: ParseError}
	}

	for _, t := range []network.Tag{network.BitcoinMainnet, network.BitcoinTestnet, network.ZcashMainnet, network.ZcashTestnet} {
		if p, ok := network.WIFPrefix(t); ok && p == prefix {
			return t, rest, compressed, nil
		}
	}
	return "", nil, false, &Error{Kind: NetworkMismatch}
}
