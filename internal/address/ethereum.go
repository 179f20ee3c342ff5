package address

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Keccak256 is Ethereum/Monero/TRON's hash function (spec glossary).
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// Ethereum renders the lowercase-hex address for an uncompressed public
// key: last 20 bytes of Keccak-256(pubkey[1:]).
func Ethereum(uncompressedPubKey []byte) string {
	body := uncompressedPubKey
	if len(body) == 65 && body[0] == 0x04 {
		body = body[1:]
	}
	hash := Keccak256(body)
	return "0x" + hex.EncodeToString(hash[12:])
}

// EthereumChecksum renders the EIP-55 mixed-case checksummed form of a
// lowercase 0x-prefixed Ethereum address.
func EthereumChecksum(lowerAddr string) string {
	addr := strings.TrimPrefix(lowerAddr, "0x")
	hash := Keccak256([]byte(addr))

	out := make([]byte, len(addr))
	for i, c := range []byte(addr) {
		if c >= '0' && c <= '9' {
			out[i] = c
			continue
		}
		// nibble i of the hash decides the case of hex letters.
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		nibble &= 0x0F
		if nibble >= 8 {
			out[i] = c - 'a' + 'A'
		} else {
			out[i] = c
		}
	}
	return "0x" + string(out)
}
