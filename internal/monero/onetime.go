// Package monero implements Monero's one-time key derivation and key
// image generation: the stealth-address scheme that lets a recipient's
// view key scan incoming outputs and derive their spendable secret
// without revealing the spend key to the sender.
package monero

import (
	"filippo.io/edwards25519"

	"github.com/avalanche-wallets/hd-multichain/internal/address"
)

func decompress(key [32]byte) (*edwards25519.Point, error) {
	p, err := new(edwards25519.Point).SetBytes(key[:])
	if err != nil {
		return nil, &Error{Kind: InvalidPoint, Err: err}
	}
	return p, nil
}

func scalarFromBytes(b [32]byte) (*edwards25519.Scalar, error) {
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		return nil, &Error{Kind: InvalidScalar, Err: err}
	}
	return s, nil
}

// scalarModOrder reduces an arbitrary Keccak-256 digest modulo the
// curve order l, matching Rust's Scalar::from_bytes_mod_order: padding
// the 32-byte digest out to 64 bytes (zero high half) leaves the value
// unchanged mod l while satisfying SetUniformBytes's length contract.
func scalarModOrder(digest [32]byte) *edwards25519.Scalar {
	wide := make([]byte, 64)
	copy(wide, digest[:])
	s, _ := new(edwards25519.Scalar).SetUniformBytes(wide)
	return s
}

func pointBytes(p *edwards25519.Point) [32]byte {
	var out [32]byte
	copy(out[:], p.Bytes())
	return out
}

// GenerateKeyDerivation computes the shared secret point rA used to
// scan outputs: (privateKey * publicKey), cleared of the curve's
// cofactor (Monero's crypto.cpp generate_key_derivation).
func GenerateKeyDerivation(public [32]byte, secret [32]byte) ([32]byte, error) {
	a, err := decompress(public)
	if err != nil {
		return [32]byte{}, err
	}
	r, err := scalarFromBytes(secret)
	if err != nil {
		return [32]byte{}, err
	}

	shared := new(edwards25519.Point).ScalarMult(r, a)
	shared = new(edwards25519.Point).MultByCofactor(shared)
	return pointBytes(shared), nil
}

// DerivationToScalar returns H_s(derivation || varint(output_index)) as
// a curve-order scalar, the building block for both one-time key
// derivation and key-image generation.
func DerivationToScalar(derivation [32]byte, outputIndex uint64) [32]byte {
	data := append(append([]byte{}, derivation[:]...), EncodeVarint(outputIndex)...)
	digest := [32]byte{}
	copy(digest[:], address.Keccak256(data))
	scalar := scalarModOrder(digest)
	var out [32]byte
	copy(out[:], scalar.Bytes())
	return out
}

// DerivePublicKey returns the recipient's one-time public key:
// P = H_s(derivation, index)*G + public_spend_key.
func DerivePublicKey(derivation [32]byte, outputIndex uint64, publicSpendKey [32]byte) ([32]byte, error) {
	spend, err := decompress(publicSpendKey)
	if err != nil {
		return [32]byte{}, err
	}
	hs := DerivationToScalar(derivation, outputIndex)
	hsScalar, err := scalarFromBytes(hs)
	if err != nil {
		return [32]byte{}, err
	}

	hsG := new(edwards25519.Point).ScalarBaseMult(hsScalar)
	p := new(edwards25519.Point).Add(spend, hsG)
	return pointBytes(p), nil
}

// DeriveSecretKey returns the recipient's one-time secret key:
// x = H_s(derivation, index) + private_spend_key, mod l.
func DeriveSecretKey(derivation [32]byte, outputIndex uint64, privateSpendKey [32]byte) ([32]byte, error) {
	spend, err := scalarFromBytes(privateSpendKey)
	if err != nil {
		return [32]byte{}, err
	}
	hs := DerivationToScalar(derivation, outputIndex)
	hsScalar, err := scalarFromBytes(hs)
	if err != nil {
		return [32]byte{}, err
	}

	x := new(edwards25519.Scalar).Add(hsScalar, spend)
	var out [32]byte
	copy(out[:], x.Bytes())
	return out, nil
}

// hashToEC maps a public key to a curve point via Keccak-256 followed
// by cofactor clearing (Monero's crypto.cpp hash_to_ec). This is a
// try-once mapping: Monero additionally falls back to an elligator-style
// encoding when the hash doesn't decompress to a valid point; that
// fallback path is out of scope here.
func hashToEC(key [32]byte) (*edwards25519.Point, error) {
	digest := [32]byte{}
	copy(digest[:], address.Keccak256(key[:]))
	p, err := decompress(digest)
	if err != nil {
		return nil, err
	}
	return new(edwards25519.Point).MultByCofactor(p), nil
}

// GenerateKeyImage computes the linkable key image I = x*Hp(P) used to
// prove a one-time output has been spent without revealing which one.
func GenerateKeyImage(oneTimePublicKey [32]byte, oneTimeSecretKey [32]byte) ([32]byte, error) {
	hp, err := hashToEC(oneTimePublicKey)
	if err != nil {
		return [32]byte{}, err
	}
	x, err := scalarFromBytes(oneTimeSecretKey)
	if err != nil {
		return [32]byte{}, err
	}

	image := new(edwards25519.Point).ScalarMult(x, hp)
	return pointBytes(image), nil
}
