package monero

import (
	"encoding/binary"

	"filippo.io/edwards25519"

	"github.com/avalanche-wallets/hd-multichain/internal/address"
)

// MasterKeysFromSeed derives a Monero account's private spend and view
// keys from a seed, following the convention real Monero wallets use
// for deterministic (mnemonic-backed) accounts: the spend secret is the
// first 32 bytes of the seed reduced mod l, and the view secret is
// H_s(spend_secret).
func MasterKeysFromSeed(seed []byte) (spendSecret, viewSecret [32]byte) {
	var seedDigest [32]byte
	copy(seedDigest[:], seed[:32])
	spendScalar := scalarModOrder(seedDigest)
	copy(spendSecret[:], spendScalar.Bytes())

	viewDigest := [32]byte{}
	copy(viewDigest[:], address.Keccak256(spendSecret[:]))
	viewScalar := scalarModOrder(viewDigest)
	copy(viewSecret[:], viewScalar.Bytes())

	return spendSecret, viewSecret
}

// PublicKeyFromSecret returns secret*G.
func PublicKeyFromSecret(secret [32]byte) ([32]byte, error) {
	s, err := scalarFromBytes(secret)
	if err != nil {
		return [32]byte{}, err
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	return pointBytes(p), nil
}

// DeriveSubaddressKeys derives a subaddress keypair from the account's
// private view key and public spend key at (account, index), per
// spend' = spend + H_s("SubAddr\0"||priv_view||account||index)*G,
// view' = priv_view*spend'.
func DeriveSubaddressKeys(privateView [32]byte, publicSpend [32]byte, account, index uint32) (spendPub, viewPub [32]byte, err error) {
	if account == 0 && index == 0 {
		// The (0,0) subaddress is the main address itself.
		viewPoint, verr := PublicKeyFromSecret(privateView)
		if verr != nil {
			return [32]byte{}, [32]byte{}, verr
		}
		return publicSpend, viewPoint, nil
	}

	data := make([]byte, 0, 8+32+4+4)
	data = append(data, []byte("SubAddr\x00")...)
	data = append(data, privateView[:]...)
	var accBuf, idxBuf [4]byte
	binary.LittleEndian.PutUint32(accBuf[:], account)
	binary.LittleEndian.PutUint32(idxBuf[:], index)
	data = append(data, accBuf[:]...)
	data = append(data, idxBuf[:]...)

	digest := [32]byte{}
	copy(digest[:], address.Keccak256(data))
	m := scalarModOrder(digest)

	spend, err := decompress(publicSpend)
	if err != nil {
		return [32]byte{}, [32]byte{}, err
	}
	mG := new(edwards25519.Point).ScalarBaseMult(m)
	spendPrime := new(edwards25519.Point).Add(spend, mG)

	viewScalar, err := scalarFromBytes(privateView)
	if err != nil {
		return [32]byte{}, [32]byte{}, err
	}
	viewPrime := new(edwards25519.Point).ScalarMult(viewScalar, spendPrime)

	return pointBytes(spendPrime), pointBytes(viewPrime), nil
}
