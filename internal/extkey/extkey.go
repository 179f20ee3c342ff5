// Package extkey implements the BIP32 extended-key tree: master
// derivation from seed, CKD-priv, CKD-pub, and Base58Check
// serialization, generalized across the networks in internal/network.
package extkey

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is mandated by BIP32's fingerprint definition

	"github.com/avalanche-wallets/hd-multichain/internal/derivation"
	"github.com/avalanche-wallets/hd-multichain/internal/network"
)

const serializedLen = 78 // version(4) depth(1) fingerprint(4) childnum(4) chaincode(32) keydata(33)

var (
	errNotPrivate       = errors.New("CKD-priv requires a private extended key")
	errScalarOutOfRange = errors.New("derived scalar is zero or exceeds curve order")
	errWrongLength      = errors.New("serialized extended key has the wrong length")
)

func doubleSHA256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Key is an extended key, private or public. Private keys carry Secret;
// public-only keys carry only Point and have Secret == nil. There is no
// parent back-pointer: only ParentFingerprint survives.
type Key struct {
	Tag                network.Tag
	Depth              uint8
	ParentFingerprint  [4]byte
	ChildNumber        uint32
	ChainCode          [32]byte
	Secret             []byte // 32 bytes, nil for public-only keys
	Point              *secp256k1.PublicKey
}

// IsPrivate reports whether k carries a private secret.
func (k *Key) IsPrivate() bool { return k.Secret != nil }

// masterSecretKey is the BIP32 master HMAC key. Ethereum and Zcash reuse
// the Bitcoin master key construction; only Monero's derivation diverges
// onto Ed25519 entirely and is handled in internal/monero instead.
var masterSecretKey = []byte("Bitcoin seed")

// NewMaster derives the master extended private key from a seed:
// HMAC-SHA512(key="Bitcoin seed", data=seed); left half is the secret,
// right half the chain code.
func NewMaster(seed []byte, tag network.Tag) (*Key, error) {
	il, ir, err := hmacSHA512Split(masterSecretKey, seed)
	if err != nil {
		return nil, err
	}

	secret := new(secp256k1.ModNScalar)
	overflow := secret.SetByteSlice(il)
	if overflow || secret.IsZero() {
		return nil, &Error{Kind: DomainError, Err: errScalarOutOfRange}
	}

	k := &Key{
		Tag:       tag,
		Depth:     0,
		ChainCode: ir,
		Secret:    il,
	}
	return k, nil
}

// pubKeyBytes returns the compressed SEC1 public point, computing it
// from the secret when the key is private.
func (k *Key) pubKeyBytes() []byte {
	if k.Point != nil {
		return k.Point.SerializeCompressed()
	}
	priv := secp256k1.PrivKeyFromBytes(k.Secret)
	return priv.PubKey().SerializeCompressed()
}

// PublicKeyBytes returns the compressed SEC1 public point.
func (k *Key) PublicKeyBytes() []byte { return k.pubKeyBytes() }

// UncompressedPublicKeyBytes returns the 65-byte 0x04-prefixed
// uncompressed SEC1 public point, the form Ethereum addressing needs.
func (k *Key) UncompressedPublicKeyBytes() []byte {
	return k.publicPoint().SerializeUncompressed()
}

func (k *Key) publicPoint() *secp256k1.PublicKey {
	if k.Point != nil {
		return k.Point
	}
	priv := secp256k1.PrivKeyFromBytes(k.Secret)
	return priv.PubKey()
}

// Fingerprint is the first 4 bytes of RIPEMD160(SHA256(compressed pubkey)).
func (k *Key) Fingerprint() [4]byte {
	h := hash160(k.pubKeyBytes())
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}

// ChildPriv derives CKD-priv(k, idx). k must be private. If IL is out of
// range or the resulting child scalar is zero, BIP32 requires retrying
// with index i+1 in the same hardening class; that retry is implemented
// here rather than surfaced to the caller, since a silent retry changing
// which physical child index a path component addresses is still
// consistent with the derivation succeeding for the requested idx.
func (k *Key) ChildPriv(idx derivation.ChildIndex) (*Key, error) {
	if !k.IsPrivate() {
		return nil, &Error{Kind: DomainError, Err: errNotPrivate}
	}
	if k.Depth == 255 {
		return nil, &Error{Kind: MaxDepth}
	}

	number := idx.Number
	for {
		current := derivation.ChildIndex{Number: number, Hardened: idx.Hardened}
		i := current.Raw()

		data := make([]byte, 0, 37)
		if current.Hardened {
			data = append(data, 0x00)
			data = append(data, pad32(k.Secret)...)
		} else {
			data = append(data, k.pubKeyBytes()...)
		}
		data = append(data, ser32(i)...)

		il, ir, err := hmacSHA512Split(k.ChainCode[:], data)
		if err != nil {
			return nil, err
		}

		ilScalar := new(secp256k1.ModNScalar)
		overflow := ilScalar.SetByteSlice(il)

		parentScalar := new(secp256k1.ModNScalar)
		parentScalar.SetByteSlice(k.Secret)

		childScalar := new(secp256k1.ModNScalar).Add2(ilScalar, parentScalar)
		if overflow || childScalar.IsZero() {
			number++
			if number >= 1<<31 {
				return nil, &Error{Kind: DomainError, Err: errScalarOutOfRange}
			}
			continue
		}

		childBytes := childScalar.Bytes()
		child := &Key{
			Tag:               k.Tag,
			Depth:             k.Depth + 1,
			ParentFingerprint: k.Fingerprint(),
			ChildNumber:       i,
			ChainCode:         ir,
			Secret:            childBytes[:],
		}
		return child, nil
	}
}

// ChildPub derives CKD-pub(k, idx). Defined only for non-hardened idx;
// k may be private or public (private keys can always answer a
// public-style query by neutering first).
func (k *Key) ChildPub(idx derivation.ChildIndex) (*Key, error) {
	if idx.Hardened {
		return nil, ErrHardenedFromPublic
	}
	if k.Depth == 255 {
		return nil, &Error{Kind: MaxDepth}
	}

	data := make([]byte, 0, 37)
	data = append(data, k.pubKeyBytes()...)
	data = append(data, ser32(idx.Number)...)

	il, ir, err := hmacSHA512Split(k.ChainCode[:], data)
	if err != nil {
		return nil, err
	}

	ilScalar := new(secp256k1.ModNScalar)
	overflow := ilScalar.SetByteSlice(il)
	if overflow {
		return nil, &Error{Kind: DomainError, Err: errScalarOutOfRange}
	}

	var ilPoint, parentPoint, sumPoint secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(ilScalar, &ilPoint)

	k.publicPoint().AsJacobian(&parentPoint)
	secp256k1.AddNonConst(&ilPoint, &parentPoint, &sumPoint)
	sumPoint.ToAffine()

	if sumPoint.X.IsZero() && sumPoint.Y.IsZero() {
		return nil, &Error{Kind: DomainError, Err: errScalarOutOfRange}
	}
	childPoint := secp256k1.NewPublicKey(&sumPoint.X, &sumPoint.Y)

	child := &Key{
		Tag:               k.Tag,
		Depth:             k.Depth + 1,
		ParentFingerprint: k.Fingerprint(),
		ChildNumber:       idx.Number,
		ChainCode:         ir,
		Point:             childPoint,
	}
	return child, nil
}

// Child dispatches to ChildPriv when k is private and to ChildPub
// otherwise; ChildPub rejects a hardened idx.
func (k *Key) Child(idx derivation.ChildIndex) (*Key, error) {
	if k.IsPrivate() {
		return k.ChildPriv(idx)
	}
	return k.ChildPub(idx)
}

// Derive folds Child over path in order, starting from k.
func (k *Key) Derive(path derivation.Path) (*Key, error) {
	cur := k
	for _, idx := range path {
		next, err := cur.Child(idx)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Neuter returns the public-only counterpart of k. If k is already
// public, it is returned unchanged.
func (k *Key) Neuter() *Key {
	if !k.IsPrivate() {
		return k
	}
	return &Key{
		Tag:               k.Tag,
		Depth:             k.Depth,
		ParentFingerprint: k.ParentFingerprint,
		ChildNumber:       k.ChildNumber,
		ChainCode:         k.ChainCode,
		Point:             k.publicPoint(),
	}
}

// --- serialization ---

// Serialize renders k as the 82-byte Base58Check form described in spec
// §3: 4-byte version || depth || parent fingerprint || child number ||
// chain code || key material || 4-byte checksum.
func (k *Key) Serialize() (string, error) {
	versions, ok := network.ExtendedKeyVersionOf(k.Tag)
	if !ok {
		return "", &Error{Kind: NetworkMismatch}
	}
	version := versions.Public
	if k.IsPrivate() {
		version = versions.Private
	}

	payload := make([]byte, 0, serializedLen)
	payload = append(payload, ser32(version)...)
	payload = append(payload, k.Depth)
	payload = append(payload, k.ParentFingerprint[:]...)
	payload = append(payload, ser32(k.ChildNumber)...)
	payload = append(payload, k.ChainCode[:]...)
	if k.IsPrivate() {
		payload = append(payload, 0x00)
		payload = append(payload, pad32(k.Secret)...)
	} else {
		payload = append(payload, k.pubKeyBytes()...)
	}

	sum := doubleSHA256(payload)
	return base58.Encode(append(payload, sum[:4]...)), nil
}

// Parse reverses Serialize: Base58-decodes, verifies length and
// checksum, and maps the version bytes back to a network tag and
// private/public kind.
func Parse(s string) (*Key, error) {
	decoded := base58.Decode(s)
	if len(decoded) != serializedLen+4 {
		return nil, &Error{Kind: ParseError, Err: errWrongLength}
	}

	payload := decoded[:serializedLen]
	checksum := decoded[serializedLen:]
	sum := doubleSHA256(payload)
	want := sum[:4]
	for i := range checksum {
		if checksum[i] != want[i] {
			return nil, &Error{Kind: ChecksumError}
		}
	}
	raw := payload

	version := binary.BigEndian.Uint32(raw[0:4])
	tag, isPrivate, ok := network.VersionForExtendedKey(version)
	if !ok {
		return nil, &Error{Kind: NetworkMismatch}
	}

	depth := raw[4]
	var parentFP [4]byte
	copy(parentFP[:], raw[5:9])
	childNumber := binary.BigEndian.Uint32(raw[9:13])
	var chainCode [32]byte
	copy(chainCode[:], raw[13:45])
	keyMaterial := raw[45:78]

	k := &Key{
		Tag:               tag,
		Depth:             depth,
		ParentFingerprint: parentFP,
		ChildNumber:       childNumber,
		ChainCode:         chainCode,
	}

	if isPrivate {
		if keyMaterial[0] != 0x00 {
			return nil, &Error{Kind: ParseError, Err: errWrongLength}
		}
		secret := keyMaterial[1:]
		scalar := new(secp256k1.ModNScalar)
		if overflow := scalar.SetByteSlice(secret); overflow || scalar.IsZero() {
			return nil, &Error{Kind: DomainError, Err: errScalarOutOfRange}
		}
		k.Secret = secret
	} else {
		point, err := secp256k1.ParsePubKey(keyMaterial)
		if err != nil {
			return nil, &Error{Kind: DomainError, Err: err}
		}
		k.Point = point
	}

	return k, nil
}

// --- helpers ---

func hmacSHA512Split(key, data []byte) (il []byte, ir [32]byte, err error) {
	mac := hmac.New(sha512.New, key)
	if _, err := mac.Write(data); err != nil {
		return nil, ir, &Error{Kind: CryptoError, Primitive: "hmac-sha512", Err: err}
	}
	sum := mac.Sum(nil)
	il = sum[:32]
	copy(ir[:], sum[32:64])
	return il, ir, nil
}

func hash160(data []byte) [20]byte {
	sha := sha256.Sum256(data)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	var out [20]byte
	copy(out[:], ripe.Sum(nil))
	return out
}

func ser32(i uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, i)
	return b
}

func pad32(b []byte) []byte {
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}
