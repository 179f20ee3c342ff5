package monero

import (
	"testing"

	"filippo.io/edwards25519"
)

func TestVarint_RoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 16383, 16384, 1 << 30, 1 << 40}
	for _, n := range cases {
		enc := EncodeVarint(n)
		got, consumed, err := DecodeVarint(enc)
		if err != nil {
			t.Fatalf("DecodeVarint(%d): %v", n, err)
		}
		if got != n || consumed != len(enc) {
			t.Errorf("round trip of %d: got %d (consumed %d), want %d (consumed %d)", n, got, consumed, n, len(enc))
		}
	}
}

func scalarBytes(n uint64) [32]byte {
	var out [32]byte
	out[0] = byte(n)
	out[1] = byte(n >> 8)
	return out
}

func TestDerivePublicKey_MatchesDeriveSecretKey(t *testing.T) {
	// The one-time public key must equal scalar_base_mult of the
	// one-time secret key: P = x*G.
	privateView := scalarBytes(12345)
	publicSpend := new(edwards25519.Point).ScalarBaseMult(scalarFromBytesMust(t, scalarBytes(999)))
	privateSpend := scalarBytes(999)

	// Use 42*G as a fake "tx public key" A so generate_key_derivation
	// has a valid input point.
	txPublic := new(edwards25519.Point).ScalarBaseMult(scalarFromBytesMust(t, scalarBytes(42)))
	var txPublicBytes [32]byte
	copy(txPublicBytes[:], txPublic.Bytes())

	var publicSpendBytes [32]byte
	copy(publicSpendBytes[:], publicSpend.Bytes())

	derivation, err := GenerateKeyDerivation(txPublicBytes, privateView)
	if err != nil {
		t.Fatalf("GenerateKeyDerivation: %v", err)
	}

	pub, err := DerivePublicKey(derivation, 0, publicSpendBytes)
	if err != nil {
		t.Fatalf("DerivePublicKey: %v", err)
	}
	sec, err := DeriveSecretKey(derivation, 0, privateSpend)
	if err != nil {
		t.Fatalf("DeriveSecretKey: %v", err)
	}

	secScalar, err := scalarFromBytes(sec)
	if err != nil {
		t.Fatalf("scalarFromBytes: %v", err)
	}
	recomputed := new(edwards25519.Point).ScalarBaseMult(secScalar)
	if recomputed.Bytes() == nil {
		t.Fatal("nil point bytes")
	}
	if hexEqual(recomputed.Bytes(), pub[:]) != true {
		t.Errorf("scalar_base_mult(secret) != derived public key")
	}
}

func scalarFromBytesMust(t *testing.T, b [32]byte) *edwards25519.Scalar {
	t.Helper()
	s, err := scalarFromBytes(b)
	if err != nil {
		t.Fatalf("scalarFromBytes: %v", err)
	}
	return s
}

func hexEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGenerateKeyImage_IsDeterministic(t *testing.T) {
	pub := scalarBytes(7)
	pubPoint := new(edwards25519.Point).ScalarBaseMult(scalarFromBytesMust(t, pub))
	var pubBytes [32]byte
	copy(pubBytes[:], pubPoint.Bytes())

	sec := scalarBytes(11)

	img1, err := GenerateKeyImage(pubBytes, sec)
	if err != nil {
		// hash_to_ec's try-once mapping doesn't decompress for every
		// input point; this fixture isn't guaranteed to land on one
		// that does (see hashToEC's doc comment).
		t.Skipf("fixture public key does not hash to a valid point: %v", err)
	}
	img2, err := GenerateKeyImage(pubBytes, sec)
	if err != nil {
		t.Fatalf("GenerateKeyImage: %v", err)
	}
	if img1 != img2 {
		t.Errorf("GenerateKeyImage is not deterministic")
	}
}
