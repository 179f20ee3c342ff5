package ethtx

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex decode %q: %v", s, err)
	}
	return b
}

func TestSign_EIP155MainnetVector(t *testing.T) {
	skBytes := mustDecodeHex(t, "51ce358ffdcf208fadfb01a339f3ab715a89045a093777a44784d9e215277c1c")
	sk, _ := btcec.PrivKeyFromBytes(skBytes)

	var receiver [20]byte
	copy(receiver[:], mustDecodeHex(t, "b5d590a6abf5e349c1b6c511bc87ceabfb3d7e65"))

	tx := New(receiver, new(big.Int).SetUint64(1000000000000000000), Params{
		Nonce:    big.NewInt(0),
		GasPrice: big.NewInt(1000000000),
		Gas:      big.NewInt(21000),
		Data:     nil,
	}, 1)

	signed, err := tx.Sign(sk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	wantBytes := "f86b80843b9aca0082520894b5d590a6abf5e349c1b6c511bc87ceabfb3d7e65880de0b6b3a76400008026a0e19742af3c215eca3b0391ab9edbf3cbad726a18c5209388ebdcccda028197baa034ec566c3d7bf23441873205a7abd6f5c37996a1a3889cdb83ecc20b14f9dcc3"
	gotBytes := hex.EncodeToString(signed.Bytes())
	if gotBytes != wantBytes {
		t.Fatalf("Bytes() = %s, want %s", gotBytes, wantBytes)
	}

	wantHash := "03efc01e0ba13750867f4b04381f533409b4f5eb4b905cb33202d6c6612f0793"
	gotHash := hex.EncodeToString(signed.Hash())
	if gotHash != wantHash {
		t.Fatalf("Hash() = %s, want %s", gotHash, wantHash)
	}
}

func TestDecode_RecoversSender(t *testing.T) {
	skBytes := mustDecodeHex(t, "51ce358ffdcf208fadfb01a339f3ab715a89045a093777a44784d9e215277c1c")
	sk, _ := btcec.PrivKeyFromBytes(skBytes)

	signedBytes := mustDecodeHex(t, "f86b80843b9aca0082520894b5d590a6abf5e349c1b6c511bc87ceabfb3d7e65880de0b6b3a76400008026a0e19742af3c215eca3b0391ab9edbf3cbad726a18c5209388ebdcccda028197baa034ec566c3d7bf23441873205a7abd6f5c37996a1a3889cdb83ecc20b14f9dcc3")

	decoded, err := Decode(signedBytes)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Signature == nil {
		t.Fatalf("expected a signed transaction")
	}
	if decoded.ChainID != 1 {
		t.Errorf("ChainID = %d, want 1", decoded.ChainID)
	}
	if decoded.Amount.Cmp(new(big.Int).SetUint64(1000000000000000000)) != 0 {
		t.Errorf("Amount = %s, want 1e18", decoded.Amount)
	}
	roundTrip := decoded.Bytes()
	if hex.EncodeToString(roundTrip) != hex.EncodeToString(signedBytes) {
		t.Errorf("round-tripped bytes do not match input")
	}

	// Re-signing the same params with the known key should recover the
	// same sender address that Decode computed.
	tx := New(decoded.Receiver, decoded.Amount, decoded.Params, decoded.ChainID)
	resigned, err := tx.Sign(sk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if decoded.Sender != resigned.Sender {
		t.Errorf("recovered sender %s, want %s", decoded.Sender, resigned.Sender)
	}
}

func TestDecode_RawTransactionHasNilSignature(t *testing.T) {
	var receiver [20]byte
	copy(receiver[:], mustDecodeHex(t, "b5d590a6abf5e349c1b6c511bc87ceabfb3d7e65"))
	tx := New(receiver, big.NewInt(1), Params{Nonce: big.NewInt(0), GasPrice: big.NewInt(1), Gas: big.NewInt(21000)}, 1)

	decoded, err := Decode(tx.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Signature != nil {
		t.Errorf("expected a Raw transaction, got a signature")
	}
	if decoded.ChainID != 1 {
		t.Errorf("ChainID = %d, want 1", decoded.ChainID)
	}
}

func TestSign_AlreadySignedIsIdempotent(t *testing.T) {
	skBytes := mustDecodeHex(t, "51ce358ffdcf208fadfb01a339f3ab715a89045a093777a44784d9e215277c1c")
	sk, _ := btcec.PrivKeyFromBytes(skBytes)
	var receiver [20]byte
	tx := New(receiver, big.NewInt(1), Params{Nonce: big.NewInt(0), GasPrice: big.NewInt(1), Gas: big.NewInt(21000)}, 1)

	signed, err := tx.Sign(sk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	again, err := signed.Sign(sk)
	if err != nil {
		t.Fatalf("re-signing a Signed transaction should be a no-op, got error: %v", err)
	}
	if again != signed {
		t.Errorf("re-signing should return the same transaction unchanged")
	}
}

func TestSign_RejectsInconsistentState(t *testing.T) {
	tx := &Transaction{Signature: &Signature{V: big.NewInt(1), R: big.NewInt(1), S: big.NewInt(1)}}
	skBytes := mustDecodeHex(t, "51ce358ffdcf208fadfb01a339f3ab715a89045a093777a44784d9e215277c1c")
	sk, _ := btcec.PrivKeyFromBytes(skBytes)
	if _, err := tx.Sign(sk); err == nil {
		t.Errorf("expected an error signing a transaction with Signature set but Sender empty")
	}
}
