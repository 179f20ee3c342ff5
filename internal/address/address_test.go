package address

import (
	"encoding/hex"
	"testing"

	"github.com/avalanche-wallets/hd-multichain/internal/network"
)

func TestBitcoinP2PKH(t *testing.T) {
	pub, _ := hex.DecodeString("0339a36013301597daef41fbe593a02cc513d0b55527ec2df1050e2e8ff49c85c2")
	addr, err := BitcoinP2PKH(network.BitcoinMainnet, pub)
	if err != nil {
		t.Fatalf("BitcoinP2PKH: %v", err)
	}
	if addr[0] != '1' {
		t.Errorf("mainnet P2PKH should start with '1', got %s", addr)
	}
}

func TestBitcoinBech32_RoundTripsProgram(t *testing.T) {
	pub, _ := hex.DecodeString("0339a36013301597daef41fbe593a02cc513d0b55527ec2df1050e2e8ff49c85c2")
	addr, err := BitcoinBech32(network.BitcoinMainnet, pub)
	if err != nil {
		t.Fatalf("BitcoinBech32: %v", err)
	}
	if addr[:3] != "bc1" {
		t.Errorf("expected bc1 prefix, got %s", addr)
	}
}

func TestEthereumAddress_ChecksumVector(t *testing.T) {
	// EIP-55 test vector.
	lower := "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	got := EthereumChecksum(lower)
	want := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	if got != want {
		t.Errorf("EthereumChecksum() = %s, want %s", got, want)
	}
}

func TestWIF_RoundTrip(t *testing.T) {
	secret, err := hex.DecodeString("0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d")
	if err != nil || len(secret) != 32 {
		t.Fatalf("bad test fixture: %v (len %d)", err, len(secret))
	}
	wif, err := WIF(network.BitcoinMainnet, secret, true)
	if err != nil {
		t.Fatalf("WIF: %v", err)
	}
	tag, got, compressed, err := ParseWIF(wif)
	if err != nil {
		t.Fatalf("ParseWIF: %v", err)
	}
	if tag != network.BitcoinMainnet || !compressed {
		t.Errorf("ParseWIF tag/compressed mismatch: %v %v", tag, compressed)
	}
	if hex.EncodeToString(got) != hex.EncodeToString(secret) {
		t.Errorf("ParseWIF secret = %x, want %x", got, secret)
	}
}

func TestMoneroStandard_RoundTrip(t *testing.T) {
	var spend, view [32]byte
	for i := range spend {
		spend[i] = byte(i)
		view[i] = byte(64 - i)
	}
	addr, err := MoneroStandard(network.MoneroMainnet, spend, view)
	if err != nil {
		t.Fatalf("MoneroStandard: %v", err)
	}
	decoded, err := ParseMonero(addr)
	if err != nil {
		t.Fatalf("ParseMonero: %v", err)
	}
	if decoded.SpendPub != spend || decoded.ViewPub != view {
		t.Errorf("decoded keys do not match input")
	}
	if decoded.PaymentID != nil {
		t.Errorf("standard address should not carry a payment id")
	}
}

func TestMoneroIntegrated_RoundTrip(t *testing.T) {
	var spend, view [32]byte
	var paymentID [8]byte
	for i := range spend {
		spend[i] = byte(i + 1)
		view[i] = byte(255 - i)
	}
	for i := range paymentID {
		paymentID[i] = byte(i)
	}
	addr, err := MoneroIntegrated(network.MoneroMainnet, spend, view, paymentID)
	if err != nil {
		t.Fatalf("MoneroIntegrated: %v", err)
	}
	decoded, err := ParseMonero(addr)
	if err != nil {
		t.Fatalf("ParseMonero: %v", err)
	}
	if decoded.PaymentID == nil || *decoded.PaymentID != paymentID {
		t.Errorf("payment id mismatch: got %v, want %v", decoded.PaymentID, paymentID)
	}
}

func TestMoneroBase58_TamperedChecksumRejected(t *testing.T) {
	var spend, view [32]byte
	addr, err := MoneroStandard(network.MoneroMainnet, spend, view)
	if err != nil {
		t.Fatalf("MoneroStandard: %v", err)
	}
	tampered := []byte(addr)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	if _, err := ParseMonero(string(tampered)); err == nil {
		t.Errorf("expected checksum error on tampered address")
	}
}
