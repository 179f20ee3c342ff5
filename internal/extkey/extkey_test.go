package extkey

import (
	"encoding/hex"
	"testing"

	"github.com/avalanche-wallets/hd-multichain/internal/derivation"
	"github.com/avalanche-wallets/hd-multichain/internal/network"
)

func TestNewMaster_BIP32Vector1(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		t.Fatal(err)
	}

	master, err := NewMaster(seed, network.BitcoinMainnet)
	if err != nil {
		t.Fatal(err)
	}

	got, err := master.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	want := "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	if got != want {
		t.Errorf("master xprv = %s, want %s", got, want)
	}
	if len(got) != 111 {
		t.Errorf("xprv length = %d, want 111", len(got))
	}

	hardenedZero, err := derivation.HardenedIndex(0)
	if err != nil {
		t.Fatal(err)
	}
	child, err := master.ChildPriv(hardenedZero)
	if err != nil {
		t.Fatal(err)
	}
	gotChild, err := child.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	wantChild := "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7"
	if gotChild != wantChild {
		t.Errorf("child xprv = %s, want %s", gotChild, wantChild)
	}
}

func TestNewMaster_BIP32Vector2_PublicAgreement(t *testing.T) {
	seed, err := hex.DecodeString("fffcf9f6f3f0edeae7e4e1dedbd8d5d2cfccc9c6c3c0bdbab7b4b1aeaba8a5a29f9c999693908d8a8784817e7b7875726f6c696663605d5a5754514e4b484542")
	if err != nil {
		t.Fatal(err)
	}

	master, err := NewMaster(seed, network.BitcoinMainnet)
	if err != nil {
		t.Fatal(err)
	}

	masterPub := master.Neuter()
	got, err := masterPub.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	want := "xpub661MyMwAqRbcFW31YEwpkMuc5THy2PSt5bDMsktWQcFF8syAmRUapSCGu8ED9W6oDMSgv6Zz8idoc4a6mr8BDzTJY47LJhkJ8UB7WEGuduB"
	if got != want {
		t.Errorf("master xpub = %s, want %s", got, want)
	}

	normal0, err := derivation.Normal(0)
	if err != nil {
		t.Fatal(err)
	}

	pubChild, err := masterPub.ChildPub(normal0)
	if err != nil {
		t.Fatal(err)
	}
	privChild, err := master.ChildPriv(normal0)
	if err != nil {
		t.Fatal(err)
	}

	pubOfPrivChild := privChild.Neuter()

	a, err := pubChild.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	b, err := pubOfPrivChild.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("CKD-pub(xpub(k),0) = %s, xpub(CKD-priv(k,0)) = %s: should agree", a, b)
	}
}

func TestChildPub_RejectsHardened(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMaster(seed, network.BitcoinMainnet)
	if err != nil {
		t.Fatal(err)
	}
	pub := master.Neuter()

	hardened, err := derivation.HardenedIndex(0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pub.ChildPub(hardened); err == nil {
		t.Fatal("expected error deriving hardened child from public key")
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMaster(seed, network.BitcoinMainnet)
	if err != nil {
		t.Fatal(err)
	}

	s, err := master.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := parsed.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if s != s2 {
		t.Errorf("round trip mismatch: %s != %s", s, s2)
	}
}

func TestMaxDepth(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := NewMaster(seed, network.BitcoinMainnet)
	if err != nil {
		t.Fatal(err)
	}
	cur := master.Neuter()
	normal0, _ := derivation.Normal(0)

	for cur.Depth < 255 {
		next, err := cur.ChildPub(normal0)
		if err != nil {
			t.Fatalf("unexpected error at depth %d: %v", cur.Depth, err)
		}
		cur = next
	}

	if _, err := cur.ChildPub(normal0); err == nil {
		t.Fatal("expected MaxDepth at depth 255")
	}
}
