package address

import "github.com/avalanche-wallets/hd-multichain/internal/network"

// MoneroStandard renders prefix||spend_pub||view_pub||checksum in
// Monero's Base58 variant.
func MoneroStandard(tag network.Tag, spendPub, viewPub [32]byte) (string, error) {
	netByte, ok := network.MoneroAddressByte(tag)
	if !ok {
		return "", &Error{Kind: NetworkMismatch}
	}
	payload := make([]byte, 0, 65)
	payload = append(payload, netByte)
	payload = append(payload, spendPub[:]...)
	payload = append(payload, viewPub[:]...)
	checksum := Keccak256(payload)[:4]
	return moneroBase58Encode(append(payload, checksum...)), nil
}

// MoneroIntegrated renders prefix||spend_pub||view_pub||payment_id(8)||checksum.
func MoneroIntegrated(tag network.Tag, spendPub, viewPub [32]byte, paymentID [8]byte) (string, error) {
	netByte, ok := network.MoneroIntegratedAddressByte(tag)
	if !ok {
		return "", &Error{Kind: NetworkMismatch}
	}
	payload := make([]byte, 0, 73)
	payload = append(payload, netByte)
	payload = append(payload, spendPub[:]...)
	payload = append(payload, viewPub[:]...)
	payload = append(payload, paymentID[:]...)
	checksum := Keccak256(payload)[:4]
	return moneroBase58Encode(append(payload, checksum...)), nil
}

// MoneroSubaddress renders prefix||spend_pub'||view_pub'||checksum for a
// derived subaddress keypair (the key derivation itself lives in
// internal/monero; this only encodes the result).
func MoneroSubaddress(tag network.Tag, spendPub, viewPub [32]byte) (string, error) {
	netByte, ok := network.MoneroSubaddressByte(tag)
	if !ok {
		return "", &Error{Kind: NetworkMismatch}
	}
	payload := make([]byte, 0, 65)
	payload = append(payload, netByte)
	payload = append(payload, spendPub[:]...)
	payload = append(payload, viewPub[:]...)
	checksum := Keccak256(payload)[:4]
	return moneroBase58Encode(append(payload, checksum...)), nil
}

// DecodedMoneroAddress is the parsed form of any Monero address variant.
type DecodedMoneroAddress struct {
	NetworkByte byte
	SpendPub    [32]byte
	ViewPub     [32]byte
	PaymentID   *[8]byte // non-nil only for integrated addresses
}

// ParseMonero decodes and checksum-verifies a Monero address of any
// variant, distinguishing integrated addresses by payload length.
func ParseMonero(s string) (*DecodedMoneroAddress, error) {
	decoded, err := moneroBase58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) != 69 && len(decoded) != 77 {
		return nil, &Error{Kind: ParseError}
	}

	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]
	want := Keccak256(payload)[:4]
	for i := range checksum {
		if checksum[i] != want[i] {
			return nil, &Error{Kind: ChecksumError}
		}
	}

	out := &DecodedMoneroAddress{NetworkByte: payload[0]}
	copy(out.SpendPub[:], payload[1:33])
	copy(out.ViewPub[:], payload[33:65])
	if len(payload) == 73 {
		var pid [8]byte
		copy(pid[:], payload[65:73])
		out.PaymentID = &pid
	}
	return out, nil
}
