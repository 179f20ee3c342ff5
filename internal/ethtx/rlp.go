package ethtx

import "math/big"

// Minimal RLP codec covering exactly this package's needs: a top-level
// list whose items are all byte strings (never nested lists), which is
// all an Ethereum legacy transaction ever contains.

func rlpEncodeBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return b
	}
	return append(rlpLengthPrefix(0x80, len(b)), b...)
}

func rlpEncodeList(items ...[]byte) []byte {
	var body []byte
	for _, item := range items {
		body = append(body, item...)
	}
	return append(rlpLengthPrefix(0xc0, len(body)), body...)
}

func rlpLengthPrefix(base byte, n int) []byte {
	if n < 56 {
		return []byte{base + byte(n)}
	}
	lenBytes := minimalBigEndian(big.NewInt(int64(n)))
	prefix := make([]byte, 0, 1+len(lenBytes))
	prefix = append(prefix, base+55+byte(len(lenBytes)))
	return append(prefix, lenBytes...)
}

// rlpEncodeUint encodes a non-negative integer as its minimal big-endian
// RLP byte string (zero encodes as the empty string, per the RLP spec).
func rlpEncodeUint(v *big.Int) []byte {
	return rlpEncodeBytes(minimalBigEndian(v))
}

func minimalBigEndian(v *big.Int) []byte {
	if v == nil || v.Sign() == 0 {
		return nil
	}
	return v.Bytes()
}

// rlpDecodeList decodes a top-level RLP list whose items are all byte
// strings, returning each item's raw bytes in order.
func rlpDecodeList(data []byte) ([][]byte, error) {
	if len(data) == 0 {
		return nil, &Error{Kind: RLPDecodeError}
	}
	first := data[0]
	if first < 0xc0 {
		return nil, &Error{Kind: RLPDecodeError}
	}

	var body []byte
	switch {
	case first <= 0xf7:
		length := int(first - 0xc0)
		if len(data) < 1+length {
			return nil, &Error{Kind: RLPDecodeError}
		}
		body = data[1 : 1+length]
	default:
		lenOfLen := int(first - 0xf7)
		if len(data) < 1+lenOfLen {
			return nil, &Error{Kind: RLPDecodeError}
		}
		length := new(big.Int).SetBytes(data[1 : 1+lenOfLen]).Int64()
		start := 1 + lenOfLen
		if int64(len(data)) < int64(start)+length {
			return nil, &Error{Kind: RLPDecodeError}
		}
		body = data[start : int64(start)+length]
	}

	var items [][]byte
	for len(body) > 0 {
		item, rest, err := rlpDecodeOneString(body)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		body = rest
	}
	return items, nil
}

func rlpDecodeOneString(data []byte) (item []byte, rest []byte, err error) {
	first := data[0]
	switch {
	case first < 0x80:
		return data[0:1], data[1:], nil
	case first <= 0xb7:
		length := int(first - 0x80)
		if len(data) < 1+length {
			return nil, nil, &Error{Kind: RLPDecodeError}
		}
		return data[1 : 1+length], data[1+length:], nil
	case first <= 0xbf:
		lenOfLen := int(first - 0xb7)
		if len(data) < 1+lenOfLen {
			return nil, nil, &Error{Kind: RLPDecodeError}
		}
		length := new(big.Int).SetBytes(data[1 : 1+lenOfLen]).Int64()
		start := 1 + lenOfLen
		if int64(len(data)) < int64(start)+length {
			return nil, nil, &Error{Kind: RLPDecodeError}
		}
		return data[start : int64(start)+length], data[int64(start)+length:], nil
	default:
		// A nested list where a byte string was expected.
		return nil, nil, &Error{Kind: RLPDecodeError}
	}
}
