package extkey

import "fmt"

// Kind enumerates the behavioral error categories the extended-key
// layer can fail with.
type Kind int

const (
	// MaxDepth marks a CKD call on a key already at depth 255.
	MaxDepth Kind = iota
	// DomainError marks an out-of-range scalar, a hardened child requested
	// from a public key, or a curve point that fails to decompress.
	DomainError
	// ParseError marks invalid Base58 or a wrong-length payload.
	ParseError
	// ChecksumError marks a Base58Check checksum mismatch.
	ChecksumError
	// NetworkMismatch marks version bytes that don't map to any known network.
	NetworkMismatch
	// CryptoError wraps an underlying primitive failure.
	CryptoError
)

// Error is the extended-key layer's error type.
type Error struct {
	Kind      Kind
	Primitive string // populated for CryptoError
	Err       error  // wrapped cause, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case MaxDepth:
		return "maximum child depth reached"
	case DomainError:
		if e.Err != nil {
			return fmt.Sprintf("domain error: %v", e.Err)
		}
		return "domain error"
	case ParseError:
		if e.Err != nil {
			return fmt.Sprintf("parse error: %v", e.Err)
		}
		return "parse error"
	case ChecksumError:
		return "checksum mismatch"
	case NetworkMismatch:
		return "network mismatch"
	case CryptoError:
		return fmt.Sprintf("crypto error (%s): %v", e.Primitive, e.Err)
	default:
		return "extended key error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ErrHardenedFromPublic is the dedicated error for attempting hardened
// derivation from a public-only extended key.
var ErrHardenedFromPublic = &Error{Kind: DomainError, Err: fmt.Errorf("hardened child requested from a public-only extended key")}

// ErrUnsupportedFormat is the sentinel for an unimplemented address/key
// format. No function in this package returns it.
var ErrUnsupportedFormat = fmt.Errorf("unsupported format")
