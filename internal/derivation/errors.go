package derivation

import "fmt"

// Kind enumerates the behavioral error categories a path parse can fail with.
type Kind int

const (
	// InvalidDerivationPath marks a malformed path string (missing "m" head,
	// stray tokens).
	InvalidDerivationPath Kind = iota
	// InvalidChildNumberFormat marks a token that is not a valid decimal
	// number (possibly with a hardening suffix).
	InvalidChildNumberFormat
	// InvalidChildNumber marks a numeric token that does not fit in the
	// 31-bit index space.
	InvalidChildNumber
)

// Error is the path/child-index error type. Path is populated for
// InvalidDerivationPath; Number is populated for InvalidChildNumber.
type Error struct {
	Kind   Kind
	Path   string
	Number uint64
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidDerivationPath:
		return fmt.Sprintf("invalid derivation path: %q", e.Path)
	case InvalidChildNumberFormat:
		return "invalid child number format"
	case InvalidChildNumber:
		return fmt.Sprintf("invalid child number: %d", e.Number)
	default:
		return "derivation error"
	}
}
