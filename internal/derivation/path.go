package derivation

import "strings"

// Path is an ordered sequence of ChildIndex, the parsed form of a string
// like "m/44'/60'/0'/0/0". An empty Path denotes the master key.
type Path []ChildIndex

// Parse parses a derivation path string. The head token must be exactly
// "m"; every other token must parse as a ChildIndex. Empty components
// between slashes (including a trailing slash) are rejected.
func Parse(s string) (Path, error) {
	parts := strings.Split(s, "/")

	if len(parts) == 0 || parts[0] != "m" {
		return nil, &Error{Kind: InvalidDerivationPath, Path: s}
	}

	rest := parts[1:]
	if len(rest) == 0 {
		return Path{}, nil
	}

	path := make(Path, 0, len(rest))
	for _, tok := range rest {
		idx, err := parseChildIndex(tok)
		if err != nil {
			return nil, err
		}
		path = append(path, idx)
	}
	return path, nil
}

// String renders the path back to its textual form. parse(p.String())
// reproduces p for any well-formed p.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('m')
	for _, idx := range p {
		b.WriteByte('/')
		b.WriteString(idx.String())
	}
	return b.String()
}

// MustParse is a convenience for callers that already know the path is
// well-formed (e.g. hardcoded presets). It panics on error, so it must
// never be used on caller-supplied input.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}
