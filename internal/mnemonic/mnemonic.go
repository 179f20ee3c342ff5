package mnemonic

import (
	"crypto/sha256"
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// entropyBits maps the five valid BIP39 word counts to their entropy bit
// length (E = 32*W/3).
var entropyBits = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// RandReader is the injected randomness capability: the core takes a
// byte source and the caller supplies it.
type RandReader interface {
	Read(p []byte) (n int, err error)
}

// Generate draws wordCount*11/33*32 bits of entropy from rng, appends the
// SHA-256 checksum, and renders the result as a phrase in the given
// language. wordCount must be one of 12, 15, 18, 21, 24.
func Generate(rng RandReader, wordCount int, lang Language) (string, error) {
	bits, ok := entropyBits[wordCount]
	if !ok {
		return "", &Error{Kind: InvalidWordCount, N: wordCount}
	}

	entropy := make([]byte, bits/8)
	if _, err := rng.Read(entropy); err != nil {
		return "", err
	}

	return entropyToMnemonic(entropy, lang)
}

// entropyToMnemonic implements the generate() half of the BIP39 codec
// given entropy bytes directly (used by Generate and by tests needing
// fixed entropy).
func entropyToMnemonic(entropy []byte, lang Language) (string, error) {
	bits := len(entropy) * 8
	wordCount := 0
	for w, e := range entropyBits {
		if e == bits {
			wordCount = w
		}
	}
	if wordCount == 0 {
		return "", &Error{Kind: InvalidEntropyLength, N: len(entropy)}
	}

	checksumBits := bits / 32
	hash := sha256.Sum256(entropy)

	// total bit string = entropy || checksum, grouped into 11-bit words
	allBits := make([]bool, bits+checksumBits)
	for i := 0; i < bits; i++ {
		allBits[i] = entropy[i/8]&(1<<(7-uint(i%8))) != 0
	}
	for i := 0; i < checksumBits; i++ {
		allBits[bits+i] = hash[0]&(1<<(7-uint(i))) != 0
	}

	list := wordlistFor(lang)
	words := make([]string, wordCount)
	for i := 0; i < wordCount; i++ {
		idx := 0
		for b := 0; b < 11; b++ {
			idx <<= 1
			if allBits[i*11+b] {
				idx |= 1
			}
		}
		words[i] = list[idx]
	}

	return strings.Join(words, " "), nil
}

// Parse reverses Generate: it recovers the entropy bytes from a phrase
// and verifies the checksum. language selects the wordlist; the core
// never searches languages implicitly here (that happens one layer up,
// see ParseAnyLanguage).
func Parse(phrase string, lang Language) ([]byte, error) {
	words := strings.Fields(norm.NFKD.String(strings.TrimSpace(phrase)))
	wordCount := len(words)
	bits, ok := entropyBits[wordCount]
	if !ok {
		return nil, &Error{Kind: InvalidWordCount, N: wordCount}
	}

	list := wordlistFor(lang)
	index := wordIndex(list)

	checksumBits := bits / 32
	allBits := make([]bool, bits+checksumBits)
	for i, w := range words {
		wi, ok := index[w]
		if !ok {
			return nil, &Error{Kind: UnknownWord, Word: w}
		}
		for b := 0; b < 11; b++ {
			allBits[i*11+b] = wi&(1<<(10-uint(b))) != 0
		}
	}

	entropy := make([]byte, bits/8)
	for i := 0; i < bits; i++ {
		if allBits[i] {
			entropy[i/8] |= 1 << (7 - uint(i%8))
		}
	}

	hash := sha256.Sum256(entropy)
	for i := 0; i < checksumBits; i++ {
		want := hash[0]&(1<<(7-uint(i))) != 0
		got := allBits[bits+i]
		if want != got {
			return nil, &Error{Kind: InvalidChecksum}
		}
	}

	return entropy, nil
}

// ParseAnyLanguage implements the §6 multi-language import contract:
// English, Chinese Simplified, Chinese Traditional, French, Italian,
// Japanese, Korean, Spanish are tried in that order; the first
// successful parse wins, and if all fail the last error is returned.
func ParseAnyLanguage(phrase string) ([]byte, error) {
	var lastErr error
	for _, lang := range importOrder {
		entropy, err := Parse(phrase, lang)
		if err == nil {
			return entropy, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// ToSeed derives the 64-byte BIP39 seed from a phrase and optional
// passphrase via PBKDF2-HMAC-SHA512, 2048 rounds, salt = "mnemonic" ||
// passphrase, both NFKD-normalized.
func ToSeed(phrase, passphrase string) []byte {
	normPhrase := norm.NFKD.String(phrase)
	salt := norm.NFKD.String("mnemonic" + passphrase)
	return pbkdf2.Key([]byte(normPhrase), []byte(salt), 2048, 64, sha512.New)
}
