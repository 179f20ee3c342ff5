package mnemonic

import "github.com/tyler-smith/go-bip39/wordlists"

// Language identifies a BIP39 wordlist by its language tag.
type Language string

const (
	English             Language = "english"
	ChineseSimplified    Language = "chinese_simplified"
	ChineseTraditional   Language = "chinese_traditional"
	French               Language = "french"
	Italian              Language = "italian"
	Japanese             Language = "japanese"
	Korean               Language = "korean"
	Spanish              Language = "spanish"
)

// importOrder is the defined order the core tries languages in when the
// caller cannot declare one.
var importOrder = []Language{
	English,
	ChineseSimplified,
	ChineseTraditional,
	French,
	Italian,
	Japanese,
	Korean,
	Spanish,
}

// wordlistFor resolves a language tag to its 2048-word list, backed by
// tyler-smith/go-bip39's wordlist data.
func wordlistFor(lang Language) []string {
	switch lang {
	case English:
		return wordlists.English
	case ChineseSimplified:
		return wordlists.ChineseSimplified
	case ChineseTraditional:
		return wordlists.ChineseTraditional
	case French:
		return wordlists.French
	case Italian:
		return wordlists.Italian
	case Japanese:
		return wordlists.Japanese
	case Korean:
		return wordlists.Korean
	case Spanish:
		return wordlists.Spanish
	default:
		return nil
	}
}

func wordIndex(list []string) map[string]int {
	m := make(map[string]int, len(list))
	for i, w := range list {
		m[w] = i
	}
	return m
}
