package cli

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/avalanche-wallets/hd-multichain/internal/mnemonic"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new BIP39 mnemonic phrase",
	Long: `Generate a new cryptographically secure mnemonic phrase following
BIP-39: entropy plus a SHA-256 checksum, rendered as words from the
chosen language's wordlist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wordCount, _ := cmd.Flags().GetInt("word-count")
		lang, _ := cmd.Flags().GetString("language")
		asJSON, _ := cmd.Flags().GetBool("json")

		phrase, err := mnemonic.Generate(rand.Reader, wordCount, mnemonic.Language(lang))
		if err != nil {
			return fmt.Errorf("generate mnemonic: %w", err)
		}

		if asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
				"mnemonic":   phrase,
				"word_count": wordCount,
				"language":   lang,
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", phrase)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("word-count", "w", 24, "number of words (12, 15, 18, 21, or 24)")
	generateCmd.Flags().StringP("language", "l", string(mnemonic.English), "wordlist language")
	rootCmd.AddCommand(generateCmd)
}
