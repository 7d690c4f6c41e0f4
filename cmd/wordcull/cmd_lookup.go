package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// lookupCmd prints Zipf scores for individual words
var lookupCmd = &cobra.Command{
	Use:   "lookup WORD...",
	Short: "Look up Zipf scores for individual words",
	Long: `Lookup normalizes each argument the way wordlist loading does
(trim, lowercase) and prints its Zipf score. Unknown words print 0.00.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	lex, err := openLexicon()
	if err != nil {
		return err
	}

	for _, arg := range args {
		word := strings.ToLower(strings.TrimSpace(arg))
		if word == "" {
			continue
		}
		fmt.Printf("%-24s %5.2f\n", word, lex.Zipf(word))
	}
	return nil
}
