// Package main implements the wordcull CLI: wordlist curation by Zipf
// frequency score.
package main

import (
	"fmt"
	"os"

	"wordcull/internal/config"
	"wordcull/internal/freq"
	"wordcull/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.2.0"

var (
	// Global flags
	cfgPath      string
	wordlistPath string
	language     string
	freqListPath string
	freqDBPath   string
	verbose      bool

	// Effective configuration: defaults < config file < env < flags
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wordcull",
	Short: "wordcull - curate wordlists by word frequency",
	Long: `wordcull filters plaintext wordlists (one word per line) by Zipf
frequency score.

A Zipf score is log10 of a word's frequency per billion tokens of corpus
text: roughly 7.7 for "the", 3-6 for everyday vocabulary, 0 for words the
lexicon has never seen. Scores come from the built-in English table, a
plaintext frequency list (--freq-list), or a SQLite frequency database
(--freq-db).

Run "wordcull analyze" to see the score distribution of a wordlist, then
"wordcull filter" to cull it at a threshold.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return err
		}

		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		// Flags override the config file when set explicitly.
		if cmd.Flags().Changed("wordlist") {
			cfg.Wordlist = wordlistPath
		}
		if cmd.Flags().Changed("lang") {
			cfg.Language = language
		}
		if cmd.Flags().Changed("freq-list") {
			cfg.FreqList = freqListPath
		}
		if cmd.Flags().Changed("freq-db") {
			cfg.FreqDB = freqDBPath
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// versionCmd prints the version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wordcull version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wordcull %s\n", version)
	},
}

// openLexicon resolves the frequency source: SQLite database first, then
// plaintext list, then the built-in table for the configured language.
func openLexicon() (freq.Lexicon, error) {
	var (
		lex freq.Lexicon
		err error
	)
	switch {
	case cfg.FreqDB != "":
		lex, err = freq.LoadDB(cfg.FreqDB)
	case cfg.FreqList != "":
		lex, err = freq.LoadFile(cfg.FreqList)
	default:
		lex, err = freq.Embedded(cfg.Language)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("lexicon loaded",
		zap.String("source", lex.Source()),
		zap.Int("entries", lex.Len()))
	return lex, nil
}

func init() {
	defaults := config.DefaultConfig()

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&wordlistPath, "wordlist", defaults.Wordlist, "wordlist file to analyze or filter")
	rootCmd.PersistentFlags().StringVar(&language, "lang", defaults.Language, "language code of the built-in frequency table")
	rootCmd.PersistentFlags().StringVar(&freqListPath, "freq-list", "", "plaintext frequency list to score against")
	rootCmd.PersistentFlags().StringVar(&freqDBPath, "freq-db", "", "SQLite frequency database to score against")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
