package main

import (
	"context"
	"fmt"

	"wordcull/internal/analysis"
	"wordcull/internal/freq"
	"wordcull/internal/wordlist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	analyzeFormat    string
	analyzeSamples   int
	analyzeMinLength int
)

// analyzeCmd shows the Zipf score distribution of the wordlist
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show the Zipf score distribution of the wordlist",
	Long: `Analyze scores every word in the wordlist and prints the distribution:
how many words fall in each Zipf range (with sample words), and how many
words each candidate filter threshold would keep.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "text", "output format: text or json")
	analyzeCmd.Flags().IntVar(&analyzeSamples, "samples", 0, "sample words shown per bucket (default from config)")
	analyzeCmd.Flags().IntVar(&analyzeMinLength, "min-length", 0, "min word length counted by the threshold sweep (default from config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeFormat != "text" && analyzeFormat != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", analyzeFormat)
	}

	samples := cfg.Samples
	if cmd.Flags().Changed("samples") {
		samples = analyzeSamples
	}
	minLength := cfg.MinLength
	if cmd.Flags().Changed("min-length") {
		minLength = analyzeMinLength
	}

	words, err := wordlist.Load(cfg.Wordlist)
	if err != nil {
		return err
	}
	logger.Debug("wordlist loaded", zap.String("path", cfg.Wordlist), zap.Int("words", len(words)))

	lex, err := openLexicon()
	if err != nil {
		return err
	}

	scores, err := freq.ScoreAll(context.Background(), lex, words)
	if err != nil {
		return err
	}

	report := analysis.Analyze(scores, analysis.Options{
		Samples:   samples,
		MinLength: minLength,
	})
	report.Wordlist = cfg.Wordlist
	report.Source = fmt.Sprintf("%s (%d entries)", lex.Source(), lex.Len())

	if analyzeFormat == "json" {
		out, err := report.JSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	fmt.Print(report.Text())
	return nil
}
