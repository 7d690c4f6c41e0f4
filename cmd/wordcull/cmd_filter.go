package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"wordcull/internal/filter"
	"wordcull/internal/freq"
	"wordcull/internal/wordlist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	filterOutput    string
	filterDryRun    bool
	filterMinLength int
	filterExclude   string
)

// filterCmd culls the wordlist at a Zipf threshold
var filterCmd = &cobra.Command{
	Use:   "filter [threshold]",
	Short: "Filter the wordlist by Zipf score",
	Long: `Filter keeps words scoring at or above the threshold (default from
config, normally 3.0) that meet the minimum length, sorts and deduplicates
them, and writes the result back over the wordlist file.

The replace is atomic, but still destructive: use --output to write
elsewhere or --dry-run to preview the counts first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterOutput, "output", "o", "", "write the filtered list here instead of over the input")
	filterCmd.Flags().BoolVar(&filterDryRun, "dry-run", false, "report counts without writing anything")
	filterCmd.Flags().IntVar(&filterMinLength, "min-length", 0, "minimum word length to keep (default from config)")
	filterCmd.Flags().StringVar(&filterExclude, "exclude", "", "drop words matching this regexp regardless of score")
}

// formatThreshold renders a threshold with an explicit decimal point, so
// whole numbers print as "3.0" in the published output.
func formatThreshold(t float64) string {
	s := strconv.FormatFloat(t, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func runFilter(cmd *cobra.Command, args []string) error {
	threshold := cfg.Threshold
	if len(args) == 1 {
		t, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("bad threshold %q: %w", args[0], err)
		}
		threshold = t
	}
	minLength := cfg.MinLength
	if cmd.Flags().Changed("min-length") {
		minLength = filterMinLength
	}
	exclude, err := filter.CompileExclude(filterExclude)
	if err != nil {
		return fmt.Errorf("bad --exclude pattern: %w", err)
	}

	words, err := wordlist.Load(cfg.Wordlist)
	if err != nil {
		return err
	}
	lex, err := openLexicon()
	if err != nil {
		return err
	}
	scores, err := freq.ScoreAll(context.Background(), lex, words)
	if err != nil {
		return err
	}

	kept := filter.Apply(scores, filter.Options{
		Threshold: threshold,
		MinLength: minLength,
		Exclude:   exclude,
	})
	logger.Debug("filter applied",
		zap.Float64("threshold", threshold),
		zap.Int("input", len(words)),
		zap.Int("kept", len(kept)))

	fmt.Printf("Filtering with Zipf >= %s, min length >= %d\n", formatThreshold(threshold), minLength)
	fmt.Printf("Input: %d words\n", len(words))
	fmt.Printf("Output: %d words\n", len(kept))

	if filterDryRun {
		fmt.Println("Dry run, nothing written")
		return nil
	}

	dest := cfg.Wordlist
	if filterOutput != "" {
		dest = filterOutput
	}
	if err := wordlist.Save(dest, kept); err != nil {
		return err
	}
	fmt.Printf("Written to %s\n", dest)
	return nil
}
