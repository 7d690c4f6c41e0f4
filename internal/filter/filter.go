// Package filter culls scored words against a frequency threshold.
package filter

import (
	"regexp"
	"sort"
	"unicode/utf8"

	"wordcull/internal/freq"
)

// Options selects which words survive.
type Options struct {
	// Threshold is the minimum Zipf score to keep. Negative keeps
	// everything the lexicon has seen or not.
	Threshold float64

	// MinLength is the minimum word length in characters, not bytes, so
	// accented entries in non-English wordlists measure the same as
	// their ASCII-length counterparts.
	MinLength int

	// Exclude drops any word it matches, regardless of score. The
	// pattern is matched against the whole word (callers anchor it via
	// CompileExclude).
	Exclude *regexp.Regexp
}

// CompileExclude compiles an exclusion pattern anchored to the whole word.
func CompileExclude(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	return regexp.Compile("^(?:" + expr + ")$")
}

// Apply returns the surviving words, sorted and deduplicated.
func Apply(scores []freq.Score, opts Options) []string {
	seen := make(map[string]bool, len(scores))
	var kept []string
	for _, s := range scores {
		if s.Zipf < opts.Threshold || utf8.RuneCountInString(s.Word) < opts.MinLength {
			continue
		}
		if opts.Exclude != nil && opts.Exclude.MatchString(s.Word) {
			continue
		}
		if seen[s.Word] {
			continue
		}
		seen[s.Word] = true
		kept = append(kept, s.Word)
	}
	sort.Strings(kept)
	return kept
}
