// Package analysis computes the Zipf distribution report for a scored
// wordlist: how many words fall into each frequency range, and how many a
// given filter threshold would keep.
package analysis

import (
	"sort"
	"unicode/utf8"

	"wordcull/internal/freq"
)

// BucketLabels are the published Zipf ranges, lowest first. Index 0 is
// reserved for words missing from the lexicon.
var BucketLabels = []string{
	"0 (not found)",
	"0.01-1.0",
	"1.0-2.0",
	"2.0-2.5",
	"2.5-3.0",
	"3.0-3.5",
	"3.5-4.0",
	"4.0-5.0",
	"5.0+",
}

// SweepThresholds are the candidate filter thresholds reported in the
// cumulative section.
var SweepThresholds = []float64{0.01, 1.0, 2.0, 2.5, 3.0, 3.5, 4.0}

// Options controls report shape.
type Options struct {
	// Samples caps the example words shown per bucket.
	Samples int
	// MinLength is the length cutoff the sweep applies alongside each
	// threshold, counted in characters. It does not affect the bucket
	// table.
	MinLength int
}

// BucketStat is one row of the distribution table.
type BucketStat struct {
	Label   string   `json:"label"`
	Count   int      `json:"count"`
	Percent float64  `json:"percent"`
	Samples []string `json:"samples,omitempty"`
}

// SweepStat is one row of the threshold sweep: how many words a filter at
// this threshold would keep.
type SweepStat struct {
	Threshold float64 `json:"threshold"`
	Kept      int     `json:"kept"`
	Percent   float64 `json:"percent"`
}

// Report is the full distribution analysis.
type Report struct {
	Wordlist  string       `json:"wordlist,omitempty"`
	Source    string       `json:"source,omitempty"`
	Total     int          `json:"total"`
	MinLength int          `json:"min_length"`
	Buckets   []BucketStat `json:"buckets"`
	Sweep     []SweepStat  `json:"sweep"`
}

// bucketIndex maps a score to its range. Ranges are half-open on the high
// end; exactly 0 means the lexicon has no entry.
func bucketIndex(zipf float64) int {
	switch {
	case zipf == 0:
		return 0
	case zipf < 1.0:
		return 1
	case zipf < 2.0:
		return 2
	case zipf < 2.5:
		return 3
	case zipf < 3.0:
		return 4
	case zipf < 3.5:
		return 5
	case zipf < 4.0:
		return 6
	case zipf < 5.0:
		return 7
	default:
		return 8
	}
}

// Analyze buckets the scores and runs the threshold sweep.
func Analyze(scores []freq.Score, opts Options) *Report {
	if opts.Samples < 0 {
		opts.Samples = 0
	}

	buckets := make([][]string, len(BucketLabels))
	for _, s := range scores {
		i := bucketIndex(s.Zipf)
		buckets[i] = append(buckets[i], s.Word)
	}

	total := len(scores)
	report := &Report{
		Total:     total,
		MinLength: opts.MinLength,
	}

	for i, label := range BucketLabels {
		words := buckets[i]
		sort.Strings(words)
		samples := words
		if len(samples) > opts.Samples {
			samples = samples[:opts.Samples]
		}
		report.Buckets = append(report.Buckets, BucketStat{
			Label:   label,
			Count:   len(words),
			Percent: percent(len(words), total),
			Samples: append([]string(nil), samples...),
		})
	}

	for _, threshold := range SweepThresholds {
		kept := 0
		for _, s := range scores {
			if s.Zipf >= threshold && utf8.RuneCountInString(s.Word) >= opts.MinLength {
				kept++
			}
		}
		report.Sweep = append(report.Sweep, SweepStat{
			Threshold: threshold,
			Kept:      kept,
			Percent:   percent(kept, total),
		})
	}

	return report
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
