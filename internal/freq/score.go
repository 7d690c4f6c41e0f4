package freq

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Score pairs a word with its Zipf frequency.
type Score struct {
	Word string  `json:"word"`
	Zipf float64 `json:"zipf"`
}

// ScoreAll scores every word against the lexicon, preserving input order.
// Large lists are sharded across workers; lookups are read-only, so the
// result is identical regardless of worker count.
func ScoreAll(ctx context.Context, lex Lexicon, words []string) ([]Score, error) {
	scores := make([]Score, len(words))
	if len(words) == 0 {
		return scores, nil
	}

	workers := runtime.NumCPU()
	if workers > len(words) {
		workers = len(words)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	chunk := (len(words) + workers - 1) / workers
	for start := 0; start < len(words); start += chunk {
		end := start + chunk
		if end > len(words) {
			end = len(words)
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				scores[i] = Score{Word: words[i], Zipf: lex.Zipf(words[i])}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
