// Package freq provides Zipf frequency lexicons for scoring words.
//
// A Zipf score is log10 of a word's frequency per billion tokens of corpus
// text: "the" sits near 7.7, everyday vocabulary between 3 and 6, and rare or
// garbage entries below 2. Words absent from the lexicon score exactly 0.
//
// Lexicons come from three sources: the embedded language tables under
// data/, plaintext frequency lists, and SQLite frequency databases.
package freq

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

//go:embed data/*.txt
var embedded embed.FS

// Lexicon resolves words to Zipf frequency scores.
type Lexicon interface {
	// Zipf returns the word's Zipf score, or 0 if the word is unknown.
	// The word must already be normalized (trimmed, lowercased).
	Zipf(word string) float64

	// Source describes where the lexicon came from, for reports and logs.
	Source() string

	// Len reports the number of entries.
	Len() int
}

// Table is an in-memory Lexicon backed by a word-to-score map.
type Table struct {
	scores map[string]float64
	source string
}

// Zipf implements Lexicon.
func (t *Table) Zipf(word string) float64 {
	return t.scores[word]
}

// Source implements Lexicon.
func (t *Table) Source() string { return t.source }

// Len implements Lexicon.
func (t *Table) Len() int { return len(t.scores) }

// Embedded loads the built-in frequency table for a language code.
func Embedded(lang string) (*Table, error) {
	data, err := embedded.ReadFile("data/" + lang + ".txt")
	if err != nil {
		return nil, fmt.Errorf("no built-in frequency table for language %q (available: %s)",
			lang, strings.Join(Languages(), ", "))
	}
	table, err := Parse(strings.NewReader(string(data)), "builtin:"+lang)
	if err != nil {
		return nil, fmt.Errorf("built-in table for %q is corrupt: %w", lang, err)
	}
	return table, nil
}

// Languages lists the language codes with built-in frequency tables.
func Languages() []string {
	entries, err := embedded.ReadDir("data")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(langs)
	return langs
}

// LoadFile loads a plaintext frequency list.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frequency list: %w", err)
	}
	defer f.Close()

	table, err := Parse(f, "file:"+filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse frequency list %s: %w", path, err)
	}
	return table, nil
}

// Parse reads a frequency list: one "word<whitespace>zipf" pair per line.
// Blank lines and lines starting with '#' are skipped. Duplicate words keep
// the last entry. Scores are rounded to two decimals.
func Parse(r io.Reader, source string) (*Table, error) {
	scores := make(map[string]float64)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"word zipf\", got %q", lineNum, line)
		}
		zipf, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad zipf score %q: %w", lineNum, fields[1], err)
		}
		scores[strings.ToLower(fields[0])] = round2(zipf)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frequency list: %w", err)
	}

	return &Table{scores: scores, source: source}, nil
}

// round2 rounds to two decimals, matching the precision scores are
// published at. Thresholds like 3.0 then compare exactly.
func round2(z float64) float64 {
	return math.Round(z*100) / 100
}
