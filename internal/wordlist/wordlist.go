// Package wordlist reads and writes plaintext wordlists: UTF-8, one word
// per line.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a wordlist file. Each line is trimmed and lowercased; blank
// lines are skipped. Input order is preserved.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist %s: %w", path, err)
	}
	return words, nil
}

// Read parses wordlist lines from a reader. See Load.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Save writes the wordlist to path with a trailing newline, replacing any
// existing file atomically: the content lands in a temp file in the same
// directory first, then renames over the target. An empty list writes an
// empty file.
func Save(path string, words []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".wordlist-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	var content string
	if len(words) > 0 {
		content = strings.Join(words, "\n") + "\n"
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write wordlist: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write wordlist: %w", err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set wordlist permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace wordlist %s: %w", path, err)
	}
	return nil
}
