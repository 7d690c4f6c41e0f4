// Package config loads wordcull configuration.
//
// Resolution order: built-in defaults, then the YAML config file (missing
// file is fine), then WORDCULL_* environment variables. Command-line flags
// are applied on top by the commands themselves.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = ".wordcull.yaml"

// Config holds all wordcull configuration.
type Config struct {
	// Wordlist is the path of the wordlist to analyze or filter.
	Wordlist string `yaml:"wordlist"`

	// Language selects the built-in frequency table.
	Language string `yaml:"language"`

	// Threshold is the default minimum Zipf score for filter.
	Threshold float64 `yaml:"threshold"`

	// MinLength is the minimum word length kept by filter and counted
	// by the analyze sweep.
	MinLength int `yaml:"min_length"`

	// Samples caps the example words per bucket in analyze output.
	Samples int `yaml:"samples"`

	// FreqList points at a plaintext frequency list overriding the
	// built-in table.
	FreqList string `yaml:"freq_list"`

	// FreqDB points at a SQLite frequency database overriding both the
	// built-in table and FreqList.
	FreqDB string `yaml:"freq_db"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Wordlist:  "words.txt",
		Language:  "en",
		Threshold: 3.0,
		MinLength: 2,
		Samples:   8,
	}
}

// Load reads configuration from a YAML file, falling back to defaults when
// the file doesn't exist, and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies WORDCULL_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("WORDCULL_WORDLIST"); v != "" {
		c.Wordlist = v
	}
	if v := os.Getenv("WORDCULL_LANG"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("WORDCULL_FREQ_LIST"); v != "" {
		c.FreqList = v
	}
	if v := os.Getenv("WORDCULL_FREQ_DB"); v != "" {
		c.FreqDB = v
	}
	if v := os.Getenv("WORDCULL_THRESHOLD"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Threshold = t
		}
	}
	if v := os.Getenv("WORDCULL_MIN_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.MinLength = n
		}
	}
}
