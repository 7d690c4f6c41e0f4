package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"wordcull/internal/freq"
)

func TestApplyThreshold(t *testing.T) {
	scores := []freq.Score{
		{Word: "common", Zipf: 5.2},
		{Word: "edge", Zipf: 3.0}, // exactly at threshold: kept
		{Word: "rare", Zipf: 2.99},
		{Word: "unknown", Zipf: 0},
	}

	got := Apply(scores, Options{Threshold: 3.0, MinLength: 2})
	want := []string{"common", "edge"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyMinLength(t *testing.T) {
	scores := []freq.Score{
		{Word: "a", Zipf: 6.9},
		{Word: "at", Zipf: 6.0},
	}
	got := Apply(scores, Options{Threshold: 3.0, MinLength: 2})
	if diff := cmp.Diff([]string{"at"}, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyMinLengthCountsCharacters(t *testing.T) {
	// Multi-byte words measure by character count, not byte count
	scores := []freq.Score{
		{Word: "à", Zipf: 6.0},    // 1 char, 2 bytes: dropped
		{Word: "où", Zipf: 5.5},   // 2 chars, 3 bytes: kept
		{Word: "日本", Zipf: 5.0}, // 2 chars, 6 bytes: kept
	}
	got := Apply(scores, Options{Threshold: 3.0, MinLength: 2})
	if diff := cmp.Diff([]string{"où", "日本"}, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}

	got = Apply(scores, Options{Threshold: 3.0, MinLength: 3})
	if len(got) != 0 {
		t.Errorf("no word has 3 characters, got %v", got)
	}
}

func TestApplySortsAndDedupes(t *testing.T) {
	scores := []freq.Score{
		{Word: "zebra", Zipf: 4.0},
		{Word: "apple", Zipf: 4.5},
		{Word: "zebra", Zipf: 4.0},
	}
	got := Apply(scores, Options{Threshold: 3.0, MinLength: 2})
	if diff := cmp.Diff([]string{"apple", "zebra"}, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyNegativeThresholdKeepsUnknown(t *testing.T) {
	scores := []freq.Score{
		{Word: "unknown", Zipf: 0},
	}
	got := Apply(scores, Options{Threshold: -1, MinLength: 2})
	if diff := cmp.Diff([]string{"unknown"}, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyExclude(t *testing.T) {
	exclude, err := CompileExclude("x+|banned")
	if err != nil {
		t.Fatalf("CompileExclude failed: %v", err)
	}

	scores := []freq.Score{
		{Word: "xx", Zipf: 5.0},
		{Word: "banned", Zipf: 5.0},
		{Word: "example", Zipf: 5.0}, // contains x but doesn't match whole word
	}
	got := Apply(scores, Options{Threshold: 3.0, MinLength: 2, Exclude: exclude})
	if diff := cmp.Diff([]string{"example"}, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileExclude(t *testing.T) {
	if re, err := CompileExclude(""); err != nil || re != nil {
		t.Errorf("empty pattern should compile to nil, got %v, %v", re, err)
	}
	if _, err := CompileExclude("("); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestApplyEmpty(t *testing.T) {
	got := Apply(nil, Options{Threshold: 3.0, MinLength: 2})
	if len(got) != 0 {
		t.Errorf("expected no words, got %v", got)
	}
}
