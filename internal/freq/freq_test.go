package freq

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `# comment
the	7.73

of 7.45
Hello	4.236
`
	table, err := Parse(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", table.Len())
	}
	if got := table.Zipf("the"); got != 7.73 {
		t.Errorf("Zipf(the) = %v, want 7.73", got)
	}
	// Words are lowercased and scores rounded to 2 decimals
	if got := table.Zipf("hello"); got != 4.24 {
		t.Errorf("Zipf(hello) = %v, want 4.24", got)
	}
	if got := table.Zipf("missing"); got != 0 {
		t.Errorf("Zipf(missing) = %v, want 0", got)
	}
	if table.Source() != "test" {
		t.Errorf("Source() = %q, want test", table.Source())
	}
}

func TestParseDuplicateLastWins(t *testing.T) {
	table, err := Parse(strings.NewReader("cat 3.0\ncat 4.5\n"), "test")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := table.Zipf("cat"); got != 4.5 {
		t.Errorf("Zipf(cat) = %v, want 4.5", got)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", table.Len())
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"missing score", "the\n"},
		{"extra field", "the 7.73 extra\n"},
		{"bad score", "the abc\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input), "test")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "line 1") {
				t.Errorf("error should name the line: %v", err)
			}
		})
	}
}

func TestEmbeddedEnglish(t *testing.T) {
	table, err := Embedded("en")
	if err != nil {
		t.Fatalf("Embedded(en) failed: %v", err)
	}

	if table.Len() < 500 {
		t.Errorf("built-in table suspiciously small: %d entries", table.Len())
	}
	if table.Source() != "builtin:en" {
		t.Errorf("Source() = %q, want builtin:en", table.Source())
	}

	// "the" must be the most frequent word in any English table
	the := table.Zipf("the")
	if the < 7.0 || the > 8.0 {
		t.Errorf("Zipf(the) = %v, expected between 7 and 8", the)
	}
	if got := table.Zipf("zzzznotaword"); got != 0 {
		t.Errorf("Zipf of unknown word = %v, want 0", got)
	}
}

func TestEmbeddedUnknownLanguage(t *testing.T) {
	_, err := Embedded("xx")
	if err == nil {
		t.Fatal("expected error for unknown language")
	}
	if !strings.Contains(err.Error(), "en") {
		t.Errorf("error should list available languages: %v", err)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	found := false
	for _, l := range langs {
		if l == "en" {
			found = true
		}
	}
	if !found {
		t.Errorf("Languages() = %v, should contain en", langs)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freq.txt")
	if err := os.WriteFile(path, []byte("apple 4.2\nbanana 3.9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if got := table.Zipf("banana"); got != 3.9 {
		t.Errorf("Zipf(banana) = %v, want 3.9", got)
	}
	if !strings.HasPrefix(table.Source(), "file:") {
		t.Errorf("Source() = %q, want file: prefix", table.Source())
	}
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the path %q: %v", path, err)
	}
}
