package main

import (
	"fmt"

	"wordcull/internal/freq"

	"github.com/spf13/cobra"
)

// importCmd builds a SQLite frequency database from a plaintext list
var importCmd = &cobra.Command{
	Use:   "import SRC DEST",
	Short: "Build a SQLite frequency database from a frequency list",
	Long: `Import reads a plaintext frequency list (one "word zipf" pair per
line) and writes it into a SQLite database usable with --freq-db. Importing
into an existing database updates scores for words already present.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	n, err := freq.BuildDB(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d entries into %s\n", n, args[1])
	return nil
}
