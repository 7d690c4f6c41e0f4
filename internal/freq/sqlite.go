package freq

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// The frequencies table is the whole schema. Word is the primary key, so
// imports can be re-run and last-write-wins like the text format.
const schema = `
CREATE TABLE IF NOT EXISTS frequencies (
	word TEXT PRIMARY KEY,
	zipf REAL NOT NULL
)`

// LoadDB loads a SQLite frequency database into an in-memory Table.
// Wordlist scoring is a tight per-word loop, so the table is read once up
// front rather than queried per lookup.
func LoadDB(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open frequency database: %w", err)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT word, zipf FROM frequencies")
	if err != nil {
		return nil, fmt.Errorf("failed to read frequency database %s: %w", path, err)
	}
	defer rows.Close()

	scores := make(map[string]float64)
	for rows.Next() {
		var word string
		var zipf float64
		if err := rows.Scan(&word, &zipf); err != nil {
			return nil, fmt.Errorf("failed to scan frequency row: %w", err)
		}
		scores[word] = round2(zipf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frequency database %s: %w", path, err)
	}

	return &Table{scores: scores, source: "sqlite:" + filepath.Base(path)}, nil
}

// BuildDB creates (or updates) a SQLite frequency database from a plaintext
// frequency list. Returns the number of entries written.
func BuildDB(srcPath, destPath string) (int, error) {
	table, err := LoadFile(srcPath)
	if err != nil {
		return 0, err
	}

	db, err := openDB(destPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return 0, fmt.Errorf("failed to create frequencies table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO frequencies (word, zipf) VALUES (?, ?) ON CONFLICT(word) DO UPDATE SET zipf = excluded.zipf")
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for word, zipf := range table.scores {
		if _, err := stmt.Exec(word, zipf); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert %q: %w", word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	return table.Len(), nil
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	return db, nil
}
