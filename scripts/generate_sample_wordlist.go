package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// generate_sample_wordlist creates a gzipped disallowed-word file at the
// path the word-list checker loads by default. The placeholder words are
// safe to commit; swap in a real list for production.
func main() {
	dataDir := "data/wordlists"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	words := []string{
		"# sample disallowed-word list, one word per line",
		"badword",
		"slur",
		"curse",
	}

	filePath := filepath.Join(dataDir, "disallowed.gz")
	if err := createWordListFile(filePath, words); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d entries\n", filePath, len(words)-1)
}

func createWordListFile(filePath string, words []string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	for _, word := range words {
		if _, err := fmt.Fprintf(gzipWriter, "%s\n", word); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
	}

	return nil
}
