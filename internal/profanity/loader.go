package profanity

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped word-list files from the
// local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based word-list loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "wordlist-loader").Logger(),
	}
}

// Load reads a gzipped word-list file and returns a WordSet.
// The file is expected to contain one word per line.
func (l *fileLoader) Load(ctx context.Context, path string) (WordSet, error) {
	l.logger.Info().Str("file", path).Msg("loading word-list file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open word-list file")
		return nil, fmt.Errorf("failed to open word-list file %s: %w", path, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
	}
	defer gzipReader.Close()

	set, err := readWordSet(ctx, gzipReader)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("error reading word-list file")
		return nil, fmt.Errorf("error reading word-list file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("words_loaded", set.Size()).
		Msg("word-list file loaded successfully")

	return set, nil
}

// readWordSet scans one lowercased word per line into a set. Blank lines and
// comment lines starting with '#' are skipped.
func readWordSet(ctx context.Context, r io.Reader) (WordSet, error) {
	set := NewMapWordSet(4096).(*mapWordSet)

	scanner := bufio.NewScanner(r)
	lineCount := 0
	for scanner.Scan() {
		// Check context cancellation periodically
		if lineCount%100_000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.Add(strings.ToLower(line))
		lineCount++
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return set, nil
}
