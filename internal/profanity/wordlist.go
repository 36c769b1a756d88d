package profanity

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// wordListChecker implements Checker against word-list files loaded at
// initialisation time. A text contains profanity when any of its normalised
// tokens appears in any loaded set.
type wordListChecker struct {
	wordSets []WordSet
	logger   zerolog.Logger
	// No mutex needed - word sets are read-only after initialisation
}

// WordListConfig holds configuration for the word-list checker.
type WordListConfig struct {
	// FilePaths is the list of word-list file paths (or S3 keys) to load.
	FilePaths []string
}

// DefaultWordListConfig returns the default word-list configuration.
func DefaultWordListConfig() *WordListConfig {
	return &WordListConfig{
		FilePaths: []string{
			"data/wordlists/disallowed.gz",
		},
	}
}

// NewWordListChecker creates a Checker backed by word-list files.
// All files are loaded concurrently at initialisation time.
func NewWordListChecker(ctx context.Context, config *WordListConfig, loader Loader, logger zerolog.Logger) (Checker, error) {
	if config == nil {
		config = DefaultWordListConfig()
	}

	logger = logger.With().Str("component", "wordlist-checker").Logger()

	logger.Info().
		Int("file_count", len(config.FilePaths)).
		Msg("initialising word-list profanity checker")

	c := &wordListChecker{
		wordSets: make([]WordSet, 0, len(config.FilePaths)),
		logger:   logger,
	}

	type loadResult struct {
		index int
		set   WordSet
		err   error
	}

	resultChan := make(chan loadResult, len(config.FilePaths))
	var wg sync.WaitGroup

	for i, filePath := range config.FilePaths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()

			set, err := loader.Load(ctx, path)
			resultChan <- loadResult{
				index: index,
				set:   set,
				err:   err,
			}
		}(i, filePath)
	}

	wg.Wait()
	close(resultChan)

	// Collect results in order
	results := make([]loadResult, len(config.FilePaths))
	for result := range resultChan {
		results[result.index] = result
	}

	for i, result := range results {
		if result.err != nil {
			logger.Error().
				Err(result.err).
				Str("file", config.FilePaths[i]).
				Msg("failed to load word-list file")
			return nil, fmt.Errorf("failed to load word-list file %s: %w", config.FilePaths[i], result.err)
		}
		c.wordSets = append(c.wordSets, result.set)
		logger.Info().
			Str("file", config.FilePaths[i]).
			Int("size", result.set.Size()).
			Msg("word-list file loaded")
	}

	totalWords := 0
	for _, set := range c.wordSets {
		totalWords += set.Size()
	}

	logger.Info().
		Int("total_words", totalWords).
		Msg("word-list profanity checker initialised successfully")

	return c, nil
}

// ContainsProfanity reports whether any token of the text appears in any
// loaded word set. Tokens are lowercased and stripped of surrounding
// punctuation before lookup.
func (c *wordListChecker) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	for _, token := range tokenize(text) {
		for _, set := range c.wordSets {
			if set.Contains(token) {
				c.logger.Debug().
					Str("token", token).
					Msg("disallowed token found")
				return true, nil
			}
		}
	}

	return false, nil
}

// Close releases resources held by the checker.
func (c *wordListChecker) Close() error {
	// Clear word sets to allow GC to reclaim memory
	c.wordSets = nil

	c.logger.Info().Msg("word-list profanity checker closed")

	return nil
}

// tokenize splits text into lowercased words, treating any non-letter,
// non-digit rune as a separator.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r > 127:
		// Keep non-ASCII letters intact so non-English word lists work.
		return true
	}
	return false
}
