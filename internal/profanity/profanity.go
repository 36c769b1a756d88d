package profanity

import (
	"context"
)

// Checker defines the interface for the profanity-check capability. It is
// injected rather than hard-wired so a fake can replace the external service
// in tests.
type Checker interface {
	// ContainsProfanity reports whether the given text contains disallowed
	// content.
	ContainsProfanity(ctx context.Context, text string) (bool, error)

	// Close releases resources held by the checker.
	Close() error
}

// WordSet represents a set of disallowed words for fast lookup.
type WordSet interface {
	// Contains checks if a word exists in the set.
	Contains(word string) bool

	// Size returns the number of words in the set.
	Size() int
}

// Loader defines the interface for loading word-list files.
type Loader interface {
	// Load reads a gzipped word-list file and returns a WordSet.
	Load(ctx context.Context, path string) (WordSet, error)
}
