package profanity

// mapWordSet implements WordSet using a map for O(1) lookups.
type mapWordSet struct {
	words map[string]struct{}
}

// NewMapWordSet creates a new map-based word set.
func NewMapWordSet(capacity int) WordSet {
	return &mapWordSet{
		words: make(map[string]struct{}, capacity),
	}
}

// Contains checks if a word exists in the set.
func (s *mapWordSet) Contains(word string) bool {
	_, exists := s.words[word]
	return exists
}

// Size returns the number of words in the set.
func (s *mapWordSet) Size() int {
	return len(s.words)
}

// Add adds a word to the set.
func (s *mapWordSet) Add(word string) {
	s.words[word] = struct{}{}
}
