package oracle

import (
	"sort"
)

// Set is a hash-set dictionary. The zero value is an empty dictionary.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from words. Each word is folded; empty words are ignored
// and duplicates collapse.
// Time Complexity: O(total length of words).
func NewSet(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	var w string
	for _, w = range words {
		if w == "" {
			continue // empty tokens are never words
		}
		s.words[Fold(w)] = struct{}{}
	}

	return s
}

// IsWord reports whether token is in the set.
func (s *Set) IsWord(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[token]

	return ok
}

// Len returns the number of distinct words.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.words)
}

// Words returns the folded words in ascending order.
func (s *Set) Words() []string {
	out := make([]string, 0, s.Len())
	if s == nil {
		return out
	}
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}
