package oracle

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed common.txt
var commonWords string

var (
	commonOnce sync.Once
	commonTrie *Trie
)

// Common returns a Trie over roughly a thousand common English words.
// The trie is built on first use and shared afterwards; it must not be
// modified by callers.
func Common() *Trie {
	commonOnce.Do(func() {
		words, err := ReadWords(strings.NewReader(commonWords))
		if err != nil {
			// the embedded list is fixed at build time
			panic("oracle: embedded word list: " + err.Error())
		}
		commonTrie = NewTrie(words...)
	})

	return commonTrie
}

// Demo returns a small Set used by the examples:
// HERE IS YOUR GIFT HELLO WORLD FROM JAVASCRIPT.
func Demo() *Set {
	return NewSet("HERE", "IS", "YOUR", "GIFT", "HELLO", "WORLD", "FROM", "JAVASCRIPT")
}
