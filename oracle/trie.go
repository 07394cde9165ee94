package oracle

// trieNode is one rune position in the trie.
type trieNode struct {
	children map[rune]*trieNode
	terminal bool // a word ends here
}

// Trie is a rune trie dictionary. Besides IsWord it answers HasPrefix, which
// lets the segmenter abandon a prefix scan once no word can match.
type Trie struct {
	root  trieNode
	count int
}

// NewTrie builds a Trie from words. Words are folded; empty words are ignored.
// Time Complexity: O(total runes in words).
func NewTrie(words ...string) *Trie {
	t := &Trie{}
	var w string
	for _, w = range words {
		t.insert(Fold(w))
	}

	return t
}

// insert adds an already-folded word.
func (t *Trie) insert(word string) {
	if word == "" {
		return
	}
	n := &t.root
	for _, r := range word {
		if n.children == nil {
			n.children = make(map[rune]*trieNode)
		}
		next, ok := n.children[r]
		if !ok {
			next = &trieNode{}
			n.children[r] = next
		}
		n = next
	}
	if !n.terminal {
		n.terminal = true
		t.count++
	}
}

// find walks s from the root and returns the node it ends on, or nil.
func (t *Trie) find(s string) *trieNode {
	n := &t.root
	for _, r := range s {
		next, ok := n.children[r]
		if !ok {
			return nil
		}
		n = next
	}

	return n
}

// IsWord reports whether token is a complete word in the trie.
func (t *Trie) IsWord(token string) bool {
	if t == nil || token == "" {
		return false
	}
	n := t.find(token)

	return n != nil && n.terminal
}

// HasPrefix reports whether some word in the trie starts with prefix.
// The empty prefix matches whenever the trie is non-empty.
func (t *Trie) HasPrefix(prefix string) bool {
	if t == nil || t.count == 0 {
		return false
	}

	return t.find(prefix) != nil
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	if t == nil {
		return 0
	}

	return t.count
}
