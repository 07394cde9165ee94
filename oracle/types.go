package oracle

import (
	"errors"
)

// ErrEmptyDictionary is returned by the loaders when the input holds no words.
var ErrEmptyDictionary = errors.New("oracle: dictionary is empty")

// Oracle reports whether a token is a recognized word.
//
// Implementations must be pure: the same token always yields the same answer,
// and a token that cannot be classified yields false. Tokens passed by the
// segmenter are non-empty and already folded with Fold.
type Oracle interface {
	IsWord(token string) bool
}

// PrefixOracle is an Oracle that can also tell whether any recognized word
// starts with prefix. HasPrefix(w) must be true for every w with IsWord(w).
type PrefixOracle interface {
	Oracle
	HasPrefix(prefix string) bool
}

// Func adapts an ordinary function to the Oracle interface.
type Func func(token string) bool

// IsWord calls f(token).
func (f Func) IsWord(token string) bool {
	return f(token)
}
