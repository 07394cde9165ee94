package oracle

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold returns s upper-cased with language-neutral Unicode casing rules.
// It is the single normalization applied to dictionary words and to input
// text before segmentation.
//
// A fresh Caser is built per call because cases.Caser keeps internal state
// and must not be shared between goroutines.
func Fold(s string) string {
	if s == "" {
		return s
	}

	return cases.Upper(language.Und).String(s)
}
