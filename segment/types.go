// Package segment defines errors, options and result types for word
// segmentation, including logging, metrics and observer hooks.
package segment

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrNilOracle is returned when Segment is called without an oracle.
	ErrNilOracle = errors.New("segment: oracle is nil")

	// ErrNoSegmentation is the error form of a failed search, returned by
	// Result.Err. Segment itself reports failure through Result.Found.
	ErrNoSegmentation = errors.New("segment: no segmentation")
)

// Option configures optional behavior of Segment.
type Option func(*Options)

// Options holds the configurable parameters of a search.
// None of them change which segmentation is found.
type Options struct {
	// Logger receives debug entries for commits, backtracks and the outcome.
	// Defaults to zap.NewNop().
	Logger *zap.Logger

	// Metrics, if non-nil, records one observation per search.
	Metrics *Metrics

	// OnCommit, if non-nil, is called every time a word is pushed onto the
	// committed path, with the depth it was pushed at.
	OnCommit func(word string, depth int)

	// OnBacktrack, if non-nil, is called when the search resumes from a
	// pending alternative, with that alternative's word and depth.
	OnBacktrack func(word string, depth int)
}

// DefaultOptions returns Options with:
//   - a no-op logger
//   - no metrics
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		Metrics:     nil,
		OnCommit:    nil,
		OnBacktrack: nil,
	}
}

// WithLogger returns an Option that sets the logger.
// Passing nil has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics returns an Option that records search metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithOnCommit returns an Option that installs fn as the commit observer.
func WithOnCommit(fn func(word string, depth int)) Option {
	return func(o *Options) {
		o.OnCommit = fn
	}
}

// WithOnBacktrack returns an Option that installs fn as the backtrack observer.
func WithOnBacktrack(fn func(word string, depth int)) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// Stats holds search diagnostics.
type Stats struct {
	// OracleCalls counts IsWord invocations.
	OracleCalls int

	// Commits counts pushes onto the committed path, including those made
	// while resuming from an alternative.
	Commits int

	// Backtracks counts alternatives popped after a dead end.
	Backtracks int

	// MaxDepth is the longest committed path seen during the search.
	MaxDepth int
}

// Result is the outcome of one Segment call.
type Result struct {
	// Input is the case-folded text that was segmented.
	Input string

	// Words is the segmentation in order. It is empty (not nil) for empty
	// input and nil when Found is false.
	Words []string

	// Found reports whether a segmentation exists.
	Found bool

	// Stats reports search diagnostics.
	Stats Stats
}

// Phrase returns the words joined by single spaces, or "" when no
// segmentation was found.
func (r *Result) Phrase() string {
	if r == nil || !r.Found {
		return ""
	}

	return strings.Join(r.Words, " ")
}

// Err returns ErrNoSegmentation when the search failed and nil otherwise.
func (r *Result) Err() error {
	if r == nil || !r.Found {
		return ErrNoSegmentation
	}

	return nil
}
