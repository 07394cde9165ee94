// Package segment splits text that lost its word boundaries into known words.
// The search is a depth-first backtracking walk driven by two explicit stacks
// instead of recursion: a path of committed words and a stack of untried
// alternatives, both tagged with the depth at which they were produced.
//
// Key features:
//   - Segment(input, oracle, opts...): first segmentation in longest-match-first order
//   - Failure is a value (Result.Found == false), never a panic or error
//   - PrefixOracle upgrade: prefix scans stop once no word can match
//   - Hooks: OnCommit and OnBacktrack observers
//   - zap logging and Prometheus metrics via options
//
// Complexity:
//
//   - Time:   exponential in the worst case (every partition may be tried);
//     O(n²) oracle calls when no backtracking is needed.
//   - Memory: O(n²) frames at most, n = input length in runes.
//
// Errors:
//
//   - ErrNilOracle  if the oracle is nil.
package segment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/katalvlaran/wordbreak/oracle"
)

// segmenter holds the state of a single search.
type segmenter struct {
	oracle oracle.Oracle
	prefix oracle.PrefixOracle // nil unless the oracle supports prefix queries
	opts   Options
	path   frameStack // committed words
	alts   frameStack // pending alternatives
	stats  Stats
}

// Segment folds input to upper case and searches for a sequence of words,
// each recognized by o, whose concatenation equals the folded input.
//
// At every position the longest recognized prefix is committed first; shorter
// recognized prefixes are kept as alternatives and retried, longest first,
// when the search reaches a position where no prefix is a word. The first
// complete segmentation found is returned.
//
// The returned Result has Found == false when no segmentation exists. The
// error is non-nil only for invalid arguments.
func Segment(input string, o oracle.Oracle, opts ...Option) (*Result, error) {
	// 1. Validate oracle
	if o == nil {
		return nil, ErrNilOracle
	}

	// 2. Apply options
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	// 3. Fold once, before any oracle call
	folded := oracle.Fold(input)

	s := &segmenter{oracle: o, opts: sopts}
	if p, ok := o.(oracle.PrefixOracle); ok {
		s.prefix = p
	}

	// 4. Search
	res := s.run(folded)

	// 5. Report
	s.opts.Logger.Debug("segment: done",
		zap.String("input", folded),
		zap.Bool("found", res.Found),
		zap.Int("words", len(res.Words)),
		zap.Int("backtracks", res.Stats.Backtracks),
		zap.Int("oracle_calls", res.Stats.OracleCalls),
	)
	if s.opts.Metrics != nil {
		s.opts.Metrics.observe(res)
	}

	return res, nil
}

// Phrase segments input with o and returns the space-joined words.
// ok is false when no segmentation exists or o is nil.
func Phrase(input string, o oracle.Oracle) (phrase string, ok bool) {
	res, err := Segment(input, o)
	if err != nil || !res.Found {
		return "", false
	}

	return res.Phrase(), true
}

// run executes the search loop over the folded input.
func (s *segmenter) run(input string) *Result {
	res := &Result{Input: input}

	// Empty input is trivially segmented into zero words.
	if input == "" {
		res.Words = []string{}
		res.Found = true
		return res
	}

	suffix := input
	var candidates []frame
	for suffix != "" {
		// a. Collect every recognized prefix, shortest first.
		candidates = s.scan(suffix, candidates[:0])

		if n := len(candidates); n > 0 {
			// b. Shorter matches wait on the alternatives stack; the longest
			//    one is committed.
			for i := 0; i < n-1; i++ {
				s.alts.push(candidates[i])
			}
			s.commit(candidates[n-1])

			// c. Continue on the remainder.
			suffix = candidates[n-1].rest
			continue
		}

		// d. Dead end with nothing left to try.
		if s.alts.len() == 0 {
			res.Stats = s.stats
			return res
		}

		// e. Resume from the most recent alternative. The path is cut back
		//    to the depth that alternative was produced at before it is
		//    committed.
		alt := s.alts.pop()
		s.path.truncate(alt.depth)
		if s.path.len() != alt.depth {
			invariantf("path depth %d after backtrack to depth %d", s.path.len(), alt.depth)
		}
		s.stats.Backtracks++
		s.opts.Logger.Debug("segment: backtrack",
			zap.String("word", alt.word),
			zap.Int("depth", alt.depth),
			zap.Int("pending", s.alts.len()),
		)
		if s.opts.OnBacktrack != nil {
			s.opts.OnBacktrack(alt.word, alt.depth)
		}
		s.commit(alt)
		suffix = alt.rest
	}

	// 4. The committed path spells the input.
	res.Words = s.path.words()
	if joined := strings.Join(res.Words, ""); joined != input {
		invariantf("path %q does not spell input %q", joined, input)
	}
	res.Found = true
	res.Stats = s.stats

	return res
}

// scan appends to dst a frame for every prefix of suffix that the oracle
// recognizes, in increasing length. Prefixes end on rune boundaries.
func (s *segmenter) scan(suffix string, dst []frame) []frame {
	depth := s.path.len()
	var size int
	for end := 0; end < len(suffix); {
		_, size = utf8.DecodeRuneInString(suffix[end:])
		end += size
		token := suffix[:end]

		// No longer prefix can be a word once this one is not a prefix of any.
		if s.prefix != nil && !s.prefix.HasPrefix(token) {
			break
		}
		if s.isWord(token) {
			dst = append(dst, frame{word: token, rest: suffix[end:], depth: depth})
		}
	}

	return dst
}

// isWord consults the oracle and counts the call.
func (s *segmenter) isWord(token string) bool {
	if token == "" {
		invariantf("empty token passed to oracle")
	}
	s.stats.OracleCalls++

	return s.oracle.IsWord(token)
}

// commit pushes f onto the path. f must have been produced at the current depth.
func (s *segmenter) commit(f frame) {
	if f.depth != s.path.len() {
		invariantf("frame %q tagged depth %d committed at depth %d", f.word, f.depth, s.path.len())
	}
	s.path.push(f)
	s.stats.Commits++
	if d := s.path.len(); d > s.stats.MaxDepth {
		s.stats.MaxDepth = d
	}
	s.opts.Logger.Debug("segment: commit",
		zap.String("word", f.word),
		zap.Int("depth", f.depth),
	)
	if s.opts.OnCommit != nil {
		s.opts.OnCommit(f.word, f.depth)
	}
}

// invariantf reports a broken internal invariant. It signals a bug in this
// package, never a property of the input.
func invariantf(format string, args ...any) {
	panic(fmt.Sprintf("segment: invariant violated: "+format, args...))
}
