// Package oracle defines the word-membership contract used by the segment
// package, together with ready-made dictionaries.
//
// What:
//
//   - Oracle: a pure predicate answering "is this token a known word?".
//   - PrefixOracle: an optional upgrade that also answers "does any known
//     word start with this prefix?"; the segmenter uses it to stop a prefix
//     scan early without changing its result.
//   - Func: adapts a plain func(string) bool to Oracle.
//   - Set: hash-set dictionary.
//   - Trie: rune trie dictionary implementing PrefixOracle.
//   - Common, Demo: embedded word lists.
//
// Tokens are compared after Fold, which upper-cases with Unicode case rules.
// Dictionaries fold their words on construction, so callers can feed them
// "hello" or "HELLO" interchangeably.
//
// Loading:
//
//   - ReadWords(r)   one word per line, blank lines and '#' comments skipped.
//   - ReadYAML(r)    a YAML document of the form `words: [...]`.
//   - Load(path)     picks ReadYAML for .yaml/.yml and ReadWords otherwise.
//
// Errors:
//
//   - ErrEmptyDictionary  when a loader finds no words.
//   - wrapped I/O and decode errors.
//
// Concurrency: Set and Trie are read-only after construction and safe for
// concurrent IsWord/HasPrefix calls.
package oracle
