// Package wordbreak puts the spaces back into text that lost them.
//
// Given "hereisyourgift" and a dictionary, it answers "HERE IS YOUR GIFT";
// given text that cannot be split into dictionary words, it says so.
//
// Under the hood, everything is organized under two packages:
//
//	oracle/  — the word-membership contract plus Set, Trie and embedded word lists
//	segment/ — the backtracking segmenter: longest word first, explicit stacks
//
// and a command-line front end:
//
//	cmd/wordbreak — `wordbreak segment` and `wordbreak check`
//
// Quick example:
//
//	res, _ := segment.Segment("helloworld", oracle.NewSet("hello", "world"))
//	fmt.Println(res.Phrase()) // HELLO WORLD
//
//	go get github.com/katalvlaran/wordbreak
package wordbreak
