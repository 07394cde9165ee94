package segment_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/wordbreak/oracle"
	"github.com/katalvlaran/wordbreak/segment"
)

// BenchmarkSegment_CommonTrie segments a 100-word sentence with the embedded
// dictionary. The trie lets each prefix scan stop early.
func BenchmarkSegment_CommonTrie(b *testing.B) {
	input := strings.Repeat("thequestionisnotwhy", 20)
	dict := oracle.Common()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = segment.Segment(input, dict)
	}
}

// BenchmarkSegment_CommonFunc is the same workload without prefix pruning,
// so every prefix of every suffix is looked up.
func BenchmarkSegment_CommonFunc(b *testing.B) {
	input := strings.Repeat("thequestionisnotwhy", 20)
	dict := oracle.Func(oracle.Common().IsWord)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = segment.Segment(input, dict)
	}
}

// BenchmarkSegment_WorstCase forces a full search: "A"*n followed by "B"
// over {A, AA} has no segmentation and every partition of the A-run is tried.
func BenchmarkSegment_WorstCase(b *testing.B) {
	input := strings.Repeat("A", 18) + "B"
	dict := oracle.NewSet("A", "AA")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = segment.Segment(input, dict)
	}
}
