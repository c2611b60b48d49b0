package tree

import (
	"math"
)

// Entropy computes the Shannon entropy of the dataset's class labels in
// bits. The result is 0 when every example carries the same label and 1.0
// for an even two-label split; it grows with label diversity and balance.
//
// The dataset must be non-empty. The tree builder guarantees this by never
// recursing into an empty partition, and the public facades validate their
// inputs before calling in.
func Entropy(ds Dataset) float64 {
	counts := make(map[Value]int)
	for _, ex := range ds {
		counts[ex.Label()]++
	}
	total := float64(len(ds))
	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}
