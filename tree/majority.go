package tree

// MajorityLabel returns the most frequent label in the sequence. Ties break
// deterministically toward the label that appears first in the input: with
// counts equal, an atom seen earlier beats one seen later. This avoids any
// cross-kind ordering between numeric and textual atoms while keeping
// repeated runs over the same data reproducible.
//
// The sequence must be non-empty; the tree builder only votes over the
// labels of a non-empty dataset.
func MajorityLabel(labels []Value) Value {
	counts := make(map[Value]int, len(labels))
	var order []Value
	for _, label := range labels {
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}

	best := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}
	return best
}
