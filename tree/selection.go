package tree

// ChooseBestAttribute compares every attribute column of ds by information
// gain and returns the index of the best one. The running best gain starts
// at exactly 0.0 and only a strictly greater gain replaces it, so ties keep
// the lowest index and a dataset where no column is informative yields -1.
// Callers treat -1 as "fall back to a majority-vote leaf", not as an error.
func ChooseBestAttribute(ds Dataset) int {
	best, _ := chooseBestAttribute(ds)
	return best
}

// chooseBestAttribute reports the winning column index together with its
// information gain, so the grower can log the gain of each split decision.
func chooseBestAttribute(ds Dataset) (int, float64) {
	baseEntropy := Entropy(ds)
	total := float64(len(ds))

	bestIndex := -1
	bestGain := 0.0
	for i := 0; i < ds.attributeCount(); i++ {
		splitEntropy := 0.0
		for _, v := range distinctValues(ds, i) {
			subset := Partition(ds, i, v)
			weight := float64(len(subset)) / total
			splitEntropy += weight * Entropy(subset)
		}
		gain := baseEntropy - splitEntropy
		if gain > bestGain {
			bestGain = gain
			bestIndex = i
		}
	}
	return bestIndex, bestGain
}
