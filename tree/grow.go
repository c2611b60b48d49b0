package tree

import (
	"github.com/YuminosukeSato/treelearn/pkg/log"
)

// Grow induces a decision tree from ds with the ID3 algorithm. names labels
// the attribute columns of ds, excluding the trailing class column, so
// len(names) must equal the example arity minus one.
//
// Grow validates its input and fails fast on an empty dataset, ragged
// example arity, or a name list of the wrong length. Neither ds nor names
// is mutated: each recursion level works on a reduced copy of the name
// list, one entry shorter than its parent's, matching the column removed
// by partitioning.
func Grow(ds Dataset, names []string) (Node, error) {
	if err := validateTrainingInput("tree.Grow", ds, names); err != nil {
		return nil, err
	}
	logger := log.GetLoggerWithName("tree.grower")
	return grow(ds, names, logger), nil
}

// grow recurses with the three terminal conditions checked in order:
// a pure node, exhausted attribute columns, and a selector that found no
// informative column. The last two both resolve by majority vote.
func grow(ds Dataset, names []string, logger log.Logger) Node {
	labels := ds.Labels()
	if pure(labels) {
		return &Leaf{Label: labels[0]}
	}
	if ds.attributeCount() == 0 {
		return &Leaf{Label: MajorityLabel(labels)}
	}

	best, gain := chooseBestAttribute(ds)
	if best < 0 {
		return &Leaf{Label: MajorityLabel(labels)}
	}

	name := names[best]
	logger.Debug("split chosen",
		log.AttributeKey, name,
		log.GainKey, gain,
		log.SamplesKey, len(ds),
	)

	childNames := make([]string, 0, len(names)-1)
	childNames = append(childNames, names[:best]...)
	childNames = append(childNames, names[best+1:]...)

	branches := make(map[Value]Node)
	for _, v := range distinctValues(ds, best) {
		subset := Partition(ds, best, v)
		if len(subset) == 0 {
			// Unreachable for observed values; guards the non-empty
			// precondition of Entropy.
			continue
		}
		branches[v] = grow(subset, childNames, logger)
	}
	return &Split{Attribute: name, Branches: branches}
}

// pure reports whether every label in the sequence is the same atom.
func pure(labels []Value) bool {
	for _, label := range labels[1:] {
		if label != labels[0] {
			return false
		}
	}
	return true
}
