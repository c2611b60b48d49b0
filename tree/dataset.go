// Package tree implements ID3 decision-tree induction over discrete
// attributes: entropy, information-gain attribute selection, recursive
// growing, and classification against the grown tree.
//
// A Dataset is a table of Examples whose trailing column is the class label.
// Attribute atoms are opaque Values compared by equality; no ordering between
// atoms is assumed by the algorithm.
package tree

import (
	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
)

// Example is an ordered sequence of attribute values followed by the class
// label in the final position. All examples of a dataset share one arity.
type Example []Value

// Label returns the trailing class label of the example.
func (e Example) Label() Value {
	return e[len(e)-1]
}

// Dataset is an ordered collection of examples of equal arity.
type Dataset []Example

// Labels returns the class-label column of the dataset.
func (ds Dataset) Labels() []Value {
	labels := make([]Value, len(ds))
	for i, ex := range ds {
		labels[i] = ex.Label()
	}
	return labels
}

// attributeCount reports the number of attribute columns, excluding the
// class-label column. Callers guarantee a non-empty dataset.
func (ds Dataset) attributeCount() int {
	return len(ds[0]) - 1
}

// validateTrainingInput screens a dataset and its attribute-name list before
// any recursion starts. A malformed input fails fast here so the entropy and
// partitioning internals never observe an empty or ragged table.
func validateTrainingInput(op string, ds Dataset, names []string) error {
	if len(ds) == 0 {
		return treelearnErrors.Wrap(treelearnErrors.ErrEmptyData,
			"treelearn: "+op+": dataset must contain at least one example")
	}
	width := len(ds[0])
	if width < 1 {
		return treelearnErrors.NewValueError(op, "examples must contain at least the class-label column")
	}
	for _, ex := range ds {
		if len(ex) != width {
			return treelearnErrors.NewDimensionError(op, width, len(ex), 1)
		}
	}
	if len(names) != width-1 {
		return treelearnErrors.NewDimensionError(op, width-1, len(names), 1)
	}
	return nil
}
