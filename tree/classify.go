package tree

import (
	"fmt"

	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
)

// Classify walks a grown tree against a query and returns the predicted
// label. names maps the query's positions to attribute names and must have
// the same arity as the training schema minus the class column.
//
// A query whose value at a decision node was never observed during training
// is an expected, recoverable outcome: Classify returns an error satisfying
// errors.Is(err, treelearnErrors.ErrNoPrediction) and carrying the attribute
// and value involved. A name list that does not cover a split's attribute,
// or a query of the wrong arity, is a caller bug and surfaces as a distinct
// validation error instead.
//
// Classification is read-only; any number of Classify calls may run
// concurrently against the same tree.
func Classify(n Node, names []string, query Example) (Value, error) {
	if len(query) != len(names) {
		return Value{}, treelearnErrors.NewDimensionError("tree.Classify", len(names), len(query), 1)
	}
	return classify(n, names, query)
}

func classify(n Node, names []string, query Example) (Value, error) {
	switch t := n.(type) {
	case *Leaf:
		return t.Label, nil
	case *Split:
		idx := -1
		for i, name := range names {
			if name == t.Attribute {
				idx = i
				break
			}
		}
		if idx < 0 {
			return Value{}, treelearnErrors.NewValidationError("names",
				fmt.Sprintf("attribute %q tested by the tree is not present", t.Attribute), names)
		}
		v := query[idx]
		child, ok := t.Branches[v]
		if !ok {
			return Value{}, treelearnErrors.NewUnseenValueError(t.Attribute, v.String())
		}
		return classify(child, names, query)
	}
	return Value{}, treelearnErrors.NewValueError("tree.Classify", "unknown node variant")
}
