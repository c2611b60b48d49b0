package tree

import (
	"encoding/gob"
	"sort"
	"strings"
)

func init() {
	// Registered so a Node field survives gob snapshots of whole models.
	gob.Register(&Leaf{})
	gob.Register(&Split{})
}

// Node is a grown decision tree. It is a sealed sum type with exactly two
// variants, *Leaf and *Split, so type switches over it are exhaustive.
// Nodes are immutable once Grow returns, which makes concurrent
// classification against one tree safe without locking.
type Node interface {
	// String renders a compact single-line form of the subtree.
	String() string

	isNode()
}

// Leaf is a terminal node holding a single predicted class label.
type Leaf struct {
	Label Value
}

func (l *Leaf) isNode() {}

func (l *Leaf) String() string {
	return l.Label.String()
}

// Split is an internal node naming the attribute it tests and mapping each
// attribute value observed during training to the child subtree grown from
// the examples carrying that value.
type Split struct {
	Attribute string
	Branches  map[Value]Node
}

func (s *Split) isNode() {}

// Values returns the branch values of the split in a stable order: numeric
// atoms before textual ones, each kind ordered by its payload. The order
// carries no algorithmic meaning; it exists so rendering, serialization and
// tests are deterministic despite the map representation.
func (s *Split) Values() []Value {
	values := make([]Value, 0, len(s.Branches))
	for v := range s.Branches {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return lessValue(values[i], values[j]) })
	return values
}

func (s *Split) String() string {
	var b strings.Builder
	b.WriteString(s.Attribute)
	b.WriteString("{")
	for i, v := range s.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
		b.WriteString(": ")
		b.WriteString(s.Branches[v].String())
	}
	b.WriteString("}")
	return b.String()
}

// NumLeaves counts the terminal nodes of the tree.
func NumLeaves(n Node) int {
	switch t := n.(type) {
	case *Leaf:
		return 1
	case *Split:
		total := 0
		for _, child := range t.Branches {
			total += NumLeaves(child)
		}
		return total
	}
	return 0
}

// Depth reports the length in edges of the longest root-to-leaf path.
// A single leaf has depth 0. Depth never exceeds the number of attribute
// columns the tree was grown from.
func Depth(n Node) int {
	split, ok := n.(*Split)
	if !ok {
		return 0
	}
	deepest := 0
	for _, child := range split.Branches {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
