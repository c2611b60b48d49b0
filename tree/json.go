package tree

import (
	"encoding/json"
	"fmt"
	"io"

	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
)

// The wire form tags each node with its variant. Branches are an ordered
// array of value/child pairs rather than a JSON object: object keys would
// force numeric atoms through a lossy string conversion, and the array
// preserves the stable branch order for byte-identical output.
type nodeJSON struct {
	Kind      string       `json:"kind"`
	Label     *Value       `json:"label,omitempty"`
	Attribute string       `json:"attribute,omitempty"`
	Branches  []branchJSON `json:"branches,omitempty"`
}

type branchJSON struct {
	Value Value     `json:"value"`
	Child *nodeJSON `json:"child"`
}

const (
	kindLeaf  = "leaf"
	kindSplit = "split"
)

// MarshalTree encodes a grown tree as JSON.
func MarshalTree(n Node) ([]byte, error) {
	encoded, err := encodeNode(n)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(encoded)
	if err != nil {
		return nil, treelearnErrors.Wrap(err, "treelearn: MarshalTree")
	}
	return data, nil
}

// UnmarshalTree restores a tree from the JSON produced by MarshalTree. The
// result is a fully usable Node: Classify accepts it exactly like a freshly
// grown tree.
func UnmarshalTree(data []byte) (Node, error) {
	var encoded nodeJSON
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, treelearnErrors.Wrap(err, "treelearn: UnmarshalTree")
	}
	return decodeNode(&encoded)
}

// WriteTree streams the indented JSON form of the tree to w.
func WriteTree(w io.Writer, n Node) error {
	encoded, err := encodeNode(n)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(encoded); err != nil {
		return treelearnErrors.Wrap(err, "treelearn: WriteTree")
	}
	return nil
}

// ReadTree restores a tree from the JSON stream r.
func ReadTree(r io.Reader) (Node, error) {
	var encoded nodeJSON
	if err := json.NewDecoder(r).Decode(&encoded); err != nil {
		return nil, treelearnErrors.Wrap(err, "treelearn: ReadTree")
	}
	return decodeNode(&encoded)
}

func encodeNode(n Node) (*nodeJSON, error) {
	switch t := n.(type) {
	case *Leaf:
		label := t.Label
		return &nodeJSON{Kind: kindLeaf, Label: &label}, nil
	case *Split:
		values := t.Values()
		branches := make([]branchJSON, 0, len(values))
		for _, v := range values {
			child, err := encodeNode(t.Branches[v])
			if err != nil {
				return nil, err
			}
			branches = append(branches, branchJSON{Value: v, Child: child})
		}
		return &nodeJSON{Kind: kindSplit, Attribute: t.Attribute, Branches: branches}, nil
	}
	return nil, treelearnErrors.NewValueError("tree.encodeNode", "nil or unknown node variant")
}

func decodeNode(encoded *nodeJSON) (Node, error) {
	switch encoded.Kind {
	case kindLeaf:
		if encoded.Label == nil {
			return nil, treelearnErrors.NewValueError("tree.decodeNode", "leaf node is missing its label")
		}
		return &Leaf{Label: *encoded.Label}, nil
	case kindSplit:
		if encoded.Attribute == "" {
			return nil, treelearnErrors.NewValueError("tree.decodeNode", "split node is missing its attribute name")
		}
		if len(encoded.Branches) == 0 {
			return nil, treelearnErrors.NewValueError("tree.decodeNode", "split node has no branches")
		}
		branches := make(map[Value]Node, len(encoded.Branches))
		for _, b := range encoded.Branches {
			if b.Child == nil {
				return nil, treelearnErrors.NewValueError("tree.decodeNode", "split branch is missing its child")
			}
			child, err := decodeNode(b.Child)
			if err != nil {
				return nil, err
			}
			branches[b.Value] = child
		}
		return &Split{Attribute: encoded.Attribute, Branches: branches}, nil
	}
	return nil, treelearnErrors.NewValueError("tree.decodeNode",
		fmt.Sprintf("unknown node kind %q", encoded.Kind))
}
