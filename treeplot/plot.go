// Package treeplot renders grown decision trees with gonum/plot. Leaves are
// spread evenly along the x axis, depth runs downward along y, and every
// split node sits centered over its children with branch values annotated
// on the connecting edges.
package treeplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
	"github.com/YuminosukeSato/treelearn/tree"
)

// layout accumulates drawing primitives while walking the tree.
type layout struct {
	nextLeafX    float64
	edges        []plotter.XYs
	nodePoints   plotter.XYs
	nodeLabels   []string
	branchPoints plotter.XYs
	branchLabels []string
}

// Plot lays the tree out and returns a plot ready to be saved or embedded.
func Plot(root tree.Node) (*plot.Plot, error) {
	if root == nil {
		return nil, treelearnErrors.NewValueError("treeplot.Plot", "nil tree")
	}

	l := &layout{}
	l.place(root, 0)

	p := plot.New()
	p.HideAxes()

	for _, xys := range l.edges {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, treelearnErrors.Wrap(err, "treelearn: treeplot.Plot: edge")
		}
		p.Add(line)
	}

	nodes, err := plotter.NewLabels(plotter.XYLabels{XYs: l.nodePoints, Labels: l.nodeLabels})
	if err != nil {
		return nil, treelearnErrors.Wrap(err, "treelearn: treeplot.Plot: node labels")
	}
	p.Add(nodes)

	if len(l.branchPoints) > 0 {
		branches, err := plotter.NewLabels(plotter.XYLabels{XYs: l.branchPoints, Labels: l.branchLabels})
		if err != nil {
			return nil, treelearnErrors.Wrap(err, "treelearn: treeplot.Plot: branch labels")
		}
		p.Add(branches)
	}
	return p, nil
}

// Save renders the tree to path. The output format follows the file
// extension, as supported by plot.Save (png, svg, pdf, and others).
func Save(root tree.Node, width, height vg.Length, path string) error {
	p, err := Plot(root)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return treelearnErrors.NewModelError("treeplot.Save", "persist", err)
	}
	return nil
}

// place positions a subtree and returns the x coordinate of its root.
// Leaves claim consecutive x slots; a split centers on the mean of its
// children. Branch values are sorted into the tree's stable value order so
// repeated renders of one tree are identical.
func (l *layout) place(n tree.Node, depth int) float64 {
	y := -float64(depth)
	switch t := n.(type) {
	case *tree.Leaf:
		x := l.nextLeafX
		l.nextLeafX++
		l.addNode(x, y, t.Label.String())
		return x
	case *tree.Split:
		values := t.Values()
		childXs := make([]float64, 0, len(values))
		for _, v := range values {
			childXs = append(childXs, l.place(t.Branches[v], depth+1))
		}

		x := 0.0
		for _, cx := range childXs {
			x += cx
		}
		x /= float64(len(childXs))

		childY := -float64(depth + 1)
		for i, v := range values {
			cx := childXs[i]
			l.edges = append(l.edges, plotter.XYs{{X: x, Y: y}, {X: cx, Y: childY}})
			l.branchPoints = append(l.branchPoints, plotter.XY{X: (x + cx) / 2, Y: (y + childY) / 2})
			l.branchLabels = append(l.branchLabels, v.String())
		}
		l.addNode(x, y, t.Attribute)
		return x
	}
	return 0
}

func (l *layout) addNode(x, y float64, label string) {
	l.nodePoints = append(l.nodePoints, plotter.XY{X: x, Y: y})
	l.nodeLabels = append(l.nodeLabels, label)
}
