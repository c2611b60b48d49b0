package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
)

func TestGrow_CanonicalMarineAnimals(t *testing.T) {
	ds, names := marineDataset()

	root, err := Grow(ds, names)
	require.NoError(t, err)

	split, ok := root.(*Split)
	require.True(t, ok, "root must split, got %T", root)
	assert.Equal(t, "no-surfacing", split.Attribute)
	require.Len(t, split.Branches, 2)

	// Branch 0 is a direct "no" leaf.
	zero, ok := split.Branches[Num(0)].(*Leaf)
	require.True(t, ok, "branch 0 must be a leaf")
	assert.Equal(t, Str("no"), zero.Label)

	// Branch 1 splits further on flippers.
	one, ok := split.Branches[Num(1)].(*Split)
	require.True(t, ok, "branch 1 must split again")
	assert.Equal(t, "flippers", one.Attribute)
	require.Len(t, one.Branches, 2)

	flippers, ok := one.Branches[Num(1)].(*Leaf)
	require.True(t, ok)
	assert.Equal(t, Str("yes"), flippers.Label)

	noFlippers, ok := one.Branches[Num(0)].(*Leaf)
	require.True(t, ok)
	assert.Equal(t, Str("no"), noFlippers.Label)

	assert.Equal(t, 3, NumLeaves(root))
	assert.Equal(t, 2, Depth(root))
}

func TestGrow_PureDatasetIsSingleLeaf(t *testing.T) {
	ds := Dataset{
		{Num(1), Num(0), Str("yes")},
		{Num(0), Num(1), Str("yes")},
	}
	root, err := Grow(ds, []string{"a", "b"})
	require.NoError(t, err)

	leaf, ok := root.(*Leaf)
	require.True(t, ok, "pure dataset must grow a single leaf, got %T", root)
	assert.Equal(t, Str("yes"), leaf.Label)
	assert.Equal(t, 0, Depth(root))
}

func TestGrow_SingleAttributeDisagreeingLabels(t *testing.T) {
	// The only column carries no information, so growing must terminate
	// through the majority-vote fallback instead of recursing forever.
	ds := Dataset{
		{Num(1), Str("no")},
		{Num(1), Str("no")},
		{Num(1), Str("yes")},
	}
	root, err := Grow(ds, []string{"only"})
	require.NoError(t, err)

	leaf, ok := root.(*Leaf)
	require.True(t, ok, "expected a majority leaf, got %T", root)
	assert.Equal(t, Str("no"), leaf.Label)
}

func TestGrow_ExhaustedAttributes(t *testing.T) {
	// Identical feature rows with split labels: the informative column is
	// consumed on the first level and the leftover disagreement resolves
	// by majority under each branch.
	ds := Dataset{
		{Num(1), Str("yes")},
		{Num(1), Str("yes")},
		{Num(1), Str("no")},
		{Num(0), Str("no")},
	}
	root, err := Grow(ds, []string{"a"})
	require.NoError(t, err)

	split, ok := root.(*Split)
	require.True(t, ok)
	oneLeaf, ok := split.Branches[Num(1)].(*Leaf)
	require.True(t, ok)
	assert.Equal(t, Str("yes"), oneLeaf.Label)
}

func TestGrow_EmptyDataset(t *testing.T) {
	_, err := Grow(Dataset{}, nil)
	require.Error(t, err)
	assert.True(t, treelearnErrors.Is(err, treelearnErrors.ErrEmptyData))
}

func TestGrow_RaggedArity(t *testing.T) {
	ds := Dataset{
		{Num(1), Num(1), Str("yes")},
		{Num(1), Str("no")},
	}
	_, err := Grow(ds, []string{"a", "b"})
	require.Error(t, err)

	var dimErr *treelearnErrors.DimensionError
	assert.True(t, treelearnErrors.As(err, &dimErr))
}

func TestGrow_NameListLengthMismatch(t *testing.T) {
	ds, _ := marineDataset()
	_, err := Grow(ds, []string{"only-one"})
	require.Error(t, err)

	var dimErr *treelearnErrors.DimensionError
	assert.True(t, treelearnErrors.As(err, &dimErr))
}

func TestGrow_DoesNotMutateInputs(t *testing.T) {
	ds, names := marineDataset()
	wantNames := append([]string(nil), names...)

	_, err := Grow(ds, names)
	require.NoError(t, err)

	assert.Equal(t, wantNames, names, "Grow must not consume the caller's name list")
	wantDS, _ := marineDataset()
	assert.Equal(t, wantDS, ds, "Grow must not mutate the caller's dataset")
}

func TestGrow_DepthBoundedByAttributeCount(t *testing.T) {
	ds := Dataset{
		{Num(0), Num(0), Num(0), Str("a")},
		{Num(0), Num(1), Num(0), Str("b")},
		{Num(1), Num(0), Num(1), Str("c")},
		{Num(1), Num(1), Num(1), Str("d")},
	}
	root, err := Grow(ds, []string{"x", "y", "z"})
	require.NoError(t, err)
	assert.LessOrEqual(t, Depth(root), 3)
}
