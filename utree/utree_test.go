package utree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urec/utree"
)

// buildCaterpillar builds the unrooted caterpillar on leaves a,b,c,d:
// Join(a,b) -> v1; Join(v1,c) -> v2; Root2(v2,d). Returns the tree plus
// the leaf CornerIDs in construction order.
func buildCaterpillar(t *testing.T) (*utree.Tree, [4]utree.CornerID) {
	t.Helper()
	b := utree.NewBuilder()
	a := b.Leaf("a", "a")
	bb := b.Leaf("b", "b")
	c := b.Leaf("c", "c")
	d := b.Leaf("d", "d")

	v1 := b.Join(a, bb, "")
	v2 := b.Join(v1, c, "")
	tr := b.Root2(v2, d)

	return tr, [4]utree.CornerID{a, bb, c, d}
}

func TestBuilderStructure(t *testing.T) {
	tr, leaves := buildCaterpillar(t)
	a, bb, c, d := leaves[0], leaves[1], leaves[2], leaves[3]

	assert.Equal(t, 10, tr.Size())
	assert.Equal(t, d, tr.Start())

	for _, x := range []utree.CornerID{a, bb, c, d} {
		assert.True(t, tr.IsLeaf(x))
	}
}

func TestParentMutuality(t *testing.T) {
	tr, leaves := buildCaterpillar(t)
	a := leaves[0]

	p, ok := tr.Parent(a)
	require.True(t, ok)
	pp, ok := tr.Parent(p)
	require.True(t, ok)
	assert.Equal(t, a, pp, "parent links must be mutual")
}

func TestRotateCycleLength3(t *testing.T) {
	tr, leaves := buildCaterpillar(t)
	a := leaves[0]
	start, ok := tr.Parent(a)
	require.True(t, ok)

	x := start
	for i := 0; i < 3; i++ {
		x = tr.Rotate(x)
	}
	assert.Equal(t, start, x, "rotating thrice around a vertex returns to start")
}

func TestSiblingsExcludeLeaf(t *testing.T) {
	tr, leaves := buildCaterpillar(t)
	a := leaves[0]
	assert.Panics(t, func() { tr.Siblings(a) })
}

func TestChildrenOfRootNeighbor(t *testing.T) {
	tr, leaves := buildCaterpillar(t)
	d := leaves[3]

	other, ok := tr.Parent(d)
	require.True(t, ok)

	yL, yR := tr.Children(other)
	// The vertex adjacent to d's root edge has (A,B)-subtree and C as its
	// two other neighbors.
	assert.False(t, tr.IsLeaf(yL))
	assert.True(t, tr.IsLeaf(yR))
	assert.Equal(t, "c", tr.Species(yR))
}

func TestMemoAccessorsAndClear(t *testing.T) {
	tr, leaves := buildCaterpillar(t)
	a := leaves[0]

	assert.Equal(t, utree.MemoFlags(0), tr.Flags(a))

	tr.SetMapped(a, 7)
	assert.Equal(t, utree.MemoFlags(utree.FlagMapped), tr.Flags(a))
	assert.EqualValues(t, 7, tr.Mapped(a))

	tr.Mark(a, 1)
	assert.Equal(t, uint8(1), tr.Marked(a))

	tr.Clear()
	assert.Equal(t, utree.MemoFlags(0), tr.Flags(a))
	assert.Equal(t, uint8(0), tr.Marked(a))
}

func TestRootedView(t *testing.T) {
	tr, _ := buildCaterpillar(t)
	rooted, err := utree.Rooted(tr, tr.Start())
	require.NoError(t, err)
	assert.Equal(t, "(d,((a,b),c));", rooted.String())
}

func TestSingleLeafWholeTree(t *testing.T) {
	b := utree.NewBuilder()
	tr, err := b.Single("x", "x")
	require.NoError(t, err)

	assert.Equal(t, 1, tr.Size())
	_, ok := tr.Parent(tr.Start())
	assert.False(t, ok, "the lone corner of a single-leaf tree has no parent")

	rooted, err := utree.Rooted(tr, tr.Start())
	require.NoError(t, err)
	assert.Equal(t, "x;", rooted.String())
}

func TestRoot3TernaryRoot(t *testing.T) {
	b := utree.NewBuilder()
	a := b.Leaf("a", "a")
	bb := b.Leaf("b", "b")
	c := b.Leaf("c", "c")
	tr := b.Root3(a, bb, c)

	assert.Equal(t, 6, tr.Size())
	rooted, err := utree.Rooted(tr, tr.Start())
	require.NoError(t, err)
	// Root3(a,b,c) == Root2(Join(a,b), c): rooted on c gives ((a,b),c)-shaped
	// newick when rooted at the joined corner's free end.
	assert.Equal(t, "(c,(a,b));", rooted.String())
}

func TestBuilderNotEmptyForSingle(t *testing.T) {
	b := utree.NewBuilder()
	b.Leaf("a", "a")
	_, err := b.Single("b", "b")
	assert.ErrorIs(t, err, utree.ErrBuilderNotEmpty)
}
