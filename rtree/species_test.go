package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSpecies builds ((a,b),c), matching spec.md scenario 3's species tree.
func buildSpecies(t *testing.T) (*SpeciesTree, map[string]NodeID) {
	t.Helper()
	b := NewBuilder()
	a := b.Leaf("a", "a")
	bLeaf := b.Leaf("b", "b")
	ab := b.Internal(a, bLeaf, "")
	c := b.Leaf("c", "c")
	root := b.Internal(ab, c, "")
	tr, err := b.Finish(root)
	require.NoError(t, err)

	st, err := NewSpeciesTree(tr)
	require.NoError(t, err)

	return st, map[string]NodeID{"a": a, "b": bLeaf, "c": c, "ab": ab, "root": root}
}

func TestSpeciesTreeLeafLookup(t *testing.T) {
	st, ids := buildSpecies(t)
	n, ok := st.Leaf("a")
	require.True(t, ok)
	assert.Equal(t, ids["a"], n)

	_, ok = st.Leaf("nonexistent")
	assert.False(t, ok)
}

func TestDuplicateLabel(t *testing.T) {
	b := NewBuilder()
	a1 := b.Leaf("x", "x1")
	a2 := b.Leaf("x", "x2")
	root := b.Internal(a1, a2, "")
	tr, err := b.Finish(root)
	require.NoError(t, err)

	_, err = NewSpeciesTree(tr)
	assert.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestLCA(t *testing.T) {
	st, ids := buildSpecies(t)

	t.Run("a,b -> ab", func(t *testing.T) {
		assert.Equal(t, ids["ab"], st.LCA(ids["a"], ids["b"]))
	})
	t.Run("a,c -> root", func(t *testing.T) {
		assert.Equal(t, ids["root"], st.LCA(ids["a"], ids["c"]))
	})
	t.Run("a,a -> a (self)", func(t *testing.T) {
		assert.Equal(t, ids["a"], st.LCA(ids["a"], ids["a"]))
	})
	t.Run("ab is ancestor of a", func(t *testing.T) {
		assert.Equal(t, ids["ab"], st.LCA(ids["ab"], ids["a"]))
	})
}

func TestLCAMatchesReferenceForm(t *testing.T) {
	// Cross-checks the depth-guided LCA against spec.md §4.2's reference
	// ancestor-walk form, per the Open Question in spec.md §9.
	st, ids := buildSpecies(t)
	pairs := [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}, {"ab", "c"}, {"a", "a"}}
	for _, p := range pairs {
		fast := st.LCA(ids[p[0]], ids[p[1]])
		ref := st.lcaReference(ids[p[0]], ids[p[1]])
		assert.Equalf(t, ref, fast, "LCA(%s,%s)", p[0], p[1])
	}
}

func TestIsAncestor(t *testing.T) {
	st, ids := buildSpecies(t)
	assert.True(t, st.isAncestor(ids["root"], ids["a"]))
	assert.True(t, st.isAncestor(ids["a"], ids["a"]))
	assert.False(t, st.isAncestor(ids["a"], ids["root"]))
	assert.False(t, st.isAncestor(ids["b"], ids["a"]))
}
