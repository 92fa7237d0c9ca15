package randtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urec/randtree"
	"github.com/katalvlaran/urec/utree"
)

func rootedString(t *testing.T, tr *utree.Tree) string {
	t.Helper()
	rooted, err := utree.Rooted(tr, tr.Start())
	require.NoError(t, err)
	return rooted.String()
}

func leafSpeciesOf(t *utree.Tree) []string {
	var out []string
	for x := utree.CornerID(0); x < utree.CornerID(t.Size()); x++ {
		if t.IsLeaf(x) {
			out = append(out, t.Species(x))
		}
	}
	return out
}

func TestCaterpillarDeterministicForFixedSeed(t *testing.T) {
	leaves := []string{"a", "b", "c"}
	tr1, err := randtree.Caterpillar(rand.New(rand.NewSource(42)), leaves, 0.6, 0.5)
	require.NoError(t, err)
	tr2, err := randtree.Caterpillar(rand.New(rand.NewSource(42)), leaves, 0.6, 0.5)
	require.NoError(t, err)

	assert.Equal(t, rootedString(t, tr1), rootedString(t, tr2))
}

func TestCaterpillarOnlyUsesGivenLabels(t *testing.T) {
	leaves := []string{"a", "b", "c"}
	tr, err := randtree.Caterpillar(rand.New(rand.NewSource(7)), leaves, 0.7, 0.6)
	require.NoError(t, err)

	allowed := map[string]bool{"a": true, "b": true, "c": true}
	for _, sp := range leafSpeciesOf(tr) {
		assert.True(t, allowed[sp], "unexpected species label %q", sp)
	}
}

func TestCaterpillarRejectsEmptyLeafSet(t *testing.T) {
	_, err := randtree.Caterpillar(rand.New(rand.NewSource(1)), nil, 0.5, 0.5)
	assert.ErrorIs(t, err, randtree.ErrEmptyLeafSet)
}

func TestCaterpillarZeroBranchProbProducesStraightSpine(t *testing.T) {
	leaves := []string{"a", "b", "c", "d"}
	tr, err := randtree.Caterpillar(rand.New(rand.NewSource(3)), leaves, 0, 0.5)
	require.NoError(t, err)
	// branchProb == 0 means genRand always terminates in a single leaf, so
	// the spine has exactly len(leaves) leaf corners.
	assert.Len(t, leafSpeciesOf(tr), len(leaves))
}

func TestUniformProducesExactLeafCount(t *testing.T) {
	leaves := []string{"a", "b", "c", "d", "e"}
	tr, err := randtree.Uniform(rand.New(rand.NewSource(11)), leaves, 4, false)
	require.NoError(t, err)
	assert.Len(t, leafSpeciesOf(tr), 4)
}

func TestUniformUniqueHasNoDuplicateLabels(t *testing.T) {
	leaves := []string{"a", "b", "c", "d", "e"}
	tr, err := randtree.Uniform(rand.New(rand.NewSource(5)), leaves, 5, true)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, sp := range leafSpeciesOf(tr) {
		assert.False(t, seen[sp], "label %q drawn twice under unique=true", sp)
		seen[sp] = true
	}
	assert.Len(t, seen, 5)
}

func TestUniformSingleLeaf(t *testing.T) {
	tr, err := randtree.Uniform(rand.New(rand.NewSource(2)), []string{"a", "b"}, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Size())
	_, hasParent := tr.Parent(tr.Start())
	assert.False(t, hasParent)
}

func TestUniformRejectsEmptyLeafSet(t *testing.T) {
	_, err := randtree.Uniform(rand.New(rand.NewSource(1)), nil, 3, false)
	assert.ErrorIs(t, err, randtree.ErrEmptyLeafSet)
}

func TestUniformRejectsNonPositiveCount(t *testing.T) {
	_, err := randtree.Uniform(rand.New(rand.NewSource(1)), []string{"a"}, 0, false)
	assert.ErrorIs(t, err, randtree.ErrInvalidCount)
}

func TestUniformRejectsUniqueCountExceedingPool(t *testing.T) {
	_, err := randtree.Uniform(rand.New(rand.NewSource(1)), []string{"a", "b"}, 3, true)
	assert.ErrorIs(t, err, randtree.ErrInvalidCount)
}
