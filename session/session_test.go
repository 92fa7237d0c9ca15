package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/urec/newick"
	"github.com/katalvlaran/urec/reconcile"
	"github.com/katalvlaran/urec/session"
)

func TestReconcileExactMatchIsZeroCost(t *testing.T) {
	species, err := newick.ParseSpeciesTree("((a,b),c);")
	require.NoError(t, err)
	g, err := newick.ParseUnrooted("((a,b),c);")
	require.NoError(t, err)

	s := session.New()
	result, err := s.Reconcile(g, species)
	require.NoError(t, err)

	assert.Zero(t, result.Cost.Dup)
	assert.Zero(t, result.Cost.Loss)
	assert.Zero(t, result.Scalar)
	assert.Equal(t, "((a,b),c);", result.Rooted.String())
}

func TestReconcileWithDetailAccumulatesOntoSpeciesTree(t *testing.T) {
	species, err := newick.ParseSpeciesTree("((a,b),c);")
	require.NoError(t, err)
	g, err := newick.ParseUnrooted("((a,b),c);")
	require.NoError(t, err)

	s := session.New().WithDetail(true)
	_, err = s.Reconcile(g, species)
	require.NoError(t, err)

	root := species.Root()
	assert.Equal(t, int64(0), species.Detail(root).Dup)
	assert.Equal(t, int64(0), species.Detail(root).Loss)
}

func TestReconcileRunTwiceIsIdempotentAfterClear(t *testing.T) {
	species, err := newick.ParseSpeciesTree("(a,b);")
	require.NoError(t, err)
	g, err := newick.ParseUnrooted("(a,b);")
	require.NoError(t, err)

	s := session.New()
	first, err := s.Reconcile(g, species)
	require.NoError(t, err)
	second, err := s.Reconcile(g, species)
	require.NoError(t, err)

	assert.Equal(t, first.Cost, second.Cost)
}

func TestReconcileWeightsAffectScalar(t *testing.T) {
	species, err := newick.ParseSpeciesTree("((a,b),c);")
	require.NoError(t, err)
	g, err := newick.ParseUnrooted("((a,c),b);")
	require.NoError(t, err)

	heavy := session.New(reconcile.WithDupWeight(10))
	result, err := heavy.Reconcile(g, species)
	require.NoError(t, err)
	assert.Equal(t, result.Cost.Mut(heavy.Config().Weights), result.Scalar)
}

func TestReconcileUnmappedSpeciesError(t *testing.T) {
	species, err := newick.ParseSpeciesTree("((a,b),c);")
	require.NoError(t, err)
	g, err := newick.ParseUnrooted("(a,x);")
	require.NoError(t, err)

	_, err = session.New().Reconcile(g, species)
	assert.Error(t, err)
}
