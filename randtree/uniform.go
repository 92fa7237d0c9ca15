package randtree

import (
	"math/rand"

	"github.com/katalvlaran/urec/utree"
)

// Uniform builds a random unrooted binary tree on count leaf labels drawn
// from leaves, by repeatedly joining two randomly chosen subtrees among
// the still-active set until one edge remains — the shape of UTree's
// numlv/uniquelv constructor. If unique is true, labels are drawn without
// repetition (count must not exceed len(leaves)); otherwise each draw is
// independent and labels may repeat.
func Uniform(rng *rand.Rand, leaves []string, count int, unique bool) (*utree.Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyLeafSet
	}
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if unique && count > len(leaves) {
		return nil, ErrInvalidCount
	}

	labels := drawLabels(rng, leaves, count, unique)

	b := utree.NewBuilder()
	if count == 1 {
		return b.Single(labels[0], labels[0])
	}

	tb := make([]utree.CornerID, count)
	for i, lbl := range labels {
		tb[i] = b.Leaf(lbl, lbl)
	}

	active := count
	for active > 2 {
		p := rng.Intn(active)
		q := p
		for q == p {
			q = rng.Intn(active)
		}
		tb[p] = b.Join(tb[p], tb[q], "")
		copy(tb[q:active-1], tb[q+1:active])
		active--
	}
	return b.Root2(tb[0], tb[1]), nil
}

// drawLabels picks count labels from leaves: a partial Fisher-Yates
// shuffle when unique is required, independent uniform draws otherwise.
func drawLabels(rng *rand.Rand, leaves []string, count int, unique bool) []string {
	if !unique {
		out := make([]string, count)
		for i := range out {
			out[i] = leaves[rng.Intn(len(leaves))]
		}
		return out
	}

	pool := make([]string, len(leaves))
	copy(pool, leaves)
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count]
}
