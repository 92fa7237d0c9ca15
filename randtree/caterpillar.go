package randtree

import (
	"math/rand"

	"github.com/katalvlaran/urec/utree"
)

// Caterpillar builds a random unrooted tree by sequential attachment: one
// subtree is generated per entry of leaves and linked onto a growing
// spine, the shape UTree::initrand produces. Each subtree comes from a
// recursive process (the UTree::genRand shape): with probability prob it
// branches into two further subtrees generated at prob*decay, otherwise it
// terminates in a leaf drawn uniformly (with replacement) from leaves.
//
// branchProb should lie in [0,1); a decay in (0,1) makes the branching
// probability shrink with recursion depth so the process terminates (with
// decay 1 it stays at branchProb).
func Caterpillar(rng *rand.Rand, leaves []string, branchProb, decay float64) (*utree.Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyLeafSet
	}

	b := utree.NewBuilder()
	var genRand func(prob float64) utree.CornerID
	genRand = func(prob float64) utree.CornerID {
		if rng.Float64() < prob {
			a := genRand(prob * decay)
			c := genRand(prob * decay)
			return b.Join(a, c, "")
		}
		label := leaves[rng.Intn(len(leaves))]
		return b.Leaf(label, label)
	}

	n := len(leaves)
	cur := genRand(branchProb)
	cur2 := genRand(branchProb)
	for i := 0; i < n-2; i++ {
		cur = b.Join(cur, cur2, "")
		cur2 = genRand(branchProb)
	}
	return b.Root2(cur, cur2), nil
}
