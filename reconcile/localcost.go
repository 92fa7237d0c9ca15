package reconcile

import (
	"github.com/katalvlaran/urec/dlcost"
	"github.com/katalvlaran/urec/rtree"
)

// localCost computes the duplication/loss cost of mapping a gene node to
// species node s, given its two children's mappings s1 and s2, where
// s = LCA_S(s1, s2).
func localCost(s, s1, s2 rtree.NodeID, species *rtree.SpeciesTree) dlcost.DlCost {
	var loss int64
	switch {
	case s == s1 && s == s2:
		loss = 0
	case s == s1:
		loss = int64(species.Depth(s2) - species.Depth(s))
	case s == s2:
		loss = int64(species.Depth(s1) - species.Depth(s))
	default:
		loss = int64(species.Depth(s1)+species.Depth(s2)) - 2*int64(species.Depth(s)) - 2
	}

	var dup int64
	if s == s1 || s == s2 {
		dup = 1
	}
	return dlcost.DlCost{Dup: dup, Loss: loss}
}
