package reconcile

import (
	"sort"

	"github.com/katalvlaran/urec/rtree"
	"github.com/katalvlaran/urec/utree"
)

// FindOptimalEdge locates an edge of g whose rooting minimizes total
// mutation cost, in time linear in |V(G)| rather than the naive
// O(n^2) re-rooting enumeration. It returns one of the two corners of
// that edge; Cost is equal on both (edge symmetry).
//
// The walk is directed by a single target mapping MG computed once at the
// start corner; it is not guaranteed to inspect every corner, so it
// relies on the monotonicity property described in spec.md §4.5 rather
// than brute force. See bruteforce_test.go for the cross-check this
// property demands.
//
// By default, ties among equally optimal corners resolve to whichever the
// walk happens to reach first. Pass WithCanonicalTieBreak() to instead
// resolve ties deterministically, by the minimum leaf label in a tied
// corner's subtree; this costs an extra O(|V(G)|) scan over every corner.
func FindOptimalEdge(g *utree.Tree, species *rtree.SpeciesTree, opts ...Option) (utree.CornerID, error) {
	cfg := DefaultConfig(opts...)

	edge, err := findOptimalEdgeWalk(g, species)
	if err != nil {
		return utree.NoCorner, err
	}
	if !cfg.CanonicalTieBreak {
		return edge, nil
	}
	return canonicalTieBreak(g, species, edge, cfg)
}

// canonicalTieBreak scans every corner for the ones tied with edge's
// scalar cost, and returns the one whose subtree's minimum leaf label
// sorts first.
func canonicalTieBreak(g *utree.Tree, species *rtree.SpeciesTree, edge utree.CornerID, cfg Config) (utree.CornerID, error) {
	best, err := Cost(g, edge, species)
	if err != nil {
		return utree.NoCorner, err
	}
	bestScalar := best.Mut(cfg.Weights)

	var tied []utree.CornerID
	for x := utree.CornerID(0); x < utree.CornerID(g.Size()); x++ {
		c, err := Cost(g, x, species)
		if err != nil {
			return utree.NoCorner, err
		}
		if c.Mut(cfg.Weights) == bestScalar {
			tied = append(tied, x)
		}
	}
	if len(tied) <= 1 {
		return edge, nil
	}

	sort.Slice(tied, func(i, j int) bool {
		return minLeafLabel(g, tied[i]) < minLeafLabel(g, tied[j])
	})
	return tied[0], nil
}

// minLeafLabel returns the smallest species label among the leaves of x's
// subtree (x and, if internal, everything below it away from its parent).
func minLeafLabel(g *utree.Tree, x utree.CornerID) string {
	if g.IsLeaf(x) {
		return g.Species(x)
	}
	yL, yR := g.Children(x)
	l, r := minLeafLabel(g, yL), minLeafLabel(g, yR)
	if l < r {
		return l
	}
	return r
}

// findOptimalEdgeWalk is the directed, linear-time walk itself (the
// original tool's findoptimaledge), unaware of the tie-break option.
func findOptimalEdgeWalk(g *utree.Tree, species *rtree.SpeciesTree) (utree.CornerID, error) {
	cur := g.Start()
	g.Mark(cur, utree.MarkStart|utree.MarkVisited)

	p, hasParent := g.Parent(cur)
	if !hasParent {
		// |L(G)|=1 degenerate: a lone leaf is the whole tree.
		if _, err := Mapped(g, cur, species); err != nil {
			return utree.NoCorner, err
		}
		return cur, nil
	}
	if g.IsLeaf(cur) && g.IsLeaf(p) {
		// |L(G)|=2: both endpoints of the only edge are leaves.
		if _, err := Mapped(g, cur, species); err != nil {
			return utree.NoCorner, err
		}
		if _, err := Mapped(g, p, species); err != nil {
			return utree.NoCorner, err
		}
		return cur, nil
	}
	if g.IsLeaf(cur) {
		cur = p
	}

	curParent, _ := g.Parent(cur)
	mCur, err := Mapped(g, cur, species)
	if err != nil {
		return utree.NoCorner, err
	}
	mCurParent, err := Mapped(g, curParent, species)
	if err != nil {
		return utree.NoCorner, err
	}
	mg := species.LCA(mCur, mCurParent)
	if species.IsLeaf(mg) {
		return cur, nil // the whole gene tree maps to a single species subtree.
	}

	found := false
	for i := 0; i < 3; i++ {
		m, err := Mapped(g, cur, species)
		if err != nil {
			return utree.NoCorner, err
		}
		if m != mg {
			found = true
			break
		}
		cur = g.Rotate(cur)
	}
	g.Mark(cur, utree.MarkVisited)

	if found {
		for {
			pc, _ := g.Parent(cur)
			if g.IsLeaf(pc) {
				break
			}
			left, right := g.Siblings(pc)
			mLeft, err := Mapped(g, left, species)
			if err != nil {
				return utree.NoCorner, err
			}
			if mLeft != mg {
				cur = left
				g.Mark(cur, utree.MarkVisited)
				continue
			}
			mRight, err := Mapped(g, right, species)
			if err != nil {
				return utree.NoCorner, err
			}
			if mRight != mg {
				cur = right
				g.Mark(cur, utree.MarkVisited)
				continue
			}
			cur = pc
			g.Mark(cur, utree.MarkVisited)
			break
		}
		mNow, err := Mapped(g, cur, species)
		if err != nil {
			return utree.NoCorner, err
		}
		if mNow != mg {
			return cur, nil
		}
	}

	for i := 0; i < 3; i++ {
		pc, _ := g.Parent(cur)
		mp, err := Mapped(g, pc, species)
		if err != nil {
			return utree.NoCorner, err
		}
		if mp == mg {
			return cur, nil
		}
		cur = g.Rotate(cur)
	}
	return cur, nil
}
