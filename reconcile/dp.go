package reconcile

import (
	"fmt"

	"github.com/katalvlaran/urec/dlcost"
	"github.com/katalvlaran/urec/rtree"
	"github.com/katalvlaran/urec/utree"
)

// Mapped computes (and memoizes) M(x), the LCA-mapping of corner x's
// subtree into species. For a leaf corner it is the species leaf matching
// x's species label; for an internal corner it is LCA_S(M(yL), M(yR))
// where yL, yR are x's non-parent neighbor corners.
func Mapped(g *utree.Tree, x utree.CornerID, species *rtree.SpeciesTree) (rtree.NodeID, error) {
	if g.Flags(x)&utree.FlagMapped != 0 {
		return g.Mapped(x), nil
	}

	var m rtree.NodeID
	if g.IsLeaf(x) {
		n, ok := species.Leaf(g.Species(x))
		if !ok {
			return rtree.NoNode, fmt.Errorf("%w: %q", ErrUnmappedSpecies, g.Species(x))
		}
		m = n
	} else {
		yL, yR := g.Children(x)
		mL, err := Mapped(g, yL, species)
		if err != nil {
			return rtree.NoNode, err
		}
		mR, err := Mapped(g, yR, species)
		if err != nil {
			return rtree.NoNode, err
		}
		m = species.LCA(mL, mR)
	}
	g.SetMapped(x, m)
	return m, nil
}

// SC computes (and memoizes) sc(x), the cost of the subtree hanging below
// x treating its non-parent neighbors as children. Leaf corners have
// sc = (0,0).
func SC(g *utree.Tree, x utree.CornerID, species *rtree.SpeciesTree) (dlcost.DlCost, error) {
	if g.Flags(x)&utree.FlagSC != 0 {
		return g.SC(x), nil
	}

	if g.IsLeaf(x) {
		g.SetSC(x, dlcost.DlCost{})
		return dlcost.DlCost{}, nil
	}

	yL, yR := g.Children(x)
	scL, err := SC(g, yL, species)
	if err != nil {
		return dlcost.DlCost{}, err
	}
	scR, err := SC(g, yR, species)
	if err != nil {
		return dlcost.DlCost{}, err
	}
	mx, err := Mapped(g, x, species)
	if err != nil {
		return dlcost.DlCost{}, err
	}
	mL, err := Mapped(g, yL, species)
	if err != nil {
		return dlcost.DlCost{}, err
	}
	mR, err := Mapped(g, yR, species)
	if err != nil {
		return dlcost.DlCost{}, err
	}

	sc := scL.Add(scR).Add(localCost(mx, mL, mR, species))
	g.SetSC(x, sc)
	return sc, nil
}

// Cost computes (and memoizes) cost(x), the total reconciliation cost of
// rooting G on the edge (x, parent(x)). A corner with no parent (only the
// lone corner of a single-leaf whole tree) has cost defined to be (0,0).
func Cost(g *utree.Tree, x utree.CornerID, species *rtree.SpeciesTree) (dlcost.DlCost, error) {
	if g.Flags(x)&utree.FlagCost != 0 {
		return g.Cost(x), nil
	}

	p, ok := g.Parent(x)
	if !ok {
		g.SetCost(x, dlcost.DlCost{})
		return dlcost.DlCost{}, nil
	}

	scX, err := SC(g, x, species)
	if err != nil {
		return dlcost.DlCost{}, err
	}
	scP, err := SC(g, p, species)
	if err != nil {
		return dlcost.DlCost{}, err
	}
	mX, err := Mapped(g, x, species)
	if err != nil {
		return dlcost.DlCost{}, err
	}
	mP, err := Mapped(g, p, species)
	if err != nil {
		return dlcost.DlCost{}, err
	}

	s := species.LCA(mX, mP)
	cost := scX.Add(scP).Add(localCost(s, mX, mP, species))
	g.SetCost(x, cost)
	return cost, nil
}

// Clear resets all memoized M/sc/cost values on g, required before
// reconciling g against a different species tree. The memoized values are
// unweighted, so a weight change alone does not require it.
func Clear(g *utree.Tree) {
	g.Clear()
}
