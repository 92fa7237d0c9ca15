package reconcile

import (
	"github.com/katalvlaran/urec/rtree"
	"github.com/katalvlaran/urec/utree"
)

// AttributeDetail distributes the per-event duplication/loss counts of the
// reconciliation rooted on edge onto species's branches, accumulating into
// its per-node DlCost.Dup/.Loss fields. Running it against multiple gene
// trees against the same species tree accumulates totals.
func AttributeDetail(g *utree.Tree, species *rtree.SpeciesTree, edge utree.CornerID) error {
	other, ok := g.Parent(edge)
	if !ok {
		return nil // single-leaf whole tree: no event to attribute.
	}

	mEdge, err := Mapped(g, edge, species)
	if err != nil {
		return err
	}
	mOther, err := Mapped(g, other, species)
	if err != nil {
		return err
	}
	s := species.LCA(mEdge, mOther)
	recordEvent(species, s, mEdge, mOther)

	if err := attributeSubtree(g, species, edge); err != nil {
		return err
	}
	return attributeSubtree(g, species, other)
}

// attributeSubtree recurses over the subtree hanging below x, recording
// the node-level event at every internal corner.
func attributeSubtree(g *utree.Tree, species *rtree.SpeciesTree, x utree.CornerID) error {
	if g.IsLeaf(x) {
		return nil
	}
	yL, yR := g.Children(x)

	mx, err := Mapped(g, x, species)
	if err != nil {
		return err
	}
	mL, err := Mapped(g, yL, species)
	if err != nil {
		return err
	}
	mR, err := Mapped(g, yR, species)
	if err != nil {
		return err
	}
	recordEvent(species, mx, mL, mR)

	if err := attributeSubtree(g, species, yL); err != nil {
		return err
	}
	return attributeSubtree(g, species, yR)
}

// recordEvent applies spec.md §4.6's two rules for a single node-level
// event: s = LCA_S(s1, s2) is the mapping of the parent, s1 and s2 the
// mappings of its two children.
func recordEvent(species *rtree.SpeciesTree, s, s1, s2 rtree.NodeID) {
	if s != s1 && s != s2 {
		lossWalk(species, s1, s, true)
		lossWalk(species, s2, s, true)
		return
	}
	if s != s1 {
		lossWalk(species, s1, s, false)
	} else if s != s2 {
		lossWalk(species, s2, s, false)
	}
	species.AddDup(s)
}

// lossWalk walks species from child up to last, incrementing the loss
// counter on the sibling of each node visited along the way. skipLast
// excludes the final step into last itself (used when neither s1 nor s2
// equals s); when !skipLast the step into last is included (used at a
// duplication, for the one child mapping that differs from s).
func lossWalk(species *rtree.SpeciesTree, child, last rtree.NodeID, skipLast bool) {
	cur, ok := species.Parent(child)
	if !ok {
		return
	}
	for {
		if cur == last && skipLast {
			return
		}
		if sib, ok := species.Sibling(child); ok {
			species.AddLoss(sib)
		}
		if cur == last {
			return
		}
		next, ok := species.Parent(cur)
		if !ok {
			return
		}
		child, cur = cur, next
	}
}
