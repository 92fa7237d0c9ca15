package utree

import "github.com/katalvlaran/urec/rtree"

// Rooted materializes the rooted view obtained by rooting t on the edge
// between corner edge and its parent — the view reconcile's cost walk
// builds, conceptually, for each candidate rooting edge (spec.md §4.4).
// It is a pure structural conversion and does not read or write t's memo
// state.
func Rooted(t *Tree, edge CornerID) (*rtree.Tree, error) {
	other, ok := t.Parent(edge)
	if !ok {
		// Single-leaf whole tree: no root edge, just the one leaf.
		b := rtree.NewBuilder()
		leaf := b.Leaf(t.Species(edge), t.Label(edge))
		return b.Finish(leaf)
	}

	b := rtree.NewBuilder()
	left := buildSubtree(t, b, edge)
	right := buildSubtree(t, b, other)
	root := b.Internal(left, right, "")
	return b.Finish(root)
}

// buildSubtree recursively converts the subtree hanging below corner x,
// away from its parent, into rtree nodes.
func buildSubtree(t *Tree, b *rtree.Builder, x CornerID) rtree.NodeID {
	if t.IsLeaf(x) {
		return b.Leaf(t.Species(x), t.Label(x))
	}
	yL, yR := t.Children(x)
	left := buildSubtree(t, b, yL)
	right := buildSubtree(t, b, yR)
	return b.Internal(left, right, t.Label(x))
}
