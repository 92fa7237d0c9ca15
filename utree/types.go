package utree

import (
	"errors"

	"github.com/katalvlaran/urec/dlcost"
	"github.com/katalvlaran/urec/rtree"
)

// Sentinel errors for utree accessors.
var (
	// ErrLeafHasNoChildren indicates Children was called on a leaf corner.
	ErrLeafHasNoChildren = errors.New("utree: leaf corner has no children")

	// ErrNoParent names the missing parent of the one corner of a
	// single-leaf whole tree (the only corner with no parent). No accessor
	// in this package returns it; Parent reports that case through its bool.
	ErrNoParent = errors.New("utree: corner has no parent")
)

// CornerID indexes a corner within a Tree's arena. NoCorner marks an
// absent neighbor (a leaf's unused left/right, or the lone corner of a
// single-leaf whole tree's absent parent).
type CornerID int32

// NoCorner is the sentinel absent-corner value.
const NoCorner CornerID = -1

// MemoFlags records which of a corner's memoized DP values are valid.
// Cleared in bulk by Tree.Clear; set by package reconcile as it computes
// each value on demand.
type MemoFlags uint8

const (
	// FlagMapped marks that Mapped(x) holds a valid M(x).
	FlagMapped MemoFlags = 1 << iota
	// FlagSC marks that SC(x) holds a valid sc(x).
	FlagSC
	// FlagCost marks that Cost(x) holds a valid cost(x).
	FlagCost
)

// Reporting mark bits set by FindOptimalEdge's walk onto Tree.Mark, mirroring
// the original tool's ismarked bitfield: MarkVisited flags the start corner,
// the corner chosen by the first rotation, and each corner the walk steps to
// across an edge (corners only inspected while rotating around a vertex are
// not marked); MarkStart flags the corner it began from.
const (
	MarkVisited uint8 = 1 << iota
	MarkStart
)

// corner is one arena entry. A leaf corner has left == right == NoCorner
// and a species label; an internal corner has left/right naming the other
// two corners of the same logical vertex (a directed 3-cycle) and no
// species label.
type corner struct {
	isLeaf  bool
	parent  CornerID
	left    CornerID
	right   CornerID
	label   string // display label: full leaf text, or the internal
	// vertex's captured ':'-annotation.
	species string // leaf-only species label.

	flags  MemoFlags
	mapped rtree.NodeID
	sc     dlcost.DlCost
	cost   dlcost.DlCost
	mark   uint8
}

// Tree is an arena-backed unrooted binary tree with a distinguished start
// corner designating the tree's current rooting for reconciliation.
type Tree struct {
	corners []corner
	start   CornerID
}

// Start returns the corner designating the tree's current rooting edge.
func (t *Tree) Start() CornerID { return t.start }

// Size returns the number of corners in the arena (NOT the number of
// logical vertices — an internal vertex occupies three corners).
func (t *Tree) Size() int { return len(t.corners) }

// IsLeaf reports whether x is a leaf corner.
func (t *Tree) IsLeaf(x CornerID) bool { return t.corners[x].isLeaf }

// Species returns x's species label. Only meaningful if IsLeaf(x).
func (t *Tree) Species(x CornerID) string { return t.corners[x].species }

// Label returns x's display label.
func (t *Tree) Label(x CornerID) string { return t.corners[x].label }

// Parent returns the corner across x's own edge, or (NoCorner, false) if
// x is the lone corner of a single-leaf whole tree.
func (t *Tree) Parent(x CornerID) (CornerID, bool) {
	p := t.corners[x].parent
	return p, p != NoCorner
}

// Siblings returns the other two corners of x's logical vertex (the
// directed left/right 3-cycle). Panics if x is a leaf.
func (t *Tree) Siblings(x CornerID) (left, right CornerID) {
	c := &t.corners[x]
	if c.isLeaf {
		panic(ErrLeafHasNoChildren)
	}
	return c.left, c.right
}

// Children returns the two non-parent neighbor corners of internal
// corner x — i.e. Parent(left) and Parent(right) where left, right are
// x's siblings at the same logical vertex. These are the "yL, yR" of
// spec.md §4.4. Panics if x is a leaf.
func (t *Tree) Children(x CornerID) (yL, yR CornerID) {
	left, right := t.Siblings(x)
	yL, _ = t.Parent(left)
	yR, _ = t.Parent(right)
	return yL, yR
}

// Rotate returns the next corner in x's logical vertex's left-cycle
// (x.left); walking Rotate three times returns to x. Panics if x is a leaf.
func (t *Tree) Rotate(x CornerID) CornerID {
	c := &t.corners[x]
	if c.isLeaf {
		panic(ErrLeafHasNoChildren)
	}
	return c.left
}

// Flags returns x's memoization flags.
func (t *Tree) Flags(x CornerID) MemoFlags { return t.corners[x].flags }

// Mapped returns x's cached M(x). Only valid if Flags(x)&FlagMapped != 0.
func (t *Tree) Mapped(x CornerID) rtree.NodeID { return t.corners[x].mapped }

// SetMapped caches M(x) = n and sets FlagMapped.
func (t *Tree) SetMapped(x CornerID, n rtree.NodeID) {
	t.corners[x].mapped = n
	t.corners[x].flags |= FlagMapped
}

// SC returns x's cached sc(x). Only valid if Flags(x)&FlagSC != 0.
func (t *Tree) SC(x CornerID) dlcost.DlCost { return t.corners[x].sc }

// SetSC caches sc(x) = c and sets FlagSC.
func (t *Tree) SetSC(x CornerID, c dlcost.DlCost) {
	t.corners[x].sc = c
	t.corners[x].flags |= FlagSC
}

// Cost returns x's cached cost(x). Only valid if Flags(x)&FlagCost != 0.
func (t *Tree) Cost(x CornerID) dlcost.DlCost { return t.corners[x].cost }

// SetCost caches cost(x) = c and sets FlagCost.
func (t *Tree) SetCost(x CornerID, c dlcost.DlCost) {
	t.corners[x].cost = c
	t.corners[x].flags |= FlagCost
}

// Mark ORs bits into x's reporting mark byte (used by FindOptimalEdge's
// walk to record the corners it visited while searching for the optimal
// rooting, mirroring the original tool's ismarked bitfield).
func (t *Tree) Mark(x CornerID, bits uint8) { t.corners[x].mark |= bits }

// Marked returns x's reporting mark byte.
func (t *Tree) Marked(x CornerID) uint8 { return t.corners[x].mark }

// Clear resets every corner's memo flags and cached values, in O(size).
// Must be called before reconciling against a different species tree
// (spec.md §5: "behavior is undefined if stale memos are observed"). The
// cached values do not depend on mutation weights.
func (t *Tree) Clear() {
	for i := range t.corners {
		t.corners[i].flags = 0
		t.corners[i].mapped = rtree.NoNode
		t.corners[i].sc = dlcost.DlCost{}
		t.corners[i].cost = dlcost.DlCost{}
		t.corners[i].mark = 0
	}
}
