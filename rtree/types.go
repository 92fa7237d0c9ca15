package rtree

import (
	"errors"

	"github.com/katalvlaran/urec/dlcost"
)

// Sentinel errors for rtree construction and lookup.
var (
	// ErrEmptyTree indicates Builder.Finish was called before any node existed.
	ErrEmptyTree = errors.New("rtree: tree has no root")

	// ErrDuplicateLabel indicates two species-tree leaves share a label.
	ErrDuplicateLabel = errors.New("rtree: duplicate species label")

	// ErrDisjointNodes indicates LCA walked off the tree without finding a
	// common ancestor. This can only happen if a or b belongs to a different
	// tree than the receiver, which is an invariant violation, not user error.
	ErrDisjointNodes = errors.New("rtree: nodes share no common ancestor")
)

// NodeID indexes a node within a Tree's arena. NoNode is the sentinel for
// "absent" (used for Parent of the root, and Left/Right of a leaf).
type NodeID int32

// NoNode is the sentinel absent-node value.
const NoNode NodeID = -1

// node is one arena entry. Internal nodes have Left/Right set and no
// Species; leaves have Species set and Left == Right == NoNode.
type node struct {
	parent  NodeID
	left    NodeID
	right   NodeID
	depth   int
	label   string // display label: the full original leaf text, or an
	// internal node's ':'-annotation, preserved verbatim for printing.
	species string // leaf species label; "" for internal nodes.
	detail  dlcost.DlCost
}

func (n *node) isLeaf() bool { return n.left == NoNode && n.right == NoNode }

// Tree is an arena-backed rooted binary tree. Zero value is not usable;
// construct via Builder.
type Tree struct {
	nodes []node
	root  NodeID
}

// Root returns the tree's root node.
func (t *Tree) Root() NodeID { return t.root }

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int { return len(t.nodes) }

// IsLeaf reports whether n has no children.
func (t *Tree) IsLeaf(n NodeID) bool { return t.nodes[n].isLeaf() }

// Parent returns n's parent, or (NoNode, false) if n is the root.
func (t *Tree) Parent(n NodeID) (NodeID, bool) {
	p := t.nodes[n].parent
	return p, p != NoNode
}

// Children returns n's two children. Panics if n is a leaf.
func (t *Tree) Children(n NodeID) (left, right NodeID) {
	nd := &t.nodes[n]
	if nd.isLeaf() {
		panic("rtree: Children called on a leaf node")
	}
	return nd.left, nd.right
}

// Depth returns n's depth; the root has depth 0.
func (t *Tree) Depth(n NodeID) int { return t.nodes[n].depth }

// Label returns n's display label (verbatim leaf text, or the
// ':'-annotation captured for an internal node).
func (t *Tree) Label(n NodeID) string { return t.nodes[n].label }

// Species returns n's species label. Only meaningful for leaves.
func (t *Tree) Species(n NodeID) string { return t.nodes[n].species }

// Detail returns n's accumulated dup/loss counters.
func (t *Tree) Detail(n NodeID) dlcost.DlCost { return t.nodes[n].detail }

// AddDup increments n's duplication counter by one.
func (t *Tree) AddDup(n NodeID) { t.nodes[n].detail.Dup++ }

// AddLoss increments n's loss counter by one.
func (t *Tree) AddLoss(n NodeID) { t.nodes[n].detail.Loss++ }

// Sibling returns n's sibling (the other child of n's parent), or
// (NoNode, false) if n is the root.
func (t *Tree) Sibling(n NodeID) (NodeID, bool) {
	p, ok := t.Parent(n)
	if !ok {
		return NoNode, false
	}
	l, r := t.Children(p)
	if l == n {
		return r, true
	}
	return l, true
}
