package utree

import "errors"

// ErrBuilderNotEmpty indicates Single was called after other corners
// were already allocated on the same Builder.
var ErrBuilderNotEmpty = errors.New("utree: Single requires an empty Builder")

// Builder constructs a Tree corner by corner, grounded directly on the
// original tool's UTree::connect: Join allocates the three corners of one
// new logical vertex, wires two of them to already-built subtrees, and
// returns the third (still unattached) corner for the caller to attach
// further up the tree or at the root. Root2/Root3 close the tree by
// linking the last two (or three) free corners into the root edge.
type Builder struct {
	t *Tree
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{t: &Tree{start: NoCorner}}
}

// Leaf allocates a new leaf corner with the given species and display
// label, and returns its CornerID. The leaf's parent is unset until it is
// wired by Join or Root2/Root3.
func (b *Builder) Leaf(species, label string) CornerID {
	b.t.corners = append(b.t.corners, corner{isLeaf: true, parent: NoCorner, left: NoCorner, right: NoCorner, species: species, label: label})
	return CornerID(len(b.t.corners) - 1)
}

// Join creates a new internal logical vertex, attaching two of its three
// corners to the already-built subtrees u1 and u2 (u1 <-> a, u2 <-> b,
// mutually), and returns the vertex's third, still-unattached corner c,
// ready to be wired further up the tree.
func (b *Builder) Join(u1, u2 CornerID, label string) CornerID {
	base := CornerID(len(b.t.corners))
	a, bb, c := base, base+1, base+2
	b.t.corners = append(b.t.corners,
		corner{left: bb, right: c, label: label},
		corner{left: c, right: a, label: label},
		corner{left: a, right: bb, label: label},
	)
	b.t.corners[a].parent = u1
	b.t.corners[bb].parent = u2
	b.t.corners[u1].parent = a
	b.t.corners[u2].parent = bb
	return c
}

// Root2 closes the tree by linking two free corners directly into the
// root edge (the binary-root grammar production, which erases the root
// vertex entirely — spec.md §4.1). Either or both of a, c may themselves
// be bare leaves (the |L(G)|=2 degenerate case).
func (b *Builder) Root2(a, c CornerID) *Tree {
	b.t.corners[a].parent = c
	b.t.corners[c].parent = a
	b.t.start = c
	return b.t
}

// Root3 closes the tree on a ternary root production: a, b, and c become
// the three neighbors of one new degree-3 vertex. Equivalent to joining a
// and b into a vertex and then root-linking its free corner to c, which is
// exactly how the original tool's parser handles a comma-separated third
// subtree at the top level.
func (b *Builder) Root3(a, bCorner, c CornerID) *Tree {
	free := b.Join(a, bCorner, "")
	return b.Root2(free, c)
}

// Single closes a Builder holding exactly one leaf as the whole tree (the
// |L(G)|=1 degenerate case: a gene tree with no internal vertices and no
// root edge at all). Returns ErrBuilderNotEmpty if other corners already
// exist on this Builder.
func (b *Builder) Single(species, label string) (*Tree, error) {
	if len(b.t.corners) != 0 {
		return nil, ErrBuilderNotEmpty
	}
	id := b.Leaf(species, label)
	b.t.start = id
	return b.t, nil
}
