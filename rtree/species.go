package rtree

// SpeciesTree wraps a rooted Tree with a label→leaf index, used both as
// the fixed species tree S of a reconciliation session and as the target
// of cost-detail attribution.
type SpeciesTree struct {
	Tree
	byLabel map[string]NodeID
}

// NewSpeciesTree indexes t's leaves by species label in one walk.
// Returns ErrDuplicateLabel if two leaves share a label (spec.md §3:
// "labels in S must be unique").
func NewSpeciesTree(t *Tree) (*SpeciesTree, error) {
	st := &SpeciesTree{Tree: *t, byLabel: make(map[string]NodeID)}
	var walk func(NodeID) error
	walk = func(n NodeID) error {
		if st.IsLeaf(n) {
			lab := st.Species(n)
			if _, dup := st.byLabel[lab]; dup {
				return ErrDuplicateLabel
			}
			st.byLabel[lab] = n
			return nil
		}
		l, r := st.Children(n)
		if err := walk(l); err != nil {
			return err
		}
		return walk(r)
	}
	if err := walk(t.Root()); err != nil {
		return nil, err
	}
	return st, nil
}

// Leaf looks up the species-tree leaf with the given label.
func (s *SpeciesTree) Leaf(label string) (NodeID, bool) {
	n, ok := s.byLabel[label]
	return n, ok
}

// NumLeaves returns the number of distinct species labels indexed.
func (s *SpeciesTree) NumLeaves() int { return len(s.byLabel) }

// LCA returns the lowest common ancestor of a and b, using the depth-
// guided walk: equalize depths by walking the deeper node up, then walk
// both up together until they meet. This is spec.md §4.2's recommended
// O(h(S)) implementation.
//
// Panics if a and b belong to different trees (ErrDisjointNodes) — per
// spec.md §7, a null LCA result is a bug, not a recoverable user error.
func (s *SpeciesTree) LCA(a, b NodeID) NodeID {
	for s.Depth(a) > s.Depth(b) {
		p, ok := s.Parent(a)
		if !ok {
			panic(ErrDisjointNodes)
		}
		a = p
	}
	for s.Depth(b) > s.Depth(a) {
		p, ok := s.Parent(b)
		if !ok {
			panic(ErrDisjointNodes)
		}
		b = p
	}
	for a != b {
		pa, okA := s.Parent(a)
		pb, okB := s.Parent(b)
		if !okA || !okB {
			panic(ErrDisjointNodes)
		}
		a, b = pa, pb
	}
	return a
}

// isAncestor reports whether anc is an ancestor of (or equal to) desc,
// walking desc upward via parent pointers. This is spec.md §4.2's
// "reference behavior" form of LCA, kept only to cross-check the
// depth-guided implementation in tests (spec.md §9's Open Question about
// verifying the DP's degenerate-case behavior by brute force).
func (s *SpeciesTree) isAncestor(anc, desc NodeID) bool {
	for {
		if desc == anc {
			return true
		}
		p, ok := s.Parent(desc)
		if !ok {
			return false
		}
		desc = p
	}
}

// lcaReference is the direct restatement of spec.md §4.2's reference
// algorithm: "if b is an ancestor of a, return b; else walk a upward until
// a node a' is found such that b lies in the subtree rooted at a'."
func (s *SpeciesTree) lcaReference(a, b NodeID) NodeID {
	if s.isAncestor(b, a) {
		return b
	}
	for {
		p, ok := s.Parent(a)
		if !ok {
			panic(ErrDisjointNodes)
		}
		a = p
		if s.isAncestor(a, b) {
			return a
		}
	}
}
