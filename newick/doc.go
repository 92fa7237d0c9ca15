// Package newick parses Newick-style tree strings into the rooted and
// unrooted binary tree models of packages rtree and utree.
//
// Grammar (rooted): Tree := Leaf | '(' Tree ',' Tree ')' [ ':' annotation ].
// The unrooted grammar shares this shape but its outermost production may
// be binary or ternary: RootTree := '(' Tree ',' Tree [ ',' Tree ] ')'. A
// binary root joins its two subtrees directly, erasing the root edge; a
// ternary root becomes a degree-3 internal vertex.
//
// A leaf's label text may carry a "[species=NAME]" attribute; see
// splitLeafLabel. Any ':'-prefixed annotation following a closing ')' is
// captured verbatim as that internal node's display label, never
// interpreted as a branch length.
package newick
