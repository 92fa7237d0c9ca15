// Package rtree implements the rooted binary tree model shared by the
// species tree S and by any rooted view materialized from a chosen gene-
// tree rooting.
//
// A Tree is an arena of nodes addressed by NodeID (a slice index), built
// once via Builder and never structurally mutated afterward — only the
// per-node dup/loss detail accumulator changes, and only through
// AddDup/AddLoss during cost-detail attribution (see package reconcile).
//
// SpeciesTree additionally indexes leaves by label for O(1) lookup and
// implements LCA, the hot-path operation the reconciliation DP calls once
// per corner.
//
// Errors:
//
//	ErrEmptyTree       - Builder.Finish called on a Builder with no nodes.
//	ErrDuplicateLabel  - two species-tree leaves share a label.
//	ErrDisjointNodes   - LCA could not find a common ancestor (a bug, not
//	                     a user error; see the package-level panic note on
//	                     SpeciesTree.LCA).
package rtree
