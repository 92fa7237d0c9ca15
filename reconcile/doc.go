// Package reconcile implements duplication/loss reconciliation of an
// unrooted gene tree against a rooted species tree: the LCA mapping M,
// the memoized subtree-cost and edge-cost dynamic program, the linear-time
// optimal-rooting search, and the per-branch cost-detail attribution pass.
//
// Config carries the mutation weights (dup_weight, loss_weight) via the
// functional-options pattern:
//
//	cfg := reconcile.DefaultConfig(reconcile.WithDupWeight(2))
//
// Errors:
//
//	ErrUnmappedSpecies - a gene leaf's species label has no matching leaf
//	                      in the species tree.
package reconcile
