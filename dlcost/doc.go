// Package dlcost defines the duplication/loss cost pair shared by the
// rtree, utree, and reconcile packages.
//
// A DlCost is a pair of non-negative integer counts, (Dup, Loss). It is
// additive (Add sums componentwise) and reduces to a single scalar for
// comparison purposes via Mut, which applies caller-supplied weights:
//
//	mut((d,l)) = w_dup*d + w_loss*l
//
// Comparisons throughout this module are always on the scalar produced by
// Mut, never on the pair directly, since (dup,loss) has no total order of
// its own.
package dlcost
