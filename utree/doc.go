// Package utree implements the unrooted binary gene-tree model: every
// internal logical vertex of degree 3 is materialized as three linked
// "corner" records sharing that vertex's identity, so that "which
// neighbor counts as toward the root" is a property of the corner, not
// of the vertex. Leaves are a single corner with one neighbor.
//
// A corner's memo fields (which of M/sc/cost are computed, their cached
// values, and a reporting mark byte) live on the corner itself, because
// those values are orientation-dependent — see package reconcile, which
// computes them through the accessor methods on this package's Tree,
// never by reaching into unexported state.
//
// Trees are built once via Builder and never restructured; Clear resets
// only the memo fields, in O(|V(G)|), between reconciliations against
// different species trees (spec.md §5). The memo fields hold unweighted
// values, so a change of mutation weights leaves them valid.
//
// Errors:
//
//	ErrLeafHasNoChildren - Children called on a leaf corner.
//	ErrNoParent          - the lone corner of a single-leaf whole tree has
//	                        no parent; no accessor returns this error,
//	                        Parent reports that case through its bool.
package utree
