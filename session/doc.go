// Package session orchestrates reconciliation runs: clearing a gene
// tree's memo state, invoking the optimal-rooting walk, and optionally
// attributing duplication/loss detail onto a shared species tree.
//
// Session never touches input/output: callers hand it already-parsed
// *utree.Tree/*rtree.SpeciesTree values, typically produced by package
// newick one level up.
package session
