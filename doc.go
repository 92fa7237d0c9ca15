// Package urec reconciles a gene tree against a species tree: it finds
// the rooting of an unrooted binary gene tree that minimizes the total
// number of gene duplications and losses implied by an LCA mapping into a
// fixed rooted species tree, and can attribute that mutation count back
// onto the species tree's branches.
//
// Everything lives under seven subpackages:
//
//	dlcost/    — the (duplications, losses) cost pair and its scalarization
//	rtree/     — rooted, arena-backed trees (the species tree and rooted views)
//	utree/     — unrooted, arena-backed trees addressed by three-corner vertices
//	newick/    — Newick parsing, with a "[species=NAME]" leaf extension
//	reconcile/ — the mapping/cost DP, the linear-time optimal-rooting walk,
//	             and duplication/loss attribution
//	randtree/  — random gene tree generation for testing
//	session/   — the orchestrator tying the above together over (gene,
//	             species) tree pairs, including concurrent batch runs
//
// A typical caller parses a species tree and one or more gene trees with
// package newick, then drives reconciliation through a session.Session:
//
//	species, err := newick.ParseSpeciesTree(speciesNewick)
//	gene, err := newick.ParseUnrooted(geneNewick)
//	result, err := session.New().Reconcile(gene, species)
//
// This module has no I/O, no CLI, and no persistence layer of its own —
// input parsing and output formatting are the caller's responsibility.
package urec
