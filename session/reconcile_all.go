package session

import (
	"context"
	"log"
	"sync"

	"github.com/katalvlaran/urec/reconcile"
	"github.com/katalvlaran/urec/rtree"
	"github.com/katalvlaran/urec/utree"
)

// Pair is one gene-tree/species-tree reconciliation job. Species trees may
// be shared across pairs (e.g. every gene tree reconciled against the same
// fixed species tree); Gene must not be, since each goroutine clears and
// mutates its own tree's memo state independently.
type Pair struct {
	Gene    *utree.Tree
	Species *rtree.SpeciesTree
}

// ReconcileAll runs Reconcile for every pair concurrently, one goroutine
// per pair, following the coarse-grained fan-out each goroutine owning an
// independent gene tree affords. Results preserve pairs' order. Detail
// attribution (if enabled) mutates pair.Species in place; since multiple
// pairs may share the same species tree, those writes are serialized
// behind an internal mutex — callers must not attribute onto a species
// tree from outside a Session concurrently with this call.
//
// ctx cancellation stops launching new work; pairs already in flight run
// to completion. The first non-nil error (by pair index) is returned.
func (s *Session) ReconcileAll(ctx context.Context, pairs []Pair) ([]Result, error) {
	log.Printf("session: reconciling %d pairs concurrently\n", len(pairs))
	results := make([]Result, len(pairs))
	errs := make([]error, len(pairs))

	var detailMu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(len(pairs))

	for i, pair := range pairs {
		go func(i int, pair Pair) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}

			pair.Gene.Clear()
			result, err := s.reconcileLocked(pair.Gene, pair.Species, &detailMu)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = result
		}(i, pair)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// reconcileLocked runs the same steps as Reconcile, but serializes the
// attribution pass (the only step that mutates state shared across
// goroutines — the species tree's per-node counters) behind mu.
func (s *Session) reconcileLocked(g *utree.Tree, species *rtree.SpeciesTree, mu *sync.Mutex) (Result, error) {
	edge, err := reconcile.FindOptimalEdge(g, species)
	if err != nil {
		return Result{}, err
	}
	cost, err := reconcile.Cost(g, edge, species)
	if err != nil {
		return Result{}, err
	}
	rooted, err := utree.Rooted(g, edge)
	if err != nil {
		return Result{}, err
	}

	if s.withDetail {
		mu.Lock()
		err := reconcile.AttributeDetail(g, species, edge)
		mu.Unlock()
		if err != nil {
			return Result{}, err
		}
	}
	log.Printf("session: reconciled pair, cost=%s\n", cost)

	return Result{Edge: edge, Cost: cost, Scalar: cost.Mut(s.cfg.Weights), Rooted: rooted}, nil
}
