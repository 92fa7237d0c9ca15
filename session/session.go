package session

import (
	"log"

	"github.com/katalvlaran/urec/dlcost"
	"github.com/katalvlaran/urec/reconcile"
	"github.com/katalvlaran/urec/rtree"
	"github.com/katalvlaran/urec/utree"
)

// Result is the outcome of reconciling one (gene, species) tree pair.
type Result struct {
	Edge   utree.CornerID
	Cost   dlcost.DlCost
	Scalar float64
	Rooted *rtree.Tree
}

// Session holds reconciliation configuration shared across runs.
type Session struct {
	cfg        reconcile.Config
	withDetail bool
}

// New builds a Session from reconcile options. The dup/loss weights set
// Result.Scalar. A tie-break option is kept in Config but is not passed to
// FindOptimalEdge, so Reconcile and ReconcileAll always return the edge the
// walk reaches first. Detail attribution is off by default; enable with
// WithDetail.
func New(opts ...reconcile.Option) *Session {
	return &Session{cfg: reconcile.DefaultConfig(opts...)}
}

// WithDetail toggles whether Reconcile also runs the attribution pass,
// returning the same Session for chaining.
func (s *Session) WithDetail(enabled bool) *Session {
	s.withDetail = enabled
	return s
}

// Config returns the session's resolved reconcile configuration.
func (s *Session) Config() reconcile.Config { return s.cfg }

// Reconcile clears g's memo state, finds its optimal rooting edge against
// species, and returns the winning corner, its DlCost, and its rooted
// view. If detail attribution is enabled, it also accumulates per-node
// duplication/loss counts onto species.
func (s *Session) Reconcile(g *utree.Tree, species *rtree.SpeciesTree) (Result, error) {
	log.Println("session: clearing gene tree memo state")
	g.Clear()

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
	log.Printf("session: reconciled pair, cost=%s\n", cost)

	if s.withDetail {
		if err := reconcile.AttributeDetail(g, species, edge); err != nil {
			return Result{}, err
		}
	}

	return Result{Edge: edge, Cost: cost, Scalar: cost.Mut(s.cfg.Weights), Rooted: rooted}, nil
}
