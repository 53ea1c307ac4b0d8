// Package tsp - Search Driver.
//
// Solve runs Little's branch-and-bound as a best-first search:
//
//  1. Validate the input and reduce it; the root node carries the reduction
//     as its lower bound.
//  2. Pop the open node with the smallest TotalEstimate (FIFO among equals).
//     Stop once an incumbent exists and the popped estimate ≥ best−Eps.
//  3. A candidate node (N−1 committed arcs) is closed into a tour; a cheaper
//     tour replaces the incumbent.
//  4. Otherwise compute regrets, branch on the max-regret arc and push every
//     child that is feasible and still below the incumbent.
//
// Every phase appends a step to the trace. Lower bounds are admissible, so the
// first tour whose cost no open node can undercut is optimal.
//
// Complexity: exponential in N in the worst case; O(N²) per expansion for
// matrix copies plus O(N³) for regrets. Memory: O(N²) per open node.
package tsp

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/littlebb/matrix"
)

// Solve returns the minimum-cost Hamiltonian cycle of dist from the start city
// together with the full step trace.
//
// dist[i][j] is the cost of travelling from i to j. The diagonal is ignored.
// Cells ≥ the sentinel (or +Inf) are forbidden arcs.
//
// Errors (match with errors.Is):
//   - ErrOptionViolation for an invalid Option.
//   - ErrNilMatrix, ErrNonSquare, ErrTooSmall, ErrStartOutOfRange.
//   - ErrNegativeCost, ErrNaNCost, ErrCostOverflow wrapped in *CostError.
//   - ErrNoTour when no Hamiltonian cycle avoids the forbidden arcs.
//   - ErrTimeLimit, or the context error, when the search was cut short.
//   - Any error returned by the OnStep hook.
//
// On error no partial result is returned.
func Solve(dist matrix.Matrix, opts ...Option) (Result, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	orig, err := prepare(dist, o.Start, o.Sentinel)
	if err != nil {
		return Result{}, err
	}

	s := newSearch(orig, o)

	return s.run()
}

// SolveRows is Solve over a row-major [][]float64.
func SolveRows(rows [][]float64, opts ...Option) (Result, error) {
	if rows == nil {
		return Result{}, ErrNilMatrix
	}
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("%w: N=0", ErrTooSmall)
	}
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrNonSquare, err)
	}

	return Solve(d, opts...)
}

// search holds the state of one Solve call. It is never shared.
type search struct {
	opts Options
	orig CostMatrix
	log  *slog.Logger
	rec  recorder

	useDeadline bool
	deadline    time.Time

	open   frontier
	nextID int
	stats  Stats

	best     []int
	bestCost float64
}

func newSearch(orig CostMatrix, o Options) *search {
	s := &search{
		opts: o,
		orig: orig,
		log:  o.Logger.With(slog.Int("n", orig.N()), slog.Int("start", o.Start)),
	}
	s.rec = recorder{onStep: o.OnStep, log: s.log}
	if o.TimeLimit > 0 {
		s.useDeadline = true
		s.deadline = time.Now().Add(o.TimeLimit)
	}

	return s
}

func (s *search) run() (Result, error) {
	root, err := NewRoot(s.orig, s.opts.Start)
	if err != nil {
		return Result{}, err
	}
	s.nextID = 1
	s.log.Debug("little: root",
		slog.Float64("bound", root.LowerBound),
		slog.Bool("infeasible", root.Infeasible),
	)

	if err = s.rec.add(MatrixReductionStep{
		StepHeader: s.rec.header(fmt.Sprintf("Reduce rows and columns of the cost matrix: lower bound %g", root.LowerBound)),
		NodeID:     root.ID,
		Phase:      PhaseRoot,
		Before:     s.orig,
		After:      root.Matrix,
		Amount:     root.LowerBound,
	}); err != nil {
		return Result{}, err
	}
	if err = s.rec.add(RootNodeStep{
		StepHeader: s.rec.header(fmt.Sprintf("Start at %s with bound %g", s.opts.label(s.opts.Start), root.LowerBound)),
		Node:       root,
	}); err != nil {
		return Result{}, err
	}

	if root.Infeasible {
		s.stats.Infeasible++
	} else {
		s.push(root)
	}

	for s.open.Len() > 0 {
		if err = s.checkBudget(); err != nil {
			return Result{}, err
		}
		if s.best != nil && s.open.peek().TotalEstimate >= s.bestCost-s.opts.Eps {
			s.log.Debug("little: done",
				slog.Float64("best", s.bestCost),
				slog.Float64("next_bound", s.open.peek().TotalEstimate),
			)
			break
		}

		cur := s.open.pop()
		if err = s.rec.add(BestNodeSelectionStep{
			StepHeader: s.rec.header(fmt.Sprintf("Select node %d with the smallest bound %g (%d open)", cur.ID, cur.TotalEstimate, s.open.Len())),
			Selected:   cur,
			Open:       s.open.snapshot(),
		}); err != nil {
			return Result{}, err
		}

		if cur.IsCandidate() {
			err = s.close(cur)
		} else {
			err = s.expand(cur)
		}
		if err != nil {
			return Result{}, err
		}
	}

	if s.best == nil {
		s.log.Debug("little: no tour", slog.Int("expanded", s.stats.Expanded))
		return Result{}, ErrNoTour
	}
	if err = ValidateTour(s.best, s.orig.N(), s.opts.Start); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvariant, err)
	}

	if err = s.rec.add(FinalResultStep{
		StepHeader: s.rec.header(fmt.Sprintf("Optimal tour %s with cost %g", FormatTour(s.best, s.opts.Labels...), s.bestCost)),
		Tour:       append([]int(nil), s.best...),
		Cost:       s.bestCost,
		Stats:      s.stats,
	}); err != nil {
		return Result{}, err
	}

	return Result{
		Tour:  s.best,
		Cost:  s.bestCost,
		Trace: s.rec.trace(),
		Stats: s.stats,
	}, nil
}

// expand branches cur on its max-regret arc and pushes the surviving children.
func (s *search) expand(cur *Node) error {
	regrets, top, err := Regrets(cur.Matrix)
	if err != nil {
		return fmt.Errorf("node %d: %w", cur.ID, err)
	}
	if err = s.rec.add(RegretCalculationStep{
		StepHeader: s.rec.header(fmt.Sprintf("Regrets of node %d: maximum %g on arc %s", cur.ID, top.Value, s.arcLabel(top.Arc))),
		NodeID:     cur.ID,
		Matrix:     cur.Matrix,
		Regrets:    regrets,
		Max:        top,
	}); err != nil {
		return err
	}

	br, err := Branch(cur, top.Arc, s.orig)
	if err != nil {
		return err
	}
	br.Include.ID, br.Exclude.ID = s.nextID, s.nextID+1
	s.nextID += 2
	s.stats.Expanded++
	s.stats.Generated += 2

	incFate, excFate := s.fate(br.Include), s.fate(br.Exclude)
	s.log.Debug("little: expand",
		slog.Int("node", cur.ID),
		slog.Int("from", top.From),
		slog.Int("to", top.To),
		slog.Float64("regret", top.Value),
		slog.Float64("include_bound", br.Include.TotalEstimate),
		slog.Float64("exclude_bound", br.Exclude.TotalEstimate),
	)

	if err = s.rec.add(BranchDevelopmentStep{
		StepHeader: s.rec.header(fmt.Sprintf("Branch on arc %s: include (node %d, bound %g, %s), exclude (node %d, bound %g, %s)",
			s.arcLabel(top.Arc), br.Include.ID, br.Include.TotalEstimate, incFate, br.Exclude.ID, br.Exclude.TotalEstimate, excFate)),
		ParentID:    cur.ID,
		Arc:         top.Arc,
		Regret:      top.Value,
		Include:     br.Include,
		Exclude:     br.Exclude,
		IncludeFate: incFate,
		ExcludeFate: excFate,
		ClosingBan:  br.ClosingBan,
	}); err != nil {
		return err
	}

	banText := ""
	if br.ClosingBan != nil {
		banText = fmt.Sprintf(", forbid %s", s.arcLabel(*br.ClosingBan))
	}
	if err = s.rec.add(MatrixReductionStep{
		StepHeader: s.rec.header(fmt.Sprintf("Include %s in node %d: delete row %s and column %s%s, reduce by %g",
			s.arcLabel(top.Arc), br.Include.ID, s.opts.label(top.From), s.opts.label(top.To), banText, br.IncludeReduction)),
		NodeID: br.Include.ID,
		Phase:  PhaseInclude,
		Before: br.IncludeBlocked,
		After:  br.Include.Matrix,
		Amount: br.IncludeReduction,
	}); err != nil {
		return err
	}
	if err = s.rec.add(ArcBlockingStep{
		StepHeader: s.rec.header(fmt.Sprintf("Block arc %s in node %d, reduce by %g",
			s.arcLabel(top.Arc), br.Exclude.ID, br.ExcludeReduction)),
		NodeID:  br.Exclude.ID,
		Arc:     top.Arc,
		Before:  cur.Matrix,
		Blocked: br.ExcludeBlocked,
		Reduced: br.Exclude.Matrix,
		Amount:  br.ExcludeReduction,
	}); err != nil {
		return err
	}

	s.admit(br.Include, incFate)
	s.admit(br.Exclude, excFate)

	return nil
}

// close completes a candidate node into a tour and updates the incumbent.
func (s *search) close(cur *Node) error {
	closing, err := cur.closingArc()
	if err != nil {
		return err
	}
	if s.orig.Forbidden(closing.From, closing.To) {
		s.log.Debug("little: dead end", slog.Int("node", cur.ID))
		return nil
	}
	tour := cur.closedTour(closing)
	cost := round1e9(cur.PathCost + s.orig.At(closing.From, closing.To))
	if s.best != nil && cost >= s.bestCost-s.opts.Eps {
		return nil
	}

	s.best, s.bestCost = tour, cost
	s.stats.ToursFound++
	s.log.Debug("little: tour",
		slog.Int("node", cur.ID),
		slog.Float64("cost", cost),
		slog.Any("tour", tour),
	)

	return s.rec.add(TourFoundStep{
		StepHeader: s.rec.header(fmt.Sprintf("Tour %s with cost %g", FormatTour(tour, s.opts.Labels...), cost)),
		NodeID:     cur.ID,
		Tour:       append([]int(nil), tour...),
		Cost:       cost,
	})
}

// fate decides what happens to a freshly built child.
func (s *search) fate(n *Node) Fate {
	switch {
	case n.Infeasible:
		return FateInfeasible
	case s.best != nil && n.TotalEstimate >= s.bestCost-s.opts.Eps:
		return FatePruned
	default:
		return FateOpen
	}
}

func (s *search) admit(n *Node, f Fate) {
	switch f {
	case FateInfeasible:
		s.stats.Infeasible++
	case FatePruned:
		s.stats.Pruned++
		s.log.Debug("little: prune", slog.Int("node", n.ID), slog.Float64("bound", n.TotalEstimate))
	default:
		s.push(n)
	}
}

func (s *search) push(n *Node) {
	s.open.push(n)
	if s.open.Len() > s.stats.MaxFrontier {
		s.stats.MaxFrontier = s.open.Len()
	}
}

// checkBudget reports cancellation or an exhausted time limit.
func (s *search) checkBudget() error {
	if err := s.opts.Ctx.Err(); err != nil {
		return fmt.Errorf("tsp: search aborted: %w", err)
	}
	if s.useDeadline && time.Now().After(s.deadline) {
		return fmt.Errorf("%w: after %d expansions", ErrTimeLimit, s.stats.Expanded)
	}

	return nil
}

func (s *search) arcLabel(a Arc) string {
	return "(" + s.opts.label(a.From) + "," + s.opts.label(a.To) + ")"
}
