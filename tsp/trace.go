// Package tsp - Trace Recorder.
//
// A Trace is the complete, ordered history of one Solve call. A viewer can
// replay every intermediate matrix, regret table and branch decision from
// the steps alone, without re-running the search.
//
// Steps are value types; the matrices and nodes they reference are immutable
// snapshots, so a finished Trace may be read from any goroutine.
//
// JSON: a Trace encodes as an array of objects carrying a "type" field with
// the StepKind, followed by the step fields. Forbidden matrix cells encode
// as null.
package tsp

import (
	"encoding/json"
	"log/slog"
)

// StepKind tags a trace step.
type StepKind string

// Step kinds in the order a typical expansion emits them.
const (
	KindMatrixReduction   StepKind = "matrix_reduction"
	KindRootNode          StepKind = "start"
	KindBestNodeSelection StepKind = "best_node_selection"
	KindRegretCalculation StepKind = "regret_calculation"
	KindBranchDevelopment StepKind = "branch_development"
	KindArcBlocking       StepKind = "arc_blocking"
	KindTourFound         StepKind = "found_tour"
	KindFinalResult       StepKind = "final_result"
)

// Step is one immutable trace entry.
type Step interface {
	Kind() StepKind
	// Index is the position of the step in its Trace.
	Index() int
	// Text is a human-readable description using city labels.
	Text() string
}

// StepHeader carries the fields shared by every step.
type StepHeader struct {
	Seq         int    `json:"seq"`
	Description string `json:"description"`
}

// Index implements Step.
func (h StepHeader) Index() int { return h.Seq }

// Text implements Step.
func (h StepHeader) Text() string { return h.Description }

// ReductionPhase names the subproblem a MatrixReductionStep belongs to.
type ReductionPhase string

const (
	PhaseRoot    ReductionPhase = "root"
	PhaseInclude ReductionPhase = "include"
)

// Fate is what the driver did with a freshly built child.
type Fate string

const (
	FateOpen       Fate = "open"       // pushed onto the frontier
	FatePruned     Fate = "pruned"     // bound ≥ incumbent
	FateInfeasible Fate = "infeasible" // a city lost all outgoing or incoming arcs
)

// MatrixReductionStep records one Reduce call: the root reduction or the
// reduction of an include child.
type MatrixReductionStep struct {
	StepHeader
	NodeID int            `json:"node"`
	Phase  ReductionPhase `json:"phase"`
	Before CostMatrix     `json:"original_matrix"`
	After  CostMatrix     `json:"reduced_matrix"`
	Amount float64        `json:"reduction_value"`
}

// RootNodeStep announces the root node.
type RootNodeStep struct {
	StepHeader
	Node *Node `json:"node"`
}

// BestNodeSelectionStep records the node pulled off the frontier and the
// nodes still open after the pull, in selection order.
type BestNodeSelectionStep struct {
	StepHeader
	Selected *Node   `json:"selected_node"`
	Open     []*Node `json:"open_nodes"`
}

// RegretCalculationStep records the regret table of the expanded node.
type RegretCalculationStep struct {
	StepHeader
	NodeID  int        `json:"node"`
	Matrix  CostMatrix `json:"matrix"`
	Regrets []Regret   `json:"regrets"`
	Max     Regret     `json:"max_regret"`
}

// BranchDevelopmentStep records a split on the max-regret arc.
type BranchDevelopmentStep struct {
	StepHeader
	ParentID    int     `json:"parent"`
	Arc         Arc     `json:"selected_arc"`
	Regret      float64 `json:"regret"`
	Include     *Node   `json:"include_node"`
	Exclude     *Node   `json:"exclude_node"`
	IncludeFate Fate    `json:"include_fate"`
	ExcludeFate Fate    `json:"exclude_fate"`
	ClosingBan  *Arc    `json:"closing_ban,omitempty"`
}

// ArcBlockingStep records the exclude child: the arc is blocked in the
// parent matrix and the result is reduced before the next regret round.
type ArcBlockingStep struct {
	StepHeader
	NodeID  int        `json:"node"`
	Arc     Arc        `json:"blocked_arc"`
	Before  CostMatrix `json:"original_matrix"`
	Blocked CostMatrix `json:"blocked_matrix"`
	Reduced CostMatrix `json:"reduced_matrix"`
	Amount  float64    `json:"reduction_value"`
}

// TourFoundStep records a complete tour that improved the incumbent.
type TourFoundStep struct {
	StepHeader
	NodeID int     `json:"node"`
	Tour   []int   `json:"path"`
	Cost   float64 `json:"cost"`
}

// FinalResultStep closes a successful trace.
type FinalResultStep struct {
	StepHeader
	Tour  []int   `json:"best_path"`
	Cost  float64 `json:"best_cost"`
	Stats Stats   `json:"stats"`
}

func (MatrixReductionStep) Kind() StepKind   { return KindMatrixReduction }
func (RootNodeStep) Kind() StepKind          { return KindRootNode }
func (BestNodeSelectionStep) Kind() StepKind { return KindBestNodeSelection }
func (RegretCalculationStep) Kind() StepKind { return KindRegretCalculation }
func (BranchDevelopmentStep) Kind() StepKind { return KindBranchDevelopment }
func (ArcBlockingStep) Kind() StepKind       { return KindArcBlocking }
func (TourFoundStep) Kind() StepKind         { return KindTourFound }
func (FinalResultStep) Kind() StepKind       { return KindFinalResult }

// MarshalJSON implementations add the "type" tag; the local alias types
// drop the methods so the encoder does not recurse.

func (s MatrixReductionStep) MarshalJSON() ([]byte, error) {
	type alias MatrixReductionStep
	return json.Marshal(struct {
		Type StepKind `json:"type"`
		alias
	}{s.Kind(), alias(s)})
}

func (s RootNodeStep) MarshalJSON() ([]byte, error) {
	type alias RootNodeStep
	return json.Marshal(struct {
		Type StepKind `json:"type"`
		alias
	}{s.Kind(), alias(s)})
}

func (s BestNodeSelectionStep) MarshalJSON() ([]byte, error) {
	type alias BestNodeSelectionStep
	return json.Marshal(struct {
		Type StepKind `json:"type"`
		alias
	}{s.Kind(), alias(s)})
}

func (s RegretCalculationStep) MarshalJSON() ([]byte, error) {
	type alias RegretCalculationStep
	return json.Marshal(struct {
		Type StepKind `json:"type"`
		alias
	}{s.Kind(), alias(s)})
}

func (s BranchDevelopmentStep) MarshalJSON() ([]byte, error) {
	type alias BranchDevelopmentStep
	return json.Marshal(struct {
		Type StepKind `json:"type"`
		alias
	}{s.Kind(), alias(s)})
}

func (s ArcBlockingStep) MarshalJSON() ([]byte, error) {
	type alias ArcBlockingStep
	return json.Marshal(struct {
		Type StepKind `json:"type"`
		alias
	}{s.Kind(), alias(s)})
}

func (s TourFoundStep) MarshalJSON() ([]byte, error) {
	type alias TourFoundStep
	return json.Marshal(struct {
		Type StepKind `json:"type"`
		alias
	}{s.Kind(), alias(s)})
}

func (s FinalResultStep) MarshalJSON() ([]byte, error) {
	type alias FinalResultStep
	return json.Marshal(struct {
		Type StepKind `json:"type"`
		alias
	}{s.Kind(), alias(s)})
}

// Trace is the ordered step history of one Solve call.
type Trace []Step

// Len returns the number of steps.
func (t Trace) Len() int { return len(t) }

// Filter returns the steps of the given kind, in trace order.
func (t Trace) Filter(kind StepKind) Trace {
	var out Trace
	for _, s := range t {
		if s.Kind() == kind {
			out = append(out, s)
		}
	}

	return out
}

// Kinds returns the kind of every step, in trace order.
func (t Trace) Kinds() []StepKind {
	out := make([]StepKind, len(t))
	for i, s := range t {
		out[i] = s.Kind()
	}

	return out
}

// StepsOf returns the steps of concrete type T, in trace order.
func StepsOf[T Step](t Trace) []T {
	var out []T
	for _, s := range t {
		if v, ok := s.(T); ok {
			out = append(out, v)
		}
	}

	return out
}

// recorder appends steps for one solve and forwards them to the hook.
type recorder struct {
	steps  Trace
	onStep func(Step) error
	log    *slog.Logger
}

// header stamps the next sequence number.
func (r *recorder) header(desc string) StepHeader {
	return StepHeader{Seq: len(r.steps), Description: desc}
}

// add appends s and runs the hook; a hook error aborts the solve.
func (r *recorder) add(s Step) error {
	r.steps = append(r.steps, s)
	r.log.Debug("little: step",
		slog.Int("seq", s.Index()),
		slog.String("kind", string(s.Kind())),
	)
	if r.onStep != nil {
		return r.onStep(s)
	}

	return nil
}

// trace returns an independent copy of the recorded steps.
func (r *recorder) trace() Trace {
	return append(Trace(nil), r.steps...)
}
