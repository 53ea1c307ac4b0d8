package tsp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every failure returned by this package matches exactly one
// of them under errors.Is; context (coordinates, values) is attached by
// wrapping at the detection site.
var (
	// ErrNilMatrix is returned when Solve receives a nil matrix.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNonSquare is returned when the distance matrix is not N×N.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrTooSmall is returned for N < 2.
	ErrTooSmall = errors.New("tsp: at least two cities are required")

	// ErrTooLarge is returned by BruteForce above its enumeration limit.
	ErrTooLarge = errors.New("tsp: instance too large for enumeration")

	// ErrNegativeCost is returned for a negative off-diagonal cost.
	ErrNegativeCost = errors.New("tsp: negative cost")

	// ErrNaNCost is returned for NaN or −Inf off-diagonal costs.
	ErrNaNCost = errors.New("tsp: non-finite cost outside the sentinel convention")

	// ErrCostOverflow is returned when finite costs are large enough that a
	// sum of N of them could reach the sentinel.
	ErrCostOverflow = errors.New("tsp: finite costs may reach the sentinel")

	// ErrStartOutOfRange is returned when the start city is not in [0, N).
	ErrStartOutOfRange = errors.New("tsp: start city out of range")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("tsp: invalid option supplied")

	// ErrNoTour is returned when the instance admits no Hamiltonian cycle.
	ErrNoTour = errors.New("tsp: no Hamiltonian cycle exists")

	// ErrInvariant marks an internal invariant violation (a defect, not bad input).
	ErrInvariant = errors.New("tsp: internal invariant violated")

	// ErrTimeLimit is returned when Options.TimeLimit elapsed before termination.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrInvalidTour is returned by the tour helpers for a malformed cycle.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// CostError reports the offending cell of a rejected distance matrix.
type CostError struct {
	Row, Col int
	Value    float64
	Err      error // one of ErrNegativeCost, ErrNaNCost, ErrCostOverflow
}

func (e *CostError) Error() string {
	return fmt.Sprintf("%v at (%d,%d): %g", e.Err, e.Row, e.Col, e.Value)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *CostError) Unwrap() error { return e.Err }

// Arc is a directed city pair From→To.
type Arc struct {
	From int `json:"i"`
	To   int `json:"j"`
}

// Regret is the penalty of forbidding the zero-cost arc it names.
type Regret struct {
	Arc
	Value float64 `json:"regret"`
}

// Stats summarises one search run.
type Stats struct {
	Expanded    int `json:"expanded"`     // nodes selected and branched on
	Generated   int `json:"generated"`    // child nodes built by the factory
	Pruned      int `json:"pruned"`       // children discarded by the incumbent bound
	Infeasible  int `json:"infeasible"`   // children with an unreachable row or column
	ToursFound  int `json:"tours_found"`  // candidate tours that improved the incumbent
	MaxFrontier int `json:"max_frontier"` // peak number of open nodes
}

// Result is the outcome of a successful Solve.
type Result struct {
	// Tour is the optimal cycle as city indices; Tour[0]==Tour[N]==start.
	Tour []int

	// Cost is the total cost of Tour, rounded to 1e-9.
	Cost float64

	// Trace is the complete ordered step history of the run.
	Trace Trace

	// Stats holds search counters.
	Stats Stats
}
