// Package tsp solves the asymmetric Travelling Salesman Problem exactly with
// Little's branch-and-bound method and records a replayable trace.
//
// What & Why:
//
//	Given an N×N cost matrix (dist[i][j] = cost of i→j, the diagonal and any
//	value ≥ Sentinel meaning "no arc"), Solve returns a minimum-cost
//	Hamiltonian cycle that starts and ends at the chosen city, together with
//	every intermediate matrix, regret table and branching decision.
//
// Algorithm:
//
//	Reduce   rows then columns; the subtracted total is a lower bound.
//	Regrets  for each zero cell, the cheapest way around it; pick the max.
//	Branch   include the arc (delete row/column, ban the premature cycle)
//	         or exclude it (forbid the cell); reduce both children.
//	Search   best-first over the lowest bound, FIFO among equals; stop once
//	         no open bound can undercut the incumbent.
//
// Entry points:
//
//	Solve(dist matrix.Matrix, opts...)   validated solve over any Matrix
//	SolveRows(rows [][]float64, opts...) convenience wrapper
//	BruteForce(dist, opts...)            exact enumeration oracle (N ≤ 10)
//	Reduce, Regrets, NewRoot, Branch     the building blocks, for viewers
//	                                     that want to step manually
//
// Trace:
//
//	Result.Trace holds typed steps (MatrixReductionStep, RootNodeStep,
//	BestNodeSelectionStep, RegretCalculationStep, BranchDevelopmentStep,
//	ArcBlockingStep, TourFoundStep, FinalResultStep). Every step is an
//	immutable value with its position and a description using city labels.
//	A Trace encodes to JSON with a "type" tag per step. WithOnStep streams
//	steps as they are produced.
//
// Errors:
//
//	Malformed input fails before any search with ErrNilMatrix, ErrNonSquare,
//	ErrTooSmall, ErrStartOutOfRange or a *CostError wrapping ErrNegativeCost,
//	ErrNaNCost or ErrCostOverflow. An instance without a Hamiltonian cycle
//	yields ErrNoTour. Cancellation and WithTimeLimit abort without partial
//	results.
//
// Complexity:
//
//	Exponential in N in the worst case. Each expansion costs O(N²) for the
//	child matrices and O(N³) for the regret scan.
//
// Concurrency:
//
//	Solve is synchronous and keeps no global state; independent calls may run
//	in parallel. A finished Result is read-only and safe to share.
package tsp
