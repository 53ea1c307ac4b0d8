// Package littlebb solves the Travelling Salesman Problem exactly with
// Little's branch-and-bound algorithm and records every step of the search
// so it can be replayed and explained.
//
// 🚀 What is inside?
//
//	• Cost snapshots: immutable N×N matrices with a forbidden-arc sentinel
//	• Reducer: row/column reduction with the classic lower bound
//	• Regret evaluator: penalty of forbidding every zero-cost arc
//	• Node factory: include/exclude children with subtour elimination
//	• Search driver: best-first search over a bound-ordered frontier
//	• Trace: typed, JSON-ready steps for viewers and teaching material
//
// Under the hood the module is organized in two packages:
//
//	matrix/ — dense row-major matrix container used as solver input
//	tsp/    — the solver, its trace and tour helpers
//
// Quick start:
//
//	res, err := tsp.SolveRows([][]float64{
//		{0, 10, 15, 20},
//		{10, 0, 35, 25},
//		{15, 35, 0, 30},
//		{20, 25, 30, 0},
//	})
//	// res.Tour == [0 2 3 1 0], res.Cost == 80
//
// Requirements: Go 1.23+. Runtime dependencies: none outside the standard
// library; tests use testify and yaml.v3 fixtures.
package littlebb
