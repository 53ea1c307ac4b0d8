// Package tsp_test provides runnable, deterministic examples of the solver
// and its trace.
package tsp_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/littlebb/tsp"
)

// ExampleSolveRows solves the textbook four-city instance.
func ExampleSolveRows() {
	rows := [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
	res, err := tsp.SolveRows(rows)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tsp.FormatTour(res.Tour))
	fmt.Println("cost:", res.Cost)
	fmt.Println("expanded:", res.Stats.Expanded)
	// Output:
	// A → C → D → B → A
	// cost: 80
	// expanded: 6
}

// ExampleTrace replays every step of a two-city search.
func ExampleTrace() {
	res, err := tsp.SolveRows([][]float64{
		{0, 1},
		{1, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, st := range res.Trace {
		fmt.Printf("%d %s: %s\n", st.Index(), st.Kind(), st.Text())
	}
	// Output:
	// 0 matrix_reduction: Reduce rows and columns of the cost matrix: lower bound 2
	// 1 start: Start at A with bound 2
	// 2 best_node_selection: Select node 0 with the smallest bound 2 (0 open)
	// 3 regret_calculation: Regrets of node 0: maximum 0 on arc (A,B)
	// 4 branch_development: Branch on arc (A,B): include (node 1, bound 2, open), exclude (node 2, bound 2, infeasible)
	// 5 matrix_reduction: Include (A,B) in node 1: delete row A and column B, reduce by 0
	// 6 arc_blocking: Block arc (A,B) in node 2, reduce by 0
	// 7 best_node_selection: Select node 1 with the smallest bound 2 (0 open)
	// 8 found_tour: Tour A → B → A with cost 2
	// 9 final_result: Optimal tour A → B → A with cost 2
}

// ExampleWithLabels names the cities in the trace.
func ExampleWithLabels() {
	res, err := tsp.SolveRows([][]float64{
		{0, 5, 9},
		{4, 0, 3},
		{2, 8, 0},
	}, tsp.WithLabels("Oslo", "Bergen", "Tromsø"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	final := res.Trace.Filter(tsp.KindFinalResult)[0]
	fmt.Println(final.Text())
	// Output:
	// Optimal tour Oslo → Bergen → Tromsø → Oslo with cost 10
}

// ExampleCostMatrix_MarshalJSON shows forbidden cells as null.
func ExampleCostMatrix_MarshalJSON() {
	m, err := tsp.NewCostMatrix([][]float64{
		{0, 7},
		{3, 0},
	}, tsp.DefaultSentinel)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	raw, _ := json.Marshal(m)
	fmt.Println(string(raw))
	// Output:
	// [[null,7],[3,null]]
}
