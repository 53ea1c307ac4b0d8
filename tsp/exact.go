package tsp

import (
	"fmt"

	"github.com/katalvlaran/littlebb/matrix"
)

// MaxBruteForceN is the largest instance BruteForce accepts.
const MaxBruteForceN = 10

// BruteForce enumerates every Hamiltonian cycle from the start city and
// returns the cheapest one. Cities after the start are tried in ascending
// index order and the first minimum wins, so ties resolve deterministically.
//
// It honours WithStart, WithSentinel and WithEps; Trace is left empty. It
// exists as an oracle for Solve and for tiny instances.
//
// Errors: the validation errors of Solve, ErrTooLarge for N > MaxBruteForceN,
// ErrNoTour when no cycle avoids forbidden arcs.
//
// Time complexity: O(N!) tours, pruned on partial cost.
func BruteForce(dist matrix.Matrix, opts ...Option) (Result, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	m, err := prepare(dist, o.Start, o.Sentinel)
	if err != nil {
		return Result{}, err
	}
	if m.N() > MaxBruteForceN {
		return Result{}, fmt.Errorf("%w: N=%d > %d", ErrTooLarge, m.N(), MaxBruteForceN)
	}

	e := &enumerator{
		m:       m,
		eps:     o.Eps,
		path:    make([]int, 0, m.N()+1),
		visited: make([]bool, m.N()),
	}
	e.path = append(e.path, o.Start)
	e.visited[o.Start] = true
	e.walk(0)

	if e.best == nil {
		return Result{}, ErrNoTour
	}

	return Result{Tour: e.best, Cost: round1e9(e.bestCost), Stats: Stats{ToursFound: e.found}}, nil
}

// enumerator holds the depth-first state of BruteForce.
type enumerator struct {
	m        CostMatrix
	eps      float64
	path     []int
	visited  []bool
	best     []int
	bestCost float64
	found    int
}

func (e *enumerator) walk(cost float64) {
	var (
		n    = e.m.N()
		last = e.path[len(e.path)-1]
	)
	if e.best != nil && cost >= e.bestCost-e.eps {
		return
	}
	if len(e.path) == n {
		first := e.path[0]
		if e.m.Forbidden(last, first) {
			return
		}
		total := cost + e.m.At(last, first)
		if e.best == nil || total < e.bestCost-e.eps {
			e.best = append(append([]int(nil), e.path...), first)
			e.bestCost = total
			e.found++
		}
		return
	}

	var v int
	for v = 0; v < n; v++ {
		if e.visited[v] || e.m.Forbidden(last, v) {
			continue
		}
		e.visited[v] = true
		e.path = append(e.path, v)
		e.walk(cost + e.m.At(last, v))
		e.path = e.path[:len(e.path)-1]
		e.visited[v] = false
	}
}
