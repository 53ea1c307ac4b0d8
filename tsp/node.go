package tsp

import "fmt"

// Node is one subproblem of the search tree.
//
// A node is defined by the arcs committed so far (include decisions), the
// arcs forbidden so far (exclude decisions) and the reduced matrix that
// reflects both. Nodes are immutable once published by the driver; children
// are built from copies, so siblings never share mutable state.
//
// Bound bookkeeping follows Little's algorithm: LowerBound is the sum of all
// reductions on the way from the root. Every committed arc was a zero cell
// of the reduced matrix when chosen, so LowerBound already pays for it and
//
//	TotalEstimate = PathCost + Remaining() = LowerBound.
type Node struct {
	// ID is the creation order within one solve (root is 0).
	ID int `json:"id"`

	// Parent is the ID of the expanded node, −1 for the root.
	Parent int `json:"parent"`

	// Depth is the number of branch decisions from the root.
	Depth int `json:"depth"`

	// Arcs are the committed arcs in commit order.
	Arcs []Arc `json:"arcs"`

	// Excluded are the arcs forbidden by exclude decisions on the way here.
	Excluded []Arc `json:"excluded"`

	// Path is the chain of committed arcs followed from the start city.
	// It always begins with the start city.
	Path []int `json:"path"`

	// PathCost is the original cost of all committed arcs.
	PathCost float64 `json:"path_cost"`

	// Matrix is the reduced matrix of this subproblem.
	Matrix CostMatrix `json:"matrix"`

	// LowerBound is the accumulated reduction amount from the root.
	LowerBound float64 `json:"lower_bound"`

	// TotalEstimate is the bound used for selection and pruning.
	TotalEstimate float64 `json:"total_estimate"`

	// Infeasible marks a dead end: some city lost every outgoing or
	// incoming arc. Such nodes are traced but never pushed.
	Infeasible bool `json:"infeasible"`

	start int
	succ  []int // succ[i] = j for committed i→j, −1 otherwise
	pred  []int // pred[j] = i for committed i→j, −1 otherwise
}

// Remaining is the lower bound on the cost still to be paid to complete a
// tour from this node.
func (n *Node) Remaining() float64 { return n.TotalEstimate - n.PathCost }

// Committed reports whether arc a is part of this node's decisions.
func (n *Node) Committed(a Arc) bool {
	return a.From >= 0 && a.From < len(n.succ) && n.succ[a.From] == a.To
}

// IsCandidate reports whether N−1 arcs are committed, which leaves exactly
// one arc to close the tour.
func (n *Node) IsCandidate() bool { return len(n.Arcs) == n.Matrix.N()-1 }

// NewRoot reduces input and returns the root node of a search from start.
func NewRoot(input CostMatrix, start int) (*Node, error) {
	if start < 0 || start >= input.N() {
		return nil, fmt.Errorf("%w: start=%d, N=%d", ErrStartOutOfRange, start, input.N())
	}
	reduced, amount := Reduce(input)

	return newRoot(reduced, amount, start), nil
}

// newRoot builds the root node from the reduced input matrix.
func newRoot(reduced CostMatrix, amount float64, start int) *Node {
	var size = reduced.N()
	root := &Node{
		ID:            0,
		Parent:        -1,
		Arcs:          []Arc{},
		Excluded:      []Arc{},
		Matrix:        reduced,
		LowerBound:    amount,
		TotalEstimate: amount,
		start:         start,
		succ:          fill(size, -1),
		pred:          fill(size, -1),
	}
	root.Path = root.chainFrom(start)
	root.Infeasible = !root.feasible()

	return root
}

// chainFrom follows committed arcs from city s.
func (n *Node) chainFrom(s int) []int {
	path := []int{s}
	var cur = s
	for len(path) <= len(n.succ) {
		cur = n.succ[cur]
		if cur < 0 || cur == s {
			break
		}
		path = append(path, cur)
	}

	return path
}

// chainEnds returns the first and last city of the committed chain through
// arc from→to, and the number of cities on it.
func (n *Node) chainEnds(from, to int) (head, tail, length int) {
	head, tail, length = from, to, 2
	for n.pred[head] >= 0 && length <= len(n.succ) {
		head = n.pred[head]
		length++
	}
	for n.succ[tail] >= 0 && length <= len(n.succ) {
		tail = n.succ[tail]
		length++
	}

	return head, tail, length
}

// feasible reports whether every city still missing a successor (predecessor)
// has a non-forbidden cell in its row (column).
func (n *Node) feasible() bool {
	var (
		size = n.Matrix.N()
		i, j int
		ok   bool
	)
	for i = 0; i < size; i++ {
		if n.succ[i] < 0 {
			ok = false
			for j = 0; j < size && !ok; j++ {
				ok = !n.Matrix.Forbidden(i, j)
			}
			if !ok {
				return false
			}
		}
		if n.pred[i] < 0 {
			ok = false
			for j = 0; j < size && !ok; j++ {
				ok = !n.Matrix.Forbidden(j, i)
			}
			if !ok {
				return false
			}
		}
	}

	return true
}

// closingArc returns the arc that completes a candidate node's chain into a
// Hamiltonian cycle.
func (n *Node) closingArc() (Arc, error) {
	if !n.IsCandidate() {
		return Arc{}, fmt.Errorf("%w: node %d has %d of %d arcs", ErrInvariant, n.ID, len(n.Arcs), n.Matrix.N()-1)
	}
	head, tail := -1, -1
	for i := range n.succ {
		if n.pred[i] < 0 {
			if head >= 0 {
				return Arc{}, fmt.Errorf("%w: node %d has several chain heads", ErrInvariant, n.ID)
			}
			head = i
		}
		if n.succ[i] < 0 {
			if tail >= 0 {
				return Arc{}, fmt.Errorf("%w: node %d has several chain tails", ErrInvariant, n.ID)
			}
			tail = i
		}
	}
	if head < 0 || tail < 0 {
		return Arc{}, fmt.Errorf("%w: node %d holds a cycle", ErrInvariant, n.ID)
	}

	return Arc{From: tail, To: head}, nil
}

// closedTour returns the cycle formed by the committed arcs plus closing,
// starting and ending at the start city.
func (n *Node) closedTour(closing Arc) []int {
	var size = len(n.succ)
	next := append([]int(nil), n.succ...)
	next[closing.From] = closing.To

	tour := make([]int, 0, size+1)
	var (
		cur = n.start
		k   int
	)
	for k = 0; k <= size; k++ {
		tour = append(tour, cur)
		cur = next[cur]
	}

	return tour
}

func fill(size, v int) []int {
	out := make([]int, size)
	var i int
	for i = range out {
		out[i] = v
	}

	return out
}
