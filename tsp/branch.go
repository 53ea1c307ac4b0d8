// Package tsp - Node Factory.
//
// Branch splits a node on an arc (i,j) into the two classical subproblems
// of Little's algorithm:
//
//	include: commit i→j. Row i and column j become forbidden (city i is left
//	         and city j is entered exactly once), and the arc that would close
//	         the committed chain through i→j into a premature cycle is
//	         forbidden too. For an isolated arc that ban is exactly j→i.
//	exclude: forbid i→j only.
//
// Each child matrix is reduced; the child bound is the parent bound plus that
// reduction. The regret that selected the arc is not added again: for the
// exclude child the reduction already realises it, for the include child it
// does not apply.
//
// Branch is pure: it reads the parent and the original matrix and builds new
// snapshots. Child IDs are assigned by the caller.
package tsp

import "fmt"

// Branching is the outcome of one Branch call, including every intermediate
// matrix a viewer needs to replay the split.
type Branching struct {
	Arc Arc `json:"arc"`

	// Include commits Arc; Exclude forbids it.
	Include *Node `json:"include"`
	Exclude *Node `json:"exclude"`

	// IncludeBlocked is the parent matrix after deleting row/column and
	// applying ClosingBan, before reduction.
	IncludeBlocked   CostMatrix `json:"include_blocked"`
	IncludeReduction float64    `json:"include_reduction"`

	// ClosingBan is the anti-subtour arc forbidden in the include child;
	// nil when the committed chain already spans every city.
	ClosingBan *Arc `json:"closing_ban,omitempty"`

	// ExcludeBlocked is the parent matrix with Arc forbidden, before reduction.
	ExcludeBlocked   CostMatrix `json:"exclude_blocked"`
	ExcludeReduction float64    `json:"exclude_reduction"`
}

// Branch builds the include and exclude children of parent on arc a.
// orig is the validated input matrix; it prices the committed arc.
//
// Errors:
//   - ErrInvariant if a is out of range, forbidden in parent.Matrix, or
//     conflicts with an already committed arc.
func Branch(parent *Node, a Arc, orig CostMatrix) (Branching, error) {
	var size = parent.Matrix.N()
	if len(parent.succ) != size || len(parent.pred) != size {
		return Branching{}, fmt.Errorf("%w: node %d was not built by NewRoot or Branch", ErrInvariant, parent.ID)
	}
	if a.From < 0 || a.From >= size || a.To < 0 || a.To >= size {
		return Branching{}, fmt.Errorf("%w: arc %v out of range", ErrInvariant, a)
	}
	if parent.Matrix.Forbidden(a.From, a.To) {
		return Branching{}, fmt.Errorf("%w: arc %v is forbidden in node %d", ErrInvariant, a, parent.ID)
	}
	if parent.succ[a.From] >= 0 || parent.pred[a.To] >= 0 {
		return Branching{}, fmt.Errorf("%w: arc %v conflicts with committed arcs of node %d", ErrInvariant, a, parent.ID)
	}

	var out = Branching{Arc: a}
	out.Include, out.IncludeBlocked, out.IncludeReduction, out.ClosingBan = includeChild(parent, a, orig)
	out.Exclude, out.ExcludeBlocked, out.ExcludeReduction = excludeChild(parent, a)

	return out, nil
}

// includeChild commits a and returns the child, its pre-reduction matrix,
// the reduction amount and the closing ban (if any).
func includeChild(parent *Node, a Arc, orig CostMatrix) (*Node, CostMatrix, float64, *Arc) {
	child := derive(parent)
	child.succ[a.From] = a.To
	child.pred[a.To] = a.From
	child.Arcs = append(child.Arcs, a)
	child.PathCost = parent.PathCost + orig.At(a.From, a.To)

	b := edit(parent.Matrix)
	b.forbidRow(a.From)
	b.forbidCol(a.To)

	var ban *Arc
	head, tail, length := child.chainEnds(a.From, a.To)
	if length < parent.Matrix.N() {
		b.forbid(tail, head)
		ban = &Arc{From: tail, To: head}
	}
	blocked := b.freeze()

	reduced, amount := Reduce(blocked)
	child.finish(reduced, parent.LowerBound+amount)

	return child, blocked, amount, ban
}

// excludeChild forbids a and returns the child, its pre-reduction matrix and
// the reduction amount.
func excludeChild(parent *Node, a Arc) (*Node, CostMatrix, float64) {
	child := derive(parent)
	child.Excluded = append(child.Excluded, a)

	b := edit(parent.Matrix)
	b.forbid(a.From, a.To)
	blocked := b.freeze()

	reduced, amount := Reduce(blocked)
	child.finish(reduced, parent.LowerBound+amount)

	return child, blocked, amount
}

// derive copies the decision state of parent into a fresh, unpublished child.
func derive(parent *Node) *Node {
	return &Node{
		Parent:   parent.ID,
		Depth:    parent.Depth + 1,
		Arcs:     cloneArcs(parent.Arcs),
		Excluded: cloneArcs(parent.Excluded),
		PathCost: parent.PathCost,
		start:    parent.start,
		succ:     append([]int(nil), parent.succ...),
		pred:     append([]int(nil), parent.pred...),
	}
}

// finish installs the reduced matrix and bound and derives Path/Infeasible.
func (n *Node) finish(reduced CostMatrix, bound float64) {
	n.Matrix = reduced
	n.LowerBound = bound
	n.TotalEstimate = bound
	n.Path = n.chainFrom(n.start)
	n.Infeasible = !n.feasible()
}

// cloneArcs copies a into a non-nil slice with room for one more decision.
func cloneArcs(a []Arc) []Arc {
	out := make([]Arc, len(a), len(a)+1)
	copy(out, a)

	return out
}
