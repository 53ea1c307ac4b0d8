// Package tsp - Regret Evaluator.
//
// For every cell that is exactly 0 the regret is the cheapest alternative
// left in its row plus the cheapest alternative left in its column; it is
// the bound increase incurred by forbidding that arc. The arc with the
// largest regret is the branching arc: forbidding it hurts the most, so the
// exclude child is pushed deep into the frontier while the include child
// keeps the bound low.
//
// Complexity: O(Z·N) for Z zero cells, bounded by O(N³).
package tsp

import "fmt"

// Regrets scans m in row-major order and returns every zero-cell regret plus
// the maximum one (first encountered wins ties).
//
// Errors:
//   - ErrInvariant when m has no zero cell. After Reduce this only happens
//     when every line is forbidden, which the driver never branches on.
func Regrets(m CostMatrix) ([]Regret, Regret, error) {
	var (
		out   []Regret
		best  Regret
		found bool
		i, j  int
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if m.Forbidden(i, j) || m.At(i, j) != 0 {
				continue
			}
			r := Regret{Arc: Arc{From: i, To: j}, Value: regretOf(m, i, j)}
			out = append(out, r)
			if !found || r.Value > best.Value {
				best, found = r, true
			}
		}
	}
	if !found {
		return nil, Regret{}, fmt.Errorf("%w: no zero cell in reduced matrix", ErrInvariant)
	}

	return out, best, nil
}

// regretOf computes min(row i \ {j}) + min(col j \ {i}); a missing
// alternative counts as 0.
func regretOf(m CostMatrix, i, j int) float64 {
	var r float64
	if lo, ok := m.rowMin(i, j); ok {
		r += lo
	}
	if lo, ok := m.colMin(j, i); ok {
		r += lo
	}

	return r
}
