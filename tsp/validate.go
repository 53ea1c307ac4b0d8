// Package tsp - input validation.
//
// prepare turns a caller-supplied matrix.Matrix into the working CostMatrix:
//  1. Shape: non-nil, square, N ≥ 2; start ∈ [0, N).
//  2. Values: the diagonal is ignored and forced to the sentinel; NaN and −Inf
//     are rejected; negatives are rejected; +Inf and anything ≥ sentinel mean
//     "no arc".
//  3. Unreachability: every tour sums exactly N finite arcs, so requiring
//     N·max(finite) < sentinel guarantees that no sum of finite costs, and no
//     lower bound derived from them, ever reaches the sentinel.
//
// Deterministic, side-effect free; no logging. O(N²).
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/littlebb/matrix"
)

// prepare validates dist and returns the working snapshot.
func prepare(dist matrix.Matrix, start int, sentinel float64) (CostMatrix, error) {
	if dist == nil {
		return CostMatrix{}, ErrNilMatrix
	}
	if d, ok := dist.(*matrix.Dense); ok && d == nil {
		return CostMatrix{}, ErrNilMatrix
	}
	var (
		n  = dist.Rows()
		nc = dist.Cols()
	)
	if n != nc {
		return CostMatrix{}, fmt.Errorf("%w: %d×%d", ErrNonSquare, n, nc)
	}
	if n < 2 {
		return CostMatrix{}, fmt.Errorf("%w: N=%d", ErrTooSmall, n)
	}
	if start < 0 || start >= n {
		return CostMatrix{}, fmt.Errorf("%w: start=%d, N=%d", ErrStartOutOfRange, start, n)
	}

	b := newCostBuilder(n, sentinel)
	var (
		i, j, maxI, maxJ int
		x                float64
		err              error
	)
	maxv := -1.0
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				b.forbid(i, j)
				continue
			}
			x, err = dist.At(i, j)
			if err != nil {
				return CostMatrix{}, fmt.Errorf("%w: %v", ErrNonSquare, err)
			}
			switch {
			case math.IsNaN(x) || math.IsInf(x, -1):
				return CostMatrix{}, &CostError{Row: i, Col: j, Value: x, Err: ErrNaNCost}
			case x < 0:
				return CostMatrix{}, &CostError{Row: i, Col: j, Value: x, Err: ErrNegativeCost}
			case x >= sentinel:
				b.forbid(i, j)
			default:
				b.set(i, j, x)
				if x > maxv {
					maxv, maxI, maxJ = x, i, j
				}
			}
		}
	}
	if maxv > 0 && float64(n)*maxv >= sentinel {
		return CostMatrix{}, &CostError{Row: maxI, Col: maxJ, Value: maxv, Err: ErrCostOverflow}
	}

	return b.freeze(), nil
}
