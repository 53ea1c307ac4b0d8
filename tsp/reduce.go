// Package tsp - Matrix Reducer.
//
// Reduce subtracts, for every row and then every column of the row-reduced
// matrix, the minimum non-forbidden entry from the non-forbidden entries of
// that line. The total subtracted is an additive lower bound on any tour that
// is still possible in the subproblem: each city must be left once and
// entered once, so each line contributes at least its minimum.
//
// Guarantees:
//   - Sentinel cells are never read as candidates nor decremented.
//   - A line that is entirely forbidden contributes 0 and is left untouched.
//   - Every line with a non-forbidden cell ends with at least one exact 0
//     (x − min(x) is exactly 0 in IEEE arithmetic for the minimising cell).
//   - Idempotent: Reduce(Reduce(m)) subtracts 0.
//
// Complexity: O(N²) time, O(N²) space for the new snapshot.
package tsp

// Reduce returns the reduced snapshot and the total amount subtracted.
// The input snapshot is not modified.
func Reduce(m CostMatrix) (CostMatrix, float64) {
	b := edit(m)
	total := b.reduceRows() + b.reduceCols()

	return b.freeze(), total
}

// IsReduced reports whether every line holding a non-forbidden cell holds an exact 0.
func IsReduced(m CostMatrix) bool {
	var (
		i, j               int
		rowFinite, rowZero bool
		colFinite, colZero bool
	)
	for i = 0; i < m.n; i++ {
		rowFinite, rowZero = false, false
		colFinite, colZero = false, false
		for j = 0; j < m.n; j++ {
			if !m.Forbidden(i, j) {
				rowFinite = true
				rowZero = rowZero || m.At(i, j) == 0
			}
			if !m.Forbidden(j, i) {
				colFinite = true
				colZero = colZero || m.At(j, i) == 0
			}
		}
		if (rowFinite && !rowZero) || (colFinite && !colZero) {
			return false
		}
	}

	return true
}

// reduceRows performs the row pass in place and returns its contribution.
func (b *costBuilder) reduceRows() float64 {
	var (
		i, j  int
		total float64
	)
	for i = 0; i < b.n; i++ {
		lo, ok := b.view().rowMin(i, -1)
		if !ok || lo == 0 {
			continue
		}
		for j = 0; j < b.n; j++ {
			if !b.forbidden(i, j) {
				b.w[i*b.n+j] -= lo
			}
		}
		total += lo
	}

	return total
}

// reduceCols performs the column pass in place and returns its contribution.
func (b *costBuilder) reduceCols() float64 {
	var (
		i, j  int
		total float64
	)
	for j = 0; j < b.n; j++ {
		lo, ok := b.view().colMin(j, -1)
		if !ok || lo == 0 {
			continue
		}
		for i = 0; i < b.n; i++ {
			if !b.forbidden(i, j) {
				b.w[i*b.n+j] -= lo
			}
		}
		total += lo
	}

	return total
}

// view exposes the builder's current cells as a transient read-only
// snapshot. The result aliases the builder buffer and must not outlive the
// next mutation.
func (b *costBuilder) view() CostMatrix {
	return CostMatrix{n: b.n, sentinel: b.sentinel, w: b.w}
}

// rowMin returns the minimum non-forbidden value of row i, skipping column
// skip (pass −1 to skip nothing). ok is false when no such value exists.
func (m CostMatrix) rowMin(i, skip int) (lo float64, ok bool) {
	var j int
	for j = 0; j < m.n; j++ {
		if j == skip || m.Forbidden(i, j) {
			continue
		}
		if !ok || m.At(i, j) < lo {
			lo, ok = m.At(i, j), true
		}
	}

	return lo, ok
}

// colMin is the column counterpart of rowMin.
func (m CostMatrix) colMin(j, skip int) (lo float64, ok bool) {
	var i int
	for i = 0; i < m.n; i++ {
		if i == skip || m.Forbidden(i, j) {
			continue
		}
		if !ok || m.At(i, j) < lo {
			lo, ok = m.At(i, j), true
		}
	}

	return lo, ok
}
