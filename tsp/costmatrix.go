// Package tsp - immutable cost matrix snapshots.
//
// Every node of the search tree and every trace step refers to a CostMatrix.
// A CostMatrix is never mutated after construction, so snapshots are shared
// freely between nodes, steps and concurrent readers of a finished trace.
// All mutation goes through costBuilder, which hands out exactly one snapshot.
package tsp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/littlebb/matrix"
)

// CostMatrix is an immutable N×N snapshot with a forbidden-cost sentinel.
// Cells whose value is ≥ Sentinel() are forbidden arcs.
type CostMatrix struct {
	n        int
	sentinel float64
	w        []float64 // row-major, len == n*n
}

// NewCostMatrix copies rows into a snapshot. The diagonal is forced to the
// sentinel and any value ≥ sentinel (including +Inf) is clamped to it.
// Rows must form a square matrix; values are not otherwise validated.
func NewCostMatrix(rows [][]float64, sentinel float64) (CostMatrix, error) {
	var n = len(rows)
	if n == 0 {
		return CostMatrix{}, ErrTooSmall
	}
	b := newCostBuilder(n, sentinel)
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return CostMatrix{}, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(rows[i]), n)
		}
		for j = 0; j < n; j++ {
			b.set(i, j, rows[i][j])
		}
	}
	b.forbidDiagonal()

	return b.freeze(), nil
}

// N returns the number of cities.
func (m CostMatrix) N() int { return m.n }

// Sentinel returns the forbidden-cost value of this snapshot.
func (m CostMatrix) Sentinel() float64 { return m.sentinel }

// At returns the cost of arc i→j. Indices must be in range.
func (m CostMatrix) At(i, j int) float64 { return m.w[i*m.n+j] }

// Forbidden reports whether arc i→j carries the sentinel.
func (m CostMatrix) Forbidden(i, j int) bool { return m.w[i*m.n+j] >= m.sentinel }

// Rows copies the snapshot out as [][]float64 (sentinel cells keep the sentinel value).
func (m CostMatrix) Rows() [][]float64 {
	out := make([][]float64, m.n)
	var i int
	for i = 0; i < m.n; i++ {
		out[i] = append([]float64(nil), m.w[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// Dense converts the snapshot into an independent *matrix.Dense.
func (m CostMatrix) Dense() *matrix.Dense {
	d, err := matrix.NewDenseFrom(m.Rows())
	if err != nil {
		// Only the zero CostMatrix lacks rows.
		return nil
	}

	return d
}

// Equal reports whether both snapshots hold identical cells and sentinel.
func (m CostMatrix) Equal(o CostMatrix) bool {
	if m.n != o.n || m.sentinel != o.sentinel {
		return false
	}
	var k int
	for k = range m.w {
		if m.w[k] != o.w[k] {
			return false
		}
	}

	return true
}

// String renders the matrix with "∞" for forbidden cells.
func (m CostMatrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		b.WriteString("[")
		for j = 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			if m.Forbidden(i, j) {
				b.WriteString("∞")
			} else {
				b.WriteString(fmt.Sprintf("%g", m.At(i, j)))
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// MarshalJSON encodes rows of numbers with null for forbidden cells.
func (m CostMatrix) MarshalJSON() ([]byte, error) {
	rows := make([][]*float64, m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		rows[i] = make([]*float64, m.n)
		for j = 0; j < m.n; j++ {
			if !m.Forbidden(i, j) {
				v := m.At(i, j)
				rows[i][j] = &v
			}
		}
	}

	return json.Marshal(rows)
}

// costBuilder is the only mutable view of cost data. It is single-use:
// freeze hands its buffer to a CostMatrix and the builder must be dropped.
type costBuilder struct {
	n        int
	sentinel float64
	w        []float64
}

func newCostBuilder(n int, sentinel float64) *costBuilder {
	return &costBuilder{n: n, sentinel: sentinel, w: make([]float64, n*n)}
}

// edit copies m into a fresh builder.
func edit(m CostMatrix) *costBuilder {
	b := &costBuilder{n: m.n, sentinel: m.sentinel, w: make([]float64, len(m.w))}
	copy(b.w, m.w)

	return b
}

func (b *costBuilder) at(i, j int) float64 { return b.w[i*b.n+j] }

func (b *costBuilder) forbidden(i, j int) bool { return b.w[i*b.n+j] >= b.sentinel }

// set stores v, clamping anything at or above the sentinel to the sentinel.
func (b *costBuilder) set(i, j int, v float64) {
	if v >= b.sentinel {
		v = b.sentinel
	}
	b.w[i*b.n+j] = v
}

func (b *costBuilder) forbid(i, j int) { b.w[i*b.n+j] = b.sentinel }

// forbidRow marks every arc leaving i as forbidden.
func (b *costBuilder) forbidRow(i int) {
	var j int
	for j = 0; j < b.n; j++ {
		b.forbid(i, j)
	}
}

// forbidCol marks every arc entering j as forbidden.
func (b *costBuilder) forbidCol(j int) {
	var i int
	for i = 0; i < b.n; i++ {
		b.forbid(i, j)
	}
}

func (b *costBuilder) forbidDiagonal() {
	var i int
	for i = 0; i < b.n; i++ {
		b.forbid(i, i)
	}
}

// freeze publishes the buffer as an immutable snapshot.
func (b *costBuilder) freeze() CostMatrix {
	m := CostMatrix{n: b.n, sentinel: b.sentinel, w: b.w}
	b.w = nil

	return m
}
