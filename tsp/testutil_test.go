// Package tsp_test shares small fixtures and helpers across the test files of
// this package. Instances are tiny and deterministic; random ones use a fixed
// seed so failures reproduce.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/littlebb/matrix"
	"github.com/katalvlaran/littlebb/tsp"
)

const (
	// S is the default forbidden-arc sentinel.
	S = tsp.DefaultSentinel

	// seedDet seeds every random instance.
	seedDet = int64(1)
)

// classic4 is the textbook 4-city symmetric instance (optimum 80).
func classic4() [][]float64 {
	return [][]float64{
		{S, 10, 15, 20},
		{10, S, 35, 25},
		{15, 35, S, 30},
		{20, 25, 30, S},
	}
}

// little6 is an asymmetric 6-city instance (optimum 23).
func little6() [][]float64 {
	return [][]float64{
		{S, 6, 7, 3, 1, 3},
		{7, S, 8, 2, 9, 7},
		{5, 10, S, 10, 1, 7},
		{8, 6, 5, S, 5, 1},
		{7, 7, 6, 7, S, 4},
		{9, 8, 8, 5, 3, S},
	}
}

// mustCost builds a CostMatrix with the default sentinel.
func mustCost(t testing.TB, rows [][]float64) tsp.CostMatrix {
	t.Helper()
	m, err := tsp.NewCostMatrix(rows, S)
	require.NoError(t, err)

	return m
}

// mustDense builds a *matrix.Dense from rows.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

// randomInstance returns an n×n matrix of integer costs in [0, maxCost];
// each off-diagonal cell is forbidden with probability pForbid.
func randomInstance(rng *rand.Rand, n, maxCost int, pForbid float64) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				rows[i][j] = 0
			case rng.Float64() < pForbid:
				rows[i][j] = S
			default:
				rows[i][j] = float64(rng.Intn(maxCost + 1))
			}
		}
	}

	return rows
}

// tourCost sums rows along tour.
func tourCost(rows [][]float64, tour []int) float64 {
	var (
		sum float64
		k   int
	)
	for k = 0; k+1 < len(tour); k++ {
		sum += rows[tour[k]][tour[k+1]]
	}

	return sum
}

// stepOrder checks that Seq matches the position of every step.
func stepOrder(t *testing.T, tr tsp.Trace) {
	t.Helper()
	var i int
	for i = range tr {
		require.Equal(t, i, tr[i].Index(), "step %d (%s)", i, tr[i].Kind())
		require.NotEmpty(t, tr[i].Text(), "step %d (%s)", i, tr[i].Kind())
	}
}

// testDense is a minimal matrix.Matrix distinct from *matrix.Dense.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= len(m.a[i]) {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= len(m.a[i]) {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}
