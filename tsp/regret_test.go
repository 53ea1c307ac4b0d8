package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/littlebb/tsp"
)

func TestRegrets_Classic4Root(t *testing.T) {
	reduced, _ := tsp.Reduce(mustCost(t, classic4()))
	all, top, err := tsp.Regrets(reduced)
	require.NoError(t, err)

	// Row-major order over the zero cells.
	want := []tsp.Regret{
		{Arc: tsp.Arc{From: 0, To: 1}, Value: 5},
		{Arc: tsp.Arc{From: 0, To: 2}, Value: 5},
		{Arc: tsp.Arc{From: 0, To: 3}, Value: 5},
		{Arc: tsp.Arc{From: 1, To: 0}, Value: 5},
		{Arc: tsp.Arc{From: 2, To: 0}, Value: 5},
		{Arc: tsp.Arc{From: 3, To: 0}, Value: 5},
	}
	require.Equal(t, want, all)
	// Ties go to the first zero in row-major order.
	require.Equal(t, tsp.Arc{From: 0, To: 1}, top.Arc)
}

func TestRegrets_Little6Root(t *testing.T) {
	reduced, amount := tsp.Reduce(mustCost(t, little6()))
	require.Equal(t, 20.0, amount)

	_, top, err := tsp.Regrets(reduced)
	require.NoError(t, err)
	require.Equal(t, tsp.Regret{Arc: tsp.Arc{From: 1, To: 3}, Value: 4}, top)
}

func TestRegrets_MissingAlternativeCountsZero(t *testing.T) {
	m := mustCost(t, [][]float64{
		{S, 0},
		{0, S},
	})
	all, top, err := tsp.Regrets(m)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Zero(t, top.Value)
	require.Equal(t, tsp.Arc{From: 0, To: 1}, top.Arc)
}

func TestRegrets_NoZero(t *testing.T) {
	_, _, err := tsp.Regrets(mustCost(t, [][]float64{
		{S, 1},
		{1, S},
	}))
	require.ErrorIs(t, err, tsp.ErrInvariant)
}
