package tsp_test

import (
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/littlebb/tsp"
)

func TestDefaultOptions(t *testing.T) {
	o := tsp.DefaultOptions()
	require.Equal(t, 0, o.Start)
	require.Equal(t, context.Background(), o.Ctx)
	require.Zero(t, o.TimeLimit)
	require.Equal(t, tsp.DefaultSentinel, o.Sentinel)
	require.Zero(t, o.Eps)
	require.Equal(t, slog.Default(), o.Logger)
	require.Nil(t, o.OnStep)
	require.Empty(t, o.Labels)
}

func TestOptions_Apply(t *testing.T) {
	o := tsp.DefaultOptions()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, opt := range []tsp.Option{
		tsp.WithStart(3),
		tsp.WithContext(ctx),
		tsp.WithTimeLimit(time.Second),
		tsp.WithSentinel(500),
		tsp.WithEps(1e-9),
		tsp.WithLabels("x", "y"),
		tsp.WithContext(nil), // ignored
		tsp.WithLogger(nil),  // ignored
		tsp.WithOnStep(nil),  // ignored
	} {
		opt(&o)
	}
	require.Equal(t, 3, o.Start)
	require.Equal(t, ctx, o.Ctx)
	require.Equal(t, time.Second, o.TimeLimit)
	require.Equal(t, 500.0, o.Sentinel)
	require.Equal(t, 1e-9, o.Eps)
	require.Equal(t, []string{"x", "y"}, o.Labels)
	require.NotNil(t, o.Logger)
}

func TestOptions_Violations(t *testing.T) {
	bad := map[string]tsp.Option{
		"negative time limit": tsp.WithTimeLimit(-time.Second),
		"zero sentinel":       tsp.WithSentinel(0),
		"NaN sentinel":        tsp.WithSentinel(math.NaN()),
		"Inf sentinel":        tsp.WithSentinel(math.Inf(1)),
		"negative eps":        tsp.WithEps(-1),
		"NaN eps":             tsp.WithEps(math.NaN()),
	}
	for name, opt := range bad {
		_, err := tsp.SolveRows(classic4(), opt)
		require.ErrorIs(t, err, tsp.ErrOptionViolation, name)

		_, err = tsp.BruteForce(mustDense(t, classic4()), opt)
		require.ErrorIs(t, err, tsp.ErrOptionViolation, name)
	}
}

func TestOptions_Eps(t *testing.T) {
	res, err := tsp.SolveRows(little6(), tsp.WithEps(0.5))
	require.NoError(t, err)
	require.InDelta(t, 23.0, res.Cost, 0.5)
}

func TestCityLabel(t *testing.T) {
	cases := map[int]string{
		-1:  "?",
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for i, want := range cases {
		require.Equal(t, want, tsp.CityLabel(i), "i=%d", i)
	}
}
