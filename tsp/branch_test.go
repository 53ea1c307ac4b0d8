package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/littlebb/tsp"
)

func TestNewRoot(t *testing.T) {
	orig := mustCost(t, classic4())
	root, err := tsp.NewRoot(orig, 2)
	require.NoError(t, err)

	require.Equal(t, 0, root.ID)
	require.Equal(t, -1, root.Parent)
	require.Equal(t, []int{2}, root.Path)
	require.Empty(t, root.Arcs)
	require.Equal(t, 70.0, root.LowerBound)
	require.Equal(t, 70.0, root.TotalEstimate)
	require.Equal(t, 70.0, root.Remaining())
	require.False(t, root.Infeasible)
	require.False(t, root.IsCandidate())

	_, err = tsp.NewRoot(orig, 4)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}

func TestBranch_Classic4Root(t *testing.T) {
	orig := mustCost(t, classic4())
	root, err := tsp.NewRoot(orig, 0)
	require.NoError(t, err)
	before := root.Matrix.Rows()

	br, err := tsp.Branch(root, tsp.Arc{From: 0, To: 1}, orig)
	require.NoError(t, err)

	inc := br.Include
	require.Equal(t, []tsp.Arc{{From: 0, To: 1}}, inc.Arcs)
	require.Equal(t, []int{0, 1}, inc.Path)
	require.Equal(t, 10.0, inc.PathCost)
	require.Equal(t, 10.0, br.IncludeReduction)
	require.Equal(t, 80.0, inc.LowerBound)
	require.Equal(t, 70.0, inc.Remaining())
	require.Equal(t, 1, inc.Depth)
	require.True(t, inc.Committed(tsp.Arc{From: 0, To: 1}))
	require.NotNil(t, br.ClosingBan)
	require.Equal(t, tsp.Arc{From: 1, To: 0}, *br.ClosingBan)
	require.True(t, inc.Matrix.Forbidden(1, 0), "reverse arc is banned")
	for k := 0; k < 4; k++ {
		assert.True(t, br.IncludeBlocked.Forbidden(0, k), "row 0 col %d", k)
		assert.True(t, br.IncludeBlocked.Forbidden(k, 1), "row %d col 1", k)
	}

	exc := br.Exclude
	require.Empty(t, exc.Arcs)
	require.Equal(t, []tsp.Arc{{From: 0, To: 1}}, exc.Excluded)
	require.Equal(t, []int{0}, exc.Path)
	require.Zero(t, exc.PathCost)
	require.Equal(t, 5.0, br.ExcludeReduction)
	require.Equal(t, 75.0, exc.LowerBound)
	require.True(t, exc.Matrix.Forbidden(0, 1))
	require.True(t, br.ExcludeBlocked.Forbidden(0, 1))

	// Branching never touches the parent.
	require.Equal(t, before, root.Matrix.Rows())
	require.Empty(t, root.Arcs)
	require.Empty(t, root.Excluded)
	require.Equal(t, []int{0}, root.Path)
}

func TestBranch_ChainBanAndCandidate(t *testing.T) {
	orig := mustCost(t, classic4())
	root, err := tsp.NewRoot(orig, 0)
	require.NoError(t, err)

	b1, err := tsp.Branch(root, tsp.Arc{From: 0, To: 1}, orig)
	require.NoError(t, err)
	b2, err := tsp.Branch(b1.Include, tsp.Arc{From: 1, To: 3}, orig)
	require.NoError(t, err)

	// Chain 0→1→3: the arc 3→0 would close it early.
	require.Equal(t, []int{0, 1, 3}, b2.Include.Path)
	require.NotNil(t, b2.ClosingBan)
	require.Equal(t, tsp.Arc{From: 3, To: 0}, *b2.ClosingBan)
	require.True(t, b2.Include.Matrix.Forbidden(3, 0))
	require.Equal(t, 35.0, b2.Include.PathCost)

	b3, err := tsp.Branch(b2.Include, tsp.Arc{From: 3, To: 2}, orig)
	require.NoError(t, err)
	require.Nil(t, b3.ClosingBan, "chain spans every city")
	require.True(t, b3.Include.IsCandidate())
	require.Equal(t, []int{0, 1, 3, 2}, b3.Include.Path)
	require.Equal(t, 65.0, b3.Include.PathCost)
	require.False(t, b3.Include.Matrix.Forbidden(2, 0), "closing arc stays open")
	require.LessOrEqual(t, b3.Include.LowerBound, 80.0)
	require.GreaterOrEqual(t, b3.Include.Remaining(), 0.0)
}

func TestBranch_Errors(t *testing.T) {
	orig := mustCost(t, classic4())
	root, err := tsp.NewRoot(orig, 0)
	require.NoError(t, err)

	_, err = tsp.Branch(root, tsp.Arc{From: 0, To: 0}, orig)
	require.ErrorIs(t, err, tsp.ErrInvariant, "diagonal is forbidden")

	_, err = tsp.Branch(root, tsp.Arc{From: 0, To: 4}, orig)
	require.ErrorIs(t, err, tsp.ErrInvariant)

	br, err := tsp.Branch(root, tsp.Arc{From: 0, To: 1}, orig)
	require.NoError(t, err)
	_, err = tsp.Branch(br.Exclude, tsp.Arc{From: 0, To: 1}, orig)
	require.ErrorIs(t, err, tsp.ErrInvariant, "excluded arc is forbidden")

	_, err = tsp.Branch(&tsp.Node{}, tsp.Arc{From: 0, To: 1}, orig)
	require.ErrorIs(t, err, tsp.ErrInvariant)
}

func TestBranch_BoundsNeverDecrease(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for trial := 0; trial < 100; trial++ {
		n := 3 + rng.Intn(5)
		orig := mustCost(t, randomInstance(rng, n, 40, 0.1))
		node, err := tsp.NewRoot(orig, 0)
		require.NoError(t, err)

		// Walk down the include side while it stays open.
		for !node.Infeasible && !node.IsCandidate() {
			_, top, err := tsp.Regrets(node.Matrix)
			require.NoError(t, err)
			br, err := tsp.Branch(node, top.Arc, orig)
			require.NoError(t, err)

			require.GreaterOrEqual(t, br.Include.LowerBound, node.LowerBound)
			require.GreaterOrEqual(t, br.Exclude.LowerBound, node.LowerBound)
			require.True(t, tsp.IsReduced(br.Include.Matrix))
			require.True(t, tsp.IsReduced(br.Exclude.Matrix))
			require.Equal(t, br.Include.LowerBound, br.Include.TotalEstimate)
			require.Len(t, br.Include.Arcs, len(node.Arcs)+1)
			node = br.Include
		}
	}
}
