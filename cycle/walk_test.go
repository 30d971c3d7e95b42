package cycle_test

import (
	"testing"

	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/cycle"
	"github.com/go-lar/larcx/matrix"
	"github.com/stretchr/testify/require"
)

func unitSquareCopEV(t *testing.T) (*matrix.ChainOp, map[int]int) {
	t.Helper()
	ev := core.CellList{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	copEV, _, err := matrix.BuildCopEV(ev, 4, true)
	require.NoError(t, err)
	// Canonical signed chain for face [0,1,2,3]: (+,+,+,-).
	chain := map[int]int{0: 1, 1: 1, 2: 1, 3: -1}
	return copEV, chain
}

func TestWalkSignedSimpleCycle(t *testing.T) {
	copEV, chain := unitSquareCopEV(t)
	dense := make([]int, 4)
	for e, s := range chain {
		dense[e] = s
	}
	cycles, err := cycle.WalkSigned(copEV, dense)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, cycles[0])
}

func TestWalkSparseMatchesWalkSigned(t *testing.T) {
	copEV, chain := unitSquareCopEV(t)
	cycles, err := cycle.WalkSparse(copEV, chain)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, cycles[0])
}

func TestWalkSparseNonClosingIsMalformed(t *testing.T) {
	copEV, _ := unitSquareCopEV(t)
	// Drop one edge: the remaining three arcs cannot close into a cycle.
	broken := map[int]int{0: 1, 1: 1, 2: 1}
	_, err := cycle.WalkSparse(copEV, broken)
	require.ErrorIs(t, err, cycle.ErrMalformedComplex)
}

func TestWalkUnsignedRecoversOrder(t *testing.T) {
	copEV, _ := unitSquareCopEV(t)
	cyc, err := cycle.WalkUnsigned(copEV, []int{0, 2, 1, 3})
	require.NoError(t, err)
	require.Len(t, cyc, 4)
	require.Equal(t, 0, cyc[0])
}

func TestWalkUnsignedAmbiguousWhenDisconnected(t *testing.T) {
	ev := core.CellList{{0, 1}, {2, 3}}
	copEV, _, err := matrix.BuildCopEV(ev, 4, true)
	require.NoError(t, err)
	_, err = cycle.WalkUnsigned(copEV, []int{0, 1, 2, 3})
	require.ErrorIs(t, err, cycle.ErrAmbiguousTraversal)
}
