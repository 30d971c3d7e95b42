package core_test

import (
	"testing"

	"github.com/go-lar/larcx/core"
	"github.com/stretchr/testify/require"
)

func TestVerticesValidate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var v core.Vertices
		require.ErrorIs(t, v.Validate(), core.ErrEmptyVertices)
	})

	t.Run("bad dimension", func(t *testing.T) {
		v := core.Vertices{{0, 0, 0, 0}}
		require.ErrorIs(t, v.Validate(), core.ErrBadDimension)
	})

	t.Run("ragged rows", func(t *testing.T) {
		v := core.Vertices{{0, 0}, {1, 1, 1}}
		require.ErrorIs(t, v.Validate(), core.ErrBadDimension)
	})

	t.Run("unit square is valid", func(t *testing.T) {
		v := core.Vertices{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		require.NoError(t, v.Validate())
		require.Equal(t, 2, v.Dim())
	})
}

func TestCellListValidate(t *testing.T) {
	t.Run("rejects singleton cell", func(t *testing.T) {
		c := core.CellList{{0}}
		require.ErrorIs(t, c.Validate(4), core.ErrEmptyCell)
	})

	t.Run("rejects out-of-range index", func(t *testing.T) {
		c := core.CellList{{0, 9}}
		require.ErrorIs(t, c.Validate(4), core.ErrIndexOutOfRange)
	})

	t.Run("accepts unit square edges", func(t *testing.T) {
		c := core.CellList{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
		require.NoError(t, c.Validate(4))
	})
}

func TestFaceConstructors(t *testing.T) {
	f := core.NewFaceFromCycle([]int{0, 1, 2, 3})
	require.Equal(t, core.FaceFromCycle, f.Kind)
	require.Equal(t, []int{0, 1, 2, 3}, f.Cycle)

	g := core.NewFaceFromChain([]int{1, 1, 1, -1})
	require.Equal(t, core.FaceFromChain, g.Kind)

	h := core.NewFaceFromSparse(map[int]int{0: 1, 3: -1})
	require.Equal(t, core.FaceFromSparse, h.Kind)
	require.Equal(t, -1, h.Sparse[3])
}
