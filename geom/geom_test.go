package geom_test

import (
	"testing"

	"github.com/go-lar/larcx/geom"
	"github.com/stretchr/testify/require"
)

func TestComputeBBoxAndContains(t *testing.T) {
	square := [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	box := geom.ComputeBBox(square)
	require.Equal(t, []float64{0, 0}, box.Min)
	require.Equal(t, []float64{1, 1}, box.Max)

	inner := geom.ComputeBBox([][]float64{{0.2, 0.2}, {0.8, 0.8}})
	require.True(t, geom.BBoxContains(box, inner))

	outside := geom.ComputeBBox([][]float64{{-1, 0}, {0.5, 0.5}})
	require.False(t, geom.BBoxContains(box, outside))
}

func TestTriangleAreaSign(t *testing.T) {
	ccw := geom.TriangleArea([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1})
	require.Greater(t, ccw, 0.0)

	cw := geom.TriangleArea([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{1, 0})
	require.Less(t, cw, 0.0)
}

func TestVEquals(t *testing.T) {
	require.True(t, geom.VEquals([]float64{1, 2, 3}, []float64{1 + 1e-9, 2, 3}))
	require.False(t, geom.VEquals([]float64{1, 2, 3}, []float64{1 + 1e-6, 2, 3}))
	require.False(t, geom.VEquals([]float64{1, 2}, []float64{1, 2, 3}))
}

func TestVIn(t *testing.T) {
	set := [][]float64{{0, 0}, {1, 1}}
	require.True(t, geom.VIn([]float64{1 + 1e-9, 1}, set))
	require.False(t, geom.VIn([]float64{2, 2}, set))
}

func TestNormalizeAndCross(t *testing.T) {
	v := geom.Normalize([3]float64{3, 4, 0})
	require.InDelta(t, 1.0, geom.Norm(v), 1e-12)

	x := [3]float64{1, 0, 0}
	y := [3]float64{0, 1, 0}
	z := geom.Cross(x, y)
	require.InDelta(t, 0.0, z[0], 1e-12)
	require.InDelta(t, 0.0, z[1], 1e-12)
	require.InDelta(t, 1.0, z[2], 1e-12)
}
