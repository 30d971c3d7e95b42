package triangulate_test

import (
	"testing"

	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/matrix"
	"github.com/go-lar/larcx/triangulate"
	"github.com/stretchr/testify/require"
)

func unitSquare(t *testing.T) (core.Vertices, *matrix.ChainOp, *matrix.ChainOp) {
	t.Helper()
	v := core.Vertices{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	ev := core.CellList{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	copEV, edgeIdx, err := matrix.BuildCopEV(ev, 4, true)
	require.NoError(t, err)
	fv := core.CellList{{0, 1, 2, 3}}
	copFE, err := matrix.BuildCopFE(fv, copEV.Rows(), edgeIdx)
	require.NoError(t, err)
	return v, copEV, copFE
}

func TestFaceTriangulatesUnitSquare(t *testing.T) {
	v, copEV, copFE := unitSquare(t)
	tris, err := triangulate.Face(v, copEV, copFE, 0, triangulate.NaiveTriangulator{})
	require.NoError(t, err)
	require.Len(t, tris, 2)
	seen := map[int]bool{}
	for _, tri := range tris {
		for _, idx := range tri {
			seen[idx] = true
		}
	}
	require.Len(t, seen, 4)
}

func TestFaceClockwiseSquareHasNonNegativeArea(t *testing.T) {
	v := core.Vertices{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	ev := core.CellList{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	copEV, edgeIdx, err := matrix.BuildCopEV(ev, 4, true)
	require.NoError(t, err)
	fv := core.CellList{{0, 1, 2, 3}}
	copFE, err := matrix.BuildCopFE(fv, copEV.Rows(), edgeIdx)
	require.NoError(t, err)

	tris, err := triangulate.Face(v, copEV, copFE, 0, triangulate.NaiveTriangulator{})
	require.NoError(t, err)
	require.NotEmpty(t, tris)

	area, err := triangulate.FaceArea(v, copEV, []int{1, 1, 1, -1})
	require.NoError(t, err)
	require.GreaterOrEqual(t, area, 0.0)
}

func TestFaceDegenerateCollinearRejected(t *testing.T) {
	v := core.Vertices{{0, 0}, {1, 0}, {2, 0}}
	ev := core.CellList{{0, 1}, {1, 2}, {2, 0}}
	copEV, edgeIdx, err := matrix.BuildCopEV(ev, 3, true)
	require.NoError(t, err)
	fv := core.CellList{{0, 1, 2}}
	copFE, err := matrix.BuildCopFE(fv, copEV.Rows(), edgeIdx)
	require.NoError(t, err)

	_, err = triangulate.Face(v, copEV, copFE, 0, triangulate.NaiveTriangulator{})
	require.ErrorIs(t, err, triangulate.ErrDegenerateGeometry)
}
