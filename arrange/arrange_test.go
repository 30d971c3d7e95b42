package arrange_test

import (
	"testing"

	"github.com/go-lar/larcx/arrange"
	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/matrix"
	"github.com/stretchr/testify/require"
)

func unitSquare(t *testing.T) (core.Vertices, *matrix.ChainOp, *matrix.ChainOp) {
	t.Helper()
	v := core.Vertices{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	ev := core.CellList{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	copEV, edgeIdx, err := matrix.BuildCopEV(ev, 4, true)
	require.NoError(t, err)
	fv := core.CellList{{0, 1, 2, 3}}
	copFE, err := matrix.BuildCopFE(fv, copEV.Rows(), edgeIdx)
	require.NoError(t, err)
	return v, copEV, copFE
}

// identityFrag returns each face unchanged, contributing no new vertices.
func identityFrag(v core.Vertices, ev, fe *matrix.ChainOp, idx [][]int, face int) (core.Vertices, *matrix.ChainOp, *matrix.ChainOp, error) {
	return v, ev, fe, nil
}

func TestDriverArrangeHappyPath(t *testing.T) {
	v, ev, fe := unitSquare(t)

	driver, err := arrange.NewDriver(
		arrange.GridSpatialIndex(1.0),
		identityFrag,
		arrange.ToleranceMergeVertices(1e-8),
		func(v core.Vertices, ev, fe *matrix.ChainOp) (*matrix.ChainOp, error) {
			cf, err := matrix.BuildCopCF([]matrix.CellFaceSigns{{{Face: 0, Sign: 1}}}, fe.Rows())
			return cf, err
		},
		arrange.WithWorkers(2),
	)
	require.NoError(t, err)

	rv, rev, rfe, cf, err := driver.Arrange(v, ev, fe)
	require.NoError(t, err)
	require.Len(t, rv, 4)
	require.Equal(t, 4, rev.Rows())
	require.Equal(t, 1, rfe.Rows())
	require.Equal(t, 1, cf.Rows())
}

func TestNewDriverRejectsNilCollaborator(t *testing.T) {
	_, err := arrange.NewDriver(nil, identityFrag, nil, nil)
	require.ErrorIs(t, err, arrange.ErrCollaboratorNil)
}

func TestBiconnectedComponentsOfSquareIsOneComponent(t *testing.T) {
	_, ev, _ := unitSquare(t)
	comps, err := arrange.BiconnectedComponents(ev)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 4)
}

func TestConnectedComponentCount(t *testing.T) {
	_, ev, _ := unitSquare(t)
	n, err := arrange.ConnectedComponentCount(ev)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
