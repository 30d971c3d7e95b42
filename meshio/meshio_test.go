package meshio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/matrix"
	"github.com/go-lar/larcx/meshio"
	"github.com/stretchr/testify/require"
)

func TestRead2DWrite2DRoundTrip(t *testing.T) {
	src := strings.Join([]string{
		"v 0 0",
		"v 1 0",
		"v 1 1",
		"v 0 1",
		"f 1 2 3 4",
	}, "\n") + "\n"

	v, copEV, copFE, err := meshio.Read2D(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, v, 4)
	require.Equal(t, 4, copEV.Rows())
	require.Equal(t, 1, copFE.Rows())

	var buf bytes.Buffer
	require.NoError(t, meshio.Write2D(&buf, v, copEV, copFE))
	out := buf.String()
	require.Contains(t, out, "v 0.000000 0.000000")
	// the quad face must come back triangulated, not as one 4-vertex f line.
	faceLines := 0
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if strings.HasPrefix(line, "f ") {
			faceLines++
			require.Len(t, strings.Fields(line), 4) // "f" + 3 indices
		}
	}
	require.Equal(t, 2, faceLines)
}

func TestRead2DRejectsMalformedLine(t *testing.T) {
	_, _, _, err := meshio.Read2D(strings.NewReader("x 1 2 3\n"))
	require.ErrorIs(t, err, meshio.ErrIOFormat)
}

func TestRead3DGroupsIntoCells(t *testing.T) {
	src := strings.Join([]string{
		"v 0 0 0",
		"v 1 0 0",
		"v 0 1 0",
		"v 0 0 1",
		"g cell0",
		"f 1 2 3",
		"f 1 2 4",
		"f 1 3 4",
		"f 2 3 4",
	}, "\n") + "\n"

	v, copEV, copFE, copCF, err := meshio.Read3D(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, v, 4)
	require.Equal(t, 4, copFE.Rows())
	require.Equal(t, 1, copCF.Rows())
	require.Greater(t, copEV.Rows(), 0)

	var buf bytes.Buffer
	require.NoError(t, meshio.Write3D(&buf, v, copEV, copFE, copCF))
	require.Contains(t, buf.String(), "g cell0")
}

func TestRead3DFaceBeforeGroupFails(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	_, _, _, _, err := meshio.Read3D(strings.NewReader(src))
	require.ErrorIs(t, err, meshio.ErrIOFormat)
}

func TestRead3DIgnoresTexcoordNormalSuffixes(t *testing.T) {
	plain := strings.Join([]string{
		"v 0 0 0",
		"v 1 0 0",
		"v 0 1 0",
		"g cell0",
		"f 1 2 3",
	}, "\n") + "\n"
	suffixed := strings.Join([]string{
		"v 0 0 0",
		"v 1 0 0",
		"v 0 1 0",
		"g cell0",
		"f 1/1/1 2/2/1 3/3/1",
	}, "\n") + "\n"

	wantV, wantEV, wantFE, wantCF, err := meshio.Read3D(strings.NewReader(plain))
	require.NoError(t, err)
	gotV, gotEV, gotFE, gotCF, err := meshio.Read3D(strings.NewReader(suffixed))
	require.NoError(t, err)

	require.Equal(t, wantV, gotV)
	require.Equal(t, wantEV.Rows(), gotEV.Rows())
	require.Equal(t, wantFE.Rows(), gotFE.Rows())
	require.Equal(t, wantCF.Rows(), gotCF.Rows())
}

func TestWrite3DFlipsWindingOnNegativeCellFaceSign(t *testing.T) {
	v := core.Vertices{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	ev := core.CellList{{0, 1}, {1, 2}, {2, 0}}
	copEV, edgeIdx, err := matrix.BuildCopEV(ev, 3, true)
	require.NoError(t, err)
	fv := core.CellList{{0, 1, 2}}
	copFE, err := matrix.BuildCopFE(fv, copEV.Rows(), edgeIdx)
	require.NoError(t, err)

	faceLine := func(sign int) string {
		copCF, err := matrix.BuildCopCF([]matrix.CellFaceSigns{{{Face: 0, Sign: sign}}}, copFE.Rows())
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, meshio.Write3D(&buf, v, copEV, copFE, copCF))
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.HasPrefix(line, "f ") {
				return line
			}
		}
		t.Fatal("no face line written")
		return ""
	}

	pos := strings.Fields(faceLine(1))[1:]
	neg := strings.Fields(faceLine(-1))[1:]
	require.Equal(t, []string{pos[0], pos[2], pos[1]}, neg)
}
