package classify_test

import (
	"testing"

	"github.com/go-lar/larcx/classify"
	"github.com/stretchr/testify/require"
)

func unitSquare() [][2]float64 {
	return [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestClassifyUnitSquare(t *testing.T) {
	face := unitSquare()
	cases := []struct {
		name string
		p    [2]float64
		want classify.Classification
	}{
		{"center", [2]float64{0.5, 0.5}, classify.Inside},
		{"outside", [2]float64{1.5, 0.5}, classify.Outside},
		{"on-edge", [2]float64{1.0, 0.5}, classify.OnBoundary},
		{"on-corner", [2]float64{0.0, 0.0}, classify.OnBoundary},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, classify.Classify(c.p, face))
		})
	}
}

func TestClassifyRayIndependence(t *testing.T) {
	face := unitSquare()
	inside := [2]float64{0.5, 0.5}
	outside := [2]float64{1.5, 0.5}

	for _, dx := range []float64{0.01, -0.01, 0.17, -0.23} {
		require.Equal(t, classify.Inside, classify.ClassifyTranslated(inside, face, dx))
		require.Equal(t, classify.Outside, classify.ClassifyTranslated(outside, face, dx))
	}
}

func TestClassificationString(t *testing.T) {
	require.Equal(t, "inside", classify.Inside.String())
	require.Equal(t, "outside", classify.Outside.String())
	require.Equal(t, "on-boundary", classify.OnBoundary.String())
}
