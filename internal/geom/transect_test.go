package geom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransectsCount(t *testing.T) {
	s, err := Resample(Meander(80, 8, 20, 0.5), 2)
	require.NoError(t, err)
	ts, err := Transects(s.X, s.Y, 10, 1)
	require.NoError(t, err)
	assert.Len(t, ts, s.Len()-2)
}

func TestTransectsVerticalCenterline(t *testing.T) {
	// Straight vertical centerline flowing +y: every transect is a
	// horizontal line of length L centered on its point.
	xs := []float64{0, 0, 0, 0}
	ys := []float64{0, 1, 2, 3}
	ts, err := Transects(xs, ys, 4, 1)
	require.NoError(t, err)
	require.Len(t, ts, 2)
	for i, tr := range ts {
		require.Equal(t, []float64{0, 1, 2, 3, 4}, tr.Dist)
		for k := range tr.X {
			assert.InDelta(t, ys[i+1], tr.Y[k], 1e-12, "transect %d stays horizontal", i)
			assert.InDelta(t, -2+float64(k), tr.X[k], 1e-12)
		}
	}
}

func TestTransectOrientationFlowPositiveY(t *testing.T) {
	// Flow in +y: the first transect point must land at negative x,
	// i.e. on the left bank facing downstream.
	ts, err := Transects([]float64{0, 0, 0}, []float64{0, 1, 2}, 4, 2)
	require.NoError(t, err)
	require.Len(t, ts, 1)
	assert.InDelta(t, -2, ts[0].X[0], 1e-12)
	assert.InDelta(t, 1, ts[0].Y[0], 1e-12)
	assert.InDelta(t, 2, ts[0].X[len(ts[0].X)-1], 1e-12)
}

func TestTransectOrientationFlowNegativeY(t *testing.T) {
	// Reversed flow flips the banks: first point at positive x.
	ts, err := Transects([]float64{0, 0, 0}, []float64{2, 1, 0}, 4, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2, ts[0].X[0], 1e-12)
}

func TestTransectOrientationHorizontalTangent(t *testing.T) {
	// Flow in +x (tangent exactly horizontal): left bank facing
	// downstream is +y, so the first point sits above the centerline.
	ts, err := Transects([]float64{0, 1, 2}, []float64{5, 5, 5}, 4, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1, ts[0].X[0], 1e-12)
	assert.InDelta(t, 7, ts[0].Y[0], 1e-12)
}

func TestTransectLengthAndSpacing(t *testing.T) {
	s, err := Resample(Meander(60, 5, 15, 0.25), 1.5)
	require.NoError(t, err)
	const L, res = 8.0, 0.5
	ts, err := Transects(s.X, s.Y, L, res)
	require.NoError(t, err)
	for i, tr := range ts {
		last := len(tr.Dist) - 1
		// the far end may fall short by up to one resampling remainder
		assert.LessOrEqual(t, tr.Dist[last], L+1e-9, "transect %d", i)
		assert.Greater(t, tr.Dist[last], L-res, "transect %d", i)
		for k := 1; k < len(tr.Dist); k++ {
			assert.InDelta(t, res, tr.Dist[k]-tr.Dist[k-1], 1e-9)
		}
	}
}

func TestTransectsErrors(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 0.5, 1}
	tests := []struct {
		name        string
		xs, ys      []float64
		length, res float64
		want        error
	}{
		{"zero length", xs, ys, 0, 1, ErrInvalidParameter},
		{"negative resolution", xs, ys, 4, -1, ErrInvalidParameter},
		{"two points only", []float64{0, 1}, []float64{0, 1}, 4, 1, ErrInvalidInput},
		{"mismatched slices", xs, []float64{0, 1}, 4, 1, ErrInvalidInput},
		{"coincident neighbors", []float64{0, 1, 0}, []float64{0, 1, 0}, 4, 1, ErrDegenerateGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := Transects(tt.xs, tt.ys, tt.length, tt.res)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, ts, "no partial output on error")
		})
	}
}

func TestTransectsCtxMatchesSerial(t *testing.T) {
	s, err := Resample(Meander(100, 10, 25, 0.5), 2)
	require.NoError(t, err)
	want, err := Transects(s.X, s.Y, 12, 0.5)
	require.NoError(t, err)
	got, err := TransectsCtx(context.Background(), s.X, s.Y, 12, 0.5, 8)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestTransectsCtxPropagatesValidation(t *testing.T) {
	_, err := TransectsCtx(context.Background(), []float64{0, 1}, []float64{0, 1}, 4, 1, 2)
	require.ErrorIs(t, err, ErrInvalidInput)
}
