package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXY(t *testing.T) {
	in := "# surveyed centerline\n312.5 4100.0\n\n318.0,4105.5\n  320.25\t4110.0  \n"
	line, err := ParseXY(in)
	require.NoError(t, err)
	require.Equal(t, Line{
		{312.5, 4100.0},
		{318.0, 4105.5},
		{320.25, 4110.0},
	}, line)
}

func TestParseXYErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not a number", "1 2\nfoo bar\n"},
		{"three fields", "1 2 3\n"},
		{"single pair", "1 2\n"},
		{"only comments", "# a\n# b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseXY(tt.in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestMeander(t *testing.T) {
	line := Meander(100, 10, 25, 0.5)
	require.GreaterOrEqual(t, len(line), 200)
	b := line.BBox()
	assert.InDelta(t, 0, b.MinX, 1e-12)
	assert.InDelta(t, 100, b.MaxX, 1)
	assert.InDelta(t, 10, b.MaxY, 0.1)
	assert.InDelta(t, -10, b.MinY, 0.1)

	// defaults still produce a resampleable channel
	_, err := Resample(Meander(0, 0, 0, 0), 1)
	assert.NoError(t, err)
}
