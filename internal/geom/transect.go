package geom

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Transect is one perpendicular cross-section of a channel. The slices
// are parallel: Dist[i] is the distance of (X[i], Y[i]) along the transect
// from its first point. The first point always lies on the left bank
// facing downstream.
type Transect struct {
	X    []float64
	Y    []float64
	Dist []float64
}

// Transects builds one perpendicular cross-section per interior centerline
// point (index 1 through n-2), in centerline order. xs and ys are the
// centerline coordinates, normally produced by Resample. Each transect has
// total length `length`, is centered on its centerline point, and is
// itself resampled every `res` units.
//
// The local tangent at point i is the normalized chord from i-1 to i+1;
// the transect direction is that vector rotated 90 degrees
// counter-clockwise. Rotating rather than taking a negative reciprocal
// slope keeps vertical and horizontal tangents well defined, and the
// rotation fixes a single bank convention: walking downstream, the first
// transect point is on the left. Centerlines that reverse direction
// mid-reach will flip banks at the reversal; that is a property of the
// data, not of this function.
func Transects(xs, ys []float64, length, res float64) ([]Transect, error) {
	if err := validateTransects(xs, ys, length, res); err != nil {
		return nil, err
	}
	out := make([]Transect, 0, len(xs)-2)
	for i := 1; i < len(xs)-1; i++ {
		t, err := transectAt(xs, ys, i, length, res)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// TransectsCtx is Transects with the per-point work fanned out across at
// most `workers` goroutines (NumCPU when workers < 1). Output order still
// follows centerline order. The first failure cancels the group.
func TransectsCtx(ctx context.Context, xs, ys []float64, length, res float64, workers int) ([]Transect, error) {
	if err := validateTransects(xs, ys, length, res); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	out := make([]Transect, len(xs)-2)
	for i := 1; i < len(xs)-1; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := transectAt(xs, ys, i, length, res)
			if err != nil {
				return err
			}
			out[i-1] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// validateTransects checks everything up front so no partial collection is
// ever returned.
func validateTransects(xs, ys []float64, length, res float64) error {
	if length <= 0 {
		return fmt.Errorf("transects: length %v: %w", length, ErrInvalidParameter)
	}
	if res <= 0 {
		return fmt.Errorf("transects: resolution %v: %w", res, ErrInvalidParameter)
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("transects: %d x values vs %d y values: %w", len(xs), len(ys), ErrInvalidInput)
	}
	if len(xs) < 3 {
		return fmt.Errorf("transects: %d centerline points, need at least 3: %w", len(xs), ErrInvalidInput)
	}
	for i := 1; i < len(xs)-1; i++ {
		if xs[i+1] == xs[i-1] && ys[i+1] == ys[i-1] {
			return fmt.Errorf("transects: point %d has coincident neighbors: %w", i, ErrDegenerateGeometry)
		}
	}
	return nil
}

func transectAt(xs, ys []float64, i int, length, res float64) (Transect, error) {
	tangent := vec{xs[i+1] - xs[i-1], ys[i+1] - ys[i-1]}.norm()
	half := tangent.perp().scale(length / 2)
	seg := Line{
		{xs[i] + half.x, ys[i] + half.y},
		{xs[i] - half.x, ys[i] - half.y},
	}
	s, err := Resample(seg, res)
	if err != nil {
		return Transect{}, fmt.Errorf("transect %d: %w", i, err)
	}
	return Transect{X: s.X, Y: s.Y, Dist: s.Dist}, nil
}
