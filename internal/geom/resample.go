package geom

import (
	"fmt"
	"math"
)

// Sampled holds points spaced at a fixed interval along a polyline. The
// three slices are parallel: Dist[i] is the running arc length of point
// (X[i], Y[i]) from the start of the line. Dist[0] is always 0 and sits on
// the first input vertex; every later step is exactly the requested
// interval.
type Sampled struct {
	Dist []float64
	X    []float64
	Y    []float64
}

// Len returns the number of sample points.
func (s Sampled) Len() int { return len(s.Dist) }

// Line returns the sample points as a polyline.
func (s Sampled) Line() Line {
	l := make(Line, len(s.X))
	for i := range s.X {
		l[i] = [2]float64{s.X[i], s.Y[i]}
	}
	return l
}

// Resample walks the polyline and emits points every dl units of arc
// length, starting at the first vertex. Distance left over at the end of
// each segment is carried into the next one; whatever remains below dl
// after the last segment is dropped, so the output may end short of the
// true endpoint.
//
// The line must have at least 2 vertices, dl must be positive, and no two
// consecutive vertices may coincide. All three conditions are checked
// before any sampling happens.
func Resample(line Line, dl float64) (Sampled, error) {
	if dl <= 0 {
		return Sampled{}, fmt.Errorf("resample: interval %v: %w", dl, ErrInvalidParameter)
	}
	if len(line) < 2 {
		return Sampled{}, fmt.Errorf("resample: %d vertices, need at least 2: %w", len(line), ErrInvalidInput)
	}
	for i := 1; i < len(line); i++ {
		if line[i] == line[i-1] {
			return Sampled{}, fmt.Errorf("resample: zero-length segment at vertex %d: %w", i, ErrDegenerateGeometry)
		}
	}

	s := Sampled{
		Dist: []float64{0},
		X:    []float64{line[0][0]},
		Y:    []float64{line[0][1]},
	}
	rem := 0.0 // unconsumed distance carried from the previous segment
	for i := 0; i+1 < len(line); i++ {
		x1, y1 := line[i][0], line[i][1]
		x2, y2 := line[i+1][0], line[i+1][1]
		segLen := math.Hypot(x2-x1, y2-y1)
		n := int(math.Floor((rem + segLen) / dl))
		for k := 0; k < n; k++ {
			if k == 0 {
				// first point consumes the carried remainder
				t := (dl - rem) / segLen
				s.X = append(s.X, x1+(x2-x1)*t)
				s.Y = append(s.Y, y1+(y2-y1)*t)
			} else {
				// advance incrementally from the previous point so
				// float drift stays uniform along the segment
				s.X = append(s.X, s.X[len(s.X)-1]+(x2-x1)*dl/segLen)
				s.Y = append(s.Y, s.Y[len(s.Y)-1]+(y2-y1)*dl/segLen)
			}
			s.Dist = append(s.Dist, s.Dist[len(s.Dist)-1]+dl)
		}
		rem += segLen - float64(n)*dl
	}
	return s, nil
}
