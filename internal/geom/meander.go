package geom

import "math"

// Meander builds a synthetic sine-wave centerline running in +x from the
// origin, for demos and tests. reach is the straight-line extent in x,
// amplitude the meander half-width, wavelength the period, and step the
// vertex spacing in x. Non-positive arguments fall back to proportional
// defaults so all-zero arguments still yield a usable channel.
func Meander(reach, amplitude, wavelength, step float64) Line {
	if reach <= 0 {
		reach = 100
	}
	if amplitude <= 0 {
		amplitude = reach / 10
	}
	if wavelength <= 0 {
		wavelength = reach / 4
	}
	if step <= 0 {
		step = reach / 200
	}
	var line Line
	for x := 0.0; x <= reach; x += step {
		line = append(line, [2]float64{x, amplitude * math.Sin(2 * math.Pi * x / wavelength)})
	}
	return line
}
