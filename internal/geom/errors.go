package geom

import "errors"

// Sentinel errors for geometry operations. Call sites wrap these with
// fmt.Errorf("...: %w", ...) so callers can match with errors.Is.
var (
	// ErrInvalidInput is returned for polylines with too few vertices.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidParameter is returned for non-positive intervals,
	// lengths, or resolutions.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateGeometry is returned when the geometry itself leaves
	// a direction undefined, such as duplicate consecutive vertices.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
