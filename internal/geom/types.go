package geom

import "math"

// Line is an ordered 2D polyline in map units.
type Line [][2]float64

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows the box to include (x, y).
func (b *BBox) Extend(x, y float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// BBox returns the bounding box of the polyline. A zero box is returned
// for an empty line.
func (l Line) BBox() BBox {
	if len(l) == 0 {
		return BBox{}
	}
	b := BBox{MinX: l[0][0], MinY: l[0][1], MaxX: l[0][0], MaxY: l[0][1]}
	for _, p := range l[1:] {
		b.Extend(p[0], p[1])
	}
	return b
}

// ArcLength returns the total Euclidean length along the polyline.
func (l Line) ArcLength() float64 {
	var total float64
	for i := 1; i < len(l); i++ {
		total += math.Hypot(l[i][0]-l[i-1][0], l[i][1]-l[i-1][1])
	}
	return total
}

type vec struct{ x, y float64 }

func (v vec) scale(s float64) vec { return vec{v.x * s, v.y * s} }

func (v vec) length() float64 { return math.Hypot(v.x, v.y) }

func (v vec) norm() vec {
	d := v.length()
	if d == 0 {
		return vec{}
	}
	return vec{v.x / d, v.y / d}
}

// perp rotates the vector 90 degrees counter-clockwise.
func (v vec) perp() vec { return vec{-v.y, v.x} }
