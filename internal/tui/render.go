package tui

import "strings"

// worldToMicro maps map units into the 2x4 braille microgrid of a w-by-h
// cell viewport, applying zoom around the bbox center and the current pan
// offset. The y axis flips so +y points up on screen.
func (m Model) worldToMicro(x, y float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (y - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// cellToWorld inverts the cell-level projection for the hover readout.
func (m Model) cellToWorld(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	y := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return x, y, true
}

// renderCanvas draws the visible layers into a braille buffer and returns
// the composed text block.
func (m Model) renderCanvas(w, h int) string {
	c := newCanvas(w, h)

	if m.showTransects {
		for _, tr := range m.transects {
			prevSet := false
			var px, py int
			for i := range tr.X {
				mx, my, ok := m.worldToMicro(tr.X[i], tr.Y[i], w, h)
				if !ok {
					continue
				}
				if prevSet {
					c.line(px, py, mx, my)
				}
				px, py = mx, my
				prevSet = true
			}
		}
	}

	if m.showCenter {
		prevSet := false
		var px, py int
		for _, p := range m.center {
			mx, my, ok := m.worldToMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			if prevSet {
				c.line(px, py, mx, my)
			}
			px, py = mx, my
			prevSet = true
		}
	}

	if m.showSamples {
		for i := range m.sampled.X {
			mx, my, ok := m.worldToMicro(m.sampled.X[i], m.sampled.Y[i], w, h)
			if !ok {
				continue
			}
			c.set(mx, my)
		}
	}

	return strings.Join(c.rows(), "\n")
}
