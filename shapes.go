package ink

import "math"

// Canonical shape regeneration. Snapped strokes replace their raw points
// with these sequences. Every regenerated point carries the average
// pressure and tilt of the original stroke, and a synthetic monotonic
// timestamp sequence starting at the original first sample's time.

// ellipseSamples is the point count of a regenerated circle or ellipse,
// including the closing point.
const ellipseSamples = 65

// rrectArcSteps is the number of segments per rounded-rect corner arc.
const rrectArcSteps = 8

// lineMinSamples is the minimum sample count of a snapped line.
const lineMinSamples = 4

// snapPoint builds one regenerated sample.
func snapPoint(pos Vec, pressure, tiltX, tiltY, t float64) Point {
	return Point{
		X:         pos.X,
		Y:         pos.Y,
		Pressure:  pressure,
		Timestamp: t,
		TiltX:     tiltX,
		TiltY:     tiltY,
	}
}

// genEllipse regenerates a closed ellipse (or circle when rx == ry)
// centered at c.
func genEllipse(c Vec, rx, ry float64, pressure, tiltX, tiltY, t0 float64) []Point {
	pts := make([]Point, 0, ellipseSamples)
	for i := 0; i < ellipseSamples; i++ {
		theta := 2 * math.Pi * float64(i) / float64(ellipseSamples-1)
		pos := Vec{
			X: c.X + rx*math.Cos(theta),
			Y: c.Y + ry*math.Sin(theta),
		}
		pts = append(pts, snapPoint(pos, pressure, tiltX, tiltY, t0+float64(i)))
	}
	return pts
}

// genLine regenerates a straight segment from a to b, evenly sampled.
// Longer lines get proportionally more samples so downstream width
// modulation still has something to vary over.
func genLine(a, b Vec, pressure, tiltX, tiltY, t0 float64) []Point {
	n := int(a.Distance(b) / 20)
	if n < lineMinSamples {
		n = lineMinSamples
	}
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts = append(pts, snapPoint(a.Lerp(b, t), pressure, tiltX, tiltY, t0+float64(i)))
	}
	return pts
}

// genRoundedRect regenerates a rounded rectangle outline: four edges
// joined by quarter-circle corner arcs. radius is clamped so opposite
// corners never overlap.
func genRoundedRect(bounds Rect, radius, pressure, tiltX, tiltY, t0 float64) []Point {
	r := clamp(radius, 0, math.Min(bounds.Width(), bounds.Height())/2)
	x0, y0 := bounds.Min.X, bounds.Min.Y
	x1, y1 := bounds.Max.X, bounds.Max.Y

	var pts []Point
	i := 0
	add := func(pos Vec) {
		pts = append(pts, snapPoint(pos, pressure, tiltX, tiltY, t0+float64(i)))
		i++
	}
	// arc appends a quarter arc around center from angle a0 to a1.
	arc := func(cx, cy, a0, a1 float64) {
		for k := 1; k <= rrectArcSteps; k++ {
			theta := a0 + (a1-a0)*float64(k)/float64(rrectArcSteps)
			add(Vec{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)})
		}
	}

	// Clockwise from the top-left corner's end, screen coordinates
	// (y grows downward).
	add(Vec{X: x0 + r, Y: y0})
	add(Vec{X: x1 - r, Y: y0})
	arc(x1-r, y0+r, -math.Pi/2, 0) // top-right
	add(Vec{X: x1, Y: y1 - r})
	arc(x1-r, y1-r, 0, math.Pi/2) // bottom-right
	add(Vec{X: x0 + r, Y: y1})
	arc(x0+r, y1-r, math.Pi/2, math.Pi) // bottom-left
	add(Vec{X: x0, Y: y0 + r})
	arc(x0+r, y0+r, math.Pi, 3*math.Pi/2) // top-left, closing the outline
	return pts
}
