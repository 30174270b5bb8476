package ink

import "math"

// WidthSegment is one linear piece of a tessellated stroke, carrying the
// interpolated width at which it is stroked.
type WidthSegment struct {
	A, B  Vec
	Width float64
}

// Subdivision limits for one Bezier span.
const (
	minSubdivisions = 2
	maxSubdivisions = 8
	// subdivisionUnit is the L1 span length that earns one subdivision.
	subdivisionUnit = 5.0
)

// Tessellate converts a committed stroke into width-annotated line
// segments ready for the render target.
//
// Four consecutive points define one Catmull-Rom span rendered as a cubic
// Bezier between the middle pair; endpoints are duplicated so the first
// and last spans reach the stroke tips. Strokes of 2-3 points fall back
// to a constant-width polyline; single points render as a disk (handled
// by the caller via dotWidth).
func Tessellate(points []Point, cfg RenderConfig) []WidthSegment {
	switch {
	case len(points) < 2:
		return nil
	case len(points) < 4:
		return shortStrokeSegments(points, cfg)
	}

	segs := make([]WidthSegment, 0, len(points)*4)
	nSpans := len(points) - 1

	for i := 0; i < nSpans; i++ {
		p1 := points[i]
		p2 := points[i+1]
		p0 := points[max(i-1, 0)]
		p3 := points[min(i+2, len(points)-1)]

		bez := catmullRomSegment(p0.Pos(), p1.Pos(), p2.Pos(), p3.Pos(), cfg.Smoothness)

		w1 := widthAt(cfg, p0, p1) * taperScale(i, nSpans)
		w2 := widthAt(cfg, p1, p2) * taperScale(min(i+1, nSpans-1), nSpans)

		d := p2.Pos().Sub(p1.Pos())
		l1 := math.Abs(d.X) + math.Abs(d.Y)
		n := int(math.Ceil(l1 / subdivisionUnit))
		if n < minSubdivisions {
			n = minSubdivisions
		}
		if n > maxSubdivisions {
			n = maxSubdivisions
		}

		prev := bez.Eval(0)
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n)
			cur := bez.Eval(t)
			segs = append(segs, WidthSegment{
				A:     prev,
				B:     cur,
				Width: w1 + (w2-w1)*t,
			})
			prev = cur
		}
	}
	return segs
}

// shortStrokeSegments renders a 2-3 point stroke as a constant-width
// polyline at half the pressure-scaled base width.
func shortStrokeSegments(points []Point, cfg RenderConfig) []WidthSegment {
	avg := 0.0
	for _, p := range points {
		avg += cfg.PressureInfluence*p.Pressure + (1-cfg.PressureInfluence)*0.5
	}
	avg /= float64(len(points))
	w := clamp(cfg.BaseStrokeWidth*avg*0.5, cfg.MinWidth, cfg.MaxWidth)

	segs := make([]WidthSegment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segs = append(segs, WidthSegment{
			A:     points[i-1].Pos(),
			B:     points[i].Pos(),
			Width: w,
		})
	}
	return segs
}

// TipSegment is the flat segment drawn immediately for a newly arrived
// sample of an active stroke. A full redraw on endStroke replaces the
// accumulated tips with the proper Bezier rendering.
func TipSegment(cfg RenderConfig, prev, cur Point) WidthSegment {
	return WidthSegment{
		A:     prev.Pos(),
		B:     cur.Pos(),
		Width: widthAt(cfg, prev, cur),
	}
}
