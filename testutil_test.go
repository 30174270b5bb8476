package ink

import (
	"math"
	"time"
)

// approx reports whether two floats are equal within eps.
func approx(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// drawOp records one call into the recording render target.
type drawOp struct {
	kind   string // "clear", "fillRect", "segment", "disk", "transform"
	a, b   Vec
	width  float64
	radius float64
	color  RGBA
}

// recordTarget is a RenderTarget that records every call, for asserting
// on emitted geometry without rasterizing.
type recordTarget struct {
	w, h      float64
	transform Matrix
	ops       []drawOp
}

func newRecordTarget(w, h float64) *recordTarget {
	return &recordTarget{w: w, h: h, transform: Identity()}
}

func (t *recordTarget) Size() (float64, float64) { return t.w, t.h }

func (t *recordTarget) Clear(c RGBA) {
	t.ops = append(t.ops, drawOp{kind: "clear", color: c})
}

func (t *recordTarget) FillRect(r Rect, c RGBA) {
	t.ops = append(t.ops, drawOp{kind: "fillRect", a: r.Min, b: r.Max, color: c})
}

func (t *recordTarget) StrokeSegment(a, b Vec, width float64, c RGBA) {
	t.ops = append(t.ops, drawOp{kind: "segment", a: a, b: b, width: width, color: c})
}

func (t *recordTarget) FillDisk(center Vec, radius float64, c RGBA) {
	t.ops = append(t.ops, drawOp{kind: "disk", a: center, radius: radius, color: c})
}

func (t *recordTarget) SetTransform(m Matrix) {
	t.transform = m
	t.ops = append(t.ops, drawOp{kind: "transform"})
}

// segments returns the recorded stroke segments since the last reset.
func (t *recordTarget) segments() []drawOp {
	var out []drawOp
	for _, op := range t.ops {
		if op.kind == "segment" {
			out = append(out, op)
		}
	}
	return out
}

func (t *recordTarget) reset() { t.ops = t.ops[:0] }

// recordHaptics records pulse durations.
type recordHaptics struct {
	pulses []time.Duration
}

func (h *recordHaptics) Pulse(d time.Duration) {
	h.pulses = append(h.pulses, d)
}

// lineStroke builds a horizontal test stroke of n points spaced dx
// apart at dt millisecond intervals.
func lineStroke(n int, dx, dt float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{
			X:         float64(i) * dx,
			Pressure:  0.5,
			Timestamp: float64(i) * dt,
		}
	}
	return pts
}

// testConfig is a render config with wide clamps so modulation is
// observable.
func testConfig() RenderConfig {
	return RenderConfig{
		Color:             "#000000",
		Opacity:           1,
		BaseStrokeWidth:   4,
		MinWidth:          0.5,
		MaxWidth:          10,
		Smoothness:        0.5,
		Streamline:        0.5,
		PressureInfluence: 1,
		VelocityInfluence: 0.4,
	}
}
