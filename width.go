package ink

import "math"

// widthAt computes the rendered width of the segment ending at cur,
// given the previous sample. Pressure thickens, speed thins, and stylus
// tilt broadens the line perpendicular to motion the way a tilted pencil
// shades with the side of its lead.
func widthAt(cfg RenderConfig, prev, cur Point) float64 {
	pFactor := cfg.PressureInfluence*cur.Pressure + (1-cfg.PressureInfluence)*0.5

	vFactor := 1.0
	dt := cur.Timestamp - prev.Timestamp
	if dt > 0 {
		v := cur.Pos().Distance(prev.Pos()) / dt
		vFactor = 1 - math.Min(1, v/2.5)*cfg.VelocityInfluence
	}

	w := cfg.BaseStrokeWidth * pFactor * vFactor

	if tilt := cur.TiltMagnitude(); tilt > 0 {
		w *= tiltModulation(cur, prev.Pos(), tilt)
	}

	return clamp(w, cfg.MinWidth, cfg.MaxWidth)
}

// tiltModulation returns the width multiplier for a tilted stylus.
// Tilt perpendicular to the stroke direction broadens up to 1.5x;
// tilt parallel narrows down to 0.6x; the effect scales in with tilt
// magnitude, saturating at 60 degrees.
func tiltModulation(cur Point, prevPos Vec, tilt float64) float64 {
	tiltDir := math.Atan2(cur.TiltY, cur.TiltX)
	strokeDir := cur.Pos().Sub(prevPos).Angle()

	theta := math.Abs(tiltDir - strokeDir)
	for theta > math.Pi {
		theta = 2*math.Pi - theta
	}
	n := math.Min(theta, math.Pi-theta) / (math.Pi / 2)

	m := math.Min(1, tilt/60)
	return 1 + (0.6+0.9*n-1)*m
}

// maxTaperSegments bounds the entry/exit taper length.
const maxTaperSegments = 8

// taperCount returns how many leading and trailing segments taper for a
// stroke of n points. Strokes under 4 points render too short to taper.
func taperCount(n int) int {
	if n < 4 {
		return 0
	}
	t := int(0.15 * float64(n))
	if t > maxTaperSegments {
		t = maxTaperSegments
	}
	return t
}

// taperScale returns the width multiplier for segment index i of n
// segments. The quadratic ramp keeps tips crisp instead of blunt.
func taperScale(i, n int) float64 {
	t := taperCount(n + 1)
	if t == 0 {
		return 1
	}
	// Entry ramp.
	if i < t {
		f := float64(i+1) / float64(t+1)
		return f * f
	}
	// Exit ramp.
	if i >= n-t {
		f := float64(n-i) / float64(t+1)
		return f * f
	}
	return 1
}

// dotTaper is the width multiplier for a single-point stroke, rendered as
// a filled disk.
const dotTaper = 0.4

// dotWidth computes the diameter of a single-point stroke.
func dotWidth(cfg RenderConfig, p Point) float64 {
	pFactor := cfg.PressureInfluence*p.Pressure + (1-cfg.PressureInfluence)*0.5
	w := clamp(cfg.BaseStrokeWidth*pFactor, cfg.MinWidth, cfg.MaxWidth)
	return w * dotTaper
}
