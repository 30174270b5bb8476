package ink

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Vec
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Vec {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Vec{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// catmullRomSegment converts the middle span of four consecutive samples
// into a cubic Bezier from p1 to p2. tension follows the stroke config's
// Smoothness: higher tension pulls the control points further out, giving
// rounder curves.
func catmullRomSegment(p0, p1, p2, p3 Vec, tension float64) CubicBez {
	// Divisor 6*(1-tension): the classic Catmull-Rom uses 6; tension
	// approaching 1 loosens the curve toward its control polygon hull.
	d := 6 * (1 - clamp(tension, 0, 0.95))
	return CubicBez{
		P0: p1,
		P1: p1.Add(p2.Sub(p0).Div(d)),
		P2: p2.Sub(p3.Sub(p1).Div(d)),
		P3: p2,
	}
}
