package ink

// Point is a single ink sample in world coordinates.
//
// Pressure is normalized to [0, 1]. Timestamp is in monotonic milliseconds
// as reported by the host's pointer stream. TiltX and TiltY are the stylus
// tilt angles in degrees, each in [-90, 90], zero when unknown.
type Point struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Pressure  float64 `json:"pressure"`
	Timestamp float64 `json:"timestamp"`
	TiltX     float64 `json:"tiltX"`
	TiltY     float64 `json:"tiltY"`
}

// Pos returns the position of the sample as a Vec.
func (p Point) Pos() Vec {
	return Vec{X: p.X, Y: p.Y}
}

// TiltMagnitude returns the larger of the two tilt angle magnitudes,
// in degrees.
func (p Point) TiltMagnitude() float64 {
	ax := p.TiltX
	if ax < 0 {
		ax = -ax
	}
	ay := p.TiltY
	if ay < 0 {
		ay = -ay
	}
	if ax > ay {
		return ax
	}
	return ay
}

// pointBounds returns the bounding box of a point slice.
// Returns a zero rect for an empty slice.
func pointBounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := NewRect(pts[0].Pos(), pts[0].Pos())
	for _, p := range pts[1:] {
		r = r.ExpandTo(p.Pos())
	}
	return r
}
