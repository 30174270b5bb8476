package ink

// hitSlopScreen is the pick tolerance in screen pixels, converted to
// world units by dividing by the camera zoom.
const hitSlopScreen = 12.0

// HitTest returns the index of the topmost stroke whose outline passes
// within the pick tolerance of the world point, or -1. Strokes are
// iterated in reverse render order so later strokes win.
func HitTest(d *Document, p Vec, zoom float64) int {
	slop := hitSlopScreen / zoom
	for i := len(d.Strokes) - 1; i >= 0; i-- {
		s := d.Strokes[i]
		tol := s.Config.BaseStrokeWidth/2 + slop
		if !s.Bounds().Inflate(tol).Contains(p) {
			continue
		}
		if strokeHit(s, p, tol) {
			return i
		}
	}
	return -1
}

// strokeHit tests the point against every polyline segment of the stroke.
func strokeHit(s *Stroke, p Vec, tol float64) bool {
	if len(s.Points) == 1 {
		return s.Points[0].Pos().Distance(p) <= tol
	}
	for i := 1; i < len(s.Points); i++ {
		if distanceToSegment(p, s.Points[i-1].Pos(), s.Points[i].Pos()) <= tol {
			return true
		}
	}
	return false
}

// distanceToSegment returns the perpendicular distance from p to the
// segment ab, clamped to the segment's extent.
func distanceToSegment(p, a, b Vec) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return p.Distance(a.Add(ab.Mul(t)))
}

// strokesOverlappingRect returns the indices of strokes whose world
// bounding box overlaps r.
func strokesOverlappingRect(d *Document, r Rect) []int {
	var out []int
	for i, s := range d.Strokes {
		if s.Bounds().Overlaps(r) {
			out = append(out, i)
		}
	}
	return out
}

// strokesInsidePolygon returns the indices of strokes whose bounding-box
// center lies inside the polygon. Boundary points follow the half-open
// ray-cast rule of pointInPolygon: for an axis-aligned rectangle, points
// on its min-x or min-y edge count as inside and points on its max-x or
// max-y edge as outside.
func strokesInsidePolygon(d *Document, poly []Vec) []int {
	if len(poly) < 3 {
		return nil
	}
	var out []int
	for i, s := range d.Strokes {
		if pointInPolygon(s.Bounds().Center(), poly) {
			out = append(out, i)
		}
	}
	return out
}

// pointInPolygon tests containment by ray casting: a ray to +x crossing
// an odd number of edges means inside.
func pointInPolygon(p Vec, poly []Vec) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := pi.X + (p.Y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
