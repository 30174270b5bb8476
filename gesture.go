package ink

import "math"

// GestureResult describes what the post-stroke recognizer decided.
type GestureResult int

const (
	// GestureNone commits the stroke as drawn.
	GestureNone GestureResult = iota
	// GestureScratch consumes the stroke and erases what it covered.
	GestureScratch
	// GestureSnap replaces the stroke's points with a canonical shape.
	GestureSnap
)

// Scratch detection thresholds.
const (
	scratchMinPoints     = 15
	scratchMinReversals  = 4
	scratchLengthRatio   = 2.5
	scratchReversalMinDx = 2.0
	scratchEraseInflate  = 5.0
)

// Shape snap thresholds.
const (
	snapDwellMs        = 250.0
	snapDwellMoveLimit = 2.0
	snapHoldFilterDist = 4.0
	snapClosedFraction = 0.35
	snapLineDeviation  = 0.10
)

// isScratchGesture classifies a raw point sequence as a scratch-out:
// a tight back-and-forth scribble whose path length dwarfs its extent.
//
// The test is scale-invariant apart from the Δx > 2 reversal noise gate:
// both the length ratio and the reversal count depend only on shape.
func isScratchGesture(points []Point) bool {
	if len(points) < scratchMinPoints {
		return false
	}

	reversals := 0
	lastDir := 0
	total := 0.0
	for i := 1; i < len(points); i++ {
		a, b := points[i-1].Pos(), points[i].Pos()
		total += a.Distance(b)

		dx := b.X - a.X
		if math.Abs(dx) <= scratchReversalMinDx {
			continue
		}
		dir := 1
		if dx < 0 {
			dir = -1
		}
		if lastDir != 0 && dir != lastDir {
			reversals++
		}
		lastDir = dir
	}

	diag := pointBounds(points).Diagonal()
	return reversals >= scratchMinReversals && total > scratchLengthRatio*diag
}

// scratchTargets returns the indices of strokes with at least one point
// inside the scratch bounding box inflated by the erase margin.
func scratchTargets(d *Document, scratch []Point) []int {
	zone := pointBounds(scratch).Inflate(scratchEraseInflate)
	var out []int
	for i, s := range d.Strokes {
		for _, p := range s.Points {
			if zone.Contains(p.Pos()) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// dwellBeforeLift reports whether the pen held still (no movement beyond
// the dwell limit) for at least the dwell duration before lifting.
// A timestamp regression counts as zero dwell.
func dwellBeforeLift(points []Point) bool {
	if len(points) == 0 {
		return false
	}
	last := points[len(points)-1]
	start := last.Timestamp
	for i := len(points) - 2; i >= 0; i-- {
		p := points[i]
		if p.Timestamp > start {
			// Clock went backwards; trust nothing.
			return false
		}
		if p.Pos().Distance(last.Pos()) > snapDwellMoveLimit {
			break
		}
		start = p.Timestamp
	}
	return last.Timestamp-start >= snapDwellMs
}

// filterHoldPoints drops the cluster of hold-still samples accumulated
// near the final point during the dwell, which would otherwise skew the
// shape scores toward the resting position.
func filterHoldPoints(points []Point) []Point {
	if len(points) == 0 {
		return points
	}
	last := points[len(points)-1].Pos()
	cut := len(points) - 1
	for cut > 0 && points[cut-1].Pos().Distance(last) <= snapHoldFilterDist {
		cut--
	}
	out := clonePoints(points[:cut+1])
	return out
}

// recognizeShape attempts to snap a drawn stroke to a canonical shape.
// Returns nil when no shape fits well enough.
//
// Requires a dwell: the pen must rest for the dwell duration before
// lifting, which is how the user asks for a snap.
func recognizeShape(points []Point) []Point {
	if len(points) < 4 || !dwellBeforeLift(points) {
		return nil
	}

	pts := filterHoldPoints(points)
	if len(pts) < 4 {
		return nil
	}

	bounds := pointBounds(pts)
	diag := bounds.Diagonal()
	if diag < 1e-9 {
		return nil
	}

	pressure, tiltX, tiltY := averageTouch(pts)
	t0 := pts[0].Timestamp

	first := pts[0].Pos()
	last := pts[len(pts)-1].Pos()

	if first.Distance(last) <= snapClosedFraction*diag {
		return snapClosed(pts, bounds, pressure, tiltX, tiltY, t0)
	}
	return snapOpen(pts, pressure, tiltX, tiltY, t0)
}

// averageTouch returns the mean pressure and tilt of the original points,
// preserved on every regenerated point.
func averageTouch(pts []Point) (pressure, tiltX, tiltY float64) {
	for _, p := range pts {
		pressure += p.Pressure
		tiltX += p.TiltX
		tiltY += p.TiltY
	}
	n := float64(len(pts))
	return pressure / n, tiltX / n, tiltY / n
}

// Closed-shape score thresholds, tried in ladder order: confident circle,
// strong rect, confident ellipse, then progressively weaker fits.
const (
	circleConfident  = 0.22
	circleLoose      = 0.38
	rectStrong       = 0.70
	rectLoose        = 0.50
	ellipseConfident = 0.20
	ellipseLoose     = 0.35
	aspectRound      = 1.4
	aspectSplit      = 1.5
)

// snapClosed classifies a closed outline as circle, ellipse, or rounded
// rectangle, regenerating canonical geometry on success.
func snapClosed(pts []Point, bounds Rect, pressure, tiltX, tiltY, t0 float64) []Point {
	w, h := bounds.Width(), bounds.Height()
	center := bounds.Center()

	circleScore, avgRadius := circleFit(pts)
	aspect := math.Max(w, h) / math.Max(1, math.Min(w, h))
	ellipseScore := ellipseFit(pts, center, w/2, h/2)
	rectScore := rectEdgeFraction(pts, bounds)

	shape := func(kind int) []Point {
		switch kind {
		case 0:
			return genEllipse(center, avgRadius, avgRadius, pressure, tiltX, tiltY, t0)
		case 1:
			return genEllipse(center, w/2, h/2, pressure, tiltX, tiltY, t0)
		default:
			radius := math.Min(0.12*math.Min(w, h), 20)
			return genRoundedRect(bounds, radius, pressure, tiltX, tiltY, t0)
		}
	}

	switch {
	case circleScore < circleConfident && aspect < aspectRound:
		return shape(0)
	case rectScore > rectStrong:
		return shape(2)
	case ellipseScore < ellipseConfident && aspect >= aspectRound:
		return shape(1)
	case circleScore < circleLoose:
		if aspect < aspectSplit {
			return shape(0)
		}
		return shape(1)
	case rectScore > rectLoose:
		return shape(2)
	case ellipseScore < ellipseLoose:
		return shape(1)
	}
	return nil
}

// snapOpen snaps a nearly straight stroke to its chord.
func snapOpen(pts []Point, pressure, tiltX, tiltY, t0 float64) []Point {
	a := pts[0].Pos()
	b := pts[len(pts)-1].Pos()
	chord := a.Distance(b)
	if chord < 1e-9 {
		return nil
	}

	maxDev := 0.0
	for _, p := range pts {
		if d := distanceToSegment(p.Pos(), a, b); d > maxDev {
			maxDev = d
		}
	}
	if maxDev/chord >= snapLineDeviation {
		return nil
	}
	return genLine(a, b, pressure, tiltX, tiltY, t0)
}

// circleFit measures radial spread about the centroid: the standard
// deviation of point-to-centroid distances over their mean. A perfect
// circle scores 0.
func circleFit(pts []Point) (score, avgRadius float64) {
	var centroid Vec
	for _, p := range pts {
		centroid = centroid.Add(p.Pos())
	}
	centroid = centroid.Div(float64(len(pts)))

	dists := make([]float64, len(pts))
	sum := 0.0
	for i, p := range pts {
		dists[i] = p.Pos().Distance(centroid)
		sum += dists[i]
	}
	avg := sum / float64(len(pts))
	if avg < 1e-9 {
		return math.Inf(1), 0
	}

	varSum := 0.0
	for _, d := range dists {
		varSum += (d - avg) * (d - avg)
	}
	stdDev := math.Sqrt(varSum / float64(len(pts)))
	return stdDev / avg, avg
}

// ellipseFit measures the mean deviation of points from the implicit
// ellipse equation on the bounding box axes. A perfect fit scores 0.
func ellipseFit(pts []Point, center Vec, rx, ry float64) float64 {
	if rx < 1e-9 || ry < 1e-9 {
		return math.Inf(1)
	}
	sum := 0.0
	for _, p := range pts {
		nx := (p.X - center.X) / rx
		ny := (p.Y - center.Y) / ry
		sum += math.Abs(nx*nx + ny*ny - 1)
	}
	return sum / float64(len(pts))
}

// rectEdgeFraction returns the fraction of points lying within a margin
// band of the bounding box edges.
func rectEdgeFraction(pts []Point, bounds Rect) float64 {
	margin := 0.15 * math.Min(bounds.Width(), bounds.Height())
	near := 0
	for _, p := range pts {
		dLeft := p.X - bounds.Min.X
		dRight := bounds.Max.X - p.X
		dTop := p.Y - bounds.Min.Y
		dBottom := bounds.Max.Y - p.Y
		if dLeft <= margin || dRight <= margin || dTop <= margin || dBottom <= margin {
			near++
		}
	}
	return float64(near) / float64(len(pts))
}
