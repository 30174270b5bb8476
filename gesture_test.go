package ink

import (
	"math"
	"testing"
)

// withDwell appends a hold-still sample at the final position, long
// enough after the last movement to satisfy the snap dwell.
func withDwell(pts []Point, ms float64) []Point {
	last := pts[len(pts)-1]
	hold := last
	hold.Timestamp += ms
	return append(clonePoints(pts), hold)
}

func wobblyLine() []Point {
	// Nearly straight rightward stroke with +-1 wobble.
	coords := []Vec{{0, 0}, {20, 1}, {40, 0}, {60, -1}, {80, 0}}
	pts := make([]Point, len(coords))
	for i, c := range coords {
		pts[i] = Point{X: c.X, Y: c.Y, Pressure: 0.5, Timestamp: float64(i) * 50}
	}
	return pts
}

func circlePoints(cx, cy, r float64, n int) []Point {
	pts := make([]Point, n)
	for k := 0; k < n; k++ {
		theta := float64(k) * math.Pi / 16
		pts[k] = Point{
			X:         cx + r*math.Cos(theta),
			Y:         cy + r*math.Sin(theta),
			Pressure:  0.6,
			Timestamp: float64(k) * 20,
		}
	}
	return pts
}

func TestRecognizeShape_StraightLineSnap(t *testing.T) {
	got := recognizeShape(withDwell(wobblyLine(), 300))
	if got == nil {
		t.Fatal("no snap")
	}
	if len(got) < lineMinSamples {
		t.Fatalf("snapped line has %d points, want >= %d", len(got), lineMinSamples)
	}
	if !got[0].Pos().Approx(V(0, 0), 1e-9) {
		t.Errorf("line starts at %v, want (0,0)", got[0].Pos())
	}
	if !got[len(got)-1].Pos().Approx(V(80, 0), 1e-9) {
		t.Errorf("line ends at %v, want (80,0)", got[len(got)-1].Pos())
	}
	for i, p := range got {
		if p.Y != 0 {
			t.Errorf("point %d off the chord: y = %v", i, p.Y)
		}
		if p.Pressure != 0.5 {
			t.Errorf("point %d lost the average pressure: %v", i, p.Pressure)
		}
		if i > 0 && got[i].Timestamp <= got[i-1].Timestamp {
			t.Errorf("timestamps not increasing at %d", i)
		}
	}
}

func TestRecognizeShape_NoDwellNoSnap(t *testing.T) {
	if got := recognizeShape(wobblyLine()); got != nil {
		t.Errorf("snapped without dwell: %d points", len(got))
	}
}

func TestRecognizeShape_ClockRegressionMeansNoDwell(t *testing.T) {
	pts := wobblyLine()
	hold := pts[len(pts)-1]
	hold.Timestamp -= 500 // clock went backwards
	pts = append(pts, hold)
	if got := recognizeShape(pts); got != nil {
		t.Error("snapped despite timestamp regression")
	}
}

func TestRecognizeShape_CircleSnap(t *testing.T) {
	raw := circlePoints(50, 50, 30, 32)
	if score, _ := circleFit(raw); score >= circleConfident {
		t.Fatalf("circleScore = %v, want < %v", score, circleConfident)
	}

	got := recognizeShape(withDwell(raw, 300))
	if got == nil {
		t.Fatal("no snap")
	}
	if len(got) != ellipseSamples {
		t.Fatalf("snapped circle has %d points, want %d", len(got), ellipseSamples)
	}
	center := V(50, 50)
	for i, p := range got {
		r := p.Pos().Distance(center)
		if !approx(r, 30, 0.5) {
			t.Errorf("point %d radius = %v, want ~30", i, r)
		}
	}
	// Closed: first and last coincide.
	if !got[0].Pos().Approx(got[len(got)-1].Pos(), 1e-6) {
		t.Error("regenerated circle is not closed")
	}
}

func TestRecognizeShape_RectSnap(t *testing.T) {
	// Trace a 100x60 rectangle, 10 samples per edge.
	var pts []Point
	ts := 0.0
	edge := func(a, b Vec) {
		for i := 0; i < 10; i++ {
			p := a.Lerp(b, float64(i)/10)
			pts = append(pts, Point{X: p.X, Y: p.Y, Pressure: 0.5, Timestamp: ts})
			ts += 15
		}
	}
	edge(V(0, 0), V(100, 0))
	edge(V(100, 0), V(100, 60))
	edge(V(100, 60), V(0, 60))
	edge(V(0, 60), V(0, 0))

	got := recognizeShape(withDwell(pts, 300))
	if got == nil {
		t.Fatal("no snap")
	}
	// A rounded rect keeps every point on or near the bbox outline.
	bounds := pointBounds(got)
	if !approx(bounds.Width(), 100, 1) || !approx(bounds.Height(), 60, 1) {
		t.Errorf("snapped bounds %vx%v, want 100x60", bounds.Width(), bounds.Height())
	}
}

func TestIsScratchGesture(t *testing.T) {
	zigzag := func(n int, scale float64) []Point {
		pts := make([]Point, n)
		for i := range pts {
			x := 20.0
			if i%2 == 1 {
				x = 80
			}
			pts[i] = Point{
				X:         x * scale,
				Y:         float64(i%3-1) * 3 * scale,
				Timestamp: float64(i) * 10 * scale,
			}
		}
		return pts
	}

	tests := []struct {
		name string
		pts  []Point
		want bool
	}{
		{"zigzag scratch", zigzag(20, 1), true},
		{"too few points", zigzag(10, 1), false},
		{"straight line", lineStroke(20, 10, 10), false},
		{"scaled up 3x stays a scratch", zigzag(20, 3), true},
		{"scaled down stays a scratch", zigzag(20, 0.5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isScratchGesture(tt.pts); got != tt.want {
				t.Errorf("isScratchGesture = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScratchTargets(t *testing.T) {
	d := NewDocument()
	d.AddStroke(NewStroke(lineStroke(11, 10, 16), testConfig())) // x 0..100 at y 0
	d.AddStroke(NewStroke([]Point{
		{X: 500, Y: 500}, {X: 520, Y: 500},
	}, testConfig()))

	scratch := make([]Point, 20)
	for i := range scratch {
		x := 20.0
		if i%2 == 1 {
			x = 80
		}
		scratch[i] = Point{X: x, Y: float64(i%3 - 1)}
	}

	got := scratchTargets(d, scratch)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("targets = %v, want [0]", got)
	}
}

func TestFilterHoldPoints(t *testing.T) {
	pts := wobblyLine()
	// Cluster of near-stationary samples at the end.
	last := pts[len(pts)-1]
	for i := 1; i <= 3; i++ {
		p := last
		p.X += float64(i)
		p.Timestamp += float64(i) * 100
		pts = append(pts, p)
	}
	got := filterHoldPoints(pts)
	if len(got) != len(wobblyLine()) {
		t.Errorf("filtered to %d points, want %d", len(got), len(wobblyLine()))
	}
}

func TestDwellBeforeLift(t *testing.T) {
	tests := []struct {
		name   string
		holdMs float64
		want   bool
	}{
		{"long dwell", 300, true},
		{"exact threshold", 250, true},
		{"short dwell", 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := withDwell(wobblyLine(), tt.holdMs)
			if got := dwellBeforeLift(pts); got != tt.want {
				t.Errorf("dwellBeforeLift = %v, want %v", got, tt.want)
			}
		})
	}
}
