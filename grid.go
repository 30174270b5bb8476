package ink

import "math"

// GridType selects the background grid drawn under the strokes.
type GridType string

const (
	GridNone      GridType = "none"
	GridSquare    GridType = "square"
	GridDot       GridType = "dot"
	GridRuled     GridType = "ruled"
	GridIsometric GridType = "isometric"
	GridGraph     GridType = "graph"
	GridHex       GridType = "hex"
)

// ParseGridType returns the grid type named by s, defaulting to GridNone
// for unknown names.
func ParseGridType(s string) GridType {
	switch GridType(s) {
	case GridSquare, GridDot, GridRuled, GridIsometric, GridGraph, GridHex:
		return GridType(s)
	}
	return GridNone
}

// gridCell is the world-space cell size shared by all grid styles.
const gridCell = 40.0

// Grid line colors.
var (
	gridLineColor   = RGBA{R: 0.78, G: 0.78, B: 0.82, A: 0.5}
	gridMinorColor  = RGBA{R: 0.78, G: 0.78, B: 0.82, A: 0.25}
	gridMarginColor = RGBA{R: 220.0 / 255, G: 80.0 / 255, B: 80.0 / 255, A: 0.3}
)

// DrawGrid emits the grid covering the camera's visible world rectangle
// onto the target. Lines are stroked at 1/zoom so they stay hairline on
// screen regardless of camera zoom; dot radii scale the same way.
func DrawGrid(t RenderTarget, camera *Camera, gridType GridType, viewW, viewH float64) {
	if gridType == GridNone {
		return
	}
	visible := camera.VisibleWorldRect(viewW, viewH)
	hairline := 1.0 / camera.Zoom

	switch gridType {
	case GridSquare:
		drawSquareGrid(t, visible, gridCell, hairline, gridLineColor)
	case GridDot:
		drawDotGrid(t, visible, hairline)
	case GridRuled:
		drawRuledGrid(t, visible, hairline)
	case GridIsometric:
		drawIsometricGrid(t, visible, hairline)
	case GridGraph:
		// Minor quarter-cells layered under the major grid.
		drawSquareGrid(t, visible, gridCell/4, hairline, gridMinorColor)
		drawSquareGrid(t, visible, gridCell, hairline, gridLineColor)
	case GridHex:
		drawHexGrid(t, visible, hairline)
	}
}

// drawSquareGrid draws vertical and horizontal lines at multiples of step.
func drawSquareGrid(t RenderTarget, r Rect, step, width float64, c RGBA) {
	for x := math.Floor(r.Min.X/step) * step; x <= r.Max.X; x += step {
		t.StrokeSegment(Vec{X: x, Y: r.Min.Y}, Vec{X: x, Y: r.Max.Y}, width, c)
	}
	for y := math.Floor(r.Min.Y/step) * step; y <= r.Max.Y; y += step {
		t.StrokeSegment(Vec{X: r.Min.X, Y: y}, Vec{X: r.Max.X, Y: y}, width, c)
	}
}

// drawDotGrid draws a disk at each cell center.
func drawDotGrid(t RenderTarget, r Rect, hairline float64) {
	radius := 1.5 * hairline
	for x := math.Floor(r.Min.X/gridCell)*gridCell + gridCell/2; x <= r.Max.X; x += gridCell {
		for y := math.Floor(r.Min.Y/gridCell)*gridCell + gridCell/2; y <= r.Max.Y; y += gridCell {
			t.FillDisk(Vec{X: x, Y: y}, radius, gridLineColor)
		}
	}
}

// drawRuledGrid draws notebook ruling: horizontal lines plus one red
// vertical margin line at world-x 2*gridCell.
func drawRuledGrid(t RenderTarget, r Rect, width float64) {
	for y := math.Floor(r.Min.Y/gridCell) * gridCell; y <= r.Max.Y; y += gridCell {
		t.StrokeSegment(Vec{X: r.Min.X, Y: y}, Vec{X: r.Max.X, Y: y}, width, gridLineColor)
	}
	marginX := 2 * gridCell
	if marginX >= r.Min.X && marginX <= r.Max.X {
		t.StrokeSegment(Vec{X: marginX, Y: r.Min.Y}, Vec{X: marginX, Y: r.Max.Y}, width, gridMarginColor)
	}
}

// drawIsometricGrid draws horizontal lines at the isometric row spacing
// plus diagonals at +-60 degrees.
func drawIsometricGrid(t RenderTarget, r Rect, width float64) {
	rowH := gridCell * math.Sqrt(3) / 2
	for y := math.Floor(r.Min.Y/rowH) * rowH; y <= r.Max.Y; y += rowH {
		t.StrokeSegment(Vec{X: r.Min.X, Y: y}, Vec{X: r.Max.X, Y: y}, width, gridLineColor)
	}

	// Diagonals: slope tan(60 deg). Sweep enough x-intercepts that every
	// diagonal crossing the visible rect is drawn.
	slope := math.Tan(math.Pi / 3)
	span := r.Height() / slope
	for x := math.Floor((r.Min.X-span)/gridCell) * gridCell; x <= r.Max.X+span; x += gridCell {
		t.StrokeSegment(
			Vec{X: x, Y: r.Min.Y},
			Vec{X: x + span, Y: r.Max.Y},
			width, gridLineColor)
		t.StrokeSegment(
			Vec{X: x, Y: r.Min.Y},
			Vec{X: x - span, Y: r.Max.Y},
			width, gridLineColor)
	}
}

// drawHexGrid draws pointy-top hexagons. Odd rows shift by half the
// horizontal pitch.
func drawHexGrid(t RenderTarget, r Rect, width float64) {
	radius := 0.6 * gridCell
	rowH := 1.5 * radius
	colW := math.Sqrt(3) * radius

	row0 := int(math.Floor(r.Min.Y/rowH)) - 1
	row1 := int(math.Ceil(r.Max.Y/rowH)) + 1
	col0 := int(math.Floor(r.Min.X/colW)) - 1
	col1 := int(math.Ceil(r.Max.X/colW)) + 1

	for row := row0; row <= row1; row++ {
		offset := 0.0
		if row&1 != 0 {
			offset = colW / 2
		}
		cy := float64(row) * rowH
		for col := col0; col <= col1; col++ {
			cx := float64(col)*colW + offset
			strokeHexagon(t, Vec{X: cx, Y: cy}, radius, width)
		}
	}
}

// strokeHexagon outlines one pointy-top hexagon centered at c.
func strokeHexagon(t RenderTarget, c Vec, radius, width float64) {
	var prev Vec
	for i := 0; i <= 6; i++ {
		// Offset by -90 deg so a vertex points up.
		theta := math.Pi/3*float64(i) - math.Pi/2
		p := Vec{X: c.X + radius*math.Cos(theta), Y: c.Y + radius*math.Sin(theta)}
		if i > 0 {
			t.StrokeSegment(prev, p, width, gridLineColor)
		}
		prev = p
	}
}
