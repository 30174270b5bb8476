package ink

import "math"

// Handle identifies one of the eight resize handles derived from the
// selection's world bounding box: four corners plus four edge midpoints.
type Handle int

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
)

// handlePickRadiusScreen is the handle hit radius in screen pixels.
const handlePickRadiusScreen = 10.0

// handlePositions returns the eight handle anchor points of a bounds rect,
// indexed by Handle (index 0 is unused).
func handlePositions(r Rect) [9]Vec {
	cx, cy := r.Center().X, r.Center().Y
	return [9]Vec{
		{},
		{X: r.Min.X, Y: r.Min.Y},
		{X: cx, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: cy},
		{X: r.Max.X, Y: r.Max.Y},
		{X: cx, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Min.X, Y: cy},
	}
}

// opposite returns the handle diagonally or axially across the bounds,
// which anchors the scale pivot during a handle drag.
func (h Handle) opposite() Handle {
	switch h {
	case HandleTopLeft:
		return HandleBottomRight
	case HandleTop:
		return HandleBottom
	case HandleTopRight:
		return HandleBottomLeft
	case HandleRight:
		return HandleLeft
	case HandleBottomRight:
		return HandleTopLeft
	case HandleBottom:
		return HandleTop
	case HandleBottomLeft:
		return HandleTopRight
	case HandleLeft:
		return HandleRight
	}
	return HandleNone
}

// scalesX reports whether dragging the handle changes the horizontal extent.
func (h Handle) scalesX() bool {
	return h != HandleTop && h != HandleBottom
}

// scalesY reports whether dragging the handle changes the vertical extent.
func (h Handle) scalesY() bool {
	return h != HandleLeft && h != HandleRight
}

// selector tracks in-progress selection gestures: rectangle and lasso
// tracking (screen space), selected-stroke moves, and handle resizes.
type selector struct {
	doc    *Document
	camera *Camera

	// Rectangle selection: two screen corners.
	rectActive bool
	rectStart  Vec
	rectEnd    Vec

	// Lasso selection: screen-space polyline.
	lassoActive bool
	lasso       []Vec

	// Move: accumulated world delta.
	moveActive bool
	moveTotal  Vec

	// Handle resize.
	resizeActive bool
	resizeHandle Handle
	resizePivot  Vec
	resizeStart  Rect
	resizeBefore [][]Point
	resizeIdx    []int
}

func newSelector(doc *Document, camera *Camera) *selector {
	return &selector{doc: doc, camera: camera}
}

// --- rectangle ---

func (s *selector) startRect(screen Vec) {
	s.rectActive = true
	s.rectStart = screen
	s.rectEnd = screen
}

func (s *selector) updateRect(screen Vec) {
	if s.rectActive {
		s.rectEnd = screen
	}
}

// endRect converts the tracked screen corners to world space and selects
// every stroke whose bounding box overlaps the rectangle.
func (s *selector) endRect(additive bool) {
	if !s.rectActive {
		return
	}
	s.rectActive = false
	world := NewRect(
		s.camera.ScreenToWorld(s.rectStart),
		s.camera.ScreenToWorld(s.rectEnd),
	)
	if !additive {
		s.doc.ClearSelection()
	}
	for _, i := range strokesOverlappingRect(s.doc, world) {
		s.doc.Selection[i] = struct{}{}
	}
}

// --- lasso ---

func (s *selector) startLasso(screen Vec) {
	s.lassoActive = true
	s.lasso = s.lasso[:0]
	s.lasso = append(s.lasso, screen)
}

func (s *selector) updateLasso(screen Vec) {
	if s.lassoActive {
		s.lasso = append(s.lasso, screen)
	}
}

// endLasso converts the lasso to a world polygon and selects every stroke
// whose bounding-box center lies inside it.
func (s *selector) endLasso(additive bool) {
	if !s.lassoActive {
		return
	}
	s.lassoActive = false
	poly := make([]Vec, len(s.lasso))
	for i, p := range s.lasso {
		poly[i] = s.camera.ScreenToWorld(p)
	}
	if !additive {
		s.doc.ClearSelection()
	}
	for _, i := range strokesInsidePolygon(s.doc, poly) {
		s.doc.Selection[i] = struct{}{}
	}
}

// --- move ---

const moveCommitThreshold = 0.5

func (s *selector) startMove() {
	if len(s.doc.Selection) == 0 {
		return
	}
	s.moveActive = true
	s.moveTotal = Vec{}
}

// updateMove translates the selection by a world-space delta.
func (s *selector) updateMove(dx, dy float64) {
	if !s.moveActive {
		return
	}
	s.moveTotal.X += dx
	s.moveTotal.Y += dy
	for i := range s.doc.Selection {
		s.doc.Strokes[i].Translate(dx, dy)
	}
}

// endMove logs a single move action when the accumulated delta is
// meaningful; sub-threshold drags are treated as taps and rolled back.
func (s *selector) endMove() {
	if !s.moveActive {
		return
	}
	s.moveActive = false
	if s.moveTotal.Length() > moveCommitThreshold {
		s.doc.logMove(s.doc.selectedIndices(), s.moveTotal.X, s.moveTotal.Y)
		return
	}
	if s.moveTotal != (Vec{}) {
		for i := range s.doc.Selection {
			s.doc.Strokes[i].Translate(-s.moveTotal.X, -s.moveTotal.Y)
		}
	}
}

// --- handle resize ---

// hitHandle returns the handle under a screen point, or HandleNone.
func (s *selector) hitHandle(screen Vec) Handle {
	bounds, ok := s.doc.SelectionBounds()
	if !ok {
		return HandleNone
	}
	pos := handlePositions(bounds)
	radius := handlePickRadiusScreen / s.camera.Zoom
	world := s.camera.ScreenToWorld(screen)

	best := HandleNone
	bestDist := radius
	for h := HandleTopLeft; h <= HandleLeft; h++ {
		if d := pos[h].Distance(world); d <= bestDist {
			best, bestDist = h, d
		}
	}
	return best
}

// startResize begins an anisotropic scale about the opposite handle.
func (s *selector) startResize(h Handle) {
	bounds, ok := s.doc.SelectionBounds()
	if !ok || h == HandleNone {
		return
	}
	s.resizeActive = true
	s.resizeHandle = h
	s.resizeStart = bounds
	s.resizePivot = handlePositions(bounds)[h.opposite()]
	s.resizeIdx = s.doc.selectedIndices()
	s.resizeBefore = make([][]Point, len(s.resizeIdx))
	for k, i := range s.resizeIdx {
		s.resizeBefore[k] = clonePoints(s.doc.Strokes[i].Points)
	}
}

// updateResize rescales the selection so the dragged handle follows the
// pointer while the opposite handle stays pinned.
func (s *selector) updateResize(screen Vec) {
	if !s.resizeActive {
		return
	}
	world := s.camera.ScreenToWorld(screen)
	start := handlePositions(s.resizeStart)[s.resizeHandle]

	sx, sy := 1.0, 1.0
	if s.resizeHandle.scalesX() {
		den := start.X - s.resizePivot.X
		if math.Abs(den) > 1e-9 {
			sx = (world.X - s.resizePivot.X) / den
		}
	}
	if s.resizeHandle.scalesY() {
		den := start.Y - s.resizePivot.Y
		if math.Abs(den) > 1e-9 {
			sy = (world.Y - s.resizePivot.Y) / den
		}
	}

	// Rebuild from the pre-drag geometry each update so repeated scaling
	// does not accumulate floating-point drift.
	for k, i := range s.resizeIdx {
		s.doc.Strokes[i].Points = clonePoints(s.resizeBefore[k])
		s.doc.Strokes[i].ScaleAbout(s.resizePivot, sx, sy)
	}
}

// endResize logs the completed drag so undo restores pre-drag geometry.
func (s *selector) endResize() {
	if !s.resizeActive {
		return
	}
	s.resizeActive = false
	changed := false
	after := make([][]Point, len(s.resizeIdx))
	for k, i := range s.resizeIdx {
		after[k] = clonePoints(s.doc.Strokes[i].Points)
		if !changed {
			for j := range after[k] {
				if after[k][j] != s.resizeBefore[k][j] {
					changed = true
					break
				}
			}
		}
	}
	if changed {
		s.doc.logScale(s.resizeIdx, s.resizeBefore, after)
	}
	s.resizeBefore = nil
	s.resizeIdx = nil
}
