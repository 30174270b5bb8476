package ink

import (
	"github.com/google/uuid"
)

// Stroke is a committed ordered point sequence plus its frozen render
// config. Timestamps are non-decreasing. After commit, points move only
// through bulk translation or scaling driven by undoable actions;
// pressure and tilt never change.
type Stroke struct {
	ID     uuid.UUID
	Points []Point
	Config RenderConfig
}

// NewStroke creates a stroke with a fresh identity.
func NewStroke(points []Point, cfg RenderConfig) *Stroke {
	return &Stroke{ID: uuid.New(), Points: points, Config: cfg}
}

// Bounds returns the stroke's world bounding box (ignoring width).
func (s *Stroke) Bounds() Rect {
	return pointBounds(s.Points)
}

// Translate moves every point by (dx, dy) in world units.
func (s *Stroke) Translate(dx, dy float64) {
	for i := range s.Points {
		s.Points[i].X += dx
		s.Points[i].Y += dy
	}
}

// ScaleAbout rescales every point about a world pivot, anisotropically.
func (s *Stroke) ScaleAbout(pivot Vec, sx, sy float64) {
	for i := range s.Points {
		s.Points[i].X = pivot.X + (s.Points[i].X-pivot.X)*sx
		s.Points[i].Y = pivot.Y + (s.Points[i].Y-pivot.Y)*sy
	}
}

// clonePoints deep-copies a point slice.
func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// Clone deep-copies the stroke, keeping its identity.
func (s *Stroke) Clone() *Stroke {
	return &Stroke{ID: s.ID, Points: clonePoints(s.Points), Config: s.Config}
}

// Document holds the drawing: an ordered stroke list (render order, later
// paints over earlier), the current selection, and the undo/redo logs.
type Document struct {
	Strokes   []*Stroke
	Selection map[int]struct{}

	undo []action
	redo []action
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{Selection: map[int]struct{}{}}
}

// commit logs a freshly performed user action. Any commit clears the
// redo log.
func (d *Document) commit(a action) {
	d.undo = append(d.undo, a)
	d.redo = d.redo[:0]
}

// CanUndo reports whether an undo step is available.
func (d *Document) CanUndo() bool { return len(d.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (d *Document) CanRedo() bool { return len(d.redo) > 0 }

// Undo reverts the most recent action. Selection is cleared because the
// indices it names may no longer hold.
func (d *Document) Undo() bool {
	if len(d.undo) == 0 {
		return false
	}
	a := d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]
	a.revert(d)
	d.redo = append(d.redo, a)
	d.ClearSelection()
	return true
}

// Redo re-applies the most recently undone action.
func (d *Document) Redo() bool {
	if len(d.redo) == 0 {
		return false
	}
	a := d.redo[len(d.redo)-1]
	d.redo = d.redo[:len(d.redo)-1]
	a.apply(d)
	d.ClearSelection()
	return true
}

// AddStroke appends a stroke and logs the action.
func (d *Document) AddStroke(s *Stroke) {
	a := &addStrokeAction{stroke: s}
	a.apply(d)
	d.commit(a)
}

// DeleteStrokes removes the strokes at the given indices, logged as one
// action. Indices are deduplicated; out-of-range entries are ignored.
func (d *Document) DeleteStrokes(indices []int) {
	a := newDeleteAction(d, indices)
	if len(a.entries) == 0 {
		return
	}
	a.apply(d)
	d.commit(a)
}

// DeleteSelected removes every selected stroke and clears the selection.
func (d *Document) DeleteSelected() {
	if len(d.Selection) == 0 {
		return
	}
	indices := make([]int, 0, len(d.Selection))
	for i := range d.Selection {
		indices = append(indices, i)
	}
	d.DeleteStrokes(indices)
	d.ClearSelection()
}

// RecolorSelected replaces the color of every selected stroke, logged as
// one action. A no-op when nothing is selected.
func (d *Document) RecolorSelected(color string) {
	if len(d.Selection) == 0 {
		return
	}
	a := newRecolorAction(d, d.selectedIndices(), color)
	if len(a.entries) == 0 {
		return
	}
	a.apply(d)
	d.commit(a)
}

// logMove records a completed selection drag of (dx, dy) world units.
// The translation has already been applied interactively during the
// drag, so only the log entry is created here.
func (d *Document) logMove(indices []int, dx, dy float64) {
	d.commit(&moveAction{indices: append([]int(nil), indices...), dx: dx, dy: dy})
}

// logScale records a completed handle-resize so undo restores the exact
// pre-drag geometry.
func (d *Document) logScale(indices []int, before [][]Point, after [][]Point) {
	d.commit(&scaleAction{
		indices: append([]int(nil), indices...),
		before:  before,
		after:   after,
	})
}

// ClearAll removes every stroke, logged as a single delete so it undoes
// in one step.
func (d *Document) ClearAll() {
	if len(d.Strokes) == 0 {
		return
	}
	indices := make([]int, len(d.Strokes))
	for i := range indices {
		indices[i] = i
	}
	d.DeleteStrokes(indices)
	d.ClearSelection()
}

// ClearSelection empties the selection set.
func (d *Document) ClearSelection() {
	for i := range d.Selection {
		delete(d.Selection, i)
	}
}

// Select adds an index to the selection. When additive is false the
// previous selection is replaced.
func (d *Document) Select(index int, additive bool) {
	if !additive {
		d.ClearSelection()
	}
	if index >= 0 && index < len(d.Strokes) {
		d.Selection[index] = struct{}{}
	}
}

// selectedIndices returns the selection in ascending order.
func (d *Document) selectedIndices() []int {
	out := make([]int, 0, len(d.Selection))
	for i := range d.Selection {
		out = append(out, i)
	}
	sortInts(out)
	return out
}

// SelectionBounds returns the world bounding box of the selected strokes.
// ok is false when the selection is empty.
func (d *Document) SelectionBounds() (r Rect, ok bool) {
	first := true
	for i := range d.Selection {
		if i < 0 || i >= len(d.Strokes) {
			continue
		}
		b := d.Strokes[i].Bounds()
		if first {
			r, first = b, false
		} else {
			r = r.Union(b)
		}
	}
	return r, !first
}

// resetHistory drops both logs. Used by LoadStrokes.
func (d *Document) resetHistory() {
	d.undo = d.undo[:0]
	d.redo = d.redo[:0]
}

// sortInts is a small insertion sort; selection sets stay tiny.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
