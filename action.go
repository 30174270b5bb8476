package ink

// action is one reversible document mutation. apply performs (or
// re-performs) the mutation; revert restores the prior state bit-exactly.
type action interface {
	apply(d *Document)
	revert(d *Document)
}

// addStrokeAction appends one stroke to the document.
type addStrokeAction struct {
	stroke *Stroke
}

func (a *addStrokeAction) apply(d *Document) {
	d.Strokes = append(d.Strokes, a.stroke)
}

func (a *addStrokeAction) revert(d *Document) {
	d.Strokes = d.Strokes[:len(d.Strokes)-1]
}

// deleteEntry remembers a deleted stroke and the index it occupied, so
// revert can re-insert at the original position.
type deleteEntry struct {
	index  int
	stroke *Stroke
}

// deleteAction removes a batch of strokes in one undoable step.
type deleteAction struct {
	entries []deleteEntry // ascending by index
}

func newDeleteAction(d *Document, indices []int) *deleteAction {
	uniq := map[int]struct{}{}
	a := &deleteAction{}
	sorted := append([]int(nil), indices...)
	sortInts(sorted)
	for _, i := range sorted {
		if i < 0 || i >= len(d.Strokes) {
			continue
		}
		if _, dup := uniq[i]; dup {
			continue
		}
		uniq[i] = struct{}{}
		a.entries = append(a.entries, deleteEntry{index: i, stroke: d.Strokes[i]})
	}
	return a
}

func (a *deleteAction) apply(d *Document) {
	// Remove from the end so earlier indices stay valid.
	for i := len(a.entries) - 1; i >= 0; i-- {
		idx := a.entries[i].index
		d.Strokes = append(d.Strokes[:idx], d.Strokes[idx+1:]...)
	}
}

func (a *deleteAction) revert(d *Document) {
	// Re-insert in ascending order to land at the original indices.
	for _, e := range a.entries {
		d.Strokes = append(d.Strokes, nil)
		copy(d.Strokes[e.index+1:], d.Strokes[e.index:])
		d.Strokes[e.index] = e.stroke
	}
}

// recolorEntry remembers one stroke's pre-recolor color.
type recolorEntry struct {
	index    int
	oldColor string
}

// recolorAction replaces the color of a batch of strokes.
type recolorAction struct {
	entries  []recolorEntry
	newColor string
}

func newRecolorAction(d *Document, indices []int, color string) *recolorAction {
	a := &recolorAction{newColor: color}
	for _, i := range indices {
		if i < 0 || i >= len(d.Strokes) {
			continue
		}
		a.entries = append(a.entries, recolorEntry{index: i, oldColor: d.Strokes[i].Config.Color})
	}
	return a
}

func (a *recolorAction) apply(d *Document) {
	for _, e := range a.entries {
		d.Strokes[e.index].Config.Color = a.newColor
	}
}

func (a *recolorAction) revert(d *Document) {
	for _, e := range a.entries {
		d.Strokes[e.index].Config.Color = e.oldColor
	}
}

// moveAction translates a set of strokes by a world-space delta.
// The interactive drag applies the translation incrementally; apply is
// only invoked again on redo.
type moveAction struct {
	indices []int
	dx, dy  float64
}

func (a *moveAction) apply(d *Document) {
	for _, i := range a.indices {
		d.Strokes[i].Translate(a.dx, a.dy)
	}
}

func (a *moveAction) revert(d *Document) {
	for _, i := range a.indices {
		d.Strokes[i].Translate(-a.dx, -a.dy)
	}
}

// scaleAction records a completed handle-resize. Geometry before and
// after the drag is stored as deep copies: anisotropic scaling is not
// exactly invertible through floating point, and undo must restore the
// pre-drag points bit-exactly.
type scaleAction struct {
	indices []int
	before  [][]Point
	after   [][]Point
}

func (a *scaleAction) apply(d *Document) {
	for k, i := range a.indices {
		d.Strokes[i].Points = clonePoints(a.after[k])
	}
}

func (a *scaleAction) revert(d *Document) {
	for k, i := range a.indices {
		d.Strokes[i].Points = clonePoints(a.before[k])
	}
}
