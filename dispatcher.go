package ink

// PointerType tags the device class of a pointer event.
type PointerType string

const (
	PointerPen   PointerType = "pen"
	PointerMouse PointerType = "mouse"
	PointerTouch PointerType = "touch"
)

// PointerEvent is one ingested pointer event from the host toolkit,
// with coordinates already relative to the canvas origin.
type PointerEvent struct {
	PointerID uint32
	Type      PointerType
	X, Y      float64
	Pressure  float64
	TiltX     float64
	TiltY     float64
	Timestamp float64
	// Coalesced holds sub-frame samples the platform batched into this
	// event, in reported order. Empty when unsupported.
	Coalesced []PointerEvent
}

// sample converts the event into an engine sample.
func (ev PointerEvent) sample() Sample {
	return Sample{
		X: ev.X, Y: ev.Y,
		Pressure:  ev.Pressure,
		TiltX:     ev.TiltX,
		TiltY:     ev.TiltY,
		Timestamp: ev.Timestamp,
	}
}

// PlatformCaps describes pointer-stream quirks the dispatcher queries
// once at construction.
type PlatformCaps struct {
	// CoalescedEvents is false on platforms known to mis-report
	// sub-frame samples; the dispatcher then uses only leaf samples.
	CoalescedEvents bool
}

// Dispatcher routes pointer events into the engine: pen and mouse drive
// drawing or selection depending on the tool mode, touch drives the
// camera, and palm touches during pen input are rejected wholesale.
//
// The dispatcher owns pointer capture semantics: for every stroke it
// starts, exactly one end is delivered, even on cancel or lost capture.
type Dispatcher struct {
	engine *Engine
	caps   PlatformCaps

	// drawPointer is the exclusive drawing pointer lock; it is only
	// meaningful while drawActive is set and keeps its last value after.
	drawPointer   uint32
	drawActive    bool
	selectGesture selectGesture

	// Touch tracking for camera gestures.
	touches    map[uint32]Vec
	touchOrder []uint32
	lastPinch  float64
	lastMid    Vec

	// dragPrev is the previous pen position of an active selection drag.
	dragPrev Vec
}

// selectGesture tracks what a pen-down started in select mode.
type selectGesture int

const (
	selNone selectGesture = iota
	selRect
	selMove
	selResize
)

// NewDispatcher creates a dispatcher for the engine.
func NewDispatcher(engine *Engine, caps PlatformCaps) *Dispatcher {
	return &Dispatcher{
		engine:  engine,
		caps:    caps,
		touches: map[uint32]Vec{},
	}
}

// PointerDown routes a pointer-down event.
func (d *Dispatcher) PointerDown(ev PointerEvent) {
	switch ev.Type {
	case PointerTouch:
		d.touchDown(ev)
	default:
		d.penDown(ev)
	}
}

// PointerMove routes a pointer-move event.
func (d *Dispatcher) PointerMove(ev PointerEvent) {
	switch ev.Type {
	case PointerTouch:
		d.touchMove(ev)
	default:
		d.penMove(ev)
	}
}

// PointerUp routes a pointer-up event.
func (d *Dispatcher) PointerUp(ev PointerEvent) {
	switch ev.Type {
	case PointerTouch:
		d.touchUp(ev)
	default:
		d.penUp(ev)
	}
}

// PointerCancel handles cancel and lost capture for any pointer.
func (d *Dispatcher) PointerCancel(ev PointerEvent) {
	if ev.Type == PointerTouch {
		d.touchUp(ev)
		return
	}
	if d.drawActive && ev.PointerID == d.drawPointer {
		d.drawActive = false
		d.endSelectOrStroke(ev, true)
	}
}

// --- pen / mouse ---

func (d *Dispatcher) penDown(ev PointerEvent) {
	// A second pen-down while one is active means we missed a pointer-up
	// somewhere: end the prior stroke cleanly before starting over.
	if d.drawActive && ev.PointerID != d.drawPointer {
		protocolViolation{kind: "orphaned drawing pointer", pointerID: d.drawPointer}.log()
		d.endSelectOrStroke(ev, true)
	}
	d.drawPointer = ev.PointerID
	d.drawActive = true

	if d.engine.ToolMode() == ToolSelect {
		d.selectDown(ev)
		return
	}
	d.selectGesture = selNone
	d.engine.StartStroke(ev.sample())
}

func (d *Dispatcher) penMove(ev PointerEvent) {
	if !d.drawActive || ev.PointerID != d.drawPointer {
		return
	}
	for _, s := range d.coalescedSamples(ev) {
		d.penSample(s)
	}
}

func (d *Dispatcher) penSample(s Sample) {
	if d.engine.ToolMode() == ToolSelect {
		d.selectMove(s)
		return
	}
	d.engine.AddPoint(s)
}

func (d *Dispatcher) penUp(ev PointerEvent) {
	if !d.drawActive || ev.PointerID != d.drawPointer {
		return
	}
	d.drawActive = false
	d.endSelectOrStroke(ev, false)
}

// endSelectOrStroke finishes whatever the pen-down started. Exactly one
// end is delivered per start, canceled or not.
func (d *Dispatcher) endSelectOrStroke(ev PointerEvent, canceled bool) {
	switch d.selectGesture {
	case selRect:
		d.engine.EndSelectionRect(false)
	case selMove:
		d.engine.EndMoveSelected()
	case selResize:
		d.engine.EndResizeSelected()
	default:
		if canceled {
			d.engine.CancelStroke()
		} else {
			d.engine.EndStroke()
		}
	}
	d.selectGesture = selNone
}

// selectDown decides what a pen-down starts in select mode: a handle
// drag, a move of the selection, a tap-select, or rubber-band selection.
func (d *Dispatcher) selectDown(ev PointerEvent) {
	if h := d.engine.HitHandle(ev.X, ev.Y); h != HandleNone {
		d.selectGesture = selResize
		d.engine.StartResizeSelected(h)
		return
	}

	world := d.engine.Camera().ScreenToWorld(Vec{X: ev.X, Y: ev.Y})
	hit := HitTest(d.engine.Document(), world, d.engine.Camera().Zoom)
	if hit >= 0 {
		if _, selected := d.engine.Document().Selection[hit]; !selected {
			d.engine.SelectStroke(ev.X, ev.Y, false)
		}
		d.selectGesture = selMove
		d.dragPrev = Vec{X: ev.X, Y: ev.Y}
		d.engine.StartMoveSelected()
		return
	}

	d.selectGesture = selRect
	d.engine.StartSelectionRect(ev.X, ev.Y)
}

func (d *Dispatcher) selectMove(s Sample) {
	switch d.selectGesture {
	case selRect:
		d.engine.UpdateSelectionRect(s.X, s.Y)
	case selResize:
		d.engine.UpdateResizeSelected(s.X, s.Y)
	case selMove:
		// Screen delta to world delta.
		zoom := d.engine.Camera().Zoom
		d.engine.UpdateMoveSelected(
			(s.X-d.dragPrev.X)/zoom,
			(s.Y-d.dragPrev.Y)/zoom,
		)
		d.dragPrev = Vec{X: s.X, Y: s.Y}
	}
}

// coalescedSamples expands an event into its sub-frame samples when the
// platform reports them faithfully, otherwise just the leaf sample.
func (d *Dispatcher) coalescedSamples(ev PointerEvent) []Sample {
	if !d.caps.CoalescedEvents || len(ev.Coalesced) == 0 {
		return []Sample{ev.sample()}
	}
	out := make([]Sample, 0, len(ev.Coalesced))
	for _, sub := range ev.Coalesced {
		out = append(out, sub.sample())
	}
	return out
}

// --- touch ---

// Touch never draws: one finger pans, two fingers pinch-zoom. Extra
// fingers are tracked but ignored by the gesture math. While a pen
// stroke is active the pen owns the surface: touches landing then are
// palms and are rejected outright.
func (d *Dispatcher) touchDown(ev PointerEvent) {
	if d.drawActive {
		return
	}
	if _, known := d.touches[ev.PointerID]; !known {
		d.touchOrder = append(d.touchOrder, ev.PointerID)
	}
	d.touches[ev.PointerID] = Vec{X: ev.X, Y: ev.Y}
	d.resetPinch()
}

func (d *Dispatcher) touchMove(ev PointerEvent) {
	if d.drawActive {
		return
	}
	prev, known := d.touches[ev.PointerID]
	if !known {
		return
	}
	d.touches[ev.PointerID] = Vec{X: ev.X, Y: ev.Y}

	switch len(d.touchOrder) {
	case 1:
		d.engine.Pan(ev.X-prev.X, ev.Y-prev.Y)
	case 2:
		d.pinch()
	}
}

func (d *Dispatcher) touchUp(ev PointerEvent) {
	delete(d.touches, ev.PointerID)
	for i, id := range d.touchOrder {
		if id == ev.PointerID {
			d.touchOrder = append(d.touchOrder[:i], d.touchOrder[i+1:]...)
			break
		}
	}
	d.resetPinch()
}

// resetPinch re-bases the pinch gesture on the current finger layout.
func (d *Dispatcher) resetPinch() {
	if len(d.touchOrder) < 2 {
		d.lastPinch = 0
		return
	}
	a := d.touches[d.touchOrder[0]]
	b := d.touches[d.touchOrder[1]]
	d.lastPinch = a.Distance(b)
	d.lastMid = a.Add(b).Div(2)
}

// pinch applies two-finger zoom about the midpoint, plus the midpoint's
// own translation as a pan.
func (d *Dispatcher) pinch() {
	a := d.touches[d.touchOrder[0]]
	b := d.touches[d.touchOrder[1]]
	dist := a.Distance(b)
	mid := a.Add(b).Div(2)

	if d.lastPinch > 1e-6 && dist > 1e-6 {
		d.engine.Zoom(dist/d.lastPinch, mid)
	}
	d.engine.Pan(mid.X-d.lastMid.X, mid.Y-d.lastMid.Y)

	d.lastPinch = dist
	d.lastMid = mid
}
