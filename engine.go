package ink

import "math"

// ToolMode selects what pen and mouse pointers drive.
type ToolMode int

const (
	ToolDraw ToolMode = iota
	ToolSelect
)

// Sample is one conditioned pointer sample in screen coordinates,
// relative to the canvas origin.
type Sample struct {
	X, Y      float64
	Pressure  float64
	TiltX     float64
	TiltY     float64
	Timestamp float64
}

// Engine is the sensory ink core: it owns the document, camera, input
// conditioning pipeline, and the audio/haptic feedback layer, and
// exposes the operations the host UI invokes.
//
// The engine is single-threaded cooperative: all methods must be called
// from the host's render/input loop. Only the audio render path runs
// elsewhere, behind the synth's own lock.
type Engine struct {
	doc    *Document
	camera *Camera
	sel    *selector

	target RenderTarget
	viewW  float64
	viewH  float64

	gridType GridType
	toolMode ToolMode

	// Active stroke state.
	stroking  bool
	config    RenderConfig
	points    []Point // conditioned points, becomes the stroke
	rawPoints []Point // unconditioned, feeds gesture classification
	lastRaw   Point

	// Input conditioning.
	smoother *Smoother
	friction *FrictionFilter
	rawMode  bool
	texture  float64

	// Feedback.
	synth   *Synth
	audio   AudioBackend
	haptics *HapticPulser
	volume  float64

	resizeDeferred bool
	pendingW       float64
	pendingH       float64
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithRenderTarget attaches the surface the engine draws into. Without
// one, drawing operations are no-ops and the document still works.
func WithRenderTarget(t RenderTarget) EngineOption {
	return func(e *Engine) {
		e.target = t
		if t != nil {
			e.viewW, e.viewH = t.Size()
		}
	}
}

// WithAudioBackend injects the audio output. Defaults to NoopAudio.
func WithAudioBackend(a AudioBackend) EngineOption {
	return func(e *Engine) { e.audio = a }
}

// WithHaptics injects the haptic actuator. Defaults to NoopHaptics.
func WithHaptics(h Haptics) EngineOption {
	return func(e *Engine) { e.haptics = NewHapticPulser(h) }
}

// NewEngine creates an engine from the given config.
func NewEngine(cfg EngineConfig, opts ...EngineOption) *Engine {
	doc := NewDocument()
	camera := NewCamera()
	e := &Engine{
		doc:      doc,
		camera:   camera,
		sel:      newSelector(doc, camera),
		gridType: ParseGridType(cfg.GridType),
		config:   DefaultRenderConfig(),
		smoother: NewSmoother(DefaultRenderConfig().Streamline),
		friction: NewFrictionFilter(frictionForTexture(cfg.SurfaceTexture)),
		rawMode:  cfg.RawMode,
		texture:  cfg.SurfaceTexture,
		synth:    NewSynth(ParseSoundProfile(cfg.SoundProfile)),
		audio:    NoopAudio{},
		haptics:  NewHapticPulser(nil),
		volume:   cfg.SoundVolume,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.haptics.SetEnabled(cfg.HapticsEnabled)
	e.synth.SetVolume(cfg.SoundVolume)
	e.synth.SetSurfaceTexture(cfg.SurfaceTexture)

	if err := e.audio.Start(e.synth); err != nil {
		// Audio degrades to silence; ink keeps flowing.
		Logger().Warn("audio backend unavailable", "err", err)
		e.audio = NoopAudio{}
	}
	return e
}

// Document returns the engine's document.
func (e *Engine) Document() *Document { return e.doc }

// Camera returns the engine's camera.
func (e *Engine) Camera() *Camera { return e.camera }

// SetToolMode switches between drawing and selection.
func (e *Engine) SetToolMode(m ToolMode) { e.toolMode = m }

// ToolMode returns the current tool mode.
func (e *Engine) ToolMode() ToolMode { return e.toolMode }

// SetRenderConfig replaces the config frozen into subsequent strokes.
func (e *Engine) SetRenderConfig(cfg RenderConfig) {
	e.config = cfg
	e.smoother = NewSmoother(cfg.Streamline)
}

// RenderConfig returns the config applied to new strokes.
func (e *Engine) RenderConfig() RenderConfig { return e.config }

// --- stroke lifecycle ---

// StartStroke begins a new stroke at a screen-space sample. An already
// active stroke is ended cleanly first.
func (e *Engine) StartStroke(s Sample) {
	if e.stroking {
		protocolViolation{kind: "startStroke while stroking"}.log()
		e.EndStroke()
	}
	e.stroking = true
	e.points = e.points[:0]
	e.rawPoints = e.rawPoints[:0]
	e.smoother.Reset()
	e.friction.Reset()

	e.synth.NoteOn()
	e.haptics.TriggerImmediate(s.Timestamp)

	e.appendSample(s)
}

// AddPoint feeds one screen-space sample into the active stroke.
// Samples arriving with no active stroke are recovered by starting one.
func (e *Engine) AddPoint(s Sample) {
	if !e.stroking {
		protocolViolation{kind: "addPoint without startStroke"}.log()
		e.StartStroke(s)
		return
	}
	e.appendSample(s)
}

// appendSample runs one sample through the conditioning pipeline and the
// feedback layer, then draws the incremental tip.
func (e *Engine) appendSample(s Sample) {
	world := e.camera.ScreenToWorld(Vec{X: s.X, Y: s.Y})
	raw := Point{
		X: world.X, Y: world.Y,
		Pressure:  clamp(s.Pressure, 0, 1),
		Timestamp: s.Timestamp,
		TiltX:     clamp(s.TiltX, -90, 90),
		TiltY:     clamp(s.TiltY, -90, 90),
	}

	// Per-100ms velocity and direction relative to the previous raw
	// sample drive friction, audio, and haptics.
	var vel100, dist float64
	direction := 0.0
	if len(e.rawPoints) > 0 {
		dt := raw.Timestamp - e.lastRaw.Timestamp
		d := raw.Pos().Sub(e.lastRaw.Pos())
		dist = d.Length()
		if dt > 0 {
			vel100 = dist / dt * 100
		}
		direction = d.Angle()
	}
	e.rawPoints = append(e.rawPoints, raw)
	e.lastRaw = raw

	p := raw
	if !e.rawMode {
		pos, _, _ := e.friction.Apply(raw.Pos(), raw.Pressure, vel100, direction)
		pos = e.smoother.Apply(pos, raw.Timestamp)
		p.X, p.Y = pos.X, pos.Y
	}

	// Feedback fires in raw mode too.
	e.synth.UpdateMotion(vel100/100, s.X, e.viewW)
	e.haptics.TriggerGrain(raw.Timestamp, vel100, dist)

	if n := len(e.points); n > 0 && e.target != nil {
		seg := TipSegment(e.config, e.points[n-1], p)
		e.target.SetTransform(e.camera.Matrix())
		e.target.StrokeSegment(seg.A, seg.B, seg.Width, e.config.rgba())
	}
	e.points = append(e.points, p)
}

// EndStroke commits the active stroke. The gesture recognizer runs
// first: a scratch consumes the stroke and erases what it covered; a
// dwell-and-hold snaps the points to a canonical shape. Safe to call
// when no stroke is active.
func (e *Engine) EndStroke() {
	if !e.stroking {
		return
	}
	e.stroking = false
	e.synth.NoteOff()

	points := clonePoints(e.points)
	raw := e.rawPoints

	switch {
	case isScratchGesture(raw):
		if targets := scratchTargets(e.doc, raw); len(targets) > 0 {
			e.doc.DeleteStrokes(targets)
		}
	case len(points) > 0:
		if snapped := recognizeShape(raw); snapped != nil {
			points = snapped
		}
		e.doc.AddStroke(NewStroke(points, e.config))
	}

	e.Redraw()

	if e.resizeDeferred {
		e.resizeDeferred = false
		e.Resize(e.pendingW, e.pendingH)
	}
}

// CancelStroke handles pointer-cancel and lost capture: the stroke ends
// exactly once through the normal path.
func (e *Engine) CancelStroke() {
	if e.stroking {
		protocolViolation{kind: "pointer canceled mid-stroke"}.log()
		e.EndStroke()
	}
}

// --- camera ---

// Pan translates the camera by a screen-space delta and redraws.
func (e *Engine) Pan(dxScreen, dyScreen float64) {
	e.camera.Pan(dxScreen, dyScreen)
	e.Redraw()
}

// Zoom scales the camera around a screen pivot and redraws.
func (e *Engine) Zoom(factor float64, pivot Vec) {
	e.camera.ZoomAround(factor, pivot)
	e.Redraw()
}

// --- selection ---

// SelectStroke hit-tests a screen point and updates the selection.
// Returns the hit stroke index, or -1.
func (e *Engine) SelectStroke(x, y float64, additive bool) int {
	world := e.camera.ScreenToWorld(Vec{X: x, Y: y})
	i := HitTest(e.doc, world, e.camera.Zoom)
	if i >= 0 {
		e.doc.Select(i, additive)
	} else if !additive {
		e.doc.ClearSelection()
	}
	return i
}

// StartSelectionRect begins rectangle selection at a screen point.
func (e *Engine) StartSelectionRect(x, y float64) { e.sel.startRect(Vec{X: x, Y: y}) }

// UpdateSelectionRect extends the tracked rectangle.
func (e *Engine) UpdateSelectionRect(x, y float64) { e.sel.updateRect(Vec{X: x, Y: y}) }

// EndSelectionRect completes rectangle selection.
func (e *Engine) EndSelectionRect(additive bool) { e.sel.endRect(additive) }

// StartLasso begins lasso selection at a screen point.
func (e *Engine) StartLasso(x, y float64) { e.sel.startLasso(Vec{X: x, Y: y}) }

// UpdateLasso extends the lasso polyline.
func (e *Engine) UpdateLasso(x, y float64) { e.sel.updateLasso(Vec{X: x, Y: y}) }

// EndLasso completes lasso selection.
func (e *Engine) EndLasso(additive bool) { e.sel.endLasso(additive) }

// StartMoveSelected begins translating the selection.
func (e *Engine) StartMoveSelected() { e.sel.startMove() }

// UpdateMoveSelected translates the selection by a world-space delta.
func (e *Engine) UpdateMoveSelected(dxWorld, dyWorld float64) {
	e.sel.updateMove(dxWorld, dyWorld)
	e.Redraw()
}

// EndMoveSelected completes the move, logging it when it exceeded the
// commit threshold.
func (e *Engine) EndMoveSelected() {
	e.sel.endMove()
	e.Redraw()
}

// HitHandle returns the resize handle under a screen point.
func (e *Engine) HitHandle(x, y float64) Handle { return e.sel.hitHandle(Vec{X: x, Y: y}) }

// StartResizeSelected begins a handle drag.
func (e *Engine) StartResizeSelected(h Handle) { e.sel.startResize(h) }

// UpdateResizeSelected rescales the selection toward a screen point.
func (e *Engine) UpdateResizeSelected(x, y float64) {
	e.sel.updateResize(Vec{X: x, Y: y})
	e.Redraw()
}

// EndResizeSelected completes the handle drag.
func (e *Engine) EndResizeSelected() {
	e.sel.endResize()
	e.Redraw()
}

// DeleteSelected removes the selected strokes.
func (e *Engine) DeleteSelected() {
	e.doc.DeleteSelected()
	e.Redraw()
}

// ChangeSelectedColor recolors the selected strokes.
func (e *Engine) ChangeSelectedColor(color string) {
	e.doc.RecolorSelected(color)
	e.Redraw()
}

// ClearSelection empties the selection.
func (e *Engine) ClearSelection() { e.doc.ClearSelection() }

// --- history ---

// Undo reverts the latest action.
func (e *Engine) Undo() {
	if e.doc.Undo() {
		e.Redraw()
	}
}

// Redo re-applies the latest undone action.
func (e *Engine) Redo() {
	if e.doc.Redo() {
		e.Redraw()
	}
}

// CanUndo reports whether undo is available.
func (e *Engine) CanUndo() bool { return e.doc.CanUndo() }

// CanRedo reports whether redo is available.
func (e *Engine) CanRedo() bool { return e.doc.CanRedo() }

// ClearAll removes every stroke in one undoable step.
func (e *Engine) ClearAll() {
	e.doc.ClearAll()
	e.Redraw()
}

// --- settings ---

// SetRawMode bypasses friction, smoothing, and prediction for 1:1 input
// fidelity. Audio and haptic feedback still fire.
func (e *Engine) SetRawMode(on bool) { e.rawMode = on }

// SetSurfaceTexture moves the shared glass-to-stone slider, retuning
// both the friction simulation and the synth timbre.
func (e *Engine) SetSurfaceTexture(texture float64) {
	e.texture = clamp(texture, 0, 1)
	e.friction.SetParams(frictionForTexture(e.texture))
	e.synth.SetSurfaceTexture(e.texture)
}

// SetSoundProfile switches the pen sound timbre.
func (e *Engine) SetSoundProfile(p SoundProfile) { e.synth.SetProfile(p) }

// SetSoundVolume sets the master volume in [0, 1].
func (e *Engine) SetSoundVolume(v float64) {
	e.volume = clamp(v, 0, 1)
	e.synth.SetVolume(e.volume)
}

// SetHapticEnabled toggles tactile pulses.
func (e *Engine) SetHapticEnabled(on bool) { e.haptics.SetEnabled(on) }

// SetPredictionEnabled toggles motion prediction in the smoother.
func (e *Engine) SetPredictionEnabled(on bool) { e.smoother.SetPredictionEnabled(on) }

// SetGridType switches the background grid and redraws.
func (e *Engine) SetGridType(g GridType) {
	e.gridType = g
	e.Redraw()
}

// GridType returns the current grid.
func (e *Engine) GridType() GridType { return e.gridType }

// --- export / serialize ---

// ExportImage renders the visible view as 2x-oversampled PNG bytes.
func (e *Engine) ExportImage() ([]byte, error) {
	if e.viewW <= 0 || e.viewH <= 0 {
		return nil, ErrSurfaceUnavailable
	}
	return ExportImage(e.doc, e.camera, e.gridType, int(math.Round(e.viewW)), int(math.Round(e.viewH)))
}

// ExportPDF renders the whole drawing as vector PDF bytes.
func (e *Engine) ExportPDF() ([]byte, error) {
	return ExportPDF(e.doc)
}

// ExportStrokes deep-copies the document into its wire form.
func (e *Engine) ExportStrokes() SerializedDrawing {
	return ExportStrokes(e.doc, e.gridType)
}

// LoadStrokes replaces the document from a serialized drawing. On error
// the prior document is untouched.
func (e *Engine) LoadStrokes(sd SerializedDrawing) error {
	grid, err := LoadStrokes(e.doc, sd)
	if err != nil {
		return err
	}
	e.gridType = grid
	Logger().Info("document loaded", "strokes", len(sd.Strokes), "grid", grid)
	e.Redraw()
	return nil
}

// --- surface ---

// Resize updates the viewport dimensions. A resize requested during an
// active stroke is deferred until the stroke ends.
func (e *Engine) Resize(w, h float64) {
	if e.stroking {
		e.resizeDeferred = true
		e.pendingW, e.pendingH = w, h
		return
	}
	e.viewW, e.viewH = w, h
	e.Redraw()
}

// Redraw repaints the full scene. A no-op without a render target.
func (e *Engine) Redraw() {
	if e.target == nil {
		return
	}
	DrawDocument(e.target, e.doc, e.camera, e.gridType)
}

// Close releases the audio device.
func (e *Engine) Close() error {
	return e.audio.Close()
}
