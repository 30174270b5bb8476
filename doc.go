// Package ink is a real-time vector ink engine. It ingests pointer
// samples (position, pressure, tilt, timestamp) and produces a
// structured, editable, renderable drawing.
//
// # Overview
//
// Four subsystems cooperate under the Engine facade:
//
//   - an input conditioning pipeline: coalesced sample intake, friction
//     simulation, streamline smoothing, and an off-by-default motion
//     predictor;
//   - a stroke geometry model: Catmull-Rom to cubic Bezier tessellation
//     with per-segment width driven by pressure, velocity, and pen tilt,
//     plus entry/exit taper;
//   - an editable document: camera (world/screen transform), undo/redo
//     action log, rectangle/lasso selection, move/recolor/delete, and
//     scratch-to-erase / shape-snap gesture recognition;
//   - a multimodal feedback layer: stereo-panned procedural noise whose
//     timbre follows the surface texture slider, and rate-limited haptic
//     pulses.
//
// # Quick start
//
//	cfg := ink.DefaultEngineConfig()
//	target := ink.NewSoftwareTarget(800, 600)
//	eng := ink.NewEngine(cfg, ink.WithRenderTarget(target))
//
//	eng.StartStroke(ink.Sample{X: 10, Y: 10, Pressure: 0.5, Timestamp: 0})
//	eng.AddPoint(ink.Sample{X: 60, Y: 40, Pressure: 0.6, Timestamp: 16})
//	eng.EndStroke()
//
//	png, _ := eng.ExportImage()
//
// Hosts with a live pointer stream feed a Dispatcher instead of calling
// the stroke verbs directly; it routes pen, mouse, and touch pointers
// and owns capture semantics.
//
// # Coordinate system
//
// World coordinates are infinite; the camera maps them to screen with
// screen = (world + pan) * zoom. Origin top-left, x right, y down.
// All stroke, grid, and hit-test math is in world space; selection
// rectangles and lassos are tracked in screen space.
//
// # Concurrency
//
// The engine is single-threaded cooperative: call every method from the
// host's render/input loop. The audio backend pulls samples on its own
// goroutine through the Synth's lock; nothing else is shared.
//
// # Degradation
//
// Missing capabilities never fail the core: without audio the synth
// renders into a noop backend, without haptics pulses vanish, without a
// render target drawing is a no-op and the document stays fully
// editable and serializable.
package ink
