package ink

import "errors"

// Engine failures are never fatal: every error below marks a capability
// that degraded, while the vector ink path keeps working.
var (
	// ErrAudioUnavailable reports that the audio backend failed to
	// initialize. Visual and haptic paths continue unaffected.
	ErrAudioUnavailable = errors.New("ink: audio unavailable")

	// ErrHapticUnavailable reports that no haptic actuator is present.
	// Pulse triggers become no-ops.
	ErrHapticUnavailable = errors.New("ink: haptics unavailable")

	// ErrSurfaceUnavailable reports that no render target is attached.
	// Export returns empty bytes and drawing operations are no-ops.
	ErrSurfaceUnavailable = errors.New("ink: render surface unavailable")

	// ErrInvalidSerialization reports malformed input to LoadStrokes.
	// The prior document is preserved.
	ErrInvalidSerialization = errors.New("ink: invalid serialized drawing")
)

// protocolViolation describes a recovered pointer protocol violation.
// It is logged, never returned: recovery is local (dangling strokes are
// ended) and the stream continues.
type protocolViolation struct {
	kind      string
	pointerID uint32
}

func (v protocolViolation) log() {
	Logger().Warn("pointer protocol violation recovered",
		"kind", v.kind, "pointerId", v.pointerID)
}
