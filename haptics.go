package ink

import "time"

// Haptics is the capability interface for tactile pulses. Hosts with an
// actuator supply an implementation; NoopHaptics silently absorbs pulses.
type Haptics interface {
	Pulse(d time.Duration)
}

// NoopHaptics discards all pulses.
type NoopHaptics struct{}

// Pulse implements Haptics.
func (NoopHaptics) Pulse(time.Duration) {}

// Pulse durations.
const (
	hapticImmediateDur = 8 * time.Millisecond
	hapticGrainDur     = 5 * time.Millisecond
)

// Grain pulse rate limit: the minimum gap between pulses falls linearly
// from 80 ms at rest to 20 ms at high velocity.
const (
	hapticIntervalSlowMs = 80.0
	hapticIntervalFastMs = 20.0
	hapticFastVelocity   = 5.0
	// hapticGrainMinDist is the sample-to-sample travel, in world px,
	// below which no grain pulse fires.
	hapticGrainMinDist = 2.0
)

// hapticInterval returns the minimum pulse spacing in ms for a given
// velocity (world px per 100 ms).
func hapticInterval(velocity float64) float64 {
	t := clamp(velocity/hapticFastVelocity, 0, 1)
	return hapticIntervalSlowMs + (hapticIntervalFastMs-hapticIntervalSlowMs)*t
}

// HapticPulser drives an actuator with stroke feedback: one firm pulse at
// stroke start, then velocity-rate-limited grain ticks as the pen moves.
type HapticPulser struct {
	haptics Haptics
	enabled bool
	lastMs  float64
	fired   bool
}

// NewHapticPulser wraps an actuator. A nil actuator behaves as Noop.
func NewHapticPulser(h Haptics) *HapticPulser {
	if h == nil {
		h = NoopHaptics{}
	}
	return &HapticPulser{haptics: h, enabled: true}
}

// SetEnabled toggles all pulses.
func (p *HapticPulser) SetEnabled(on bool) {
	p.enabled = on
}

// TriggerImmediate fires the stroke-start pulse and resets the grain
// rate limiter.
func (p *HapticPulser) TriggerImmediate(nowMs float64) {
	p.fired = false
	if !p.enabled {
		return
	}
	p.haptics.Pulse(hapticImmediateDur)
	p.lastMs = nowMs
	p.fired = true
}

// TriggerGrain fires a grain tick for one sample, if the pen moved far
// enough and the rate limiter allows it. velocity is in world px per
// 100 ms; distance is the sample-to-sample travel in world px; nowMs is
// the sample timestamp on the same monotonic clock.
func (p *HapticPulser) TriggerGrain(nowMs, velocity, distance float64) {
	if !p.enabled || distance <= hapticGrainMinDist {
		return
	}
	if p.fired && nowMs-p.lastMs < hapticInterval(velocity) {
		return
	}
	p.haptics.Pulse(hapticGrainDur)
	p.lastMs = nowMs
	p.fired = true
}
