package ink

import (
	"math"
	"sync"
)

// SoundProfile selects the timbre of the pen sound.
type SoundProfile string

const (
	SoundPencil      SoundProfile = "pencil"
	SoundCharcoal    SoundProfile = "charcoal"
	SoundBallpoint   SoundProfile = "ballpoint"
	SoundFountain    SoundProfile = "fountain"
	SoundMarker      SoundProfile = "marker"
	SoundHighlighter SoundProfile = "highlighter"
	SoundMonoline    SoundProfile = "monoline"
	SoundCalligraphy SoundProfile = "calligraphy"
)

// profileParams is the per-profile synthesis recipe: noise playback rate,
// filter response, and make-up gain in dB.
type profileParams struct {
	rate   float64
	filter filterKind
	freq   float64
	q      float64
	gainDb float64
}

var soundProfiles = map[SoundProfile]profileParams{
	SoundPencil:      {rate: 1.0, filter: filterLowpass, freq: 600, q: 0.5},
	SoundCharcoal:    {rate: 0.5, filter: filterLowpass, freq: 400, q: 0.5},
	SoundBallpoint:   {rate: 1.3, filter: filterBandpass, freq: 800, q: 0.8},
	SoundFountain:    {rate: 0.9, filter: filterLowpass, freq: 400, q: 0.3},
	SoundMarker:      {rate: 0.8, filter: filterLowpass, freq: 200, q: 0.1},
	SoundHighlighter: {rate: 1.5, filter: filterBandpass, freq: 1200, q: 5.0, gainDb: 10},
	SoundMonoline:    {rate: 2.0, filter: filterLowpass, freq: 100, q: 0},
	SoundCalligraphy: {rate: 0.6, filter: filterLowpass, freq: 300, q: 0.2},
}

// ParseSoundProfile returns the profile named by s, defaulting to
// SoundFountain for unknown names.
func ParseSoundProfile(s string) SoundProfile {
	if _, ok := soundProfiles[SoundProfile(s)]; ok {
		return SoundProfile(s)
	}
	return SoundFountain
}

// Envelope time constants.
const (
	envAttackMs  = 50.0
	envReleaseMs = 100.0
)

// Synth is the one stereo voice of pen sound. The signal chain is a
// looped pink noise buffer into a biquad filter, an envelope gain that
// tracks pen velocity, a master gain, and a stereo panner.
//
// Rendering is pull-model: the audio backend calls render from its own
// goroutine, while the engine thread pokes control parameters. A mutex
// guards the shared state; the critical sections are tiny.
type Synth struct {
	mu sync.Mutex

	noise  *noiseLoop
	filter biquad

	profile profileParams
	texture float64

	envLevel  float64
	envTarget float64
	active    bool

	masterGain float64
	makeupGain float64
	pan        float64
}

// NewSynth creates a silent synth with the given profile.
func NewSynth(profile SoundProfile) *Synth {
	s := &Synth{
		noise:      newNoiseLoop(),
		masterGain: 0.8,
	}
	s.applyProfile(soundProfiles[profile])
	return s
}

// applyProfile installs profile parameters. Caller holds mu (or is the
// constructor).
func (s *Synth) applyProfile(p profileParams) {
	s.profile = p
	s.reconfigureFilter()
}

// reconfigureFilter recomputes filter coefficients from the profile and
// the surface texture. Texture pushes the cutoff up and the resonance
// down: higher frequencies and a wider band read as a rougher surface.
func (s *Synth) reconfigureFilter() {
	freq := s.profile.freq * (1 + 1.5*s.texture)
	q := s.profile.q * (1 - 0.5*s.texture)
	s.filter.configure(s.profile.filter, freq, q)
	s.makeupGain = math.Pow(10, s.profile.gainDb/20)
}

// SetProfile switches the sound profile.
func (s *Synth) SetProfile(profile SoundProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyProfile(soundProfiles[profile])
}

// SetSurfaceTexture sets the glass-to-stone slider in [0, 1].
func (s *Synth) SetSurfaceTexture(texture float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texture = clamp(texture, 0, 1)
	s.reconfigureFilter()
}

// SetVolume sets the master gain in [0, 1].
func (s *Synth) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.masterGain = clamp(v, 0, 1)
}

// NoteOn marks the stroke as active. The envelope stays at zero until
// motion arrives.
func (s *Synth) NoteOn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	s.envTarget = 0
}

// NoteOff releases the envelope toward silence.
func (s *Synth) NoteOff() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.envTarget = 0
}

// UpdateMotion feeds one pen sample into the envelope and panner.
// velocity is in world px per ms; screenX/canvasWidth position the
// stereo image.
func (s *Synth) UpdateMotion(velocity, screenX, canvasWidth float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	v := math.Min(1, velocity/2.5)
	s.envTarget = clamp(math.Pow(v, 1.1)*s.profile.rate, 0, 1)
	if canvasWidth > 0 {
		s.pan = clamp(screenX/canvasWidth*2-1, -1, 1)
	}
}

// envCoeff converts a time constant in ms to a per-sample one-pole
// coefficient.
func envCoeff(ms float64) float64 {
	return 1 - math.Exp(-1000/(ms*audioSampleRate))
}

// Render fills frames with interleaved stereo float64 samples in [-1, 1].
// len(frames) must be even. Called from the audio backend goroutine.
func (s *Synth) Render(frames []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attack := envCoeff(envAttackMs)
	release := envCoeff(envReleaseMs)

	// Equal-power pan law.
	angle := (s.pan + 1) * math.Pi / 4
	gl := math.Cos(angle)
	gr := math.Sin(angle)

	for i := 0; i+1 < len(frames); i += 2 {
		coeff := attack
		if s.envTarget < s.envLevel {
			coeff = release
		}
		s.envLevel += (s.envTarget - s.envLevel) * coeff

		raw := s.noise.next(s.profile.rate)
		x := s.filter.process(raw) * s.makeupGain * s.envLevel * s.masterGain

		frames[i] = x * gl
		frames[i+1] = x * gr
	}
}

// Level returns the current envelope level. Used by tests and meters.
func (s *Synth) Level() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.envLevel
}
