package ink

// Smoother applies streamline smoothing to incoming samples: a first-order
// low-pass that trades a little latency for steadier lines.
//
//	smoothed = prev + (input - prev) * (1 - streamline*0.5)
//
// The 0.5 factor deliberately halves the effect so the line stays
// responsive at full streamline. streamline = 0 passes input through.
type Smoother struct {
	streamline float64
	prev       Vec
	hasPrev    bool

	predictor predictor
	predict   bool
}

// NewSmoother creates a smoother with the given streamline intensity in [0, 1].
func NewSmoother(streamline float64) *Smoother {
	return &Smoother{streamline: clamp(streamline, 0, 1)}
}

// SetPredictionEnabled toggles motion prediction. Off by default.
func (s *Smoother) SetPredictionEnabled(on bool) {
	s.predict = on
}

// Reset clears filter state. Call at stroke start.
func (s *Smoother) Reset() {
	s.hasPrev = false
	s.predictor = predictor{}
}

// Apply smooths one sample position, given its timestamp in milliseconds.
func (s *Smoother) Apply(p Vec, timestamp float64) Vec {
	if !s.hasPrev {
		s.prev = p
		s.hasPrev = true
		s.predictor.observe(p, timestamp)
		return p
	}

	alpha := 1 - s.streamline*0.5
	out := s.prev.Add(p.Sub(s.prev).Mul(alpha))

	if s.predict {
		out = s.predictor.blend(out, timestamp)
	}
	s.predictor.observe(out, timestamp)

	s.prev = out
	return out
}

// predictor extrapolates pointer motion a few milliseconds ahead using an
// exponential moving average of velocity, blended by a confidence factor
// that rises with how steady the velocity estimate has been.
//
// Kept behind Smoother.SetPredictionEnabled and off by default: prediction
// trims perceived latency but overshoots on sharp turns.
type predictor struct {
	last     Vec
	lastT    float64
	vel      Vec // EMA velocity, world px per ms
	conf     float64
	observed bool
}

const (
	predictVelSmoothing = 0.4
	predictLookaheadMs  = 8.0
)

func (pr *predictor) observe(p Vec, t float64) {
	if !pr.observed {
		pr.last, pr.lastT = p, t
		pr.observed = true
		return
	}
	dt := t - pr.lastT
	if dt <= 0 {
		return
	}
	v := p.Sub(pr.last).Div(dt)
	prevVel := pr.vel
	pr.vel = pr.vel.Add(v.Sub(pr.vel).Mul(predictVelSmoothing))

	// Confidence tracks velocity steadiness: agreement raises it,
	// direction changes knock it down.
	agreement := 1.0
	if prevVel.Length() > 1e-6 && v.Length() > 1e-6 {
		agreement = clamp(prevVel.Normalize().Dot(v.Normalize()), 0, 1)
	}
	pr.conf = clamp(pr.conf*0.7+agreement*0.3, 0, 1)

	pr.last, pr.lastT = p, t
}

func (pr *predictor) blend(p Vec, t float64) Vec {
	if !pr.observed {
		return p
	}
	predicted := p.Add(pr.vel.Mul(predictLookaheadMs))
	return p.Lerp(predicted, pr.conf*0.5)
}
