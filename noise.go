package ink

import "math"

// Audio stream constants shared by the synth and its backends.
const (
	audioSampleRate = 44100
	// noiseLoopSeconds is the length of the looped pink noise source.
	noiseLoopSeconds = 2
)

// lcg advances a linear congruential seed and returns a noise sample
// in [-1, 1].
func lcg(seed *uint32) float64 {
	*seed = *seed*1664525 + 1013904223
	return float64(*seed)/2147483648.0 - 1.0
}

// genPinkNoise fills a loop buffer with pink noise using the Kellet
// three-pole approximation over white LCG noise. Pink's -3 dB/octave
// rolloff reads as paper hiss rather than harsh static.
func genPinkNoise(n int) []float64 {
	buf := make([]float64, n)
	seed := uint32(0x1ec5)
	var b0, b1, b2 float64
	for i := range buf {
		white := lcg(&seed)
		b0 = 0.99765*b0 + white*0.0990460
		b1 = 0.96300*b1 + white*0.2965164
		b2 = 0.57000*b2 + white*1.0526913
		buf[i] = (b0 + b1 + b2 + white*0.1848) * 0.18
	}
	return buf
}

// noiseLoop plays a pink noise buffer at a variable rate with linear
// interpolation, wrapping seamlessly.
type noiseLoop struct {
	buf []float64
	pos float64
}

func newNoiseLoop() *noiseLoop {
	return &noiseLoop{buf: genPinkNoise(audioSampleRate * noiseLoopSeconds)}
}

// next returns one sample, advancing the read head by rate frames.
func (n *noiseLoop) next(rate float64) float64 {
	i := int(n.pos)
	frac := n.pos - float64(i)
	j := i + 1
	if j >= len(n.buf) {
		j = 0
	}
	s := n.buf[i]*(1-frac) + n.buf[j]*frac

	n.pos += rate
	for n.pos >= float64(len(n.buf)) {
		n.pos -= float64(len(n.buf))
	}
	return s
}

// filterKind selects the biquad response.
type filterKind int

const (
	filterLowpass filterKind = iota
	filterBandpass
)

// biquad is an RBJ cookbook second-order filter.
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

// configure computes coefficients for the given response at freq Hz with
// quality q. Q is floored away from zero to keep the filter stable.
func (f *biquad) configure(kind filterKind, freq, q float64) {
	if q < 0.05 {
		q = 0.05
	}
	freq = clamp(freq, 20, audioSampleRate/2-100)

	w0 := 2 * math.Pi * freq / audioSampleRate
	alpha := math.Sin(w0) / (2 * q)
	cosW0 := math.Cos(w0)

	var b0, b1, b2, a0, a1, a2 float64
	switch kind {
	case filterBandpass:
		// Constant peak gain bandpass.
		b0 = alpha
		b1 = 0
		b2 = -alpha
	default:
		b0 = (1 - cosW0) / 2
		b1 = 1 - cosW0
		b2 = (1 - cosW0) / 2
	}
	a0 = 1 + alpha
	a1 = -2 * cosW0
	a2 = 1 - alpha

	f.b0 = b0 / a0
	f.b1 = b1 / a0
	f.b2 = b2 / a0
	f.a1 = a1 / a0
	f.a2 = a2 / a0
}

// process filters one sample.
func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}
