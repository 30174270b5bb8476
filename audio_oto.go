package ink

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/oto/v2"
)

// AudioBackend owns the output device for a Synth. The Real variant
// streams to the platform mixer through oto; NoopAudio drops samples so
// the engine runs identically without a device.
type AudioBackend interface {
	// Start begins pulling samples from the synth.
	Start(s *Synth) error
	// Close stops playback and releases the device.
	Close() error
}

// NoopAudio is the silent backend.
type NoopAudio struct{}

// Start implements AudioBackend.
func (NoopAudio) Start(*Synth) error { return nil }

// Close implements AudioBackend.
func (NoopAudio) Close() error { return nil }

// audioBitDepth selects 32-bit float output (oto.FormatFloat32LE).
const audioBitDepth = 0

// OtoAudio streams the synth to the default output device.
//
// Context creation is asynchronous on some platforms: if the device is
// not ready when a stroke starts, the stroke still commits and audio
// simply starts late once the ready channel closes.
type OtoAudio struct {
	ctx    *oto.Context
	ready  chan struct{}
	player oto.Player
}

// NewOtoAudio opens the platform audio device.
func NewOtoAudio() (*OtoAudio, error) {
	ctx, ready, err := oto.NewContext(audioSampleRate, 2, audioBitDepth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}
	return &OtoAudio{ctx: ctx, ready: ready}, nil
}

// Start implements AudioBackend.
func (a *OtoAudio) Start(s *Synth) error {
	if a.ctx == nil {
		return ErrAudioUnavailable
	}
	a.player = a.ctx.NewPlayer(&synthReader{synth: s})
	go func() {
		<-a.ready
		a.player.Play()
		Logger().Info("audio backend started", "sampleRate", audioSampleRate)
	}()
	return nil
}

// Close implements AudioBackend.
func (a *OtoAudio) Close() error {
	if a.player != nil {
		return a.player.Close()
	}
	return nil
}

// synthReader adapts Synth.Render to the io.Reader oto players consume,
// packing interleaved stereo float32 LE. It never returns io.EOF: the
// voice idles at silence between strokes.
type synthReader struct {
	synth  *Synth
	frames []float64
}

func (r *synthReader) Read(p []byte) (int, error) {
	nFrames := len(p) / 8
	if nFrames == 0 {
		return 0, nil
	}
	if cap(r.frames) < nFrames*2 {
		r.frames = make([]float64, nFrames*2)
	}
	frames := r.frames[:nFrames*2]
	r.synth.Render(frames)

	for i := 0; i < nFrames; i++ {
		putStereoF32LR(p, i, frames[i*2], frames[i*2+1])
	}
	return nFrames * 8, nil
}

// putStereoF32LR writes independent left/right samples in [-1,1] as
// float32 LE at frame i.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}
