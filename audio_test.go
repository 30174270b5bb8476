package ink

import (
	"math"
	"testing"
)

func TestParseSoundProfile(t *testing.T) {
	if got := ParseSoundProfile("marker"); got != SoundMarker {
		t.Errorf("parse marker = %v", got)
	}
	if got := ParseSoundProfile("kazoo"); got != SoundFountain {
		t.Errorf("unknown profile = %v, want fountain fallback", got)
	}
}

func TestSoundProfiles_TableComplete(t *testing.T) {
	want := map[SoundProfile]profileParams{
		SoundPencil:      {rate: 1.0, filter: filterLowpass, freq: 600, q: 0.5},
		SoundCharcoal:    {rate: 0.5, filter: filterLowpass, freq: 400, q: 0.5},
		SoundBallpoint:   {rate: 1.3, filter: filterBandpass, freq: 800, q: 0.8},
		SoundFountain:    {rate: 0.9, filter: filterLowpass, freq: 400, q: 0.3},
		SoundMarker:      {rate: 0.8, filter: filterLowpass, freq: 200, q: 0.1},
		SoundHighlighter: {rate: 1.5, filter: filterBandpass, freq: 1200, q: 5.0, gainDb: 10},
		SoundMonoline:    {rate: 2.0, filter: filterLowpass, freq: 100, q: 0},
		SoundCalligraphy: {rate: 0.6, filter: filterLowpass, freq: 300, q: 0.2},
	}
	for profile, params := range want {
		if soundProfiles[profile] != params {
			t.Errorf("%s = %+v, want %+v", profile, soundProfiles[profile], params)
		}
	}
}

// renderMs pulls n milliseconds of audio and returns the peak absolute
// sample per channel.
func renderMs(s *Synth, ms int) (peakL, peakR float64) {
	frames := make([]float64, audioSampleRate*ms/1000*2)
	s.Render(frames)
	for i := 0; i+1 < len(frames); i += 2 {
		peakL = math.Max(peakL, math.Abs(frames[i]))
		peakR = math.Max(peakR, math.Abs(frames[i+1]))
	}
	return peakL, peakR
}

func TestSynth_SilentUntilMotion(t *testing.T) {
	s := NewSynth(SoundPencil)
	if l, r := renderMs(s, 50); l != 0 || r != 0 {
		t.Errorf("idle synth emitted signal: %v %v", l, r)
	}

	s.NoteOn()
	if l, r := renderMs(s, 50); l != 0 || r != 0 {
		t.Errorf("stationary pen emitted signal: %v %v", l, r)
	}

	s.UpdateMotion(2.0, 400, 800)
	if l, r := renderMs(s, 100); l == 0 && r == 0 {
		t.Error("moving pen emitted no signal")
	}
}

func TestSynth_ReleasesAfterNoteOff(t *testing.T) {
	s := NewSynth(SoundPencil)
	s.NoteOn()
	s.UpdateMotion(3.0, 400, 800)
	renderMs(s, 100)
	if s.Level() == 0 {
		t.Fatal("envelope did not open")
	}

	s.NoteOff()
	renderMs(s, 1000)
	if s.Level() > 1e-3 {
		t.Errorf("envelope level %v after a full second of release", s.Level())
	}
}

func TestSynth_EnvelopeTargetCurve(t *testing.T) {
	s := NewSynth(SoundPencil) // rate factor 1.0
	s.NoteOn()

	s.UpdateMotion(2.5, 0, 800)
	if !approx(s.envTarget, 1, 1e-9) {
		t.Errorf("target at v=2.5: %v, want 1", s.envTarget)
	}

	s.UpdateMotion(1.25, 0, 800)
	want := math.Pow(0.5, 1.1)
	if !approx(s.envTarget, want, 1e-9) {
		t.Errorf("target at half speed: %v, want %v", s.envTarget, want)
	}

	s.UpdateMotion(250, 0, 800)
	if s.envTarget > 1 {
		t.Errorf("target %v exceeds 1", s.envTarget)
	}
}

func TestSynth_PanFollowsScreenX(t *testing.T) {
	s := NewSynth(SoundPencil)
	s.NoteOn()

	tests := []struct {
		name    string
		screenX float64
		want    float64
	}{
		{"left edge", 0, -1},
		{"center", 400, 0},
		{"right edge", 800, 1},
		{"beyond right clamps", 1200, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.UpdateMotion(1, tt.screenX, 800)
			if !approx(s.pan, tt.want, 1e-9) {
				t.Errorf("pan = %v, want %v", s.pan, tt.want)
			}
		})
	}
}

func TestSynth_HardPanSilencesOppositeChannel(t *testing.T) {
	s := NewSynth(SoundPencil)
	s.NoteOn()
	s.UpdateMotion(2.5, 0, 800) // hard left
	l, r := renderMs(s, 200)
	if l == 0 {
		t.Fatal("left channel silent despite hard-left pan")
	}
	if r > l*1e-6 {
		t.Errorf("right channel %v not silenced by hard-left pan (left %v)", r, l)
	}
}

func TestSynth_VolumeScalesOutput(t *testing.T) {
	loud := NewSynth(SoundPencil)
	quiet := NewSynth(SoundPencil)
	quiet.SetVolume(0.1)
	for _, s := range []*Synth{loud, quiet} {
		s.NoteOn()
		s.UpdateMotion(2.5, 400, 800)
	}
	ll, _ := renderMs(loud, 200)
	ql, _ := renderMs(quiet, 200)
	if ql >= ll {
		t.Errorf("quiet peak %v not below loud peak %v", ql, ll)
	}
}

func TestBiquad_LowpassAttenuatesHighFrequency(t *testing.T) {
	var f biquad
	f.configure(filterLowpass, 200, 0.7)

	// Feed a high-frequency alternating signal; a 200 Hz lowpass at
	// 44.1 kHz should crush it.
	var peak float64
	x := 1.0
	for i := 0; i < 4096; i++ {
		y := f.process(x)
		if i > 1024 {
			peak = math.Max(peak, math.Abs(y))
		}
		x = -x
	}
	if peak > 0.01 {
		t.Errorf("Nyquist tone peak %v after 200 Hz lowpass", peak)
	}
}

func TestNoiseLoop_WrapsSeamlessly(t *testing.T) {
	n := newNoiseLoop()
	total := len(n.buf)
	// Play past the loop end at double rate.
	n.pos = float64(total) - 3
	for i := 0; i < 10; i++ {
		s := n.next(2)
		if math.IsNaN(s) || math.Abs(s) > 1.5 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
	if n.pos >= float64(total) {
		t.Errorf("read head %v did not wrap (len %d)", n.pos, total)
	}
}

func TestSurfaceTexture_RaisesCutoff(t *testing.T) {
	smooth := NewSynth(SoundPencil)
	rough := NewSynth(SoundPencil)
	rough.SetSurfaceTexture(1)

	// The rough filter passes more high-frequency energy.
	var fs, fr biquad
	fs = smooth.filter
	fr = rough.filter

	energy := func(f biquad) float64 {
		var sum float64
		x := 1.0
		for i := 0; i < 2048; i++ {
			y := f.process(x)
			sum += y * y
			x = -x
		}
		return sum
	}
	if energy(fr) <= energy(fs) {
		t.Error("high texture did not brighten the filter")
	}
}
