package ink

import "testing"

func TestWidthAt_AlwaysClamped(t *testing.T) {
	cfg := testConfig()
	cfg.MinWidth = 1.5
	cfg.MaxWidth = 5

	tests := []struct {
		name string
		prev Point
		cur  Point
	}{
		{"no pressure", Point{}, Point{X: 10, Timestamp: 16}},
		{"full pressure slow", Point{}, Point{X: 0.1, Pressure: 1, Timestamp: 16}},
		{"fast flick", Point{}, Point{X: 500, Pressure: 0.3, Timestamp: 4}},
		{"zero dt", Point{}, Point{X: 10, Pressure: 0.7}},
		{"steep tilt", Point{}, Point{X: 10, Pressure: 1, Timestamp: 16, TiltX: 0, TiltY: 85}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := widthAt(cfg, tt.prev, tt.cur)
			if w < cfg.MinWidth || w > cfg.MaxWidth {
				t.Errorf("width %v outside [%v, %v]", w, cfg.MinWidth, cfg.MaxWidth)
			}
		})
	}
}

func TestWidthAt_PressureThickens(t *testing.T) {
	cfg := testConfig()
	prev := Point{}
	soft := widthAt(cfg, prev, Point{X: 5, Pressure: 0.2, Timestamp: 16})
	hard := widthAt(cfg, prev, Point{X: 5, Pressure: 0.9, Timestamp: 16})
	if soft >= hard {
		t.Errorf("soft %v, want below hard %v", soft, hard)
	}
}

func TestWidthAt_VelocityThins(t *testing.T) {
	cfg := testConfig()
	prev := Point{}
	slow := widthAt(cfg, prev, Point{X: 2, Pressure: 0.5, Timestamp: 100})
	fast := widthAt(cfg, prev, Point{X: 200, Pressure: 0.5, Timestamp: 100})
	if fast >= slow {
		t.Errorf("fast %v, want below slow %v", fast, slow)
	}
}

func TestWidthAt_TiltModulation(t *testing.T) {
	cfg := testConfig()
	cfg.VelocityInfluence = 0
	prev := Point{}

	// Stroke moves along +x. Tilt perpendicular to motion broadens up to
	// 1.5x, parallel narrows to 0.6x, none leaves width unchanged.
	flat := widthAt(cfg, prev, Point{X: 10, Pressure: 0.5, Timestamp: 16})
	perp := widthAt(cfg, prev, Point{X: 10, Pressure: 0.5, Timestamp: 16, TiltY: 60})
	para := widthAt(cfg, prev, Point{X: 10, Pressure: 0.5, Timestamp: 16, TiltX: 60})

	if !approx(perp, flat*1.5, 1e-9) {
		t.Errorf("perpendicular tilt width = %v, want %v", perp, flat*1.5)
	}
	if !approx(para, flat*0.6, 1e-9) {
		t.Errorf("parallel tilt width = %v, want %v", para, flat*0.6)
	}
}

func TestWidthAt_PartialTiltScalesIn(t *testing.T) {
	cfg := testConfig()
	cfg.VelocityInfluence = 0
	prev := Point{}
	flat := widthAt(cfg, prev, Point{X: 10, Pressure: 0.5, Timestamp: 16})
	half := widthAt(cfg, prev, Point{X: 10, Pressure: 0.5, Timestamp: 16, TiltY: 30})
	// m = 30/60 = 0.5, so halfway between 1.0 and 1.5.
	if !approx(half, flat*1.25, 1e-9) {
		t.Errorf("half tilt width = %v, want %v", half, flat*1.25)
	}
}

func TestTaperCount(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{1, 0},
		{3, 0},
		{4, 0}, // floor(0.6)
		{10, 1},
		{40, 6},
		{100, 8}, // capped
	}
	for _, tt := range tests {
		if got := taperCount(tt.points); got != tt.want {
			t.Errorf("taperCount(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestTaperScale_QuadraticRamp(t *testing.T) {
	// 40 points -> 39 segments, taper of 6 on each end.
	n := 39
	tc := taperCount(n + 1)
	if tc != 6 {
		t.Fatalf("taperCount = %d, want 6", tc)
	}

	for k := 0; k < tc; k++ {
		f := float64(k+1) / float64(tc+1)
		want := f * f
		if got := taperScale(k, n); !approx(got, want, 1e-12) {
			t.Errorf("entry taperScale(%d) = %v, want %v", k, got, want)
		}
		if got := taperScale(n-1-k, n); !approx(got, want, 1e-12) {
			t.Errorf("exit taperScale(%d) = %v, want %v", n-1-k, got, want)
		}
	}

	for k := tc; k < n-tc; k++ {
		if got := taperScale(k, n); got != 1 {
			t.Errorf("mid taperScale(%d) = %v, want 1", k, got)
		}
	}
}

func TestDotWidth(t *testing.T) {
	cfg := testConfig()
	p := Point{Pressure: 0.5}
	// pFactor = 0.5, base 4 -> 2, clamped then scaled by 0.4.
	if got := dotWidth(cfg, p); !approx(got, 0.8, 1e-12) {
		t.Errorf("dotWidth = %v, want 0.8", got)
	}
}
