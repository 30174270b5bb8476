package ink

import (
	"math"
	"testing"
)

func TestFrictionFilter_FirstSamplePassesThrough(t *testing.T) {
	f := NewFrictionFilter(frictionForTexture(0.5))
	p := V(12, 34)
	out, friction, grain := f.Apply(p, 0.5, 1, 0)
	if out != p || friction != 0 || grain != 0 {
		t.Errorf("first sample = %v (f=%v g=%v), want pass-through", out, friction, grain)
	}
}

func TestFrictionFilter_DragsTowardLastOutput(t *testing.T) {
	f := NewFrictionFilter(FrictionParams{BaseResistance: 0.3})
	f.Apply(V(0, 0), 0.5, 0, 0)
	out, friction, _ := f.Apply(V(10, 0), 0.5, 0, 0)
	if !approx(friction, 0.3, 1e-9) {
		t.Fatalf("friction = %v, want 0.3", friction)
	}
	if !out.Approx(V(7, 0), 1e-9) {
		t.Errorf("dragged point = %v, want (7, 0)", out)
	}

	// Next sample drags from the previous output, not the raw input.
	out2, _, _ := f.Apply(V(10, 0), 0.5, 0, 0)
	want := V(7+(10-7)*0.7, 0)
	if !out2.Approx(want, 1e-9) {
		t.Errorf("second dragged point = %v, want %v", out2, want)
	}
}

func TestFrictionFilter_MomentumDefeatsFriction(t *testing.T) {
	params := FrictionParams{BaseResistance: 0.4, VelocityDamping: 0.5}
	slow := NewFrictionFilter(params)
	fast := NewFrictionFilter(params)
	slow.Apply(V(0, 0), 0, 0, 0)
	fast.Apply(V(0, 0), 0, 0, 0)

	_, fSlow, _ := slow.Apply(V(10, 0), 0, 0.5, 0)
	_, fFast, _ := fast.Apply(V(10, 0), 0, 10, 0)
	if fFast >= fSlow {
		t.Errorf("fast friction %v, want below slow friction %v", fFast, fSlow)
	}
	// At velocity >= 5 the damping saturates: f = base * (1 - damping).
	if !approx(fFast, 0.4*0.5, 1e-9) {
		t.Errorf("saturated friction = %v, want 0.2", fFast)
	}
}

func TestFrictionFilter_GrainFactor(t *testing.T) {
	params := FrictionParams{GrainDirection: 0, GrainStrength: 0.1}
	tests := []struct {
		name      string
		direction float64
		want      float64
	}{
		{"parallel", 0, 0},
		{"perpendicular", math.Pi / 2, 1},
		{"opposite is parallel", math.Pi, 0},
		{"diagonal", math.Pi / 4, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrictionFilter(params)
			f.Apply(V(0, 0), 0, 0, 0)
			_, _, grain := f.Apply(V(1, 1), 0, 0, tt.direction)
			if !approx(grain, tt.want, 1e-9) {
				t.Errorf("grain factor = %v, want %v", grain, tt.want)
			}
		})
	}
}

func TestFrictionFilter_ClampedToHalf(t *testing.T) {
	f := NewFrictionFilter(FrictionParams{
		BaseResistance:    0.9,
		PressureInfluence: 1,
		GrainStrength:     1,
	})
	f.Apply(V(0, 0), 1, 0, 0)
	_, friction, _ := f.Apply(V(10, 0), 1, 0, math.Pi/2)
	if friction != 0.5 {
		t.Errorf("friction = %v, want clamped to 0.5", friction)
	}
}

func TestFrictionForTexture_GlassToStone(t *testing.T) {
	glass := frictionForTexture(0)
	stone := frictionForTexture(1)
	if glass.BaseResistance >= stone.BaseResistance {
		t.Errorf("glass resistance %v, want below stone %v",
			glass.BaseResistance, stone.BaseResistance)
	}
	if glass.GrainStrength >= stone.GrainStrength {
		t.Errorf("glass grain %v, want below stone %v",
			glass.GrainStrength, stone.GrainStrength)
	}
}
