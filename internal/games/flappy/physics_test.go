package flappy

import (
	"math"
	"testing"
)

func TestIntegrateGravity(t *testing.T) {
	ph := Physics{Gravity: 0.0018, JumpImpulse: -0.456}
	p := Player{X: 240, Y: 300}

	p.Integrate(false, ph, 16)

	if want := 0.0018 * 16; math.Abs(p.Vel-want) > 1e-12 {
		t.Errorf("Vel = %v, want %v", p.Vel, want)
	}
	if want := 300 + 0.0018*16*16; math.Abs(p.Y-want) > 1e-9 {
		t.Errorf("Y = %v, want %v", p.Y, want)
	}
	if p.X != 240 {
		t.Errorf("X changed to %v", p.X)
	}
}

func TestIntegrateJumpOverridesGravity(t *testing.T) {
	ph := Physics{Gravity: 0.0018, JumpImpulse: -0.456}
	p := Player{Y: 300, Vel: 0.5}

	p.Integrate(true, ph, 10)

	if p.Vel != ph.JumpImpulse {
		t.Errorf("Vel = %v, want %v", p.Vel, ph.JumpImpulse)
	}
	if want := 300 + ph.JumpImpulse*10; math.Abs(p.Y-want) > 1e-9 {
		t.Errorf("Y = %v, want %v", p.Y, want)
	}
}

func TestIntegrateMaxFallSpeed(t *testing.T) {
	ph := Physics{Gravity: 0.01, JumpImpulse: -0.4, MaxFallSpeed: 0.5}
	p := Player{Vel: 0.45}

	p.Integrate(false, ph, 20)

	if p.Vel != 0.5 {
		t.Errorf("Vel = %v, want capped at 0.5", p.Vel)
	}
	if math.Abs(p.Y-10) > 1e-9 {
		t.Errorf("Y = %v, want 10", p.Y)
	}
}

func TestIntegrateFrameRateIndependence(t *testing.T) {
	ph := Physics{Gravity: 0.0018, JumpImpulse: -0.456}

	// The velocity after the same span of time does not depend on how it
	// is split into frames.
	coarse := Player{Y: 300}
	for i := 0; i < 30; i++ {
		coarse.Integrate(false, ph, 1000.0/30)
	}
	fine := Player{Y: 300}
	for i := 0; i < 120; i++ {
		fine.Integrate(false, ph, 1000.0/120)
	}

	if math.Abs(coarse.Vel-fine.Vel) > 1e-9 {
		t.Errorf("velocity differs: 30fps=%v 120fps=%v", coarse.Vel, fine.Vel)
	}
	// Positions stay close to the analytic value.
	want := 300 + 0.5*ph.Gravity*1000*1000
	for name, p := range map[string]Player{"30fps": coarse, "120fps": fine} {
		if math.Abs(p.Y-want) > 40 {
			t.Errorf("%s: Y = %v, want about %v", name, p.Y, want)
		}
	}
}

func TestTilt(t *testing.T) {
	tests := []struct {
		name string
		vel  float64
		want float64
	}{
		{"level", 0, 0},
		{"diving clamps", 100, 80},
		{"steep dive", 1, 79.79602627826831},
		{"climbing clamps", -100, -25},
		{"45 degrees", 0.18, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tilt(tt.vel, 0.18, -25, 80)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Tilt(%v) = %v, want %v", tt.vel, got, tt.want)
			}
		})
	}
}
