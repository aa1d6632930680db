package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-dash/internal/core"
)

// Player is the bird. X never changes during a session.
type Player struct {
	X, Y   float64 // Centre position in world units
	Vel    float64 // Vertical velocity, positive is down
	Radius float64 // Collision radius
}

// Physics holds the integration constants, all scaled to milliseconds.
type Physics struct {
	Gravity      float64
	JumpImpulse  float64
	MaxFallSpeed float64 // 0 disables the limit
}

// Integrate advances the player by dt milliseconds using semi-implicit
// Euler. A jump replaces the velocity with the impulse for this step
// instead of adding gravity.
func (p *Player) Integrate(jump bool, ph Physics, dt float64) {
	if jump {
		p.Vel = ph.JumpImpulse
	} else {
		p.Vel += ph.Gravity * dt
	}
	if ph.MaxFallSpeed > 0 && p.Vel > ph.MaxFallSpeed {
		p.Vel = ph.MaxFallSpeed
	}
	p.Y += p.Vel * dt
}

// Tilt returns the visual pitch in degrees for a vertical velocity while
// moving forward at the given speed, clamped to [minDeg, maxDeg].
// Negative is nose up.
func Tilt(vel, forward, minDeg, maxDeg float64) float64 {
	deg := math.Atan2(vel, math.Abs(forward)) * 180 / math.Pi
	return core.ClampF(deg, minDeg, maxDeg)
}
