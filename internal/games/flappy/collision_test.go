package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-dash/internal/core"
)

func TestHitsBounds(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"above top", -15 - 1, true},
		{"touching top", 15, false},
		{"centre", 300, false},
		{"touching bottom", 585, false},
		{"below bottom", 586, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{X: 240, Y: tt.y, Radius: 15}
			if got := HitsBounds(p, 600); got != tt.want {
				t.Errorf("HitsBounds(y=%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestHitsObstacle(t *testing.T) {
	o := Obstacle{X: 90, TopHeight: 100, BottomY: 280}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"top pipe", 100, 90, true},
		{"inside gap", 100, 190, false},
		{"grazing gap top", 100, 115, false},
		{"bottom pipe", 100, 270, true},
		{"left of pipe", 74, 90, false},
		{"touching left edge", 75, 90, true},
		{"right of pipe", 166, 90, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{X: tt.x, Y: tt.y, Radius: 15}
			if got := HitsObstacle(p, o, 60); got != tt.want {
				t.Errorf("HitsObstacle(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCollides(t *testing.T) {
	c := newTestCourse(1)
	world := core.World{W: 800, H: 600}

	inside := Player{X: 240, Y: 300, Radius: 15}
	if Collides(inside, c, world) {
		t.Error("player inside bounds with no obstacle overlap collided")
	}

	above := Player{X: 240, Y: -16, Radius: 15}
	if !Collides(above, c, world) {
		t.Error("player above the world did not collide")
	}

	c.obstacles[0].X = 230
	top := c.obstacles[0].TopHeight
	inPipe := Player{X: 240, Y: top - 20, Radius: 15}
	if !Collides(inPipe, c, world) {
		t.Error("player inside a pipe did not collide")
	}
}
