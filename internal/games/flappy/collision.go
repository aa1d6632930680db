package flappy

import "github.com/vovakirdan/flappy-dash/internal/core"

// HitsBounds reports whether the player has left the world vertically.
func HitsBounds(p Player, worldH float64) bool {
	return p.Y-p.Radius < 0 || p.Y+p.Radius > worldH
}

// HitsObstacle reports whether the player overlaps the solid part of o.
// The player is treated as the box around its collision circle.
func HitsObstacle(p Player, o Obstacle, width float64) bool {
	body := core.SpanAround(p.X, p.Radius)
	pipe := core.Span{Lo: o.X, Hi: o.X + width}
	if !body.Intersects(pipe) {
		return false
	}
	return p.Y-p.Radius < o.TopHeight || p.Y+p.Radius > o.BottomY
}

// Hits reports whether the player overlaps any live obstacle.
func (c *Course) Hits(p Player) bool {
	for _, o := range c.obstacles {
		if HitsObstacle(p, o, c.width) {
			return true
		}
	}
	return false
}

// Collides runs both checks used to end a session.
func Collides(p Player, c *Course, world core.World) bool {
	return HitsBounds(p, world.H) || c.Hits(p)
}
