package flappy

import (
	"math/rand"
)

// Obstacle is a pipe pair. Everything above TopHeight and below BottomY
// is solid; the gap between them is passable.
type Obstacle struct {
	X         float64 // Left edge
	TopHeight float64 // Bottom of the upper pipe
	BottomY   float64 // Top of the lower pipe, TopHeight + gap
	Scored    bool    // Whether the player has passed this pipe
}

// Generator produces obstacles with a constant gap placed uniformly at
// random, leaving at least minHeight of pipe above and below.
type Generator struct {
	rng       *rand.Rand
	worldH    float64
	gap       float64
	minHeight float64
}

// NewGenerator creates a generator for a world of the given height.
// The caller guarantees worldH >= gap + 2*minHeight.
func NewGenerator(rng *rand.Rand, worldH, gap, minHeight float64) *Generator {
	return &Generator{
		rng:       rng,
		worldH:    worldH,
		gap:       gap,
		minHeight: minHeight,
	}
}

// Next returns a fresh obstacle with its left edge at x.
func (g *Generator) Next(x float64) Obstacle {
	lo, hi := g.HeightRange()
	top := lo + g.rng.Float64()*(hi-lo)
	return Obstacle{
		X:         x,
		TopHeight: top,
		BottomY:   top + g.gap,
	}
}

// HeightRange returns the bounds for TopHeight.
func (g *Generator) HeightRange() (float64, float64) {
	return g.minHeight, g.worldH - g.gap - g.minHeight
}

// Course is the ordered sequence of live obstacles, leftmost first.
// It always holds the same number of obstacles with the same spacing
// between consecutive left edges.
type Course struct {
	obstacles []Obstacle
	gen       *Generator
	width     float64
	spacing   float64
	count     int
}

// NewCourse creates an empty course. Call Reset to populate it.
func NewCourse(gen *Generator, width, spacing float64, count int) *Course {
	return &Course{
		obstacles: make([]Obstacle, 0, count),
		gen:       gen,
		width:     width,
		spacing:   spacing,
		count:     count,
	}
}

// Reset replaces all obstacles with count fresh ones, the first at startX.
func (c *Course) Reset(startX float64) {
	c.obstacles = c.obstacles[:0]
	for i := 0; i < c.count; i++ {
		c.obstacles = append(c.obstacles, c.gen.Next(startX+float64(i)*c.spacing))
	}
}

// Advance moves every obstacle dx to the left.
func (c *Course) Advance(dx float64) {
	for i := range c.obstacles {
		c.obstacles[i].X -= dx
	}
}

// Retire replaces obstacles whose trailing edge has left the world with
// new ones behind the current rightmost obstacle. Returns how many were
// replaced.
func (c *Course) Retire() int {
	retired := 0
	for len(c.obstacles) > 0 && c.obstacles[0].X+c.width < 0 {
		last := c.obstacles[len(c.obstacles)-1]
		copy(c.obstacles, c.obstacles[1:])
		c.obstacles[len(c.obstacles)-1] = c.gen.Next(last.X + c.spacing)
		retired++
	}
	return retired
}

// Obstacles returns the live obstacles, leftmost first. Callers must not
// modify the returned slice.
func (c *Course) Obstacles() []Obstacle {
	return c.obstacles
}

// Width returns the obstacle width.
func (c *Course) Width() float64 {
	return c.width
}

// Spacing returns the distance between consecutive obstacles.
func (c *Course) Spacing() float64 {
	return c.spacing
}

// courseSpacing widens the configured spacing when needed so that count
// obstacles span the whole world and new ones always appear off-screen.
func courseSpacing(spacing, width, worldW float64, count int) float64 {
	minSpacing := (worldW + width) / float64(count)
	if spacing < minSpacing {
		return minSpacing
	}
	return spacing
}
