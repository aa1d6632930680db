package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-dash/internal/config"
	"github.com/vovakirdan/flappy-dash/internal/core"
)

// Glyphs
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '▔'
	PlayerChar    = '●'
)

// capOverhang is how far a pipe cap sticks out on each side, in world units.
const capOverhang = 5

// Render appends the current scene to dst. It reads simulation state only.
func (g *Game) Render(dst *core.Frame) {
	if !g.ready {
		return
	}

	for _, o := range g.course.Obstacles() {
		g.drawObstacle(dst, o)
	}
	dst.HLine(0, g.world.H-1, g.world.W, GroundChar, core.ColorGreen)

	g.drawPlayer(dst)

	hud := fmt.Sprintf(" Score: %d  Best: %d ", g.score, g.best)
	dst.Text(2*core.CellWorldW, 0, hud, core.ColorBrightWhite)

	switch {
	case g.phase == core.PhaseNotStarted:
		dst.Panel(core.ColorBrightYellow,
			"FLAPPY DASH",
			fmt.Sprintf("Best: %d", g.best),
			"SPACE or click to flap",
		)
	case g.phase == core.PhaseGameOver:
		dst.Panel(core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Best: %d", g.best),
			"SPACE to restart | B for menu",
		)
	case g.paused:
		dst.Panel(core.ColorBrightCyan, "PAUSED", "Press P to resume")
	}
}

// drawObstacle draws both pipes of o with caps facing the gap.
func (g *Game) drawObstacle(dst *core.Frame, o Obstacle) {
	w := g.course.Width()

	dst.Rect(o.X, 0, w, o.TopHeight, PipeChar, core.ColorGreen)
	dst.Rect(o.X-capOverhang, o.TopHeight-core.CellWorldH, w+2*capOverhang, core.CellWorldH, PipeCapTop, core.ColorBrightGreen)

	dst.Rect(o.X, o.BottomY, w, g.world.H-o.BottomY, PipeChar, core.ColorGreen)
	dst.Rect(o.X-capOverhang, o.BottomY, w+2*capOverhang, core.CellWorldH, PipeCapBottom, core.ColorBrightGreen)
}

// drawPlayer draws the bird sprite when it has loaded and falls back to a
// filled circle with a heading arrow.
func (g *Game) drawPlayer(dst *core.Frame) {
	p := g.player
	if g.cfg.Render.Mode == config.RenderSprite {
		task := g.spriteIdle
		if g.flapping && g.phase == core.PhasePlaying && g.spriteFlap != nil {
			task = g.spriteFlap
		}
		if task != nil {
			if sprite, status := task.Poll(); status == core.LoadReady && sprite != nil {
				dst.Sprite(p.X, p.Y, sprite, core.ColorBrightYellow)
				return
			}
		}
	}

	dst.Circle(p.X, p.Y, p.Radius, PlayerChar, core.ColorBrightYellow)
	tilt := Tilt(p.Vel, g.cfg.Physics.PipeSpeed, g.cfg.Render.MinTiltDeg, g.cfg.Render.MaxTiltDeg)
	dst.Text(p.X+p.Radius, p.Y, string(headingGlyph(tilt)), core.ColorOrange)
}

// headingGlyph picks an arrow for a tilt angle in degrees.
func headingGlyph(deg float64) rune {
	switch {
	case deg < -10:
		return '↗'
	case deg < 20:
		return '→'
	case deg < 60:
		return '↘'
	default:
		return '↓'
	}
}

// SpriteManifest maps the asset ids of the bird frames to their sources.
// Hosts may preload it; the game requests the same ids.
func SpriteManifest(cfg config.FlappyConfig) map[string]string {
	m := make(map[string]string, 2)
	if cfg.Render.SpriteIdle != "" {
		m[spriteID(cfg, "idle")] = cfg.Render.SpriteIdle
	}
	if cfg.Render.SpriteFlap != "" {
		m[spriteID(cfg, "flap")] = cfg.Render.SpriteFlap
	}
	return m
}

func spriteID(cfg config.FlappyConfig, frame string) string {
	return cfg.Game.ID + "/" + frame
}

// loadSprites starts loading the bird frames. Failed or missing loads
// leave the primitive renderer in place.
func (g *Game) loadSprites() {
	g.spriteIdle, g.spriteFlap = nil, nil
	if g.cfg.Render.Mode != config.RenderSprite || g.env.Assets == nil {
		return
	}
	if src := g.cfg.Render.SpriteIdle; src != "" {
		g.spriteIdle = g.env.Assets.LoadImage(spriteID(*g.cfg, "idle"), src)
	}
	if src := g.cfg.Render.SpriteFlap; src != "" {
		g.spriteFlap = g.env.Assets.LoadImage(spriteID(*g.cfg, "flap"), src)
	}
}
