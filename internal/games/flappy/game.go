// Package flappy implements Flappy Dash, a Flappy Bird-style game.
// The player keeps a bird airborne and steers it through gaps in pipes
// that scroll in from the right.
package flappy

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dash/internal/config"
	"github.com/vovakirdan/flappy-dash/internal/core"
	"github.com/vovakirdan/flappy-dash/internal/registry"
)

var (
	// ErrInvalidGameID is returned by Init when the configured id cannot
	// be used as a score key.
	ErrInvalidGameID = errors.New("flappy: invalid game id")

	// ErrWorldTooSmall is returned by Init when a gap with its minimum
	// pipe lengths does not fit in the world.
	ErrWorldTooSmall = errors.New("flappy: world too small")
)

// ID is the registry key of the game. Best scores and history are
// stored under it, so a config must use the same id.
const ID = "flappy"

var gameIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Package-level launch options, set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
	renderMode       string
	launchConfig     *config.FlappyConfig
)

// SetConfigPath sets a custom YAML config file for new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for new games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetRenderMode overrides the config's render mode ("sprite" or "primitive").
func SetRenderMode(mode string) {
	renderMode = mode
}

// SetLaunchConfig hands new games an already loaded config, so Init does
// not read the YAML again. Nil restores loading on Init.
func SetLaunchConfig(cfg *config.FlappyConfig) {
	launchConfig = cfg
}

// Game is the Flappy Dash state machine. It owns all simulation state for
// one session; the render-loop driver is the only caller.
type Game struct {
	cfg        *config.FlappyConfig
	env        core.Env
	log        *log.Logger
	input      core.InputSource
	sounds     core.SoundPlayer
	world      core.World
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	physics    Physics

	phase    core.Phase
	player   Player
	course   *Course
	score    int
	best     int
	paused   bool
	flapping bool    // Jumped on the latest step, selects the flap sprite
	elapsed  float64 // Milliseconds of play in the current session

	spriteIdle core.ImageTask
	spriteFlap core.ImageTask

	ready bool // Init succeeded and Destroy has not been called
}

// New creates a game that loads its configuration on Init.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: &cfg}
}

// Meta returns the launcher metadata.
func (g *Game) Meta() registry.Meta {
	meta := config.DefaultFlappyConfig().Game
	if g.cfg != nil {
		meta = g.cfg.Game
	}
	return registry.Meta{
		ID:       ID,
		Name:     meta.Name,
		Category: meta.Category,
	}
}

// Init validates the configuration, reads the best score and builds the
// initial state in PhaseNotStarted.
func (g *Game) Init(env core.Env) error {
	if g.cfg == nil && launchConfig != nil {
		cfg := *launchConfig
		g.cfg = &cfg
	}
	if g.cfg == nil {
		cfg, err := LoadLaunchConfig()
		if err != nil {
			return err
		}
		g.cfg = &cfg
	}
	cfg := g.cfg

	if !gameIDPattern.MatchString(cfg.Game.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidGameID, cfg.Game.ID)
	}
	if cfg.Game.ID != ID {
		return fmt.Errorf("%w: %q is registered as %q", ErrInvalidGameID, cfg.Game.ID, ID)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flappy: %w", err)
	}
	if !env.World.Valid() || env.World.H < cfg.Obstacles.Gap+2*cfg.Obstacles.MinHeight {
		return fmt.Errorf("%w: %vx%v cannot fit a %v gap", ErrWorldTooSmall, env.World.W, env.World.H, cfg.Obstacles.Gap)
	}

	g.env = env
	g.log = env.Log().WithPrefix(cfg.Game.ID)
	g.world = env.World
	g.input = env.Input
	if g.input == nil {
		g.input = core.NewEdgeInput()
	}
	g.sounds = env.Sounds
	if g.sounds == nil {
		g.sounds = silent{}
	}

	g.rng = rand.New(rand.NewSource(env.Seed))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.physics = Physics{
		Gravity:      cfg.Physics.Gravity,
		JumpImpulse:  cfg.Physics.JumpImpulse,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	}

	gen := NewGenerator(g.rng, g.world.H, cfg.Obstacles.Gap, cfg.Obstacles.MinHeight)
	spacing := courseSpacing(cfg.Obstacles.Spacing, cfg.Obstacles.Width, g.world.W, cfg.Obstacles.Count)
	g.course = NewCourse(gen, cfg.Obstacles.Width, spacing, cfg.Obstacles.Count)

	g.best = g.loadBest()
	g.reset()
	g.phase = core.PhaseNotStarted
	g.loadSprites()
	g.ready = true

	g.log.Debug("session initialised",
		"world", fmt.Sprintf("%.0fx%.0f", g.world.W, g.world.H),
		"spacing", spacing,
		"best", g.best,
	)
	return nil
}

// LoadLaunchConfig loads the YAML config and applies the launch options.
func LoadLaunchConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		return cfg, fmt.Errorf("flappy: %w", err)
	}
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return cfg, fmt.Errorf("flappy: %w", err)
	}
	config.ApplyFlappyPreset(&cfg, preset)
	if renderMode != "" {
		cfg.Render.Mode = config.RenderMode(renderMode)
	}
	return cfg, nil
}

// reset puts the player, obstacles and score back to their starting values.
func (g *Game) reset() {
	g.player = Player{
		X:      g.world.W * g.cfg.Player.XRatio,
		Y:      g.world.H / 2,
		Radius: g.cfg.Player.Radius,
	}
	g.course.Reset(g.world.W)
	g.score = 0
	g.paused = false
	g.flapping = false
	g.elapsed = 0
}

// Update advances the simulation by dtMillis milliseconds.
func (g *Game) Update(dtMillis float64) {
	if !g.ready {
		return
	}
	dt := g.clampDelta(dtMillis)

	jump := g.input.JumpPressed()
	pause := g.input.PausePressed()

	switch g.phase {
	case core.PhaseNotStarted:
		if jump {
			g.begin()
		}
		return
	case core.PhaseGameOver:
		if jump {
			g.reset()
			g.begin()
		}
		return
	}

	if pause {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.step(jump, dt)
}

// clampDelta guards the integrator against bad or very long frames.
func (g *Game) clampDelta(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if limit := g.cfg.Physics.MaxFrameMS; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// begin enters PhasePlaying; the tap that starts the session is also its
// first jump.
func (g *Game) begin() {
	g.phase = core.PhasePlaying
	g.player.Vel = g.physics.JumpImpulse
	g.flapping = true
	g.sounds.Play(core.SoundFlap)
}

// step runs one tick of play: physics, obstacles, collisions, scoring.
func (g *Game) step(jump bool, dt float64) {
	g.elapsed += dt
	g.flapping = jump
	if jump {
		g.sounds.Play(core.SoundFlap)
	}

	g.player.Integrate(jump, g.physics, dt)
	g.course.Advance(g.pipeSpeed() * dt)

	if Collides(g.player, g.course, g.world) {
		g.finish()
		return
	}

	if passed := g.course.MarkPassed(g.player.X); passed > 0 {
		g.score += passed
		g.sounds.Play(core.SoundPoint)
	}

	g.course.Retire()
}

// finish ends the session. It runs once per session because Update never
// steps again until the next begin.
func (g *Game) finish() {
	g.phase = core.PhaseGameOver
	g.flapping = false
	g.sounds.Play(core.SoundDie)
	g.recordBest()
	g.log.Debug("session over", "score", g.score, "best", g.best, "elapsed_ms", math.Round(g.elapsed))
}

// pipeSpeed returns the current obstacle speed for the difficulty level.
func (g *Game) pipeSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Physics.PipeSpeed, g.score, g.elapsed)
}

// Destroy clears queued input and stops the session. Later Update and
// Render calls do nothing until Init is called again.
func (g *Game) Destroy() {
	if g.input != nil {
		g.input.Consume()
	}
	g.ready = false
	g.spriteIdle = nil
	g.spriteFlap = nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:  g.phase,
		Score:  g.score,
		Best:   g.best,
		Paused: g.paused,
	}
}

// silent is the SoundPlayer used when the host provides none.
type silent struct{}

func (silent) Play(core.Sound) {}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
