// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// FlappyConfig contains all configuration for Flappy Dash.
// Physics values are in world units per millisecond (speeds) and per
// millisecond squared (gravity), so motion does not depend on frame rate.
type FlappyConfig struct {
	Game       FlappyGame       `yaml:"game"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Render     FlappyRender     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyGame holds launcher metadata. ID is also the best-score key.
type FlappyGame struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Velocity set by a jump (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity, 0 disables
	PipeSpeed    float64 `yaml:"pipe_speed"`     // Leftward obstacle speed
	MaxFrameMS   float64 `yaml:"max_frame_ms"`   // Longest step a single update may take, 0 disables
}

// FlappyObstacles defines obstacle parameters.
type FlappyObstacles struct {
	Width     float64 `yaml:"width"`
	Gap       float64 `yaml:"gap"`        // Constant gap between upper and lower pipe
	MinHeight float64 `yaml:"min_height"` // Minimum pipe length above and below the gap
	Spacing   float64 `yaml:"spacing"`    // Minimum distance between consecutive pipes
	Count     int     `yaml:"count"`      // Live obstacles at any time
}

// FlappyPlayer defines player parameters.
type FlappyPlayer struct {
	XRatio    float64 `yaml:"x_ratio"`    // Fixed horizontal position as a fraction of world width
	Radius    float64 `yaml:"radius"`     // Collision radius
	GapMargin float64 `yaml:"gap_margin"` // Required clearance beyond the player's diameter
}

// RenderMode selects how the player is drawn.
type RenderMode string

const (
	RenderSprite    RenderMode = "sprite"
	RenderPrimitive RenderMode = "primitive"
)

// FlappyRender defines presentation parameters. None of them affect the simulation.
type FlappyRender struct {
	Mode        RenderMode `yaml:"mode"`
	MinTiltDeg  float64    `yaml:"min_tilt_deg"`
	MaxTiltDeg  float64    `yaml:"max_tilt_deg"`
	SpriteIdle  string     `yaml:"sprite_idle"`
	SpriteFlap  string     `yaml:"sprite_flap"`
	EnableSound bool       `yaml:"enable_sound"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or elapsed milliseconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
// Only pipe speed scales; gap size and spacing stay constant.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	p, o, pl := c.Physics, c.Obstacles, c.Player

	switch {
	case c.Game.ID == "":
		return fmt.Errorf("%w: game.id is empty", ErrInvalidConfig)
	case p.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity must be positive, got %v", ErrInvalidConfig, p.Gravity)
	case p.JumpImpulse >= 0:
		return fmt.Errorf("%w: physics.jump_impulse must be negative, got %v", ErrInvalidConfig, p.JumpImpulse)
	case p.PipeSpeed <= 0:
		return fmt.Errorf("%w: physics.pipe_speed must be positive, got %v", ErrInvalidConfig, p.PipeSpeed)
	case p.MaxFallSpeed < 0 || p.MaxFrameMS < 0:
		return fmt.Errorf("%w: physics limits must not be negative", ErrInvalidConfig)
	case pl.Radius <= 0:
		return fmt.Errorf("%w: player.radius must be positive, got %v", ErrInvalidConfig, pl.Radius)
	case pl.XRatio <= 0 || pl.XRatio >= 1:
		return fmt.Errorf("%w: player.x_ratio must be in (0, 1), got %v", ErrInvalidConfig, pl.XRatio)
	case o.Width <= 0 || o.MinHeight <= 0:
		return fmt.Errorf("%w: obstacles.width and obstacles.min_height must be positive", ErrInvalidConfig)
	case o.Count < 1:
		return fmt.Errorf("%w: obstacles.count must be at least 1, got %d", ErrInvalidConfig, o.Count)
	case o.Spacing <= o.Width:
		return fmt.Errorf("%w: obstacles.spacing %v must exceed obstacles.width %v", ErrInvalidConfig, o.Spacing, o.Width)
	case o.Gap < 2*pl.Radius+pl.GapMargin:
		return fmt.Errorf("%w: obstacles.gap %v is too small for a player of radius %v", ErrInvalidConfig, o.Gap, pl.Radius)
	}

	switch c.Render.Mode {
	case RenderSprite, RenderPrimitive:
	default:
		return fmt.Errorf("%w: render.mode %q", ErrInvalidConfig, c.Render.Mode)
	}
	if c.Render.MinTiltDeg > c.Render.MaxTiltDeg {
		return fmt.Errorf("%w: render.min_tilt_deg exceeds render.max_tilt_deg", ErrInvalidConfig)
	}
	return nil
}
