package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in Flappy Dash configuration.
// It matches defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Game: FlappyGame{
			ID:       "flappy",
			Name:     "Flappy Dash",
			Category: "reflex",
		},
		Physics: FlappyPhysics{
			Gravity:      0.0018,
			JumpImpulse:  -0.456,
			MaxFallSpeed: 0.9,
			PipeSpeed:    0.18,
			MaxFrameMS:   50,
		},
		Obstacles: FlappyObstacles{
			Width:     60,
			Gap:       180,
			MinHeight: 80,
			Spacing:   320,
			Count:     3,
		},
		Player: FlappyPlayer{
			XRatio:    0.3,
			Radius:    15,
			GapMargin: 40,
		},
		Render: FlappyRender{
			Mode:        RenderSprite,
			MinTiltDeg:  -25,
			MaxTiltDeg:  90,
			SpriteIdle:  "bird.txt",
			SpriteFlap:  "bird_flap.txt",
			EnableSound: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
