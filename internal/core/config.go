package core

// World units covered by one terminal cell. Cells are roughly twice as tall
// as they are wide, so a square in world units stays square on screen.
const (
	CellWorldW = 10.0
	CellWorldH = 20.0
)

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render-loop frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// World returns the world geometry that maps onto the configured screen.
func (c RuntimeConfig) World() World {
	return World{
		W: float64(c.ScreenW) * CellWorldW,
		H: float64(c.ScreenH) * CellWorldH,
	}
}

// World is the size of the simulated playfield in world units.
// It is fixed for the lifetime of a game session.
type World struct {
	W, H float64
}

// Valid reports whether both dimensions are positive.
func (w World) Valid() bool {
	return w.W > 0 && w.H > 0
}

// Phase is the coarse lifecycle state of a game session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase  Phase
	Score  int  // Current score
	Best   int  // Best score known to this session
	Paused bool // Whether the game is paused
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}
