package core

import (
	"github.com/charmbracelet/log"
)

// ScoreStore persists best scores per game identifier.
type ScoreStore interface {
	// BestScore returns the stored best score for gameID, or 0 if none exists.
	BestScore(gameID string) (int, error)
	// SaveBestScore stores score if it beats the current best and reports
	// whether it did. The stored value never decreases.
	SaveBestScore(gameID string, score int) (bool, error)
}

// LoadStatus is the state of an asynchronous asset load.
type LoadStatus int

const (
	LoadPending LoadStatus = iota
	LoadReady
	LoadFailed
)

// String returns a human-readable name for the status.
func (s LoadStatus) String() string {
	switch s {
	case LoadPending:
		return "pending"
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Sprite is a small block of character art. Spaces are transparent.
type Sprite struct {
	Rows []string
}

// Width returns the width of the widest row in cells.
func (s *Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		w = Max(w, len([]rune(row)))
	}
	return w
}

// Height returns the number of rows.
func (s *Sprite) Height() int {
	return len(s.Rows)
}

// ImageTask is the handle of an image load in flight. Poll never blocks.
type ImageTask interface {
	Poll() (*Sprite, LoadStatus)
}

// AssetProvider starts image loads. Loading the same id twice returns the
// same task.
type AssetProvider interface {
	LoadImage(id, src string) ImageTask
}

// Sound identifies a short sound cue.
type Sound int

const (
	SoundFlap Sound = iota
	SoundPoint
	SoundDie
)

// SoundPlayer plays sound cues without blocking the caller.
type SoundPlayer interface {
	Play(s Sound)
}

// Env is everything a game session needs from its host. One Env belongs to
// exactly one active session.
type Env struct {
	World  World
	Seed   int64
	Input  InputSource
	Scores ScoreStore    // nil keeps best scores in memory only
	Assets AssetProvider // nil renders primitives only
	Sounds SoundPlayer   // nil is silent
	Logger *log.Logger   // nil uses log.Default()
}

// Log returns the configured logger or the package default.
func (e Env) Log() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}
