package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dash/internal/assets"
	"github.com/vovakirdan/flappy-dash/internal/audio"
	"github.com/vovakirdan/flappy-dash/internal/config"
	"github.com/vovakirdan/flappy-dash/internal/core"
	"github.com/vovakirdan/flappy-dash/internal/games/flappy"
	"github.com/vovakirdan/flappy-dash/internal/platform/tui"
	"github.com/vovakirdan/flappy-dash/internal/storage"
)

// session holds the host services of a local terminal session.
type session struct {
	deps    tui.Deps
	store   *storage.Store
	closers []func()
}

// openSession wires storage, logging, sprites and sound for local play.
// game is the launch config from applyGameFlags; nil disables the sprite
// preload and sound. Everything degrades gracefully: the game runs
// without any of them.
func openSession(game *config.FlappyConfig) *session {
	s := &session{}

	logger, closeLog := openLog()
	s.deps.Logger = logger
	s.closers = append(s.closers, func() { closeLog() })

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		s.deps.Scores = storage.NewMemory()
	} else {
		s.store = store
		s.deps.Scores = store
		s.deps.History = store
		s.closers = append(s.closers, func() { store.Close() })
	}

	var overrides []string
	if home, err := os.UserHomeDir(); err == nil {
		overrides = append(overrides, filepath.Join(home, ".arcade", "sprites"))
	}
	loader := assets.NewLoader(logger.WithPrefix("assets"), dirs(overrides)...)
	if game != nil {
		preloadSprites(loader, *game, logger)
	}
	s.deps.Assets = loader

	if game != nil && game.Render.EnableSound {
		sounds := audio.Open(logger.WithPrefix("audio"))
		s.deps.Sounds = sounds
		if p, ok := sounds.(*audio.Player); ok {
			s.closers = append(s.closers, p.Close)
		}
	}

	return s
}

// scoreSource returns the score database for the scoreboard, or nil.
func (s *session) scoreSource() tui.ScoreSource {
	if s.store == nil {
		return nil
	}
	return s.store
}

func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openLog sends log output to ~/.arcade/arcade.log so it never lands on
// the game screen. It falls back to discarding output. The returned func
// closes the log file.
func openLog() (*log.Logger, func() error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	discard := func() (*log.Logger, func() error) {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return discard()
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard()
	}
	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard()
	}
	logger.SetOutput(f)
	if os.Getenv("ARCADE_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f.Close
}

// dirs keeps the existing directories as file systems.
func dirs(paths []string) []fs.FS {
	var out []fs.FS
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			out = append(out, os.DirFS(p))
		}
	}
	return out
}

// preloadSprites loads the bird frames before the first game starts.
// Failures only mean the game draws primitives.
func preloadSprites(loader *assets.Loader, game config.FlappyConfig, logger *log.Logger) {
	if game.Render.Mode == config.RenderPrimitive {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := loader.LoadImages(ctx, flappy.SpriteManifest(game)); err != nil {
		logger.Warn("sprite preload failed", "error", err)
	}
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// applyGameFlags hands CLI options to the games and loads the game config
// once for the whole launch. It returns nil when the config cannot be
// loaded; games then report the error from Init.
func applyGameFlags() *config.FlappyConfig {
	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(flagDifficulty)
	flappy.SetRenderMode(flagRender)

	cfg, err := flappy.LoadLaunchConfig()
	if err != nil {
		flappy.SetLaunchConfig(nil)
		return nil
	}
	flappy.SetLaunchConfig(&cfg)
	return &cfg
}
