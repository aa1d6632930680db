package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dash/internal/core"
	"github.com/vovakirdan/flappy-dash/internal/registry"
)

// ScoreRecorder appends finished sessions to the score history.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Deps are the host services handed to each game session. Every field
// is optional.
type Deps struct {
	Scores  core.ScoreStore
	History ScoreRecorder
	Assets  core.AssetProvider
	Sounds  core.SoundPlayer
	Logger  *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.Default()
}

// GameModel is the render-loop driver for one game session. It turns
// terminal events into edge input, advances the game by the real time
// between ticks and draws one frame per tick.
type GameModel struct {
	game   registry.Game
	meta   registry.Meta
	deps   Deps
	config core.RuntimeConfig
	world  core.World
	input  *core.EdgeInput
	frame  *core.Frame
	screen *core.Screen
	keys   GameKeyMap
	help   help.Model
	log    *log.Logger
	keyRep *repeatFilter
	now    func() time.Time

	lastTick   time.Time
	state      core.GameState
	recorded   bool // Whether the current game over was added to history
	quitting   bool
	backToMenu bool
}

// NewGameModel initialises game for a screen of cfg's size.
// The world geometry is fixed here; later resizes only rescale the view.
func NewGameModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	meta := game.Meta()
	logger := deps.logger()
	input := core.NewEdgeInput()
	world := playfield(cfg).World()

	err := game.Init(core.Env{
		World:  world,
		Seed:   cfg.Seed,
		Input:  input,
		Scores: deps.Scores,
		Assets: deps.Assets,
		Sounds: deps.Sounds,
		Logger: logger,
	})
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: cannot start %s: %w", meta.ID, err)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:   game,
		meta:   meta,
		deps:   deps,
		config: cfg,
		world:  world,
		input:  input,
		frame:  core.NewFrame(),
		screen: core.NewScreen(cfg.ScreenW, playfield(cfg).ScreenH),
		keys:   DefaultGameKeyMap(),
		help:   h,
		log:    logger,
		keyRep: newRepeatFilter(),
		now:    time.Now,
		state:  game.State(),
	}, nil
}

// playfield reserves the bottom row of the terminal for the help bar.
func playfield(cfg core.RuntimeConfig) core.RuntimeConfig {
	if cfg.ScreenH > 1 {
		cfg.ScreenH--
	}
	return cfg
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfield(m.config).ScreenH)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Terminals report presses only, so
// every key message is a full tap.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.game.Destroy()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.state.Phase == core.PhasePlaying && !m.state.Paused {
			return m, nil
		}
		m.game.Destroy()
		m.backToMenu = true
		return m, tea.Quit

	case core.ActionNone:
		return m, nil

	default:
		if m.keyRep.press(action, m.now()) {
			m.input.Tap(action)
		}
	}

	return m, nil
}

// keyRepeatWindow is longer than a terminal's auto-repeat interval and
// shorter than the gap between deliberate taps.
const keyRepeatWindow = 100 * time.Millisecond

// repeatFilter drops auto-repeated key messages. Terminals report no
// releases, so a held key arrives as a stream of presses. A press within
// keyRepeatWindow of the previous press of the same action continues the
// hold. The terminal's initial repeat delay is longer than the window, so
// a held key still fires a second time when auto-repeat starts.
type repeatFilter struct {
	last map[core.Action]time.Time
}

func newRepeatFilter() *repeatFilter {
	return &repeatFilter{last: make(map[core.Action]time.Time)}
}

// press records a key message at now and reports whether it is a new press.
func (f *repeatFilter) press(a core.Action, now time.Time) bool {
	prev, seen := f.last[a]
	f.last[a] = now
	return !seen || now.Sub(prev) > keyRepeatWindow
}

// handleMouse feeds left-button presses and releases to the pointer edge.
func (m GameModel) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.input.PointerDown()
	case tea.MouseActionRelease:
		m.input.PointerUp()
	}
}

// handleTick advances the game by the time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.game.Update(frameDelta(m.lastTick, now))
	m.lastTick = now
	m.state = m.game.State()

	switch {
	case m.state.Phase == core.PhasePlaying:
		m.recorded = false
	case m.state.GameOver() && !m.recorded:
		m.recordScore()
		m.recorded = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordScore appends a finished session to the score history.
func (m GameModel) recordScore() {
	if m.deps.History == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.deps.History.SaveScore(m.meta.ID, m.state.Score); err != nil {
		m.log.Warn("could not record score", "game", m.meta.ID, "score", m.state.Score, "error", err)
	}
}

// draw renders the game into the screen buffer.
func (m GameModel) draw() {
	m.frame.Reset()
	m.game.Render(m.frame)
	m.frame.Rasterize(m.screen, m.world)
}

// saveScreenshot saves the current frame as plain text under ~/.arcade.
func (m GameModel) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.meta.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the player quits or leaves
// for the menu. It reports whether the player asked for the menu.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model, err := NewGameModel(game, deps, cfg)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		game.Destroy()
		return false, err
	}

	m, ok := final.(GameModel)
	if !ok {
		return false, nil
	}
	if !m.quitting && !m.backToMenu {
		game.Destroy()
	}
	return m.backToMenu, nil
}
