// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/flappy-dash/internal/core"
)

// Meta describes a game to the launcher.
type Meta struct {
	ID       string // Unique identifier, also the score storage key (e.g. "flappy")
	Name     string // Display name (e.g. "Flappy Dash")
	Category string // Launcher grouping (e.g. "reflex")
}

// Game is the lifecycle contract between a game and the render-loop driver.
// The driver calls Init once, then one Update followed by one Render per
// frame, and Destroy when the player leaves the game. Calls never overlap.
type Game interface {
	// Meta returns the game's launcher metadata.
	Meta() Meta

	// Init builds the initial session state from the host environment.
	// An error means the game cannot run with this configuration.
	Init(env core.Env) error

	// Update advances the simulation by dtMillis milliseconds of real time.
	Update(dtMillis float64)

	// Render appends the current state to dst as draw commands.
	// It must not change simulation state.
	Render(dst *core.Frame)

	// Destroy releases per-session state such as queued input.
	Destroy()

	// State returns the current phase, score and best score.
	State() core.GameState
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	metas     = make(map[string]Meta)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	meta := f().Meta()
	meta.ID = id
	metas[id] = meta
}

// List returns metadata for all registered games, sorted by ID.
func List() []Meta {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Meta, 0, len(metas))
	for _, m := range metas {
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (Meta, bool) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := metas[id]
	return m, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
