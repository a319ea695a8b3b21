// Package registry maps game mode names to factories.
// Modes register themselves in init(), so the CLI and the TUI can list and
// start them without importing each mode's package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/greedy-snake/internal/core"
)

// Game is what the session driver needs from a playable mode.
// Implementations hold pure game logic and never touch the terminal.
type Game interface {
	// ID is the mode name used on the command line and in score history.
	ID() string

	// Title is shown in menus and the HUD.
	Title() string

	// Reset starts a fresh session.
	Reset(cfg core.RuntimeConfig)

	// Resize reports a new screen size without restarting the session.
	Resize(width, height int)

	// Step advances the session by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the session into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports the HUD values.
	State() core.GameState
}

// ModeInfo describes a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory creates a new game for a mode.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a mode. Panics on duplicate ids.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by id.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game for the given mode.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists reports whether a mode is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
