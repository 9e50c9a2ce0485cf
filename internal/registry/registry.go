// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the commands
// to discover and run them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-poles/internal/core"
	"github.com/vovakirdan/tui-poles/internal/games/poles"
)

// ErrUnknownFrontend is returned by Create for unregistered IDs.
var ErrUnknownFrontend = errors.New("registry: unknown frontend")

// Frontend drives one interactive poles session on some terminal backend.
// The engine stays free of terminal code; a frontend supplies the scheduler,
// the sink and the key mapping.
type Frontend interface {
	// ID returns a unique identifier for this frontend (e.g., "tui", "tcell").
	// Used for CLI flags and the config file.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the user quits or ctx is cancelled.
	Run(ctx context.Context, opts RunOptions) error
}

// RunOptions carries everything a frontend needs to start a session.
type RunOptions struct {
	Config core.RuntimeConfig
	Theme  poles.Theme
	Logger *log.Logger
	Sound  bool
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend package's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFrontend, id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
