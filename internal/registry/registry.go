// Package registry provides a global registry of display backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

// Display is a platform surface: it receives frames, the rates title and
// error popups from the engine loop, and feeds key state into an InputState.
type Display interface {
	engine.FrameSink
	engine.TitleSink
	engine.ErrorReporter

	// Run blocks in the platform event loop until ctx is done or the user
	// closes the display. It must be called from the main goroutine.
	Run(ctx context.Context) error
}

// Options configures a display at creation.
type Options struct {
	Title      string           // Title prefix, rates are appended
	Width      int              // Frame width in pixels
	Height     int              // Frame height in pixels
	Input      *core.InputState // Updated from key events
	KeyRelease time.Duration    // Hold timeout for sources without release events
	Logger     *log.Logger
}

// DisplayInfo contains metadata about a registered backend.
type DisplayInfo struct {
	Name        string
	Description string
}

// Factory creates a display for the given options.
type Factory func(opts Options) (Display, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a display factory to the registry.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: display %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered backends, sorted by name.
func List() []DisplayInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DisplayInfo, 0, len(factories))
	for name := range factories {
		result = append(result, DisplayInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a display by backend name.
// Returns an error if the name is not registered or the factory fails.
func Create(name string, opts Options) (Display, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown display %q", name)
	}
	if opts.Input == nil {
		opts.Input = core.NewInputState()
	}

	d, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create display %q: %w", name, err)
	}
	return d, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
