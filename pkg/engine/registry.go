package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrEngineUnknown is returned by Lookup for a name no engine registered
// under. Surfacing it before any generation starts is what turns a missing
// engine into a configuration error rather than a partial run.
var ErrEngineUnknown = errors.New("unknown engine")

// registry holds engines by name. Registration happens during init or
// program startup; Lookup is the only read path afterwards.
var registry = struct {
	mu      sync.RWMutex
	engines map[string]Engine
}{engines: make(map[string]Engine)}

// Register makes an engine available to Lookup under its Name.
// Registering the same name twice panics; two engines fighting over a name
// is a programmer error, not a runtime condition.
func Register(e Engine) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	name := e.Name()
	if _, dup := registry.engines[name]; dup {
		panic(fmt.Sprintf("engine: Register called twice for %q", name))
	}
	registry.engines[name] = e
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Engine, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	e, ok := registry.engines[name]
	if !ok {
		return nil, fmt.Errorf("engine %q: %w", name, ErrEngineUnknown)
	}
	return e, nil
}

// Names returns the registered engine names, sorted.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.engines))
	for name := range registry.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
