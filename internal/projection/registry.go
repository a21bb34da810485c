package projection

import (
	"fmt"
	"sync"
)

// Built-in projection names.
const (
	NameYUV         = "YUV"
	NameRedBlue     = "red_blue"
	NameInterpolate = "interpolate"

	// DefaultName is the projection used when the caller does not pick one.
	DefaultName = NameYUV
)

// Registry maps projection names to functions. Lookup is case-sensitive;
// the registry never falls back to a default on an unknown name.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
	order []string
}

// DefaultRegistry holds the built-in projections.
var DefaultRegistry = NewRegistry()

func init() {
	// Registration order is the order shown by listings.
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(DefaultRegistry.Register(NameYUV, YUV))
	must(DefaultRegistry.Register(NameRedBlue, RedBlue))
	must(DefaultRegistry.Register(NameInterpolate, Interpolate))
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register adds a named projection. Registering an already-present name is
// an error; built-ins cannot be silently replaced.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("projection name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("projection %q: function cannot be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("projection %q is already registered", name)
	}

	r.funcs[name] = fn
	r.order = append(r.order, name)
	return nil
}

// Lookup resolves a projection by name.
func (r *Registry) Lookup(name string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[name]
	if !ok {
		return nil, &UnknownProjectionError{Name: name, Known: append([]string(nil), r.order...)}
	}
	return fn, nil
}

// Names returns the registered projection names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}
