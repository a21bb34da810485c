// Package projection defines the colour projection contract: pure functions
// mapping two normalised numeric vectors onto a vector of colours, plus the
// registry that resolves projections by name.
package projection

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/colorplane/internal/colour"
)

// Func is a colour projection: a pure, stateless mapping from two
// equal-length vectors of values in [0, 1] to one colour per pair.
//
// Implementations must be total over [0, 1]×[0, 1] (no valid pair may fail
// or produce an undefined colour), must preserve input length and order,
// and must not keep state between calls. The caller guarantees that no
// missing values reach the function.
type Func func(x, y []float64, opts Options) ([]colour.RGB, error)

// Projection selects a projection either by registry name or as a direct
// function reference. A named projection is validated against the registry
// when resolved; a custom function is bound as-is and any contract
// violation surfaces at invocation time.
type Projection struct {
	name string
	fn   Func
}

// Named returns a Projection that resolves name against the registry.
func Named(name string) Projection {
	return Projection{name: name}
}

// Custom returns a Projection bound directly to fn.
// The function signature is not validated; a misbehaving fn is detected by
// the host adapter when it is invoked.
func Custom(fn Func) Projection {
	return Projection{fn: fn}
}

// Name returns the registry name of a named projection, or "custom" for a
// directly bound function.
func (p Projection) Name() string {
	if p.fn != nil {
		return "custom"
	}
	return p.name
}

// Resolve binds the Projection to a concrete Func using the default
// registry. An unknown name fails here, at configuration time, never at
// draw time.
func (p Projection) Resolve() (Func, error) {
	return p.ResolveIn(DefaultRegistry)
}

// ResolveIn binds the Projection to a concrete Func using reg.
func (p Projection) ResolveIn(reg *Registry) (Func, error) {
	if p.fn != nil {
		return p.fn, nil
	}
	return reg.Lookup(p.name)
}

// UnknownProjectionError is returned when a projection name is not present
// in the registry.
type UnknownProjectionError struct {
	Name  string
	Known []string
}

// Error implements the error interface.
func (e *UnknownProjectionError) Error() string {
	return fmt.Sprintf("unknown projection name %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// MissingParameterError is returned when a projection requires a
// configuration value that the caller did not supply.
type MissingParameterError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Name)
}
