// Package plugin provides the public API for colorplane projection plugins.
package plugin

import (
	"context"
)

// ProjectionPlugin is the interface that projection plugins must implement
// for go-plugin RPC.
//
// Project must honour the projection contract: it is total over
// [0, 1]×[0, 1], returns exactly one "#rrggbb" colour string per input
// pair in input order, holds no state between calls, and resolves any
// degenerate arithmetic (such as an undefined angle at x=0) to a defined
// colour rather than propagating NaN.
type ProjectionPlugin interface {
	// Project maps the request's X/Y pairs to hex colour strings.
	Project(ctx context.Context, req ProjectRequest) ([]string, error)

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}
