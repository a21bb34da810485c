// Package plugin provides the public API for colorplane projection plugins.
package plugin

// ProjectRequest carries one projection invocation to a plugin. X and Y
// are equal-length vectors of values in [0, 1] with no missing entries;
// Options holds the named configuration values forwarded verbatim from the
// host scale.
type ProjectRequest struct {
	X       []float64      `json:"x"`
	Y       []float64      `json:"y"`
	Options map[string]any `json:"options,omitempty"`
}

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	Description     string `json:"description"`
	ProtocolVersion string `json:"protocol_version"`
}
