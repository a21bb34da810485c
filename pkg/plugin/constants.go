// Package plugin provides the public API for colorplane projection
// plugins. External plugins should import this package instead of internal
// packages.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.0.1"

	// ProjectionPluginName is the dispense name for projection plugins.
	ProjectionPluginName = "projection"
)

// Handshake is the handshake configuration for the go-plugin protocol.
// This ensures that plugins can only connect to compatible hosts.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  0, // Major version from ProtocolVersion
	MagicCookieKey:   "COLORPLANE_PLUGIN",
	MagicCookieValue: "colorplane_projection",
}
