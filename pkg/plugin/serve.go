// Package plugin provides the public API for colorplane projection plugins.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

// Serve starts the go-plugin server for a projection plugin. It blocks
// until the host disconnects; call it from the plugin's main function.
func Serve(impl ProjectionPlugin) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			ProjectionPluginName: &ProjectionPluginRPC{Impl: impl},
		},
	})
}
