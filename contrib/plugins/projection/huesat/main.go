// huesat - Hue/Saturation Projection (Colorplane Projection Plugin)
//
// Maps the angle of each (x, y) pair to a hue and its distance from the
// origin to a saturation. Demonstrates the projection plugin SDK and the
// degenerate-angle guard every projection author owes the contract: the
// angle is undefined at the origin, so a zero angle is substituted there
// and the output colour stays defined over the whole plane.
//
// Build:
//   go build -o huesat
//
// Usage:
//   colorplane project --plugin ./huesat --input data.csv
//   colorplane legend --plugin ./huesat --output huesat.png
//
// Author: Colorplane Contributors
// License: MIT

package main

import (
	"context"
	"fmt"

	"github.com/jmylchreest/colorplane/internal/projection"
	cpplugin "github.com/jmylchreest/colorplane/pkg/plugin"
)

// HueSatPlugin implements the cpplugin.ProjectionPlugin interface.
type HueSatPlugin struct{}

// Project maps the request pairs to hex colour strings.
func (p *HueSatPlugin) Project(_ context.Context, req cpplugin.ProjectRequest) ([]string, error) {
	if len(req.X) != len(req.Y) {
		return nil, fmt.Errorf("length mismatch: x has %d elements, y has %d", len(req.X), len(req.Y))
	}

	colours, err := projection.HueSaturation(req.X, req.Y, projection.Options(req.Options))
	if err != nil {
		return nil, err
	}

	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = c.Hex()
	}
	return out, nil
}

// GetMetadata returns plugin metadata.
func (p *HueSatPlugin) GetMetadata() cpplugin.PluginInfo {
	return cpplugin.PluginInfo{
		Name:            "huesat",
		Version:         "1.0.0",
		Description:     "hue from pair angle, saturation from pair magnitude",
		ProtocolVersion: cpplugin.ProtocolVersion,
	}
}

func main() {
	cpplugin.Serve(&HueSatPlugin{})
}
