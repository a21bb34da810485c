package projection

import (
	"context"
	"fmt"

	"github.com/jmylchreest/colorplane/internal/colour"
)

// Projector invokes a colour projection hosted outside the process, such
// as a go-plugin binary. Implementations return one hex colour string per
// input pair.
type Projector interface {
	Project(ctx context.Context, x, y []float64, opts map[string]any) ([]string, error)
}

// FromPlugin adapts an external Projector into a Func. The returned
// function parses the plugin's hex output back into colours, so the host
// adapter applies the same length and format validation to external
// projections as to in-process ones.
func FromPlugin(p Projector) Func {
	return func(x, y []float64, opts Options) ([]colour.RGB, error) {
		hexes, err := p.Project(context.Background(), x, y, opts)
		if err != nil {
			return nil, fmt.Errorf("projection plugin: %w", err)
		}

		out := make([]colour.RGB, len(hexes))
		for i, h := range hexes {
			rgb, err := colour.ParseHex(h)
			if err != nil {
				return nil, fmt.Errorf("projection plugin returned invalid colour at index %d: %w", i, err)
			}
			out[i] = rgb
		}
		return out, nil
	}
}
