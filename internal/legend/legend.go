// Package legend renders a colour-plane projection as a two-dimensional
// legend image: x increases to the right, y increases upward.
package legend

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/colorplane/internal/projection"
)

// Config controls legend rendering.
type Config struct {
	// Steps is the number of sample cells per axis.
	Steps int
	// Size is the output edge length in pixels. The sampled grid is scaled
	// up with nearest-neighbour interpolation so cells stay crisp.
	Size int
}

// DefaultConfig returns the rendering defaults: a 64-cell grid at 256px.
func DefaultConfig() Config {
	return Config{Steps: 64, Size: 256}
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.Steps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", c.Steps)
	}
	if c.Size < c.Steps {
		return fmt.Errorf("size (%d) must be at least steps (%d)", c.Size, c.Steps)
	}
	return nil
}

// Render samples fn over an evenly spaced grid of the unit square and
// returns the legend image. Each row of the grid is one projection
// invocation, with both axes spanning [0, 1] inclusive.
func Render(fn projection.Func, opts projection.Options, cfg Config) (*image.RGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := image.NewRGBA(image.Rect(0, 0, cfg.Steps, cfg.Steps))

	xs := make([]float64, cfg.Steps)
	for i := range xs {
		xs[i] = float64(i) / float64(cfg.Steps-1)
	}

	for row := 0; row < cfg.Steps; row++ {
		// Image rows run top to bottom; the legend's y axis runs bottom to top.
		ty := float64(cfg.Steps-1-row) / float64(cfg.Steps-1)

		ys := make([]float64, cfg.Steps)
		for i := range ys {
			ys[i] = ty
		}

		colours, err := fn(xs, ys, opts)
		if err != nil {
			return nil, fmt.Errorf("rendering legend row %d: %w", row, err)
		}
		if len(colours) != len(xs) {
			return nil, fmt.Errorf("rendering legend row %d: projection returned %d colours for %d samples", row, len(colours), len(xs))
		}

		for col, c := range colours {
			grid.SetRGBA(col, row, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	if cfg.Size == cfg.Steps {
		return grid, nil
	}

	scaled := image.NewRGBA(image.Rect(0, 0, cfg.Size, cfg.Size))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), grid, grid.Bounds(), draw.Src, nil)
	return scaled, nil
}
