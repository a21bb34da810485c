package projection

import (
	"github.com/jmylchreest/colorplane/internal/colour"
)

// YUV is the default projection. It places the colour plane in Y'UV space:
// luma is held constant (option "v", default 0.5) while x sweeps the U
// chroma axis and y sweeps the V chroma axis. Out-of-gamut results are
// clamped during conversion, so the projection is total over the domain.
func YUV(x, y []float64, opts Options) ([]colour.RGB, error) {
	luma, err := opts.Float(OptionLuma, 0.5)
	if err != nil {
		return nil, err
	}

	out := make([]colour.RGB, len(x))
	for i := range x {
		u := (clamp01(x[i]) - 0.5) * 2 * colour.UMax
		v := (clamp01(y[i]) - 0.5) * 2 * colour.VMax
		out[i] = colour.YUVToRGB(luma, u, v)
	}
	return out, nil
}

// RedBlue blends a white→red ramp along x with a white→blue ramp along y.
// The corners of the plane are white (0,0), red (1,0), blue (0,1) and the
// red/blue average (1,1).
func RedBlue(x, y []float64, _ Options) ([]colour.RGB, error) {
	out := make([]colour.RGB, len(x))
	for i := range x {
		out[i] = colour.LerpAverage(colour.White, colour.Red, colour.Blue, x[i], y[i])
	}
	return out, nil
}

// Interpolate generalises RedBlue to caller-chosen endpoints: zero_color
// replaces white as the shared baseline, horizontal_color replaces red as
// the x-axis target and vertical_color replaces blue as the y-axis target.
// All three options are required; a missing one fails the invocation
// rather than guessing a default.
func Interpolate(x, y []float64, opts Options) ([]colour.RGB, error) {
	zero, err := opts.Colour(OptionZeroColor)
	if err != nil {
		return nil, err
	}
	horizontal, err := opts.Colour(OptionHorizontalColor)
	if err != nil {
		return nil, err
	}
	vertical, err := opts.Colour(OptionVerticalColor)
	if err != nil {
		return nil, err
	}

	out := make([]colour.RGB, len(x))
	for i := range x {
		out[i] = colour.LerpAverage(zero, horizontal, vertical, x[i], y[i])
	}
	return out, nil
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
