// Package colour provides the colour arithmetic underpinning the colour
// plane: hex parsing, linear interpolation, and channel-wise blending.
package colour

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in 8-bit RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Common interpolation endpoints.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Red   = RGB{R: 255, G: 0, B: 0}
	Blue  = RGB{R: 0, G: 0, B: 255}
)

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
// Output is always lowercase.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a hex colour string into an RGB value.
// Accepts "#rrggbb", "rrggbb" and the short "#rgb" form, case-insensitively.
func ParseHex(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return RGB{}, fmt.Errorf("empty colour string")
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}

	c, err := colorful.Hex(strings.ToLower(trimmed))
	if err != nil {
		return RGB{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Lerp linearly interpolates between two colours.
// Each channel is interpolated independently; t is clamped to [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	af, bf := a.floats(), b.floats()
	return fromFloats(lerpFloats(af, bf, t))
}

// Average returns the channel-wise arithmetic mean of two colours.
// Channels are averaged in float precision and rounded half up.
func Average(a, b RGB) RGB {
	af, bf := a.floats(), b.floats()
	return fromFloats(channels{
		(af[0] + bf[0]) / 2,
		(af[1] + bf[1]) / 2,
		(af[2] + bf[2]) / 2,
	})
}

// LerpAverage interpolates from a shared baseline towards two targets and
// blends the results. This is the core colour-plane operation: tx positions
// along the horizontal axis, ty along the vertical axis. Rounding happens
// once, after the blend, so no precision is lost in the intermediate lerps.
func LerpAverage(zero, horizontal, vertical RGB, tx, ty float64) RGB {
	zf := zero.floats()
	h := lerpFloats(zf, horizontal.floats(), tx)
	v := lerpFloats(zf, vertical.floats(), ty)
	return fromFloats(channels{
		(h[0] + v[0]) / 2,
		(h[1] + v[1]) / 2,
		(h[2] + v[2]) / 2,
	})
}

// channels holds R, G, B in float precision during interpolation.
type channels [3]float64

func (rgb RGB) floats() channels {
	return channels{float64(rgb.R), float64(rgb.G), float64(rgb.B)}
}

func lerpFloats(a, b channels, t float64) channels {
	t = clamp01(t)
	return channels{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}

// fromFloats rounds half up and clamps each channel to [0, 255].
func fromFloats(c channels) RGB {
	return RGB{
		R: clampChannel(math.Floor(c[0] + 0.5)),
		G: clampChannel(math.Floor(c[1] + 0.5)),
		B: clampChannel(math.Floor(c[2] + 0.5)),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
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
