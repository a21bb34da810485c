package projection

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/colorplane/internal/colour"
)

// HueSaturation is an example custom projection: the angle of the (x, y)
// pair picks the hue and its distance from the origin picks the
// saturation. It is not registered by default; pass it via Custom.
//
// The angle computation is degenerate at the origin, where atan2 has no
// meaningful direction. The projection substitutes a zero angle there so
// the hue stays defined for every pair in the domain, as the contract
// requires of custom projection authors.
func HueSaturation(x, y []float64, _ Options) ([]colour.RGB, error) {
	out := make([]colour.RGB, len(x))
	for i := range x {
		tx, ty := clamp01(x[i]), clamp01(y[i])

		var angle float64
		if tx != 0 || ty != 0 {
			angle = math.Atan2(ty, tx)
		}

		// Sweep the quarter-circle angle across red→blue hues.
		hue := angle / (math.Pi / 2) * 240
		sat := math.Min(1, math.Hypot(tx, ty))

		r, g, b := colorful.Hsl(hue, sat, 0.5).Clamped().RGB255()
		out[i] = colour.RGB{R: r, G: g, B: b}
	}
	return out, nil
}
