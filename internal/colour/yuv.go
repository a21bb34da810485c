package colour

// BT.601 chroma ranges. U and V span these intervals across the colour
// plane, keeping the full plane inside the representable gamut after
// clamping.
const (
	UMax = 0.436
	VMax = 0.615
)

// YUVToRGB converts a Y'UV triple to RGB using the BT.601 conversion
// matrix. y is in [0, 1], u in [-UMax, UMax], v in [-VMax, VMax].
// Out-of-gamut results are clamped per channel, so the conversion is
// total over the stated domain.
func YUVToRGB(y, u, v float64) RGB {
	r := y + 1.13983*v
	g := y - 0.39465*u - 0.58060*v
	b := y + 2.03211*u

	return fromFloats(channels{r * 255, g * 255, b * 255})
}
