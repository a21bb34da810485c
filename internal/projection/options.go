package projection

import (
	"fmt"

	"github.com/jmylchreest/colorplane/internal/colour"
)

// Option keys understood by the built-in projections. These names are part
// of the configuration contract and are forwarded verbatim from the host
// scale to the resolved projection.
const (
	OptionZeroColor       = "zero_color"
	OptionHorizontalColor = "horizontal_color"
	OptionVerticalColor   = "vertical_color"
	OptionLuma            = "v"
)

// Options carries named configuration values through to a projection.
// Values are whatever the caller supplied; the typed accessors perform the
// only validation that happens, at invocation time.
type Options map[string]any

// Colour returns the colour stored under key. Values may be hex strings or
// colour.RGB. A missing key is a MissingParameterError, never a guessed
// default.
func (o Options) Colour(key string) (colour.RGB, error) {
	v, ok := o[key]
	if !ok {
		return colour.RGB{}, &MissingParameterError{Name: key}
	}

	switch c := v.(type) {
	case colour.RGB:
		return c, nil
	case string:
		rgb, err := colour.ParseHex(c)
		if err != nil {
			return colour.RGB{}, fmt.Errorf("parameter %s: %w", key, err)
		}
		return rgb, nil
	default:
		return colour.RGB{}, fmt.Errorf("parameter %s: unsupported colour value %T", key, v)
	}
}

// Float returns the float stored under key, or def when the key is absent.
func (o Options) Float(key string, def float64) (float64, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}

	switch f := v.(type) {
	case float64:
		return f, nil
	case float32:
		return float64(f), nil
	case int:
		return float64(f), nil
	default:
		return 0, fmt.Errorf("parameter %s: unsupported numeric value %T", key, v)
	}
}
