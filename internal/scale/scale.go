// Package scale plays the host side of the colour plane: it normalises raw
// data, resolves and invokes the configured projection, and validates the
// projection's output before it reaches any aesthetic.
package scale

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colorplane/internal/projection"
)

// LengthMismatchError reports a length disagreement, either between the
// two input vectors or between a projection's input and output. It is a
// contract violation and is never silently truncated or padded over.
type LengthMismatchError struct {
	Want int
	Got  int
	What string
}

// Error implements the error interface.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %s has %d elements, want %d", e.What, e.Got, e.Want)
}

// Scale binds a resolved projection and its configuration to a reusable
// mapping from raw data to hex colour strings. The projection is resolved
// once at construction; each Map call invokes it with the full vectors.
type Scale struct {
	fn     projection.Func
	name   string
	opts   projection.Options
	logger hclog.Logger
}

// New builds a Scale. Resolution happens here so an unknown projection
// name fails at configuration time, not at draw time.
func New(p projection.Projection, opts projection.Options, logger hclog.Logger) (*Scale, error) {
	fn, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts == nil {
		opts = projection.Options{}
	}

	return &Scale{
		fn:     fn,
		name:   p.Name(),
		opts:   opts,
		logger: logger,
	}, nil
}

// Map runs the full pipeline over raw data: pairs with a missing side are
// dropped, each axis is rescaled to [0, 1], the projection is invoked, and
// its output is validated before being rendered as hex strings.
func (s *Scale) Map(x, y []float64) ([]string, error) {
	if len(x) != len(y) {
		return nil, &LengthMismatchError{Want: len(x), Got: len(y), What: "y"}
	}

	fx, fy := DropMissing(x, y)
	if dropped := len(x) - len(fx); dropped > 0 {
		s.logger.Debug("dropped pairs with missing values", "dropped", dropped, "remaining", len(fx))
	}

	return s.invoke(Rescale(fx), Rescale(fy))
}

// MapScaled invokes the projection on data that is already normalised.
// Values outside [0, 1] or missing values are rejected rather than
// silently clamped.
func (s *Scale) MapScaled(x, y []float64) ([]string, error) {
	if len(x) != len(y) {
		return nil, &LengthMismatchError{Want: len(x), Got: len(y), What: "y"}
	}

	for i := range x {
		if !inUnit(x[i]) || !inUnit(y[i]) {
			return nil, fmt.Errorf("value out of range at index %d: (%v, %v) not in [0,1]", i, x[i], y[i])
		}
	}

	return s.invoke(x, y)
}

func (s *Scale) invoke(x, y []float64) ([]string, error) {
	s.logger.Debug("invoking projection", "projection", s.name, "points", len(x))

	colours, err := s.fn(x, y, s.opts)
	if err != nil {
		return nil, fmt.Errorf("projection %s: %w", s.name, err)
	}
	if len(colours) != len(x) {
		return nil, &LengthMismatchError{Want: len(x), Got: len(colours), What: "projection output"}
	}

	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = c.Hex()
	}
	return out, nil
}

// Rescale maps values onto [0, 1] by min-max normalisation. NaN values
// pass through unchanged. A constant vector rescales to 0.5, matching the
// midpoint convention of continuous scale rescaling.
func Rescale(values []float64) []float64 {
	minV := math.Inf(1)
	maxV := math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	out := make([]float64, len(values))
	span := maxV - minV
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			out[i] = v
		case span == 0 || math.IsInf(span, 0):
			out[i] = 0.5
		default:
			out[i] = (v - minV) / span
		}
	}
	return out
}

// DropMissing removes pairs where either side is NaN, preserving order and
// index alignment between the two returned slices.
func DropMissing(x, y []float64) ([]float64, []float64) {
	fx := make([]float64, 0, len(x))
	fy := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		fx = append(fx, x[i])
		fy = append(fy, y[i])
	}
	return fx, fy
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
