package projection

import (
	"context"
	"errors"
	"testing"

	"github.com/jmylchreest/colorplane/internal/colour"
)

// fakeProjector is an in-process stand-in for an external plugin.
type fakeProjector struct {
	colours []string
	err     error
}

func (f *fakeProjector) Project(_ context.Context, x, y []float64, _ map[string]any) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.colours, nil
}

func TestFromPluginParsesColours(t *testing.T) {
	fn := FromPlugin(&fakeProjector{colours: []string{"#ff0000", "#0000FF"}})

	got, err := fn([]float64{0, 1}, []float64{0, 1}, nil)
	if err != nil {
		t.Fatalf("FromPlugin func error = %v", err)
	}

	want := []colour.RGB{colour.Red, colour.Blue}
	if len(got) != len(want) {
		t.Fatalf("got %d colours, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFromPluginPropagatesErrors(t *testing.T) {
	pluginErr := errors.New("projection exploded")
	fn := FromPlugin(&fakeProjector{err: pluginErr})

	_, err := fn([]float64{0}, []float64{0}, nil)
	if err == nil {
		t.Fatal("expected error from plugin, got nil")
	}
	if !errors.Is(err, pluginErr) {
		t.Errorf("error = %v, want wrapped %v", err, pluginErr)
	}
}

func TestFromPluginRejectsInvalidColours(t *testing.T) {
	fn := FromPlugin(&fakeProjector{colours: []string{"#ff0000", "chartreuse"}})

	_, err := fn([]float64{0, 1}, []float64{0, 1}, nil)
	if err == nil {
		t.Fatal("expected error for invalid plugin colour, got nil")
	}
}
