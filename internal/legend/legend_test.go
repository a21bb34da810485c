package legend

import (
	"image/color"
	"strings"
	"testing"

	"github.com/jmylchreest/colorplane/internal/colour"
	"github.com/jmylchreest/colorplane/internal/projection"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "defaults are valid",
			cfg:  DefaultConfig(),
		},
		{
			name:    "too few steps",
			cfg:     Config{Steps: 1, Size: 256},
			wantErr: true,
		},
		{
			name:    "size smaller than steps",
			cfg:     Config{Steps: 64, Size: 32},
			wantErr: true,
		},
		{
			name: "size equals steps",
			cfg:  Config{Steps: 16, Size: 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderCorners(t *testing.T) {
	// Without scaling, each grid cell is one pixel: the bottom-left pixel
	// is the (0,0) corner of the plane and the top-right pixel is (1,1).
	cfg := Config{Steps: 8, Size: 8}

	img, err := Render(projection.RedBlue, nil, cfg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{
			name: "bottom-left is white",
			x:    0, y: cfg.Steps - 1,
			want: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		{
			name: "bottom-right leans red",
			x:    cfg.Steps - 1, y: cfg.Steps - 1,
			want: color.RGBA{R: 255, G: 128, B: 128, A: 255},
		},
		{
			name: "top-left leans blue",
			x:    0, y: 0,
			want: color.RGBA{R: 128, G: 128, B: 255, A: 255},
		},
		{
			name: "top-right is the blend",
			x:    cfg.Steps - 1, y: 0,
			want: color.RGBA{R: 128, G: 0, B: 128, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := img.RGBAAt(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("pixel (%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRenderScalesToSize(t *testing.T) {
	cfg := Config{Steps: 4, Size: 64}

	img, err := Render(projection.RedBlue, nil, cfg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != cfg.Size || bounds.Dy() != cfg.Size {
		t.Errorf("image is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), cfg.Size, cfg.Size)
	}

	// Nearest-neighbour scaling keeps the corner cells intact.
	corner := img.RGBAAt(0, cfg.Size-1)
	if corner != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("scaled bottom-left = %+v, want white", corner)
	}
}

func TestRenderPropagatesProjectionErrors(t *testing.T) {
	// interpolate without its required colours must fail the render, not
	// produce a partial image.
	_, err := Render(projection.Interpolate, projection.Options{}, Config{Steps: 4, Size: 4})
	if err == nil {
		t.Fatal("Render() expected error from projection, got nil")
	}
}

func TestRenderDetectsShortRows(t *testing.T) {
	// A projection returning the wrong row length is a contract violation
	// the renderer reports rather than painting a partial row.
	wrongLength := func(x, y []float64, _ projection.Options) ([]colour.RGB, error) {
		return make([]colour.RGB, len(x)-1), nil
	}

	_, err := Render(wrongLength, nil, Config{Steps: 4, Size: 4})
	if err == nil {
		t.Fatal("Render() expected length error, got nil")
	}
	if want := "returned 3 colours for 4 samples"; !strings.Contains(err.Error(), want) {
		t.Errorf("Render() error = %v, want it to mention %q", err, want)
	}
}
