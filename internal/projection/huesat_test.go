package projection

import (
	"testing"
)

func TestHueSaturationGuardsDegenerateAngle(t *testing.T) {
	// The angle computation is undefined at the origin; the projection
	// must substitute a defined angle rather than emitting NaN.
	tests := []struct {
		name   string
		x, y   []float64
		expect string
	}{
		{
			name: "origin",
			x:    []float64{0},
			y:    []float64{0},
			// Zero angle and zero saturation: achromatic mid grey.
			expect: "#808080",
		},
		{
			name: "x zero with nonzero y",
			x:    []float64{0},
			y:    []float64{1},
		},
		{
			name: "y zero with nonzero x",
			x:    []float64{1},
			y:    []float64{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HueSaturation(tt.x, tt.y, nil)
			if err != nil {
				t.Fatalf("HueSaturation() error = %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("HueSaturation() returned %d colours, want 1", len(got))
			}
			if tt.expect != "" && got[0].Hex() != tt.expect {
				t.Errorf("HueSaturation(%v, %v) = %s, want %s", tt.x[0], tt.y[0], got[0].Hex(), tt.expect)
			}
		})
	}
}

func TestHueSaturationIsTotalOverDomain(t *testing.T) {
	var x, y []float64
	for i := 0; i <= 20; i++ {
		for j := 0; j <= 20; j++ {
			x = append(x, float64(i)/20)
			y = append(y, float64(j)/20)
		}
	}

	got, err := HueSaturation(x, y, nil)
	if err != nil {
		t.Fatalf("HueSaturation() failed over the domain: %v", err)
	}
	if len(got) != len(x) {
		t.Errorf("HueSaturation() returned %d colours for %d pairs", len(got), len(x))
	}
}

func TestHueSaturationIdempotent(t *testing.T) {
	x := []float64{0, 0.5, 1}
	y := []float64{1, 0.5, 0}

	first, err := HueSaturation(x, y, nil)
	if err != nil {
		t.Fatalf("first invocation error = %v", err)
	}
	second, err := HueSaturation(x, y, nil)
	if err != nil {
		t.Fatalf("second invocation error = %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("index %d: first = %s, second = %s", i, first[i].Hex(), second[i].Hex())
		}
	}
}
