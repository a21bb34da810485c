package input

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		xCol    string
		yCol    string
		wantX   []float64
		wantY   []float64
		wantErr bool
	}{
		{
			name:  "headerless defaults to first two columns",
			csv:   "1,10\n2,20\n3,30\n",
			wantX: []float64{1, 2, 3},
			wantY: []float64{10, 20, 30},
		},
		{
			name:  "header with column names",
			csv:   "temp,humidity\n20.5,0.4\n22.1,0.55\n",
			xCol:  "temp",
			yCol:  "humidity",
			wantX: []float64{20.5, 22.1},
			wantY: []float64{0.4, 0.55},
		},
		{
			name:  "column names are case-insensitive",
			csv:   "Temp,Humidity\n1,2\n",
			xCol:  "temp",
			yCol:  "HUMIDITY",
			wantX: []float64{1},
			wantY: []float64{2},
		},
		{
			name:  "numeric column selectors",
			csv:   "a,b,c\n1,2,3\n4,5,6\n",
			xCol:  "2",
			yCol:  "0",
			wantX: []float64{3, 6},
			wantY: []float64{1, 4},
		},
		{
			name:  "NA and empty fields become NaN",
			csv:   "x,y\n1,NA\n,2\n3,4\n",
			wantX: []float64{1, math.NaN(), 3},
			wantY: []float64{math.NaN(), 2, 4},
		},
		{
			name:    "unknown column name",
			csv:     "a,b\n1,2\n",
			xCol:    "c",
			wantErr: true,
		},
		{
			name:    "named column without header",
			csv:     "1,2\n3,4\n",
			xCol:    "temp",
			wantErr: true,
		},
		{
			name:    "non-numeric data row",
			csv:     "x,y\n1,2\nfoo,4\n",
			wantErr: true,
		},
		{
			name:    "empty input",
			csv:     "",
			wantErr: true,
		},
		{
			name:    "header only",
			csv:     "x,y\n",
			wantErr: true,
		},
		{
			name:    "row missing selected column",
			csv:     "1,2,3\n4\n",
			xCol:    "2",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Read(strings.NewReader(tt.csv), tt.xCol, tt.yCol)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Read() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if ds.Len() != len(tt.wantX) {
				t.Fatalf("Read() returned %d pairs, want %d", ds.Len(), len(tt.wantX))
			}
			for i := range tt.wantX {
				if !sameValue(ds.X[i], tt.wantX[i]) {
					t.Errorf("X[%d] = %v, want %v", i, ds.X[i], tt.wantX[i])
				}
				if !sameValue(ds.Y[i], tt.wantY[i]) {
					t.Errorf("Y[%d] = %v, want %v", i, ds.Y[i], tt.wantY[i])
				}
			}
		})
	}
}

func TestReadFilePlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("x,y\n1,2\n3,4\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	ds, err := ReadFile(path, "", "")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("ReadFile() returned %d pairs, want 2", ds.Len())
	}
}

func TestReadFileXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.xz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		t.Fatalf("failed to create xz writer: %v", err)
	}
	if _, err := w.Write([]byte("x,y\n0.1,0.9\n0.5,0.5\n")); err != nil {
		t.Fatalf("failed to write xz data: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close xz writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close fixture: %v", err)
	}

	ds, err := ReadFile(path, "x", "y")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("ReadFile() returned %d pairs, want 2", ds.Len())
	}
	if ds.X[0] != 0.1 || ds.Y[0] != 0.9 {
		t.Errorf("first pair = (%v, %v), want (0.1, 0.9)", ds.X[0], ds.Y[0])
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), "", "")
	if err == nil {
		t.Fatal("ReadFile() expected error for missing file, got nil")
	}
}

// sameValue compares floats treating NaN as equal to NaN.
func sameValue(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}
