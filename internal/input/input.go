// Package input loads two-column numeric datasets for the colour plane.
// CSV files are read from disk or stdin, with transparent decompression of
// xz and gzip inputs.
package input

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
)

// Dataset holds the two variables mapped onto the colour plane. Missing
// entries are represented as NaN; the scale drops them before projection.
type Dataset struct {
	X []float64
	Y []float64
}

// Len returns the number of pairs in the dataset.
func (d *Dataset) Len() int {
	return len(d.X)
}

// ReadFile loads a dataset from path. A path of "-" reads stdin. Files
// ending in .xz or .gz are decompressed on the fly.
func ReadFile(path, xCol, yCol string) (*Dataset, error) {
	if path == "-" {
		return Read(os.Stdin, xCol, yCol)
	}

	f, err := os.Open(path) // #nosec G304 - User-specified dataset path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		reader = xzr
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		reader = gzr
	}

	return Read(reader, xCol, yCol)
}

// Read parses CSV data from r. Columns are selected by header name or by
// zero-based index; empty selectors default to the first two columns. A
// header row is detected when the first row does not parse as numbers.
func Read(r io.Reader, xCol, yCol string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	header, rows := splitHeader(records)

	xIdx, err := resolveColumn(xCol, 0, header)
	if err != nil {
		return nil, err
	}
	yIdx, err := resolveColumn(yCol, 1, header)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		X: make([]float64, 0, len(rows)),
		Y: make([]float64, 0, len(rows)),
	}

	for i, row := range rows {
		if xIdx >= len(row) || yIdx >= len(row) {
			return nil, fmt.Errorf("row %d has %d columns, need columns %d and %d", i+1, len(row), xIdx, yIdx)
		}

		xv, err := parseValue(row[xIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d, column %d: %w", i+1, xIdx, err)
		}
		yv, err := parseValue(row[yIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d, column %d: %w", i+1, yIdx, err)
		}

		ds.X = append(ds.X, xv)
		ds.Y = append(ds.Y, yv)
	}

	if ds.Len() == 0 {
		return nil, fmt.Errorf("dataset has no data rows")
	}

	return ds, nil
}

// splitHeader returns the header row (if present) and the data rows.
func splitHeader(records [][]string) ([]string, [][]string) {
	first := records[0]
	for _, field := range first {
		if _, err := parseValue(field); err != nil {
			return first, records[1:]
		}
	}
	return nil, records
}

// resolveColumn turns a column selector (name or index) into an index.
func resolveColumn(selector string, def int, header []string) (int, error) {
	if selector == "" {
		return def, nil
	}

	if idx, err := strconv.Atoi(selector); err == nil {
		if idx < 0 {
			return 0, fmt.Errorf("column index %d is negative", idx)
		}
		return idx, nil
	}

	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), selector) {
			return i, nil
		}
	}

	if header == nil {
		return 0, fmt.Errorf("column %q requested but the dataset has no header row", selector)
	}
	return 0, fmt.Errorf("column %q not found (available: %s)", selector, strings.Join(header, ", "))
}

// parseValue parses one CSV field. Empty fields and the NA/NaN sentinels
// become NaN, the missing-value marker.
func parseValue(field string) (float64, error) {
	trimmed := strings.TrimSpace(field)
	switch strings.ToUpper(trimmed) {
	case "", "NA", "NAN":
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", field)
	}
	return v, nil
}
