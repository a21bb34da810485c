package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorplane/internal/input"
	"github.com/jmylchreest/colorplane/internal/scale"
)

var (
	// Project command flags
	projectInput     string
	projectXColumn   string
	projectYColumn   string
	projectFormat    string
	projectOutput    string
	projectPreview   bool
	projectNoRescale bool
)

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Map a two-column dataset onto the colour plane",
	Long: `Map two continuous variables onto a single two-dimensional colour scale.

The project command reads two numeric columns from a CSV dataset, rescales
each to [0,1], and maps every pair of values to one colour through the
selected projection. Pairs with a missing value on either side are dropped
before projection.

Datasets may be plain CSV, or compressed with xz or gzip; pass "-" to read
from stdin. Columns are picked by header name or zero-based index and
default to the first two columns.

Examples:
  # Map the first two columns with the default YUV projection
  colorplane project --input data.csv

  # Pick columns by name and use the red/blue blend
  colorplane project -i data.csv --x-column temp --y-column humidity -p red_blue

  # Interpolate between custom endpoint colours
  colorplane project -i data.csv -p interpolate \
    --zero-color "#ffffff" --horizontal-color "#ff0000" --vertical-color "#0000ff"

  # Use an external projection plugin and emit JSON
  colorplane project -i data.csv.xz --plugin ./huesat --format json

  # Values already in [0,1]; skip rescaling
  colorplane project -i scaled.csv --no-rescale`,
	RunE: runProject,
}

func init() {
	registerProjectionFlags(projectCmd.Flags())

	projectCmd.Flags().StringVarP(&projectInput, "input", "i", "-", "dataset to read (CSV, optionally .xz/.gz compressed; - for stdin)")
	projectCmd.Flags().StringVar(&projectXColumn, "x-column", "", "column for the horizontal variable (name or index, default: first)")
	projectCmd.Flags().StringVar(&projectYColumn, "y-column", "", "column for the vertical variable (name or index, default: second)")
	projectCmd.Flags().StringVarP(&projectFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	projectCmd.Flags().StringVarP(&projectOutput, "output", "o", "", "output file (default: stdout)")
	projectCmd.Flags().BoolVar(&projectPreview, "preview", false, "show colour previews in terminal")
	projectCmd.Flags().BoolVar(&projectNoRescale, "no-rescale", false, "treat input values as already normalised to [0,1]")
}

// runProject executes the project command.
func runProject(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	ds, err := input.ReadFile(projectInput, projectXColumn, projectYColumn)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Debug("dataset loaded", "pairs", ds.Len())

	proj, cleanup, err := resolveProjection(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sc, err := scale.New(proj, buildOptions(cmd), logger)
	if err != nil {
		return err
	}

	var hexes []string
	if projectNoRescale {
		x, y := scale.DropMissing(ds.X, ds.Y)
		hexes, err = sc.MapScaled(x, y)
	} else {
		hexes, err = sc.Map(ds.X, ds.Y)
	}
	if err != nil {
		return err
	}

	output, err := formatColours(hexes, projectFormat, projectPreview)
	if err != nil {
		return err
	}

	return writeOutput(projectOutput, output)
}
