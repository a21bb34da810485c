package cli

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorplane/internal/legend"
)

var (
	// Legend command flags
	legendSteps  int
	legendSize   int
	legendOutput string
)

// legendCmd represents the legend command
var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Render the colour plane of a projection as a PNG legend",
	Long: `Render the full colour plane of a projection as a square PNG image.

The horizontal axis sweeps x from 0 to 1 and the vertical axis sweeps y
from 0 (bottom) to 1 (top), so the image doubles as a two-dimensional
legend for data mapped with the same projection and options.

Examples:
  # Legend for the default YUV projection
  colorplane legend --output legend.png

  # Fine-grained red/blue legend at 512px
  colorplane legend -p red_blue --steps 128 --size 512 -o legend.png

  # Legend for an external projection plugin
  colorplane legend --plugin ./huesat -o huesat.png`,
	RunE: runLegend,
}

func init() {
	registerProjectionFlags(legendCmd.Flags())

	legendCmd.Flags().IntVar(&legendSteps, "steps", 64, "number of sample cells per axis")
	legendCmd.Flags().IntVar(&legendSize, "size", 256, "output image edge length in pixels")
	legendCmd.Flags().StringVarP(&legendOutput, "output", "o", "legend.png", "output PNG file")
}

// runLegend executes the legend command.
func runLegend(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	proj, cleanup, err := resolveProjection(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	fn, err := proj.Resolve()
	if err != nil {
		return err
	}

	cfg := legend.Config{Steps: legendSteps, Size: legendSize}
	logger.Debug("rendering legend", "projection", proj.Name(), "steps", cfg.Steps, "size", cfg.Size)

	img, err := legend.Render(fn, buildOptions(cmd), cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(legendOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Info("legend written", "path", legendOutput)
	return nil
}
