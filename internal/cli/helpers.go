package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/colorplane/internal/colour"
	"github.com/jmylchreest/colorplane/internal/plugin/executor"
	"github.com/jmylchreest/colorplane/internal/projection"
)

// registerProjectionFlags adds the projection selection and configuration
// flags shared by the project and legend commands.
func registerProjectionFlags(fs *pflag.FlagSet) {
	fs.StringP("projection", "p", projection.DefaultName,
		fmt.Sprintf("projection name (%s)", strings.Join(projection.DefaultRegistry.Names(), ", ")))
	fs.String("plugin", "", "path to an external projection plugin binary (overrides --projection)")
	fs.String("zero-color", "", "baseline colour for the interpolate projection (hex)")
	fs.String("horizontal-color", "", "x-axis target colour for the interpolate projection (hex)")
	fs.String("vertical-color", "", "y-axis target colour for the interpolate projection (hex)")
	fs.Float64("luma", 0.5, "fixed luma for the YUV projection")
}

// resolveProjection turns the selection flags into a Projection. When an
// external plugin is configured the returned cleanup function terminates
// its process; otherwise the cleanup is a no-op.
func resolveProjection(cmd *cobra.Command) (projection.Projection, func(), error) {
	pluginPath, _ := cmd.Flags().GetString("plugin")
	if pluginPath != "" {
		if _, err := os.Stat(pluginPath); err != nil {
			return projection.Projection{}, nil, fmt.Errorf("projection plugin not found: %s", pluginPath)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		exec := executor.New(pluginPath, verbose)
		return projection.Custom(projection.FromPlugin(exec)), exec.Close, nil
	}

	name, _ := cmd.Flags().GetString("projection")
	return projection.Named(name), func() {}, nil
}

// buildOptions collects the configuration flags that were explicitly set
// into projection options. Unset flags stay absent so projections with
// required parameters fail with a missing-parameter error instead of
// receiving an empty value.
func buildOptions(cmd *cobra.Command) projection.Options {
	opts := projection.Options{}

	colourFlags := map[string]string{
		"zero-color":       projection.OptionZeroColor,
		"horizontal-color": projection.OptionHorizontalColor,
		"vertical-color":   projection.OptionVerticalColor,
	}
	for flag, key := range colourFlags {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			opts[key] = v
		}
	}

	if cmd.Flags().Changed("luma") {
		v, _ := cmd.Flags().GetFloat64("luma")
		opts[projection.OptionLuma] = v
	}

	return opts
}

// colourJSON is one colour in JSON output.
type colourJSON struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
}

// coloursJSON is the JSON output document for the project command.
type coloursJSON struct {
	Count   int          `json:"count"`
	Colours []colourJSON `json:"colors"`
}

// formatColours renders mapped colours in the requested output format.
func formatColours(hexes []string, format string, preview bool) (string, error) {
	showPreview := preview && colour.SupportsANSIColours()

	switch format {
	case "hex":
		var sb strings.Builder
		for _, h := range hexes {
			if showPreview {
				rgb, err := colour.ParseHex(h)
				if err != nil {
					return "", err
				}
				sb.WriteString(colour.FormatWithPreview(rgb, 8))
			} else {
				sb.WriteString(h)
			}
			sb.WriteString("\n")
		}
		return sb.String(), nil

	case "rgb":
		var sb strings.Builder
		for _, h := range hexes {
			rgb, err := colour.ParseHex(h)
			if err != nil {
				return "", err
			}
			if showPreview {
				sb.WriteString(colour.Preview(rgb, 8))
				sb.WriteString("  ")
			}
			sb.WriteString(rgb.String())
			sb.WriteString("\n")
		}
		return sb.String(), nil

	case "json":
		doc := coloursJSON{Count: len(hexes), Colours: make([]colourJSON, len(hexes))}
		for i, h := range hexes {
			rgb, err := colour.ParseHex(h)
			if err != nil {
				return "", err
			}
			doc.Colours[i] = colourJSON{Hex: h, RGB: rgb}
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil

	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// writeOutput writes content to path, or stdout when path is empty.
func writeOutput(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
