package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorplane/internal/plugin/executor"
	"github.com/jmylchreest/colorplane/internal/projection"
)

// builtinDescriptions documents the built-in projections for listings.
var builtinDescriptions = map[string]struct {
	summary string
	options string
}{
	projection.NameYUV: {
		summary: "luma/chroma colour plane (default)",
		options: "v (luma, optional, default 0.5)",
	},
	projection.NameRedBlue: {
		summary: "white→red blend along x averaged with white→blue along y",
		options: "none",
	},
	projection.NameInterpolate: {
		summary: "blend from a baseline towards two target colours",
		options: "zero_color, horizontal_color, vertical_color (all required)",
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available colour projections",
	Long: `List the registered colour projections and their configuration options.

When --plugin is given, the plugin binary is queried for its metadata and
shown alongside the built-ins.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("plugin", "", "also describe an external projection plugin binary")
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	var sb strings.Builder
	sb.WriteString("Built-in projections:\n")

	for _, name := range projection.DefaultRegistry.Names() {
		desc, ok := builtinDescriptions[name]
		if !ok {
			fmt.Fprintf(&sb, "  %-12s\n", name)
			continue
		}
		fmt.Fprintf(&sb, "  %-12s %s\n", name, desc.summary)
		fmt.Fprintf(&sb, "  %-12s options: %s\n", "", desc.options)
	}

	pluginPath, _ := cmd.Flags().GetString("plugin")
	if pluginPath != "" {
		verbose, _ := cmd.Flags().GetBool("verbose")
		exec := executor.New(pluginPath, verbose)
		defer exec.Close()

		info, err := exec.GetMetadata()
		if err != nil {
			return fmt.Errorf("failed to query plugin %s: %w", pluginPath, err)
		}

		sb.WriteString("\nExternal plugin:\n")
		fmt.Fprintf(&sb, "  %-12s %s (version %s, protocol %s)\n",
			info.Name, info.Description, info.Version, info.ProtocolVersion)
	}

	fmt.Print(sb.String())
	return nil
}
