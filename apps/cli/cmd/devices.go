package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpazderski/pwconfig/packages/core/builder"
	"github.com/wpazderski/pwconfig/packages/playwright"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the device presets used by the browser projects",
	Long: `List the device presets the generated projects are based on.
Every project's viewport is replaced by the configured viewport.

Examples:
  pwconfig devices
  pwconfig devices --verbose`,
	Args: cobra.NoArgs,
	RunE: devicesCommand,
}

func devicesCommand(cmd *cobra.Command, args []string) error {
	projects := make(map[string]string)
	for _, p := range builder.Projects() {
		projects[p.Device] = p.Name
	}

	out := cmd.OutOrStdout()
	for _, name := range playwright.DeviceNames() {
		d, _ := playwright.LookupDevice(name)

		project := "-"
		if p, ok := projects[name]; ok {
			project = p
		}

		fmt.Fprintf(out, "%-16s %-9s project: %-9s screen: %s\n", name, d.DefaultBrowserType, project, d.Screen)
		if verboseFlag {
			fmt.Fprintf(out, "  User agent:   %s\n", d.UserAgent)
			fmt.Fprintf(out, "  Scale factor: %g\n", d.DeviceScaleFactor)
			fmt.Fprintf(out, "  Mobile:       %t, touch: %t\n", d.IsMobile, d.HasTouch)
		}
	}

	return nil
}
