package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/zoobzio/resval"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(16)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1)
)

// row renders an aligned label/value pair.
func row(label string, value any) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label),
		valueStyle.Render(fmt.Sprint(value)),
	)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newInfoCmd(flags *engineFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the resolved device and configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.resolveDevice(cmd)
			if err != nil {
				return err
			}
			e, err := flags.engine(cmd)
			if err != nil {
				return err
			}
			defer e.Stop()

			cfg := e.Config()
			platform := d.Platform.OS
			if platform == "" {
				platform = "-"
			}
			lines := []string{
				titleStyle.Render(d.Name),
				row("dimensions", e.ScreenDimensions()),
				row("orientation", e.Orientation()),
				row("os", platform),
				row("notch", e.HasNotch()),
				row("standard height", formatValue(cfg.StandardScreenHeight)),
				row("caching", cfg.EnableCaching),
				row("resValue(16)", formatValue(e.ResValue(16).Value)),
				row("wp(100)", formatValue(e.WP(100).Value)),
				row("hp(100)", formatValue(e.HP(100).Value)),
			}
			fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinVertical(lipgloss.Left, lines...))
			return nil
		},
	}
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List reference devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := make([]string, 0, len(resval.Devices))
			for _, name := range resval.DeviceNames() {
				d := resval.Devices[name]
				var traits []string
				if d.Platform.OS != "" {
					traits = append(traits, d.Platform.OS)
				}
				if d.Notch {
					traits = append(traits, "notch")
				}
				lines = append(lines, row(name, d.Dimensions.String()+"  "+strings.Join(traits, ", ")))
			}
			fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinVertical(lipgloss.Left, lines...))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the resval version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "resval "+resval.PackageVersion)
		},
	}
}
