package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"doomfire/internal/config"
	"doomfire/internal/sims/fire"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGRID\tTILE\tODDS\tEMBER\tFLARE")
			for _, name := range config.ListPresets() {
				c := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%dx%d\t1/%d\t%d\t%d-%d\n",
					name, c.Width, c.Height, c.TileWidth, c.TileHeight,
					c.Params.IgnitionOdds, c.Params.EmberFloor, c.Params.FlareMin, c.Params.FlareMax-1)
			}
			return w.Flush()
		},
	}
}

func newPaletteCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "print the heat palette as color swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			p, err := fire.BuildPalette(s.Fire.PaletteLength)
			if err != nil {
				return err
			}
			n := p.Len()
			if !all && n > fire.RampLength {
				n = fire.RampLength + 1
			}
			fmt.Fprint(cmd.OutOrStdout(), paletteSwatches(p.Colors()[:n], 16))
			if n < p.Len() {
				fmt.Fprintf(cmd.OutOrStdout(), "... %d more white entries (--all to show)\n", p.Len()-n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "show every entry, including the white tail")
	return cmd
}

var indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(5)

func paletteSwatches(colors []fire.RGB, perRow int) string {
	var b strings.Builder
	for i := 0; i < len(colors); i += perRow {
		b.WriteString(indexStyle.Render(fmt.Sprintf("%3d", i)))
		for j := i; j < i+perRow && j < len(colors); j++ {
			c := colors[j]
			hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage settings files",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved settings to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "doomfire.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists (use --force to overwrite)", path)
			}
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
