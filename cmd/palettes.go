package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/glimmer/internal/config"
	"github.com/zjrosen/glimmer/internal/ui/styles"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the built-in color palettes",
	RunE:  runPalettes,
}

var palettesApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Write a built-in palette into the config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalettesApply,
}

func init() {
	palettesCmd.AddCommand(palettesApplyCmd)
	rootCmd.AddCommand(palettesCmd)
}

func swatch(colors []string) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██"))
	}
	return b.String()
}

func runPalettes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, name := range styles.PaletteNames() {
		p := styles.LookupPalette(name)
		fmt.Fprintf(out, "%s  %s\n", styles.StatusKeyStyle.Render(p.Name), swatch(p.Colors))
		fmt.Fprintf(out, "  %s\n", p.Description)
	}
	return nil
}

func runPalettesApply(cmd *cobra.Command, args []string) error {
	name := args[0]
	p, ok := styles.Palettes[name]
	if !ok {
		return fmt.Errorf("unknown palette %q (try 'glimmer palettes')", name)
	}

	path := configFilePath()
	if err := config.SaveColors(path, p.Colors); err != nil {
		return fmt.Errorf("saving palette: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s palette to %s\n", p.Name, path)
	return nil
}
