package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/zjrosen/glimmer/internal/keywords"
	"github.com/zjrosen/glimmer/internal/ui/styles"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the built-in keyword tables",
	Long:  `Lists every language glimmer ships keywords for, along with the keywords themselves. The playground cycles through these with ctrl+n.`,
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	langs := keywords.Languages()
	colWidth := runewidth.StringWidth(keywords.DefaultLanguage)
	for _, lang := range langs {
		if w := runewidth.StringWidth(lang); w > colWidth {
			colWidth = w
		}
	}

	for _, lang := range langs {
		padded := runewidth.FillRight(lang, colWidth)
		fmt.Fprintf(out, "%s  %s\n", styles.StatusKeyStyle.Render(padded), strings.Join(keywords.Lookup(lang), ", "))
	}

	padded := runewidth.FillRight(keywords.DefaultLanguage, colWidth)
	fmt.Fprintf(out, "%s  %s\n", styles.StatusKeyStyle.Render(padded), strings.Join(keywords.Default(), ", "))
	return nil
}
