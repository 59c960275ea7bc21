package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/glimmer/internal/config"
	"github.com/zjrosen/glimmer/internal/keywords"
	"github.com/zjrosen/glimmer/internal/ui/styles"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Show the custom keyword list",
	Long:  `Shows the keywords highlighted when language_specific is off. Use 'keywords set' to replace the list.`,
	RunE:  runKeywords,
}

var keywordsSetCmd = &cobra.Command{
	Use:   "set <keyword>...",
	Short: "Write a custom keyword list into the config file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runKeywordsSet,
}

func init() {
	keywordsCmd.AddCommand(keywordsSetCmd)
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	kws := cfg.Keywords
	if len(kws) == 0 {
		kws = keywords.Default()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
		styles.StatusKeyStyle.Render("keywords"), strings.Join(kws, ", "))
	return nil
}

func runKeywordsSet(cmd *cobra.Command, args []string) error {
	for _, kw := range args {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("keywords must not be blank")
		}
	}

	path := configFilePath()
	if err := config.SaveKeywords(path, args); err != nil {
		return fmt.Errorf("saving keywords: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d keywords to %s\n", len(args), path)
	return nil
}
