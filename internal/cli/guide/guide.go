// Package guide implements the "plano guide" command
package guide

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli/styles"
	"github.com/thenoetrevino/plano/internal/markdown"
)

//go:embed guide.md
var guideContent string

// guideWidth is the wrap width of the rendered guide
const guideWidth = 80

// GuideCmd returns the guide command
func GuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show a short guide to plano",
		Long: `Print a short guide to the board, its keys and its commands.

The guide is rendered as styled markdown on a terminal. Use --raw for the
markdown source.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			raw, _ := cmd.Flags().GetBool("raw")
			fmt.Fprint(cmd.OutOrStdout(), Content(raw))
		},
	}

	cmd.Flags().Bool("raw", false, "Print the markdown source")
	return cmd
}

// Content returns the guide text, rendered unless raw is set
func Content(raw bool) string {
	if raw {
		return guideContent
	}
	return markdown.Render(guideContent, guideWidth, styles.MarkdownStyle()) + "\n"
}
