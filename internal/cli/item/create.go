package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
	"github.com/thenoetrevino/plano/internal/models"
)

// CreateCmd returns the item create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new content item in the idea column",
		Long: `Create a content item and append it to the idea column.

Examples:
  # Create a video for two platforms
  plano item create --title="Spring Teaser" --platforms=instagram,tiktok \
    --date=2024-03-01 --time="10:00 AM" --type=video

  # JSON output for agents
  plano item create --title="Poll" --platforms=twitter --json

  # Quiet mode for bash capture
  ITEM=$(plano item create --title="Poll" --platforms=twitter --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Item title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		cmd.PrintErrf("Error marking flag as required: %v\n", err)
	}
	cmd.Flags().StringSlice("platforms", nil, "Platforms: tiktok, instagram, facebook, twitter, linkedin (required)")
	if err := cmd.MarkFlagRequired("platforms"); err != nil {
		cmd.PrintErrf("Error marking flag as required: %v\n", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Description (markdown)")
	cmd.Flags().String("date", "", "Scheduled date (YYYY-MM-DD)")
	cmd.Flags().String("time", "", "Scheduled time, e.g. \"10:00 AM\"")
	cmd.Flags().String("type", "", "Content type, e.g. post, video, story")
	cmd.Flags().String("thumbnail", "", "Thumbnail path or URL")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	title, err := parser.ParseStringOptional("title")
	if err != nil {
		return formatter.Fail(err, "")
	}
	platforms, err := parser.ParsePlatforms("platforms")
	if err != nil {
		return formatter.Fail(err, "")
	}
	date, err := parser.ParseDate("date")
	if err != nil {
		return formatter.Fail(err, "Use the YYYY-MM-DD format, e.g. --date=2024-01-15")
	}
	description, _ := parser.ParseStringOptional("description")
	scheduledTime, _ := parser.ParseStringOptional("time")
	contentType, _ := parser.ParseStringOptional("type")
	thumbnail, _ := parser.ParseStringOptional("thumbnail")

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	out, err := cliInstance.App.BoardService.CreateContent(ctx, models.CreateContentData{
		Title:         title,
		Description:   description,
		Thumbnail:     thumbnail,
		ScheduledDate: date,
		ScheduledTime: scheduledTime,
		Platforms:     platforms,
		ContentType:   contentType,
	})
	if err := cli.CheckOutcome(formatter, out, err, ""); err != nil {
		return err
	}

	view, _ := viewOf(out.Board, out.ItemID)

	if formatter.Quiet {
		formatter.ID(view.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(view)
	}

	w := formatter.Writer()
	fmt.Fprintf(w, "✓ Content '%s' created (ID: %s)\n", view.Title, view.ID)
	fmt.Fprintf(w, "  Platforms: %s\n", platformList(view.Platforms))
	if view.ScheduledDate != "" {
		fmt.Fprintf(w, "  Scheduled: %s %s\n", view.ScheduledDate, view.ScheduledTime)
	}
	return nil
}
