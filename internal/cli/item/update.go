package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
	boardservice "github.com/thenoetrevino/plano/internal/services/board"
)

// UpdateCmd returns the item update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit fields of an item",
		Long: `Update any of an item's fields in place. Only the flags you pass change.
The item keeps its column, position and status.

Examples:
  plano item update --item=cal-1 --description="Teaser for the **spring** launch"
  plano item update --item=cal-1 --platforms=instagram --type=story --json
  plano item update --item=cal-1 --assignee="Sarah Wilson" --comments=4
`,
		RunE: runUpdate,
	}

	addItemFlag(cmd)
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown)")
	cmd.Flags().String("time", "", "New scheduled time")
	cmd.Flags().StringSlice("platforms", nil, "New platform list")
	cmd.Flags().String("type", "", "New content type")
	cmd.Flags().String("thumbnail", "", "New thumbnail")
	cmd.Flags().String("assignee", "", "New assignee name")
	cmd.Flags().Int("comments", 0, "New comment count")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)
	changed := cmd.Flags().Changed

	itemID, err := parser.ParseString("item")
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()
	svc := cliInstance.App.BoardService

	current, _, err := svc.Item(ctx, itemID)
	if err != nil {
		return formatter.Fail(err, "List items with: plano item list")
	}

	updated := current.Clone()
	if changed("title") {
		title, err := parser.ParseStringOptional("title")
		if err != nil {
			return formatter.Fail(err, "")
		}
		updated.Title = title
	}

	optional := []struct {
		flag string
		dst  *string
	}{
		{"description", &updated.Description},
		{"time", &updated.ScheduledTime},
		{"type", &updated.ContentType},
		{"thumbnail", &updated.Thumbnail},
		{"assignee", &updated.Assignee.Name},
	}
	for _, f := range optional {
		if !changed(f.flag) {
			continue
		}
		value, err := parser.ParseStringOptional(f.flag)
		if err != nil {
			return formatter.Fail(err, "")
		}
		*f.dst = value
	}

	if changed("platforms") {
		platforms, err := parser.ParsePlatforms("platforms")
		if err != nil {
			return formatter.Fail(err, "")
		}
		if len(platforms) == 0 {
			return formatter.Fail(boardservice.ErrNoPlatforms, "")
		}
		updated.Platforms = platforms
	}
	if changed("comments") {
		comments, err := parser.ParseIntOptional("comments")
		if err != nil || comments < 0 {
			return formatter.Fail(fmt.Errorf("%w: --comments must be zero or more", cli.ErrInvalidInput), "")
		}
		updated.Comments = comments
	}

	out, err := svc.UpdateItem(ctx, updated)
	if err := cli.CheckOutcome(formatter, out, err, ""); err != nil {
		return err
	}

	view, _ := viewOf(out.Board, itemID)

	if formatter.Quiet {
		formatter.ID(view.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(view)
	}

	fmt.Fprintf(formatter.Writer(), "✓ Item '%s' updated\n", view.ID)
	return nil
}
