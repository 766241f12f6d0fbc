package handler

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/models"
)

// AddFilterFlags registers the item filter flags shared by list commands
func AddFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("platform", nil, "Only items on these platforms (repeatable, \"all\" disables)")
	cmd.Flags().StringSlice("status", nil, "Only items with these statuses (repeatable)")
	cmd.Flags().StringSlice("assignee", nil, "Only items assigned to these people (repeatable)")
	cmd.Flags().StringSlice("type", nil, "Only items of these content types (repeatable)")
}

// ParseCriteria builds filter criteria from the flags added by AddFilterFlags
func (p *FlagParser) ParseCriteria() (calendar.Criteria, error) {
	platforms, err := p.ParseStringSlice("platform")
	if err != nil {
		return calendar.Criteria{}, err
	}
	for _, name := range platforms {
		if name == calendar.All {
			continue
		}
		if _, ok := models.ParsePlatform(name); !ok {
			return calendar.Criteria{}, fmt.Errorf("%w: unknown platform '%s'", cli.ErrInvalidInput, name)
		}
	}

	rawStatuses, err := p.cmd.Flags().GetStringSlice("status")
	if err != nil {
		return calendar.Criteria{}, fmt.Errorf("failed to parse status flag: %w", err)
	}
	statuses, err := cli.ParseStatuses(rawStatuses)
	if err != nil {
		return calendar.Criteria{}, err
	}

	assignees, err := p.ParseStringSlice("assignee")
	if err != nil {
		return calendar.Criteria{}, err
	}
	contentTypes, err := p.ParseStringSlice("type")
	if err != nil {
		return calendar.Criteria{}, err
	}

	return calendar.Criteria{
		Platforms:    platforms,
		Statuses:     statuses,
		Assignees:    assignees,
		ContentTypes: contentTypes,
	}, nil
}
