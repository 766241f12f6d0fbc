// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/board"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd       *cobra.Command
	formatter *cli.OutputFormatter
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command, formatter *cli.OutputFormatter) *FlagParser {
	return &FlagParser{
		cmd:       cmd,
		formatter: formatter,
	}
}

// Formatter returns the formatter errors are reported through
func (p *FlagParser) Formatter() *cli.OutputFormatter {
	return p.formatter
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: --%s is required", cli.ErrUsage, flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return strings.TrimSpace(value), nil
}

// ParseIntOptional extracts an optional int flag
func (p *FlagParser) ParseIntOptional(flagName string) (int, error) {
	return p.cmd.Flags().GetInt(flagName)
}

// ParseIndex extracts a zero-based position flag. ok is false when the flag
// was not given.
func (p *FlagParser) ParseIndex(flagName string) (index int, ok bool, err error) {
	if !p.cmd.Flags().Changed(flagName) {
		return 0, false, nil
	}
	index, err = p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if index < 0 {
		return 0, false, fmt.Errorf("--%s: %w", flagName, models.ErrIndexOutOfRange)
	}
	return index, true, nil
}

// ParseSide extracts a left/right flag
func (p *FlagParser) ParseSide(flagName string) (board.Side, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	side, err := board.ParseSide(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cli.ErrInvalidInput, err)
	}
	return side, nil
}

// ParsePlatforms extracts a platform list flag
func (p *FlagParser) ParsePlatforms(flagName string) ([]models.Platform, error) {
	raw, err := p.cmd.Flags().GetStringSlice(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return cli.ParsePlatforms(raw)
}

// ParseStringSlice extracts a normalised list flag
func (p *FlagParser) ParseStringSlice(flagName string) ([]string, error) {
	raw, err := p.cmd.Flags().GetStringSlice(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return cli.ParseList(raw), nil
}

// ParseDate extracts an optional YYYY-MM-DD flag
func (p *FlagParser) ParseDate(flagName string) (string, error) {
	raw, err := p.ParseStringOptional(flagName)
	if err != nil {
		return "", err
	}
	if err := cli.ValidateDate(raw); err != nil {
		return "", err
	}
	return raw, nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
