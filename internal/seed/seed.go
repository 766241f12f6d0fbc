// Package seed provides the sample board a fresh workspace starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/plano/internal/models"
)

//go:embed sample_board.yaml
var sampleBoard []byte

// SampleBoard returns the built-in sample board
func SampleBoard() (models.Board, error) {
	return Parse(sampleBoard)
}

// Load reads a board from a YAML seed file
func Load(path string) (models.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Board{}, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML board and fills in the fields the file may omit
func Parse(data []byte) (models.Board, error) {
	var b models.Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return models.Board{}, fmt.Errorf("failed to parse seed board: %w", err)
	}
	if len(b.Columns) == 0 {
		b.Columns = models.DefaultColumns()
	}

	for ci := range b.Columns {
		col := &b.Columns[ci]
		if col.Items == nil {
			col.Items = []models.ContentItem{}
		}
		for ii := range col.Items {
			item := &col.Items[ii]
			if item.Status == "" {
				if status, ok := models.StatusForColumn(col.ID); ok {
					item.Status = status
				} else {
					item.Status = models.StatusIdea
				}
			}
			for _, p := range item.Platforms {
				if !p.Valid() {
					return models.Board{}, fmt.Errorf("item %q: unknown platform %q", item.ID, p)
				}
			}
		}
	}
	return b, nil
}
