package board

import (
	"testing"
	"time"

	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var fixedNow = time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC)

// newTestEngine returns an engine with deterministic ids and clock
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(
		WithIDSource(types.Sequence("new-")),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func item(id string, status models.Status) models.ContentItem {
	return models.ContentItem{
		ID:            id,
		Title:         "Post " + id,
		ScheduledDate: "2024-01-05",
		Platforms:     []models.Platform{models.PlatformTikTok},
		Status:        status,
	}
}

// sampleBoard builds idea=[A,B,C], in-progress=[D], review-ready=[], section-x=[E]
func sampleBoard() models.Board {
	return models.Board{Columns: []models.Column{
		{ID: "idea", Title: "Idea", Items: []models.ContentItem{
			item("A", models.StatusIdea),
			item("B", models.StatusIdea),
			item("C", models.StatusIdea),
		}},
		{ID: "in-progress", Title: "In Progress", Items: []models.ContentItem{
			item("D", models.StatusInProgress),
		}},
		{ID: "review-ready", Title: "Review Ready", Items: []models.ContentItem{}},
		{ID: "section-x", Title: "Backlog", Items: []models.ContentItem{
			item("E", models.StatusReviewReady),
		}},
	}}
}

func ids(col models.Column) []string {
	out := make([]string, 0, len(col.Items))
	for _, it := range col.Items {
		out = append(out, it.ID)
	}
	return out
}

func columnIDs(b models.Board) []string {
	out := make([]string, 0, len(b.Columns))
	for _, c := range b.Columns {
		out = append(out, c.ID)
	}
	return out
}

func dest(columnID string, index int) *Location {
	return &Location{ColumnID: columnID, Index: index}
}
