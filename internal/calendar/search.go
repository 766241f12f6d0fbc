package calendar

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/thenoetrevino/plano/internal/models"
)

// searchSource exposes item titles and descriptions to the fuzzy matcher
type searchSource []models.ContentItem

func (s searchSource) String(i int) string {
	return s[i].Title + " " + s[i].Description
}

func (s searchSource) Len() int {
	return len(s)
}

// Search returns the items whose title or description fuzzily matches query,
// best match first. A blank query returns items unchanged.
func Search(items []models.ContentItem, query string) []models.ContentItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	matches := fuzzy.FindFrom(query, searchSource(items))
	out := make([]models.ContentItem, 0, len(matches))
	for _, m := range matches {
		out = append(out, items[m.Index])
	}
	return out
}
