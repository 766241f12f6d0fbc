package state

import (
	"slices"
	"strings"

	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/models"
)

// Dimension is one axis of the filter picker
type Dimension string

const (
	DimensionPlatform Dimension = "Platform"
	DimensionStatus   Dimension = "Status"
	DimensionAssignee Dimension = "Assignee"
	DimensionType     Dimension = "Type"
)

// FilterOption is one toggleable row of the filter picker
type FilterOption struct {
	Dimension Dimension
	Value     string
	Label     string
}

// FilterState holds the criteria and search query applied to the list views.
// The board view always shows every card so positions stay addressable.
type FilterState struct {
	criteria calendar.Criteria
	query    string

	// cursor is the highlighted row of the filter picker
	cursor int
}

// NewFilterState creates an inactive FilterState.
func NewFilterState() *FilterState {
	return &FilterState{}
}

// Criteria returns the active filter criteria.
func (s *FilterState) Criteria() calendar.Criteria {
	return s.criteria
}

// Query returns the active search query.
func (s *FilterState) Query() string {
	return s.query
}

// SetQuery replaces the search query.
func (s *FilterState) SetQuery(query string) {
	s.query = strings.TrimSpace(query)
}

// Active reports whether any filter or search narrows the list views.
func (s *FilterState) Active() bool {
	return s.criteria.Active() || s.query != ""
}

// Apply narrows items by the criteria, then by the search query.
func (s *FilterState) Apply(items []models.ContentItem) []models.ContentItem {
	return calendar.Search(calendar.Filter(items, s.criteria), s.query)
}

// Reset clears every criterion and the query.
func (s *FilterState) Reset() {
	s.criteria = calendar.Criteria{}
	s.query = ""
	s.cursor = 0
}

// Options lists every toggleable value, drawing assignees and content types
// from the given items.
func (s *FilterState) Options(items []models.ContentItem) []FilterOption {
	var opts []FilterOption
	for _, p := range models.Platforms {
		opts = append(opts, FilterOption{Dimension: DimensionPlatform, Value: string(p), Label: string(p)})
	}
	for _, st := range models.Statuses {
		opts = append(opts, FilterOption{Dimension: DimensionStatus, Value: string(st), Label: st.Title()})
	}
	for _, name := range calendar.Assignees(items) {
		opts = append(opts, FilterOption{Dimension: DimensionAssignee, Value: strings.ToLower(name), Label: name})
	}
	for _, t := range calendar.ContentTypes(items) {
		opts = append(opts, FilterOption{Dimension: DimensionType, Value: strings.ToLower(t), Label: t})
	}
	return opts
}

// Selected reports whether opt is part of the criteria.
func (s *FilterState) Selected(opt FilterOption) bool {
	values := s.values(opt.Dimension)
	return values != nil && slices.Contains(*values, opt.Value)
}

// Toggle adds or removes opt from the criteria.
func (s *FilterState) Toggle(opt FilterOption) {
	values := s.values(opt.Dimension)
	if values == nil {
		return
	}
	*values = calendar.Toggle(*values, opt.Value)
}

func (s *FilterState) values(d Dimension) *[]string {
	switch d {
	case DimensionPlatform:
		return &s.criteria.Platforms
	case DimensionStatus:
		return &s.criteria.Statuses
	case DimensionAssignee:
		return &s.criteria.Assignees
	case DimensionType:
		return &s.criteria.ContentTypes
	}
	return nil
}

// Cursor returns the highlighted picker row.
func (s *FilterState) Cursor() int {
	return s.cursor
}

// MoveCursor moves the picker cursor by delta within n rows.
func (s *FilterState) MoveCursor(delta, n int) {
	if n == 0 {
		s.cursor = 0
		return
	}
	s.cursor = max(min(s.cursor+delta, n-1), 0)
}
