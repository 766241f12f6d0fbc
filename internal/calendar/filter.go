package calendar

import (
	"slices"
	"strings"

	"github.com/thenoetrevino/plano/internal/models"
)

// All disables filtering on the dimension it appears in
const All = "all"

// Criteria selects items by platform, status, assignee and content type.
// Empty dimensions are ignored; within a dimension any value may match.
type Criteria struct {
	Platforms    []string `json:"platforms,omitempty"`
	Statuses     []string `json:"statuses,omitempty"`
	Assignees    []string `json:"assignees,omitempty"`
	ContentTypes []string `json:"contentTypes,omitempty"`
}

// Active reports whether any dimension restricts the result
func (c Criteria) Active() bool {
	return restricts(c.Platforms) || restricts(c.Statuses) ||
		restricts(c.Assignees) || restricts(c.ContentTypes)
}

// Filter returns the items matching every active dimension of c
func Filter(items []models.ContentItem, c Criteria) []models.ContentItem {
	if !c.Active() {
		return items
	}

	var out []models.ContentItem
	for _, item := range items {
		if c.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether a single item passes the criteria
func (c Criteria) Matches(item models.ContentItem) bool {
	if restricts(c.Platforms) && !slices.ContainsFunc(c.Platforms, func(p string) bool {
		return item.HasPlatform(models.Platform(p))
	}) {
		return false
	}
	if restricts(c.Statuses) && !slices.Contains(c.Statuses, string(item.Status)) {
		return false
	}
	if restricts(c.Assignees) && !slices.ContainsFunc(c.Assignees, func(name string) bool {
		return strings.EqualFold(name, item.Assignee.Name)
	}) {
		return false
	}
	if restricts(c.ContentTypes) && !slices.ContainsFunc(c.ContentTypes, func(t string) bool {
		return strings.EqualFold(t, item.ContentType)
	}) {
		return false
	}
	return true
}

func restricts(values []string) bool {
	return len(values) > 0 && !slices.Contains(values, All)
}

// Toggle adds v to values, or removes it when already present
func Toggle(values []string, v string) []string {
	if i := slices.Index(values, v); i >= 0 {
		return slices.Delete(slices.Clone(values), i, i+1)
	}
	return append(slices.Clone(values), v)
}

// Assignees lists the distinct assignee names in first-seen order
func Assignees(items []models.ContentItem) []string {
	return distinct(items, func(item models.ContentItem) string { return item.Assignee.Name })
}

// ContentTypes lists the distinct content types in first-seen order
func ContentTypes(items []models.ContentItem) []string {
	return distinct(items, func(item models.ContentItem) string { return item.ContentType })
}

func distinct(items []models.ContentItem, key func(models.ContentItem) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		k := key(item)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
