package board

import (
	"fmt"
	"slices"
	"time"

	"github.com/thenoetrevino/plano/internal/models"
)

// NewCard returns the placeholder card added by the "+" button of a column
func (e *Engine) NewCard() models.ContentItem {
	return models.ContentItem{
		Title:         models.DefaultCardTitle,
		Description:   models.DefaultCardDescription,
		Thumbnail:     models.DefaultThumbnail,
		ScheduledDate: e.now().Format(models.DateLayout),
		ScheduledTime: models.DefaultScheduledTime,
		Platforms:     []models.Platform{models.PlatformInstagram},
		Assignee:      currentUser(),
		Status:        models.StatusIdea,
	}
}

// AddItem appends a card to the end of a column. A nil template adds the
// default placeholder card. The card always receives a fresh id; its status
// follows the column when the column maps to a status.
func (e *Engine) AddItem(b models.Board, columnID string, template *models.ContentItem) (models.Board, models.ContentItem, error) {
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return b, models.ContentItem{}, fmt.Errorf("add item to %q: %w", columnID, models.ErrColumnNotFound)
	}

	item := e.NewCard()
	if template != nil {
		item = template.Clone()
	}
	item.ID = e.newID()
	if status, ok := models.StatusForColumn(columnID); ok {
		item.Status = status
	} else if !item.Status.Valid() {
		item.Status = models.StatusIdea
	}

	next := shallowCopy(b)
	next.Columns[idx].Items = append(slices.Clone(b.Columns[idx].Items), item)
	return next, item, nil
}

// CreateContent builds a new item from the create-content form and appends it
// to the idea column
func (e *Engine) CreateContent(b models.Board, data models.CreateContentData) (models.Board, models.ContentItem, error) {
	if data.ScheduledDate != "" {
		if _, err := time.Parse(models.DateLayout, data.ScheduledDate); err != nil {
			return b, models.ContentItem{}, fmt.Errorf("create content: date %q: %w", data.ScheduledDate, models.ErrInvalidDate)
		}
	}

	template := models.ContentItem{
		Title:         data.Title,
		Description:   data.Description,
		Thumbnail:     data.Thumbnail,
		ScheduledDate: data.ScheduledDate,
		ScheduledTime: data.ScheduledTime,
		Platforms:     slices.Clone(data.Platforms),
		Assignee:      currentUser(),
		Status:        models.StatusIdea,
		ContentType:   data.ContentType,
	}
	if template.Thumbnail == "" {
		template.Thumbnail = models.DefaultThumbnail
	}
	return e.AddItem(b, models.IdeaColumnID, &template)
}

// UpdateItem replaces the item carrying the same id, wherever it lives.
// Column membership and position are unchanged.
func (e *Engine) UpdateItem(b models.Board, updated models.ContentItem) (models.Board, error) {
	ci, ii, ok := b.FindItem(updated.ID)
	if !ok {
		return b, fmt.Errorf("update item %q: %w", updated.ID, models.ErrItemNotFound)
	}

	next := shallowCopy(b)
	items := slices.Clone(b.Columns[ci].Items)
	items[ii] = updated.Clone()
	next.Columns[ci].Items = items
	return next, nil
}

// RenameItem changes the title of an item (inline title edit)
func (e *Engine) RenameItem(b models.Board, itemID, title string) (models.Board, error) {
	ci, ii, ok := b.FindItem(itemID)
	if !ok {
		return b, fmt.Errorf("rename item %q: %w", itemID, models.ErrItemNotFound)
	}

	item := b.Columns[ci].Items[ii]
	item.Title = title
	return e.UpdateItem(b, item)
}

// RescheduleItem moves an item to another calendar day (calendar drag).
// An empty date unschedules the item.
func (e *Engine) RescheduleItem(b models.Board, itemID, date string) (models.Board, error) {
	if date != "" {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return b, fmt.Errorf("reschedule item %q to %q: %w", itemID, date, models.ErrInvalidDate)
		}
	}

	ci, ii, ok := b.FindItem(itemID)
	if !ok {
		return b, fmt.Errorf("reschedule item %q: %w", itemID, models.ErrItemNotFound)
	}

	item := b.Columns[ci].Items[ii]
	item.ScheduledDate = date
	return e.UpdateItem(b, item)
}

func currentUser() models.Assignee {
	return models.Assignee{Name: models.DefaultAssigneeName, Avatar: models.DefaultAvatar}
}
