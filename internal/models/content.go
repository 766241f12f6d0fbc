package models

// Assignee is the team member responsible for an item
type Assignee struct {
	Name   string `yaml:"name" json:"name"`
	Avatar string `yaml:"avatar" json:"avatar"`
}

// ContentItem is a single piece of content scheduled across platforms
type ContentItem struct {
	ID            string     `yaml:"id" json:"id"`
	Title         string     `yaml:"title" json:"title"`
	Description   string     `yaml:"description" json:"description"`
	Thumbnail     string     `yaml:"thumbnail" json:"thumbnail"`
	ScheduledDate string     `yaml:"scheduled_date" json:"scheduledDate"` // YYYY-MM-DD, empty when unscheduled
	ScheduledTime string     `yaml:"scheduled_time" json:"scheduledTime"`
	Platforms     []Platform `yaml:"platforms" json:"platforms"`
	Assignee      Assignee   `yaml:"assignee" json:"assignee"`
	Comments      int        `yaml:"comments" json:"comments"`
	Status        Status     `yaml:"status" json:"status"`
	ContentType   string     `yaml:"type,omitempty" json:"contentType,omitempty"` // post, video, story...
}

// PrimaryPlatform returns the first platform of the item, used for color coding
func (c ContentItem) PrimaryPlatform() (Platform, bool) {
	if len(c.Platforms) == 0 {
		return "", false
	}
	return c.Platforms[0], true
}

// HasPlatform reports whether the item is published to p
func (c ContentItem) HasPlatform(p Platform) bool {
	for _, candidate := range c.Platforms {
		if candidate == p {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with the receiver
func (c ContentItem) Clone() ContentItem {
	out := c
	if c.Platforms != nil {
		out.Platforms = append([]Platform(nil), c.Platforms...)
	}
	return out
}

// CreateContentData holds the fields collected by the create-content form
type CreateContentData struct {
	Title         string
	Description   string
	Thumbnail     string
	ScheduledDate string
	ScheduledTime string
	Platforms     []Platform
	ContentType   string
}
