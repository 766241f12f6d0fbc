package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Status is the workflow stage of a content item
type Status string

const (
	StatusIdea        Status = "idea"
	StatusInProgress  Status = "in-progress"
	StatusReviewReady Status = "review-ready"
	StatusApproved    Status = "approved"
)

// Statuses lists the canonical statuses in workflow order
var Statuses = []Status{
	StatusIdea,
	StatusInProgress,
	StatusReviewReady,
	StatusApproved,
}

// statusTitles holds the display names used for default columns and tallies
var statusTitles = map[Status]string{
	StatusIdea:        "Idea",
	StatusInProgress:  "In Progress",
	StatusReviewReady: "Review Ready",
	StatusApproved:    "Approved",
}

// Valid reports whether s is one of the canonical statuses
func (s Status) Valid() bool {
	_, ok := statusTitles[s]
	return ok
}

// Title returns the display name of the status
func (s Status) Title() string {
	if title, ok := statusTitles[s]; ok {
		return title
	}
	return string(s)
}

// ParseStatus converts a raw string into a canonical status
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.Valid()
}

// ============================================================================
// COLUMN -> STATUS MAPPING
// ============================================================================

// columnStatuses maps column ids to the status an item takes when moved into
// that column. Ad-hoc sections are absent from the table.
var columnStatuses = map[string]Status{
	string(StatusIdea):        StatusIdea,
	string(StatusInProgress):  StatusInProgress,
	string(StatusReviewReady): StatusReviewReady,
	string(StatusApproved):    StatusApproved,
}

// StatusForColumn returns the status implied by a column id, if any
func StatusForColumn(columnID string) (Status, bool) {
	s, ok := columnStatuses[columnID]
	return s, ok
}

// ============================================================================
// PLATFORM CONSTANTS
// ============================================================================

// Platform is a social network an item is published to
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
)

// Platforms lists every supported platform in display order
var Platforms = []Platform{
	PlatformTikTok,
	PlatformInstagram,
	PlatformFacebook,
	PlatformTwitter,
	PlatformLinkedIn,
}

// platformColors mirrors the brand colors used for primary-platform accents
var platformColors = map[Platform]string{
	PlatformInstagram: "#E1306C",
	PlatformTikTok:    "#000000",
	PlatformFacebook:  "#1877F2",
	PlatformLinkedIn:  "#0A66C2",
	PlatformTwitter:   "#1DA1F2",
}

// Valid reports whether p is a supported platform
func (p Platform) Valid() bool {
	_, ok := platformColors[p]
	return ok
}

// Color returns the brand color of the platform
func (p Platform) Color() string {
	return platformColors[p]
}

// ParsePlatform converts a raw string into a supported platform
func ParsePlatform(raw string) (Platform, bool) {
	p := Platform(raw)
	return p, p.Valid()
}

// ============================================================================
// DEFAULTS
// ============================================================================

const (
	// DefaultThumbnail is the placeholder image for new cards
	DefaultThumbnail = "/person.png"

	// DefaultAvatar is the placeholder avatar for the current user
	DefaultAvatar = "/placeholder.svg?height=32&width=32"

	// DefaultAssigneeName is assigned to items created in this session
	DefaultAssigneeName = "Current User"

	// DefaultCardTitle is the title of a card added straight into a column
	DefaultCardTitle = "Untitled"

	// DefaultCardDescription is the description of a card added straight into a column
	DefaultCardDescription = "New content item"

	// DefaultScheduledTime is the time slot given to new cards
	DefaultScheduledTime = "7:00 AM"

	// NewSectionTitle is the title of columns created with add-section
	NewSectionTitle = "New Section"

	// SectionIDPrefix prefixes the ids of ad-hoc sections
	SectionIDPrefix = "section-"

	// IdeaColumnID is the column new content is created in
	IdeaColumnID = string(StatusIdea)

	// DateLayout is the ISO calendar date format used by scheduledDate
	DateLayout = "2006-01-02"
)
