package confluence

// --- API Entity Types ---

// Content represents a Confluence page, blog post, or attachment.
type Content struct {
	ID         string          `json:"id,omitempty"`
	Type       ContentType     `json:"type,omitempty"` // page, blogpost, attachment
	Status     string          `json:"status,omitempty"`
	Title      string          `json:"title,omitempty"`
	Space      *SpaceRef       `json:"space,omitempty"`
	Body       *Body           `json:"body,omitempty"`
	History    *ContentHistory `json:"history,omitempty"`
	Version    *Version        `json:"version,omitempty"`
	Ancestors  []ContentRef    `json:"ancestors,omitempty"`
	Extensions *Extensions     `json:"extensions,omitempty"`
	Links      *Links          `json:"_links,omitempty"`
	Metadata   map[string]any  `json:"metadata,omitempty"`
}

// ContentType enumerates the content kinds the API distinguishes.
type ContentType string

const (
	ContentTypePage       ContentType = "page"
	ContentTypeBlogPost   ContentType = "blogpost"
	ContentTypeComment    ContentType = "comment"
	ContentTypeAttachment ContentType = "attachment"
)

// SupportsTrashing reports whether deleted content of this type moves to
// the trash first and needs a second, trashed-flagged call to purge.
func (t ContentType) SupportsTrashing() bool {
	return t == ContentTypePage || t == ContentTypeBlogPost
}

// Body wraps the storage-format representation of content.
type Body struct {
	Storage *Storage `json:"storage,omitempty"`
	View    *Storage `json:"view,omitempty"`
}

// Storage holds a content value with its representation.
type Storage struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

// SpaceRef is a lightweight space reference used inside content payloads.
type SpaceRef struct {
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`
}

// ContentRef is a lightweight content reference (ancestors, copy targets).
type ContentRef struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// Version contains content version information.
type Version struct {
	Number  int    `json:"number"`
	When    string `json:"when,omitempty"`
	By      *User  `json:"by,omitempty"`
	Message string `json:"message,omitempty"`
}

// ContentHistory contains creation/update metadata for a content item.
type ContentHistory struct {
	Latest          bool        `json:"latest"`
	CreatedBy       *User       `json:"createdBy,omitempty"`
	CreatedDate     string      `json:"createdDate,omitempty"`
	LastUpdated     *UpdateInfo `json:"lastUpdated,omitempty"`
	PreviousVersion *Version    `json:"previousVersion,omitempty"`
	NextVersion     *Version    `json:"nextVersion,omitempty"`
}

// UpdateInfo contains last update metadata.
type UpdateInfo struct {
	By   *User  `json:"by,omitempty"`
	When string `json:"when,omitempty"`
}

// Extensions contains attachment-specific metadata.
type Extensions struct {
	MediaType string `json:"mediaType,omitempty"`
	FileSize  int64  `json:"fileSize,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// Space represents a Confluence space.
type Space struct {
	ID          int64             `json:"id,omitempty"`
	Key         string            `json:"key"`
	Name        string            `json:"name,omitempty"`
	Type        string            `json:"type,omitempty"`
	Status      string            `json:"status,omitempty"`
	Description *SpaceDescription `json:"description,omitempty"`
	Links       *Links            `json:"_links,omitempty"`
	Metadata    map[string]any    `json:"metadata,omitempty"`
}

// SpaceDescription contains space description variants.
type SpaceDescription struct {
	Plain *Storage `json:"plain,omitempty"`
	View  *Storage `json:"view,omitempty"`
}

// Label represents a content label.
type Label struct {
	ID     string `json:"id,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Name   string `json:"name"`
	Label  string `json:"label,omitempty"`
}

// User represents a Confluence user.
type User struct {
	AccountID      string          `json:"accountId,omitempty"`
	AccountType    string          `json:"accountType,omitempty"`
	Email          string          `json:"email,omitempty"`
	PublicName     string          `json:"publicName,omitempty"`
	DisplayName    string          `json:"displayName,omitempty"`
	ProfilePicture *ProfilePicture `json:"profilePicture,omitempty"`
}

// ProfilePicture contains user avatar info.
type ProfilePicture struct {
	Path      string `json:"path,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// SystemInfo represents Confluence system information. A non-empty
// CloudID identifies a cloud deployment.
type SystemInfo struct {
	CloudID         string `json:"cloudId,omitempty"`
	CommitHash      string `json:"commitHash,omitempty"`
	BaseURL         string `json:"baseUrl,omitempty"`
	DatabaseVersion string `json:"databaseVersion,omitempty"`
}
