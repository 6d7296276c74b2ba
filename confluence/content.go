package confluence

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/go-querystring/query"
)

// =============================================================================
// CONTENT OPERATIONS
// =============================================================================

// ContentOperations groups the content-level API surface. *Client is the
// only implementation; the interface exists so callers can scope what a
// component may do.
type ContentOperations interface {
	GetContent(ctx context.Context, contentID int64, expand ...string) (*Content, error)
	GetContentByTitle(ctx context.Context, spaceKey, title string, paging *PagingInformation, expand ...string) (*Result[Content], error)
	GetChildPages(ctx context.Context, contentID int64, opts *ChildPagesOptions) (*Result[Content], error)
	GetHistory(ctx context.Context, contentID int64) (*ContentHistory, error)
	CreateContent(ctx context.Context, req *CreateContentRequest) (*Content, error)
	UpdateContent(ctx context.Context, contentID int64, req *UpdateContentRequest) (*Content, error)
	DeleteContent(ctx context.Context, contentID int64, trashed bool) error
	MoveContent(ctx context.Context, contentID int64, position Position, targetID int64) (string, error)
	CopyContent(ctx context.Context, contentID int64, req *CopyContentRequest) (*Content, error)
}

var _ ContentOperations = (*Client)(nil)

func contentPath(contentID int64) string {
	return fmt.Sprintf("/content/%d", contentID)
}

// validateContentID rejects unset or non-positive content ids locally.
func validateContentID(contentID int64) error {
	if contentID <= 0 {
		return &ValidationError{Field: "contentId", Reason: "must be a positive id"}
	}
	return nil
}

// GetContent fetches a single content item by id.
func (c *Client) GetContent(ctx context.Context, contentID int64, expand ...string) (*Content, error) {
	if err := validateContentID(contentID); err != nil {
		return nil, err
	}

	q := url.Values{}
	applyExpand(q, c.expandFields(expand))

	resp, err := c.Get(ctx, contentPath(contentID), q)
	if err != nil {
		return nil, err
	}

	var content Content
	if err := resp.JSON(&content); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	return &content, nil
}

// titleLookupQuery carries the fixed parameter set of a title-based
// lookup. Unlike generic listings, this endpoint always sends start and
// limit, defaulting to 0/200.
type titleLookupQuery struct {
	Start    int         `url:"start"`
	Limit    int         `url:"limit"`
	Type     ContentType `url:"type"`
	SpaceKey string      `url:"spaceKey"`
	Title    string      `url:"title"`
	Expand   []string    `url:"expand,comma,omitempty"`
}

// GetContentByTitle looks up pages by space key and title. When paging is
// nil the documented defaults start=0, limit=200 apply.
func (c *Client) GetContentByTitle(ctx context.Context, spaceKey, title string, paging *PagingInformation, expand ...string) (*Result[Content], error) {
	if spaceKey == "" {
		return nil, &ValidationError{Field: "spaceKey", Reason: "must not be empty"}
	}
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	lookup := titleLookupQuery{
		Start:    TitleLookupStart,
		Limit:    TitleLookupLimit,
		Type:     ContentTypePage,
		SpaceKey: spaceKey,
		Title:    title,
		Expand:   c.expandFields(expand),
	}
	if paging != nil {
		if paging.Start != nil {
			lookup.Start = *paging.Start
		}
		if paging.Limit != nil {
			lookup.Limit = *paging.Limit
		}
	}

	q, err := query.Values(lookup)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	resp, err := c.Get(ctx, "/content", q)
	if err != nil {
		return nil, err
	}

	var result Result[Content]
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("parse content page: %w", err)
	}
	return &result, nil
}

// ChildPagesOptions shapes a child-page listing. Unset paging fields are
// omitted so server defaults apply.
type ChildPagesOptions struct {
	Paging        *PagingInformation
	ParentVersion int
	Expand        []string
}

// GetChildPages lists the direct child pages of a content item.
func (c *Client) GetChildPages(ctx context.Context, contentID int64, opts *ChildPagesOptions) (*Result[Content], error) {
	if err := validateContentID(contentID); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &ChildPagesOptions{}
	}

	q := url.Values{}
	opts.Paging.apply(q)
	if opts.ParentVersion > 0 {
		q.Set("parentVersion", strconv.Itoa(opts.ParentVersion))
	}
	applyExpand(q, c.expandFields(opts.Expand))

	resp, err := c.Get(ctx, contentPath(contentID)+"/child/page", q)
	if err != nil {
		return nil, err
	}

	var result Result[Content]
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("parse child pages: %w", err)
	}
	return &result, nil
}

// GetHistory fetches the version history metadata of a content item.
func (c *Client) GetHistory(ctx context.Context, contentID int64) (*ContentHistory, error) {
	if err := validateContentID(contentID); err != nil {
		return nil, err
	}

	resp, err := c.Get(ctx, contentPath(contentID)+"/history", nil)
	if err != nil {
		return nil, err
	}

	var history ContentHistory
	if err := resp.JSON(&history); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	return &history, nil
}

// =============================================================================
// WRITE OPERATIONS
// =============================================================================

// CreateContentRequest describes a content item to create. Type defaults
// to page. AncestorID, when set, parents the new item under an existing one.
type CreateContentRequest struct {
	Type       ContentType
	Title      string
	SpaceKey   string
	Body       string
	AncestorID int64
	Expand     []string
}

func (r *CreateContentRequest) validate() error {
	if r == nil {
		return &ValidationError{Field: "request", Reason: "must not be nil"}
	}
	if r.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if r.SpaceKey == "" {
		return &ValidationError{Field: "spaceKey", Reason: "must not be empty"}
	}
	if r.Body == "" {
		return &ValidationError{Field: "body", Reason: "must not be empty"}
	}
	return nil
}

// CreateContent creates a new content item in a space.
func (c *Client) CreateContent(ctx context.Context, req *CreateContentRequest) (*Content, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	contentType := req.Type
	if contentType == "" {
		contentType = ContentTypePage
	}

	payload := Content{
		Type:  contentType,
		Title: req.Title,
		Space: &SpaceRef{Key: req.SpaceKey},
		Body: &Body{
			Storage: &Storage{Value: req.Body, Representation: "storage"},
		},
	}
	if req.AncestorID > 0 {
		payload.Ancestors = []ContentRef{{ID: strconv.FormatInt(req.AncestorID, 10)}}
	}

	q := url.Values{}
	applyExpand(q, c.expandFields(req.Expand))

	resp, err := c.Post(ctx, "/content", q, payload)
	if err != nil {
		return nil, err
	}

	var created Content
	if err := resp.JSON(&created); err != nil {
		return nil, fmt.Errorf("parse created content: %w", err)
	}
	return &created, nil
}

// UpdateContentRequest describes an update to an existing content item.
// Version is the item's current version number; the request bumps it by
// one so the server can detect conflicting edits.
type UpdateContentRequest struct {
	Type    ContentType
	Title   string
	Body    string
	Version int
}

// UpdateContent updates the title and/or body of an existing content item.
func (c *Client) UpdateContent(ctx context.Context, contentID int64, req *UpdateContentRequest) (*Content, error) {
	if err := validateContentID(contentID); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, &ValidationError{Field: "request", Reason: "must not be nil"}
	}
	if req.Version <= 0 {
		return nil, &ValidationError{Field: "version", Reason: "current version number is required"}
	}

	contentType := req.Type
	if contentType == "" {
		contentType = ContentTypePage
	}

	payload := Content{
		Type:    contentType,
		Title:   req.Title,
		Version: &Version{Number: req.Version + 1},
	}
	if req.Body != "" {
		payload.Body = &Body{
			Storage: &Storage{Value: req.Body, Representation: "storage"},
		}
	}

	resp, err := c.Put(ctx, contentPath(contentID), nil, payload)
	if err != nil {
		return nil, err
	}

	var updated Content
	if err := resp.JSON(&updated); err != nil {
		return nil, fmt.Errorf("parse updated content: %w", err)
	}
	return &updated, nil
}

// DeleteContent removes a content item. The first, untrashed call moves
// trashable content to the trash (HTTP 204); purging it permanently takes
// a second call with trashed set, which sends status=trashed and expects
// HTTP 200. The two phases are never chained automatically.
func (c *Client) DeleteContent(ctx context.Context, contentID int64, trashed bool) error {
	if err := validateContentID(contentID); err != nil {
		return err
	}

	q := url.Values{}
	expected := http.StatusNoContent
	if trashed {
		q.Set("status", "trashed")
		expected = http.StatusOK
	}

	resp, err := c.Delete(ctx, contentPath(contentID), q)
	if err != nil {
		return err
	}
	return expectStatus(resp, expected)
}

// Position says where moved content lands relative to the target.
type Position string

const (
	PositionBefore Position = "before"
	PositionAfter  Position = "after"
	PositionAppend Position = "append"
)

func (p Position) validate() error {
	switch p {
	case PositionBefore, PositionAfter, PositionAppend:
		return nil
	default:
		return &ValidationError{Field: "position", Reason: fmt.Sprintf("unknown position %q", string(p))}
	}
}

// MoveContent moves a content item relative to a target item. Only cloud
// deployments support it; on a server deployment the call fails before
// any HTTP request is issued. Returns the id of the moved page.
func (c *Client) MoveContent(ctx context.Context, contentID int64, position Position, targetID int64) (string, error) {
	if err := validateContentID(contentID); err != nil {
		return "", err
	}
	if err := position.validate(); err != nil {
		return "", err
	}
	if targetID <= 0 {
		return "", &ValidationError{Field: "targetId", Reason: "must be a positive id"}
	}
	if err := c.requireCloud(ctx, "move"); err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s/move/%s/%d", contentPath(contentID), position, targetID)
	resp, err := c.Put(ctx, path, nil, nil)
	if err != nil {
		return "", err
	}

	var moved struct {
		PageID string `json:"pageId"`
	}
	if err := resp.JSON(&moved); err != nil {
		return "", fmt.Errorf("parse move response: %w", err)
	}
	return moved.PageID, nil
}

// CopyDestination names where a copy lands.
type CopyDestination struct {
	Type  string `json:"type"` // e.g. parent_page, space
	Value string `json:"value"`
}

// CopyContentRequest describes a single-page copy.
type CopyContentRequest struct {
	Destination  CopyDestination `json:"destination"`
	CopyLabels   bool            `json:"copyLabels,omitempty"`
	TitleOptions *TitleOptions   `json:"pageTitle,omitempty"`
	Expand       []string        `json:"-"`
}

// TitleOptions renames the copied page.
type TitleOptions struct {
	Prefix  string `json:"prefix,omitempty"`
	Replace string `json:"replace,omitempty"`
}

// CopyContent copies a single content item to a destination. Cloud only,
// like MoveContent.
func (c *Client) CopyContent(ctx context.Context, contentID int64, req *CopyContentRequest) (*Content, error) {
	if err := validateContentID(contentID); err != nil {
		return nil, err
	}
	if req == nil || req.Destination.Type == "" || req.Destination.Value == "" {
		return nil, &ValidationError{Field: "destination", Reason: "type and value are required"}
	}
	if err := c.requireCloud(ctx, "copy"); err != nil {
		return nil, err
	}

	q := url.Values{}
	applyExpand(q, c.expandFields(req.Expand))

	resp, err := c.Post(ctx, contentPath(contentID)+"/copy", q, req)
	if err != nil {
		return nil, err
	}

	var copied Content
	if err := resp.JSON(&copied); err != nil {
		return nil, fmt.Errorf("parse copied content: %w", err)
	}
	return &copied, nil
}
