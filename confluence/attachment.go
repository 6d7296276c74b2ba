package confluence

import (
	"context"
	"fmt"
	"net/url"
)

// =============================================================================
// ATTACHMENT OPERATIONS
// =============================================================================

// GetAttachments lists the attachments of a content item. Attachments are
// content items of type attachment; file metadata lives in Extensions.
func (c *Client) GetAttachments(ctx context.Context, contentID int64, paging *PagingInformation, expand ...string) (*Result[Content], error) {
	if err := validateContentID(contentID); err != nil {
		return nil, err
	}

	q := url.Values{}
	paging.apply(q)
	applyExpand(q, c.expandFields(expand))

	resp, err := c.Get(ctx, contentPath(contentID)+"/child/attachment", q)
	if err != nil {
		return nil, err
	}

	var result Result[Content]
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("parse attachments: %w", err)
	}
	return &result, nil
}

// DownloadLink returns the download URL for an attachment, or "" when the
// attachment carries no self link.
func DownloadLink(attachment *Content) string {
	if attachment == nil || attachment.Links == nil || attachment.Links.Self == "" {
		return ""
	}
	return attachment.Links.Self + "/download"
}
