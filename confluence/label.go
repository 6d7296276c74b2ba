package confluence

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// =============================================================================
// LABEL OPERATIONS
// =============================================================================

// GetLabels lists the labels attached to a content item.
func (c *Client) GetLabels(ctx context.Context, contentID int64, paging *PagingInformation) (*Result[Label], error) {
	if err := validateContentID(contentID); err != nil {
		return nil, err
	}

	q := url.Values{}
	paging.apply(q)

	resp, err := c.Get(ctx, contentPath(contentID)+"/label", q)
	if err != nil {
		return nil, err
	}

	var result Result[Label]
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	return &result, nil
}

// AddLabels attaches labels to a content item. An empty collection fails
// locally before any network call.
func (c *Client) AddLabels(ctx context.Context, contentID int64, labels []Label) (*Result[Label], error) {
	if err := validateContentID(contentID); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, &ValidationError{Field: "labels", Reason: "must not be empty"}
	}
	for _, label := range labels {
		if label.Name == "" {
			return nil, &ValidationError{Field: "labels", Reason: "label names must not be empty"}
		}
	}

	resp, err := c.Post(ctx, contentPath(contentID)+"/label", nil, labels)
	if err != nil {
		return nil, err
	}

	var result Result[Label]
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	return &result, nil
}

// DeleteLabel removes a single label from a content item by name.
func (c *Client) DeleteLabel(ctx context.Context, contentID int64, name string) error {
	if err := validateContentID(contentID); err != nil {
		return err
	}
	if name == "" {
		return &ValidationError{Field: "label", Reason: "must not be empty"}
	}

	resp, err := c.Delete(ctx, contentPath(contentID)+"/label/"+url.PathEscape(name), nil)
	if err != nil {
		return err
	}
	return expectStatus(resp, http.StatusNoContent)
}
