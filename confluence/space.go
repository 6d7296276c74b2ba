package confluence

import (
	"context"
	"fmt"
	"net/url"
)

// =============================================================================
// SPACE OPERATIONS
// =============================================================================

// SpaceOptions shapes a space listing.
type SpaceOptions struct {
	// Keys restricts the listing to specific space keys.
	Keys   []string
	Paging *PagingInformation
	Expand []string
}

// GetSpaces lists spaces visible to the authenticated user.
func (c *Client) GetSpaces(ctx context.Context, opts *SpaceOptions) (*Result[Space], error) {
	if opts == nil {
		opts = &SpaceOptions{}
	}

	q := url.Values{}
	for _, key := range opts.Keys {
		q.Add("spaceKey", key)
	}
	opts.Paging.apply(q)
	applyExpand(q, c.expandFields(opts.Expand))

	resp, err := c.Get(ctx, "/space", q)
	if err != nil {
		return nil, err
	}

	var result Result[Space]
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("parse spaces: %w", err)
	}
	return &result, nil
}

// GetSpace fetches a single space by key.
func (c *Client) GetSpace(ctx context.Context, spaceKey string, expand ...string) (*Space, error) {
	if spaceKey == "" {
		return nil, &ValidationError{Field: "spaceKey", Reason: "must not be empty"}
	}

	q := url.Values{}
	applyExpand(q, c.expandFields(expand))

	resp, err := c.Get(ctx, "/space/"+url.PathEscape(spaceKey), q)
	if err != nil {
		return nil, err
	}

	var space Space
	if err := resp.JSON(&space); err != nil {
		return nil, fmt.Errorf("parse space: %w", err)
	}
	return &space, nil
}
