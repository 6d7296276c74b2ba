package confluence

import (
	"context"
	"fmt"
	"net/url"
)

// =============================================================================
// USER OPERATIONS
// =============================================================================

// CurrentUser fetches the authenticated user. Useful as a credential
// probe after constructing a client.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	resp, err := c.Get(ctx, "/user/current", nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := resp.JSON(&user); err != nil {
		return nil, fmt.Errorf("parse user: %w", err)
	}
	return &user, nil
}

// GetUser fetches a user by account id.
func (c *Client) GetUser(ctx context.Context, accountID string) (*User, error) {
	if accountID == "" {
		return nil, &ValidationError{Field: "accountId", Reason: "must not be empty"}
	}

	q := url.Values{}
	q.Set("accountId", accountID)

	resp, err := c.Get(ctx, "/user", q)
	if err != nil {
		return nil, err
	}

	var user User
	if err := resp.JSON(&user); err != nil {
		return nil, fmt.Errorf("parse user: %w", err)
	}
	return &user, nil
}
