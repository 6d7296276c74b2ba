package confluence

import (
	"context"
	"fmt"
)

// =============================================================================
// SEARCH
// =============================================================================

// SearchOperations groups the CQL search surface.
type SearchOperations interface {
	Search(ctx context.Context, details *SearchDetails) (*CursorBasedResult[Content], error)
	SearchAll(ctx context.Context, details *SearchDetails) *SearchIterator
}

var _ SearchOperations = (*Client)(nil)

// Search runs a single CQL search request and returns one page of
// results. Continue with the page's Cursor() in a follow-up SearchDetails,
// or use SearchAll to walk every page.
func (c *Client) Search(ctx context.Context, details *SearchDetails) (*CursorBasedResult[Content], error) {
	if details == nil || details.CQL == "" {
		return nil, &ValidationError{Field: "cql", Reason: "must not be empty"}
	}

	q := details.values(c.expandFields(details.Expand))

	resp, err := c.Get(ctx, "/content/search", q)
	if err != nil {
		return nil, err
	}

	var result CursorBasedResult[Content]
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("parse search results: %w", err)
	}
	return &result, nil
}

// =============================================================================
// SEARCH ITERATOR
// =============================================================================

// SearchIterator walks a CQL search page by page, following cursors until
// the server stops advertising a next page.
type SearchIterator struct {
	client  *Client
	ctx     context.Context
	details SearchDetails

	current []Content
	index   int
	done    bool
	err     error
}

// SearchAll returns an iterator over every result of a CQL search. The
// first validation or transport failure stops iteration and is reported
// by Err.
func (c *Client) SearchAll(ctx context.Context, details *SearchDetails) *SearchIterator {
	it := &SearchIterator{
		client: c,
		ctx:    ctx,
	}
	if details == nil {
		it.err = &ValidationError{Field: "cql", Reason: "must not be empty"}
		it.done = true
		return it
	}
	it.details = *details
	return it
}

// Next advances to the next item, fetching further pages as needed. The
// done flag marks "no more pages to fetch"; items already buffered from
// the final page are still drained.
func (it *SearchIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.index < len(it.current) {
		return true
	}
	if it.done {
		return false
	}

	if err := it.fetchPage(); err != nil {
		it.err = err
		return false
	}
	return it.index < len(it.current)
}

func (it *SearchIterator) fetchPage() error {
	result, err := it.client.Search(it.ctx, &it.details)
	if err != nil {
		return err
	}

	it.current = result.Results
	it.index = 0

	cursor := result.Cursor()
	if cursor == "" || len(result.Results) == 0 {
		it.done = true
	}
	it.details.Cursor = cursor

	return nil
}

// Value returns the current item and moves past it.
func (it *SearchIterator) Value() Content {
	if it.index >= len(it.current) {
		return Content{}
	}
	content := it.current[it.index]
	it.index++
	return content
}

// Err returns any error encountered during iteration.
func (it *SearchIterator) Err() error { return it.err }

// Close stops the iteration.
func (it *SearchIterator) Close() error {
	it.done = true
	return nil
}
