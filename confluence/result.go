package confluence

import (
	"net/url"
	"strings"
	"sync"
)

// =============================================================================
// PAGED RESULT CONTAINERS
// =============================================================================

// Links contains hypermedia links attached to entities and result pages.
type Links struct {
	Base    string `json:"base,omitempty"`
	Context string `json:"context,omitempty"`
	Self    string `json:"self,omitempty"`
	Next    string `json:"next,omitempty"`
	WebUI   string `json:"webui,omitempty"`
}

// Result is a single page of a listing response plus its pagination
// metadata. It is constructed solely by deserializing a server response
// and is immutable after construction.
type Result[T any] struct {
	Results []T    `json:"results"`
	Start   int    `json:"start"`
	Limit   int    `json:"limit"`
	Size    int    `json:"size"`
	Links   *Links `json:"_links,omitempty"`
}

// HasNext reports whether the server advertised a further page.
func (r *Result[T]) HasNext() bool {
	return r.Links != nil && r.Links.Next != ""
}

// CursorBasedResult is a Result whose next link carries an opaque cursor
// token for continuation. The cursor is derived lazily from the next link
// and memoized; the computation is a pure function of the link, so a
// racing recomputation is harmless.
type CursorBasedResult[T any] struct {
	Result[T]

	cursorOnce sync.Once
	cursor     string
}

// Cursor returns the continuation token from the next link, or "" when no
// further page exists or the link carries no cursor parameter. The first
// call parses the link's query string; later calls return the cached value.
func (r *CursorBasedResult[T]) Cursor() string {
	if !r.HasNext() {
		return ""
	}
	r.cursorOnce.Do(func() {
		r.cursor = extractCursor(r.Links.Next)
	})
	return r.cursor
}

// extractCursor pulls the cursor parameter out of a next link's query
// string. A link without a query string, or one that fails to parse, or
// one lacking a cursor key, yields "" rather than an error.
func extractCursor(next string) string {
	idx := strings.Index(next, "?")
	if idx < 0 {
		return ""
	}
	values, err := url.ParseQuery(next[idx+1:])
	if err != nil {
		return ""
	}
	return values.Get("cursor")
}
