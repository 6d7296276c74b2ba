package confluence

import (
	"net/url"
	"strconv"
	"strings"
)

// =============================================================================
// REQUEST-SIDE PAGING
// =============================================================================

// PagingInformation shapes the requested window of a listing call. Nil
// fields are left out of the query entirely so server defaults apply;
// an explicit zero is sent as-is.
type PagingInformation struct {
	Start *int
	Limit *int
}

// Int is a convenience helper for building optional int fields.
func Int(v int) *int { return &v }

// apply attaches start/limit to the query only when explicitly provided.
func (p *PagingInformation) apply(q url.Values) {
	if p == nil {
		return
	}
	if p.Start != nil {
		q.Set("start", strconv.Itoa(*p.Start))
	}
	if p.Limit != nil {
		q.Set("limit", strconv.Itoa(*p.Limit))
	}
}

// applyExpand joins expand field names with commas and attaches the joined
// value only when it is non-empty.
func applyExpand(q url.Values, fields []string) {
	if len(fields) == 0 {
		return
	}
	joined := strings.Join(fields, ",")
	if joined == "" {
		return
	}
	q.Set("expand", joined)
}

// =============================================================================
// SEARCH PARAMETERS
// =============================================================================

// SearchDetails describes a CQL search request. When Cursor is set the
// request continues a previous page via cursor-based paging: the query
// carries cursor and next=true and start is never attached (the cursor
// supersedes offset paging).
type SearchDetails struct {
	CQL        string
	CQLContext string
	Cursor     string
	Start      *int
	Limit      *int
	Expand     []string
}

// values renders the search query parameters.
func (d *SearchDetails) values(expand []string) url.Values {
	q := url.Values{}
	q.Set("cql", d.CQL)
	if d.CQLContext != "" {
		q.Set("cqlcontext", d.CQLContext)
	}
	if d.Cursor != "" {
		q.Set("cursor", d.Cursor)
		q.Set("next", "true")
	} else if d.Start != nil {
		q.Set("start", strconv.Itoa(*d.Start))
	}
	if d.Limit != nil {
		q.Set("limit", strconv.Itoa(*d.Limit))
	}
	applyExpand(q, expand)
	return q
}
