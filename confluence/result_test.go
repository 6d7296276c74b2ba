package confluence

import (
	"encoding/json"
	"testing"
)

// =============================================================================
// RESULT / CURSOR TESTS
// =============================================================================

func decodeCursorResult(t *testing.T, payload string) *CursorBasedResult[Content] {
	t.Helper()
	var result CursorBasedResult[Content]
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	return &result
}

func TestResult_NoNextLink(t *testing.T) {
	result := decodeCursorResult(t, `{
		"results": [{"id": "1", "title": "A"}],
		"start": 0, "limit": 25, "size": 1,
		"_links": {"base": "https://x.atlassian.net/wiki"}
	}`)

	if result.HasNext() {
		t.Error("expected HasNext to be false without a next link")
	}
	if cursor := result.Cursor(); cursor != "" {
		t.Errorf("expected empty cursor, got %q", cursor)
	}
}

func TestResult_CursorExtraction(t *testing.T) {
	result := decodeCursorResult(t, `{
		"results": [{"id": "1"}, {"id": "2"}],
		"start": 0, "limit": 2, "size": 2,
		"_links": {"next": "/rest/api/content/search?cql=type%3Dpage&cursor=abc123&next=true"}
	}`)

	if !result.HasNext() {
		t.Fatal("expected HasNext to be true")
	}
	if cursor := result.Cursor(); cursor != "abc123" {
		t.Errorf("expected cursor abc123, got %q", cursor)
	}
}

func TestResult_CursorMemoized(t *testing.T) {
	result := decodeCursorResult(t, `{
		"results": [],
		"_links": {"next": "/search?cursor=first"}
	}`)

	if cursor := result.Cursor(); cursor != "first" {
		t.Fatalf("expected cursor first, got %q", cursor)
	}

	// Mutating the link must not change the already-computed cursor.
	result.Links.Next = "/search?cursor=second"
	if cursor := result.Cursor(); cursor != "first" {
		t.Errorf("expected memoized cursor first, got %q", cursor)
	}
}

func TestResult_NextLinkWithoutCursorKey(t *testing.T) {
	result := decodeCursorResult(t, `{
		"results": [],
		"_links": {"next": "/rest/api/content?start=25&limit=25"}
	}`)

	if !result.HasNext() {
		t.Fatal("expected HasNext to be true")
	}
	if cursor := result.Cursor(); cursor != "" {
		t.Errorf("expected empty cursor for link without cursor key, got %q", cursor)
	}
}

func TestResult_MalformedNextLinkWithoutQuery(t *testing.T) {
	result := decodeCursorResult(t, `{
		"results": [],
		"_links": {"next": "/rest/api/content/search"}
	}`)

	// A next link with no query string degrades to "no cursor", never a panic.
	if cursor := result.Cursor(); cursor != "" {
		t.Errorf("expected empty cursor for malformed next link, got %q", cursor)
	}
}

func TestResult_SizeMatchesItems(t *testing.T) {
	var result Result[Label]
	payload := `{"results": [{"name": "a"}, {"name": "b"}], "start": 0, "limit": 200, "size": 2}`
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if result.Size != len(result.Results) {
		t.Errorf("size %d does not match %d items", result.Size, len(result.Results))
	}
	if result.Limit != 200 {
		t.Errorf("expected limit 200, got %d", result.Limit)
	}
}
