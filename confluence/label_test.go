package confluence

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

// =============================================================================
// LABEL TESTS
// =============================================================================

func TestGetLabels(t *testing.T) {
	client, transport := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"results": [{"prefix": "global", "name": "docs"}], "size": 1}`)
	})

	result, err := client.GetLabels(context.Background(), 42, nil)
	if err != nil {
		t.Fatalf("GetLabels failed: %v", err)
	}
	if len(result.Results) != 1 || result.Results[0].Name != "docs" {
		t.Errorf("unexpected labels: %+v", result.Results)
	}
	if transport.calls[0].Path != apiPrefix+"/content/42/label" {
		t.Errorf("unexpected path %s", transport.calls[0].Path)
	}
}

func TestAddLabels(t *testing.T) {
	client, transport := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"results": [{"name": "docs"}, {"name": "howto"}], "size": 2}`)
	})

	labels := []Label{{Prefix: "global", Name: "docs"}, {Name: "howto"}}
	result, err := client.AddLabels(context.Background(), 42, labels)
	if err != nil {
		t.Fatalf("AddLabels failed: %v", err)
	}
	if result.Size != 2 {
		t.Errorf("unexpected size %d", result.Size)
	}

	call := transport.calls[0]
	if call.Method != http.MethodPost || call.Path != apiPrefix+"/content/42/label" {
		t.Errorf("unexpected request %s %s", call.Method, call.Path)
	}

	var sent []map[string]any
	if err := json.Unmarshal(call.Body, &sent); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if len(sent) != 2 || sent[0]["name"] != "docs" {
		t.Errorf("unexpected payload: %v", sent)
	}
}

func TestAddLabels_EmptyCollectionRejected(t *testing.T) {
	client, transport := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no HTTP call expected")
	})

	for _, labels := range [][]Label{nil, {}} {
		_, err := client.AddLabels(context.Background(), 42, labels)
		var valErr *ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	}
	if len(transport.calls) != 0 {
		t.Errorf("expected zero HTTP calls, got %d", len(transport.calls))
	}
}

func TestDeleteLabel(t *testing.T) {
	client, transport := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteLabel(context.Background(), 42, "docs"); err != nil {
		t.Fatalf("DeleteLabel failed: %v", err)
	}

	call := transport.calls[0]
	if call.Method != http.MethodDelete || call.Path != apiPrefix+"/content/42/label/docs" {
		t.Errorf("unexpected request %s %s", call.Method, call.Path)
	}
}

func TestDeleteLabel_EmptyNameRejected(t *testing.T) {
	client, _ := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no HTTP call expected")
	})

	err := client.DeleteLabel(context.Background(), 42, "")
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
