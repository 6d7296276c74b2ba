package confluence

import (
	"context"
	"net/http"
	"testing"
)

// =============================================================================
// SPACE / USER / ATTACHMENT TESTS
// =============================================================================

func TestGetSpaces(t *testing.T) {
	client, transport := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{
			"results": [{"key": "ENG", "name": "Engineering"}, {"key": "DOCS", "name": "Docs"}],
			"start": 0, "limit": 25, "size": 2
		}`)
	})

	result, err := client.GetSpaces(context.Background(), &SpaceOptions{
		Keys:   []string{"ENG", "DOCS"},
		Paging: &PagingInformation{Limit: Int(25)},
	})
	if err != nil {
		t.Fatalf("GetSpaces failed: %v", err)
	}
	if len(result.Results) != 2 || result.Results[0].Key != "ENG" {
		t.Errorf("unexpected spaces: %+v", result.Results)
	}

	call := transport.calls[0]
	if call.Path != apiPrefix+"/space" {
		t.Errorf("unexpected path %s", call.Path)
	}
	if keys := call.Query["spaceKey"]; len(keys) != 2 {
		t.Errorf("expected repeated spaceKey filters, got %v", keys)
	}
	if call.Query.Has("start") {
		t.Error("unset start must be omitted")
	}
}

func TestGetSpace(t *testing.T) {
	client, transport := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"key": "ENG", "name": "Engineering", "description": {"plain": {"value": "eng docs", "representation": "plain"}}}`)
	})

	space, err := client.GetSpace(context.Background(), "ENG", "description.plain")
	if err != nil {
		t.Fatalf("GetSpace failed: %v", err)
	}
	if space.Name != "Engineering" || space.Description.Plain.Value != "eng docs" {
		t.Errorf("unexpected space: %+v", space)
	}
	if transport.calls[0].Path != apiPrefix+"/space/ENG" {
		t.Errorf("unexpected path %s", transport.calls[0].Path)
	}
}

func TestCurrentUser(t *testing.T) {
	client, transport := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"accountId": "a-1", "displayName": "Ada"}`)
	})

	user, err := client.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if user.AccountID != "a-1" || user.DisplayName != "Ada" {
		t.Errorf("unexpected user: %+v", user)
	}
	if transport.calls[0].Path != apiPrefix+"/user/current" {
		t.Errorf("unexpected path %s", transport.calls[0].Path)
	}
}

func TestGetAttachments(t *testing.T) {
	client, transport := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{
			"results": [{
				"id": "att-1", "type": "attachment", "title": "diagram.png",
				"extensions": {"mediaType": "image/png", "fileSize": 2048},
				"_links": {"self": "http://confluence.local/wiki/rest/api/content/att-1"}
			}],
			"size": 1
		}`)
	})

	result, err := client.GetAttachments(context.Background(), 42, nil, "version")
	if err != nil {
		t.Fatalf("GetAttachments failed: %v", err)
	}
	if transport.calls[0].Path != apiPrefix+"/content/42/child/attachment" {
		t.Errorf("unexpected path %s", transport.calls[0].Path)
	}

	attachment := result.Results[0]
	if attachment.Extensions.MediaType != "image/png" {
		t.Errorf("unexpected extensions: %+v", attachment.Extensions)
	}
	if got := DownloadLink(&attachment); got != "http://confluence.local/wiki/rest/api/content/att-1/download" {
		t.Errorf("unexpected download link %q", got)
	}
}

func TestDeployment_ProbeServer(t *testing.T) {
	client, transport := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"databaseVersion": "7.19.0"}`)
	})

	deployment, err := client.Deployment(context.Background())
	if err != nil {
		t.Fatalf("Deployment failed: %v", err)
	}
	if deployment != DeploymentServer {
		t.Errorf("expected server deployment, got %s", deployment)
	}

	// Cached: a second read issues no further probe.
	if _, err := client.Deployment(context.Background()); err != nil {
		t.Fatalf("Deployment failed: %v", err)
	}
	if len(transport.calls) != 1 {
		t.Errorf("expected a single probe, got %d calls", len(transport.calls))
	}
}
