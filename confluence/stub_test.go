package confluence

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// apiPrefix mirrors where the base API URI lands on the stub host.
const apiPrefix = "/wiki/rest/api"

// recordedCall captures the observable parts of one transport round trip.
type recordedCall struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// stubTransport serves requests in-process through an http.Handler and
// records every call (no network listeners).
type stubTransport struct {
	handler http.Handler
	calls   []recordedCall
}

func (rt *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
	}
	rt.calls = append(rt.calls, recordedCall{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  req.URL.Query(),
		Header: req.Header.Clone(),
		Body:   body,
	})

	rr := httptest.NewRecorder()
	rt.handler.ServeHTTP(rr, req)
	return rr.Result(), nil
}

// newStubClient builds a client backed by an in-process stub transport.
func newStubClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*Config)) (*Client, *stubTransport) {
	t.Helper()

	transport := &stubTransport{handler: handler}
	config := &Config{
		BaseURL:   "http://confluence.local" + apiPrefix,
		Auth:      AtlassianAuth{Email: "dev@example.com", APIToken: "stub-token"},
		RateLimit: 1000,
		RateBurst: 100,
		Transport: transport,
	}
	for _, m := range mutate {
		m(config)
	}

	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, transport
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
