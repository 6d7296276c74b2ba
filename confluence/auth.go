package confluence

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// =============================================================================
// AUTHENTICATION STRATEGIES
// =============================================================================

// AuthProvider attaches credentials to an outgoing request.
type AuthProvider interface {
	Apply(req *http.Request) error
}

// NoAuth represents no authentication.
type NoAuth struct{}

func (a NoAuth) Apply(req *http.Request) error { return nil }

// BasicAuth uses HTTP Basic Authentication.
type BasicAuth struct {
	Username string
	Password string
}

// Apply adds a Basic auth header to the request.
func (a BasicAuth) Apply(req *http.Request) error {
	if a.Username == "" && a.Password == "" {
		return nil
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(a.Username + ":" + a.Password))
	req.Header.Set("Authorization", "Basic "+credentials)
	return nil
}

// BearerToken uses Bearer token authentication (personal access tokens).
type BearerToken struct {
	Token string
}

// Apply adds a Bearer token header to the request.
func (a BearerToken) Apply(req *http.Request) error {
	if a.Token == "" {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+a.Token)
	return nil
}

// APIKey uses API key authentication.
type APIKey struct {
	Key    string
	Header string // Header name (default: X-API-Key)
}

// Apply adds an API key header to the request.
func (a APIKey) Apply(req *http.Request) error {
	if a.Key == "" {
		return nil
	}
	header := a.Header
	if header == "" {
		header = "X-API-Key"
	}
	req.Header.Set(header, a.Key)
	return nil
}

// AtlassianAuth uses Atlassian-style Basic Auth (email:token).
// This is the standard scheme for Confluence Cloud.
type AtlassianAuth struct {
	Email    string
	APIToken string
}

// Apply adds an Atlassian auth header to the request.
func (a AtlassianAuth) Apply(req *http.Request) error {
	if a.Email == "" || a.APIToken == "" {
		return nil
	}
	credentials := base64.StdEncoding.EncodeToString([]byte(a.Email + ":" + a.APIToken))
	req.Header.Set("Authorization", "Basic "+credentials)
	return nil
}

// OAuth2 authenticates with tokens from an oauth2.TokenSource. Wrap the
// source with oauth2.ReuseTokenSource to avoid refreshing on every call.
type OAuth2 struct {
	Source oauth2.TokenSource
}

// Apply fetches a token from the source and sets it on the request.
func (a OAuth2) Apply(req *http.Request) error {
	if a.Source == nil {
		return nil
	}
	token, err := a.Source.Token()
	if err != nil {
		return fmt.Errorf("oauth2 token: %w", err)
	}
	token.SetAuthHeader(req)
	return nil
}
