package confluence

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// TitleLookupStart and TitleLookupLimit are the documented defaults for
// title-based content lookup when no paging is supplied.
const (
	TitleLookupStart = 0
	TitleLookupLimit = 200
)

// Config holds Confluence connection settings.
type Config struct {
	// BaseURL is the base API URI, e.g. https://yoursite.atlassian.net/wiki/rest/api.
	BaseURL string

	// Auth configures authentication. Defaults to NoAuth.
	Auth AuthProvider

	// Expand is the default list of fields to expand on responses.
	// A per-call expand list overrides it.
	Expand []string

	// Deployment presets the deployment type ("cloud" or "server").
	// When empty it is probed lazily via the system info endpoint.
	Deployment Deployment

	// Timeout for individual requests (default: 30s).
	Timeout time.Duration

	// MaxRetries for rate-limited or server-errored requests. Zero means
	// the default of 3; set a negative value to disable retries entirely.
	MaxRetries int

	// RateLimit requests per second (default: 10).
	RateLimit float64

	// RateBurst maximum burst size (default: 5).
	RateBurst int

	// Headers to add to all requests.
	Headers map[string]string

	// UserAgent string (default: "confluence-go/1.0").
	UserAgent string

	// Logger receives debug-level request logs. Defaults to a discard logger.
	Logger logrus.FieldLogger

	// Transport allows injecting a custom HTTP transport (for tests/stubs).
	Transport http.RoundTripper
}

// Validate checks configuration completeness and applies defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("baseUrl is required")
	}
	if c.Auth == nil {
		c.Auth = NoAuth{}
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.RateLimit == 0 {
		c.RateLimit = 10.0
	}
	if c.RateBurst == 0 {
		c.RateBurst = 5
	}
	if c.UserAgent == "" {
		c.UserAgent = "confluence-go/1.0"
	}
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}
	switch c.Deployment {
	case "", DeploymentCloud, DeploymentServer:
	default:
		return fmt.Errorf("unknown deployment %q", c.Deployment)
	}
	return nil
}
