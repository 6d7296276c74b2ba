package confluence

import (
	"context"
	"fmt"
	"sync"
)

// =============================================================================
// DEPLOYMENT CAPABILITY
// =============================================================================

// Deployment identifies how the target Confluence instance is hosted.
// Some operations (move, copy) exist only on cloud deployments.
type Deployment string

const (
	DeploymentCloud  Deployment = "cloud"
	DeploymentServer Deployment = "server"
)

type deploymentCache struct {
	mu    sync.Mutex
	value Deployment
}

// SystemInfo fetches the instance's system information.
func (c *Client) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	resp, err := c.Get(ctx, "/settings/systemInfo", nil)
	if err != nil {
		return nil, err
	}

	var info SystemInfo
	if err := resp.JSON(&info); err != nil {
		return nil, fmt.Errorf("parse system info: %w", err)
	}
	return &info, nil
}

// Deployment reports whether the instance is a cloud or server
// deployment. A preset on the config short-circuits the probe; otherwise
// the system info endpoint is queried once and the answer cached for the
// lifetime of the client.
func (c *Client) Deployment(ctx context.Context) (Deployment, error) {
	if c.config.Deployment != "" {
		return c.config.Deployment, nil
	}

	c.deployment.mu.Lock()
	defer c.deployment.mu.Unlock()
	if c.deployment.value != "" {
		return c.deployment.value, nil
	}

	info, err := c.SystemInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("probe deployment: %w", err)
	}

	deployment := DeploymentServer
	if info.CloudID != "" {
		deployment = DeploymentCloud
	}
	c.deployment.value = deployment
	return deployment, nil
}

// requireCloud fails with an UnsupportedOperationError when the target is
// not a cloud deployment, before the operation issues its own HTTP call.
func (c *Client) requireCloud(ctx context.Context, operation string) error {
	deployment, err := c.Deployment(ctx)
	if err != nil {
		return err
	}
	if deployment != DeploymentCloud {
		return &UnsupportedOperationError{Operation: operation, Deployment: deployment}
	}
	return nil
}
