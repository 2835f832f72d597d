package quads

import (
	"context"
	"net/url"

	"github.com/quadsproject/go-quads-lib/internal/api"
)

// --------------------------------------------------------------------
// Host operations - delegated to internal/api
// --------------------------------------------------------------------

// GetHosts returns the hosts matching filter (e.g. model, cloud, retired).
// A nil filter returns every host.
func (c *Client) GetHosts(ctx context.Context, filter url.Values) ([]Host, error) {
	return call(c, func(conn api.Conn) ([]Host, error) {
		return api.ListHosts(ctx, conn, filter)
	})
}

// GetHostModels returns hosts grouped by hardware model.
func (c *Client) GetHostModels(ctx context.Context) (HostModels, error) {
	return call(c, func(conn api.Conn) (HostModels, error) {
		return api.ListHostModels(ctx, conn)
	})
}

// GetHost retrieves a host by name.
func (c *Client) GetHost(ctx context.Context, hostname string) (*Host, error) {
	return call(c, func(conn api.Conn) (*Host, error) {
		return api.GetHost(ctx, conn, hostname)
	})
}

// CreateHost registers a host. The result is nil when the server replies
// without a body.
func (c *Client) CreateHost(ctx context.Context, req CreateHostRequest) (*Host, error) {
	return call(c, func(conn api.Conn) (*Host, error) {
		return api.CreateHost(ctx, conn, req)
	})
}

// UpdateHost patches the fields set in req.
func (c *Client) UpdateHost(ctx context.Context, hostname string, req UpdateHostRequest) error {
	return c.exec(func(conn api.Conn) error {
		return api.UpdateHost(ctx, conn, hostname, req)
	})
}

// RemoveHost deletes a host.
func (c *Client) RemoveHost(ctx context.Context, hostname string) error {
	return c.exec(func(conn api.Conn) error {
		return api.RemoveHost(ctx, conn, hostname)
	})
}

// IsAvailable reports whether hostname is free for the window in query,
// typically start and end.
func (c *Client) IsAvailable(ctx context.Context, hostname string, query url.Values) (bool, error) {
	return call(c, func(conn api.Conn) (bool, error) {
		return api.IsAvailable(ctx, conn, hostname, query)
	})
}

// GetAvailable returns the hosts that are free now.
func (c *Client) GetAvailable(ctx context.Context) ([]Host, error) {
	return c.FilterAvailable(ctx, nil)
}

// FilterAvailable returns the hosts free for the window and constraints in filter.
func (c *Client) FilterAvailable(ctx context.Context, filter url.Values) ([]Host, error) {
	return call(c, func(conn api.Conn) ([]Host, error) {
		return api.ListAvailable(ctx, conn, filter)
	})
}
