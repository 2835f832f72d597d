package quads

import (
	"context"
	"net/url"

	"github.com/quadsproject/go-quads-lib/internal/api"
)

// GetClouds returns every cloud.
func (c *Client) GetClouds(ctx context.Context) ([]Cloud, error) {
	return c.FilterClouds(ctx, nil)
}

// FilterClouds returns the clouds matching filter.
func (c *Client) FilterClouds(ctx context.Context, filter url.Values) ([]Cloud, error) {
	return call(c, func(conn api.Conn) ([]Cloud, error) {
		return api.ListClouds(ctx, conn, filter)
	})
}

// GetFreeClouds returns clouds with no active assignment.
func (c *Client) GetFreeClouds(ctx context.Context) ([]Cloud, error) {
	return call(c, func(conn api.Conn) ([]Cloud, error) {
		return api.ListFreeClouds(ctx, conn)
	})
}

// GetCloud looks a cloud up by name. A missing cloud matches ErrNotFound.
func (c *Client) GetCloud(ctx context.Context, name string) (*Cloud, error) {
	return call(c, func(conn api.Conn) (*Cloud, error) {
		return api.GetCloud(ctx, conn, name)
	})
}

// GetSummary returns host counts per cloud. query may carry date or
// start/end to report a past or future window.
func (c *Client) GetSummary(ctx context.Context, query url.Values) ([]CloudSummary, error) {
	return call(c, func(conn api.Conn) ([]CloudSummary, error) {
		return api.CloudSummary(ctx, conn, query)
	})
}

func (c *Client) InsertCloud(ctx context.Context, req CreateCloudRequest) (*Cloud, error) {
	return call(c, func(conn api.Conn) (*Cloud, error) {
		return api.CreateCloud(ctx, conn, req)
	})
}

func (c *Client) UpdateCloud(ctx context.Context, name string, req UpdateCloudRequest) error {
	return c.exec(func(conn api.Conn) error {
		return api.UpdateCloud(ctx, conn, name, req)
	})
}

func (c *Client) RemoveCloud(ctx context.Context, name string) error {
	return c.exec(func(conn api.Conn) error {
		return api.RemoveCloud(ctx, conn, name)
	})
}
