package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/quadsproject/go-quads-lib/internal/types"
)

// ListClouds returns clouds matching the optional filter.
func ListClouds(ctx context.Context, c Conn, filter url.Values) ([]types.Cloud, error) {
	return getList[types.Cloud](ctx, c, "get clouds", "clouds", "clouds", filter)
}

// ListFreeClouds returns clouds with no active assignment.
func ListFreeClouds(ctx context.Context, c Conn) ([]types.Cloud, error) {
	return getList[types.Cloud](ctx, c, "get free clouds", "clouds/free/", "clouds", nil)
}

// GetCloud looks a cloud up by name.
func GetCloud(ctx context.Context, c Conn, name string) (*types.Cloud, error) {
	const op = "get cloud"
	if err := types.ValidateIDPresent(name, "cloud name"); err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, op, http.MethodGet, "clouds", url.Values{"name": {name}}, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[types.Cloud](op, resp.Body, "clouds")
}

// CloudSummary returns per-cloud host counts, optionally for a date window.
func CloudSummary(ctx context.Context, c Conn, query url.Values) ([]types.CloudSummary, error) {
	return getList[types.CloudSummary](ctx, c, "get summary", "clouds/summary", "clouds", query)
}

// CreateCloud defines a new cloud.
func CreateCloud(ctx context.Context, c Conn, req types.CloudRequest) (*types.Cloud, error) {
	if err := types.ValidateIDPresent(req.Name, "name"); err != nil {
		return nil, err
	}
	return create[types.Cloud](ctx, c, "insert cloud", "clouds", req)
}

// UpdateCloud patches a cloud.
func UpdateCloud(ctx context.Context, c Conn, name string, req types.CloudRequest) error {
	if err := types.ValidateIDPresent(name, "cloud name"); err != nil {
		return err
	}
	return mutate(ctx, c, "update cloud", http.MethodPatch, Endpoint("clouds", name), req)
}

// RemoveCloud deletes a cloud.
func RemoveCloud(ctx context.Context, c Conn, name string) error {
	if err := types.ValidateIDPresent(name, "cloud name"); err != nil {
		return err
	}
	return mutate(ctx, c, "remove cloud", http.MethodDelete, Endpoint("clouds", name), nil)
}
