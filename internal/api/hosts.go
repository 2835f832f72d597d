package api

import (
	"context"
	"net/http"
	"net/url"

	apierrors "github.com/quadsproject/go-quads-lib/internal/errors"
	"github.com/quadsproject/go-quads-lib/internal/types"
)

// ListHosts returns hosts matching the optional filter.
func ListHosts(ctx context.Context, c Conn, filter url.Values) ([]types.Host, error) {
	return getList[types.Host](ctx, c, "get hosts", "hosts", "hosts", filter)
}

// ListHostModels returns hosts grouped by model.
func ListHostModels(ctx context.Context, c Conn) (types.HostModels, error) {
	models, err := getOne[types.HostModels](ctx, c, "get host models", "hosts", url.Values{"group_by": {"model"}})
	if err != nil {
		return nil, err
	}
	return *models, nil
}

// GetHost retrieves a host by name.
func GetHost(ctx context.Context, c Conn, hostname string) (*types.Host, error) {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return nil, err
	}
	return getOne[types.Host](ctx, c, "get host", Endpoint("hosts", hostname), nil)
}

// CreateHost registers a new host.
func CreateHost(ctx context.Context, c Conn, req types.CreateHostRequest) (*types.Host, error) {
	if err := types.ValidateIDPresent(req.Name, "name"); err != nil {
		return nil, err
	}
	return create[types.Host](ctx, c, "create host", "hosts", req)
}

// UpdateHost patches a host.
func UpdateHost(ctx context.Context, c Conn, hostname string, req types.UpdateHostRequest) error {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return err
	}
	return mutate(ctx, c, "update host", http.MethodPatch, Endpoint("hosts", hostname), req)
}

// RemoveHost deletes a host.
func RemoveHost(ctx context.Context, c Conn, hostname string) error {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return err
	}
	return mutate(ctx, c, "remove host", http.MethodDelete, Endpoint("hosts", hostname), nil)
}

// IsAvailable reports whether hostname is free for the window in query
// (typically start and end).
func IsAvailable(ctx context.Context, c Conn, hostname string, query url.Values) (bool, error) {
	const op = "is available"
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return false, err
	}
	resp, err := c.send(ctx, op, http.MethodGet, Endpoint("available", hostname), query, nil, nil)
	if err != nil {
		return false, err
	}
	ok, err := types.ParseAvailability(resp.Body)
	if err != nil {
		return false, apierrors.NewDecodeError(op, err)
	}
	return ok, nil
}

// ListAvailable returns hosts free for the window in filter.
func ListAvailable(ctx context.Context, c Conn, filter url.Values) ([]types.Host, error) {
	return getList[types.Host](ctx, c, "get available", "available", "hosts", filter)
}
