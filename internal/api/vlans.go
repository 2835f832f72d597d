package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/quadsproject/go-quads-lib/internal/types"
)

// ListVlans returns every VLAN.
func ListVlans(ctx context.Context, c Conn) ([]types.Vlan, error) {
	return getList[types.Vlan](ctx, c, "get vlans", "vlans", "vlans", nil)
}

// GetVlan retrieves a VLAN by its VLAN ID.
func GetVlan(ctx context.Context, c Conn, vlanID int) (*types.Vlan, error) {
	if err := types.ValidatePositive(vlanID, "vlan id"); err != nil {
		return nil, err
	}
	return getOne[types.Vlan](ctx, c, "get vlan", Endpoint("vlans", strconv.Itoa(vlanID)), nil)
}

// CreateVlan defines a VLAN.
func CreateVlan(ctx context.Context, c Conn, req types.VlanRequest) (*types.Vlan, error) {
	if err := types.ValidatePositive(req.VlanID, "vlan id"); err != nil {
		return nil, err
	}
	return create[types.Vlan](ctx, c, "create vlan", "vlans", req)
}

// UpdateVlan patches a VLAN.
func UpdateVlan(ctx context.Context, c Conn, vlanID int, req types.VlanRequest) error {
	if err := types.ValidatePositive(vlanID, "vlan id"); err != nil {
		return err
	}
	return mutate(ctx, c, "update vlan", http.MethodPatch, Endpoint("vlans", strconv.Itoa(vlanID)), req)
}

// ListMoves returns host moves due now, or on date (YYYY-MM-DD) when set.
func ListMoves(ctx context.Context, c Conn, date string) ([]types.Move, error) {
	var query url.Values
	if date != "" {
		query = url.Values{"date": {date}}
	}
	return getList[types.Move](ctx, c, "get moves", "moves", "moves", query)
}

// GetVersion returns the server version.
func GetVersion(ctx context.Context, c Conn) (*types.Version, error) {
	return getOne[types.Version](ctx, c, "get version", "version", nil)
}
