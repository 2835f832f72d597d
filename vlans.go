package quads

import (
	"context"

	"github.com/quadsproject/go-quads-lib/internal/api"
)

func (c *Client) GetVlans(ctx context.Context) ([]Vlan, error) {
	return call(c, func(conn api.Conn) ([]Vlan, error) {
		return api.ListVlans(ctx, conn)
	})
}

// GetVlan retrieves a VLAN by its VLAN ID (not the record ID).
func (c *Client) GetVlan(ctx context.Context, vlanID int) (*Vlan, error) {
	return call(c, func(conn api.Conn) (*Vlan, error) {
		return api.GetVlan(ctx, conn, vlanID)
	})
}

func (c *Client) CreateVlan(ctx context.Context, req VlanRequest) (*Vlan, error) {
	return call(c, func(conn api.Conn) (*Vlan, error) {
		return api.CreateVlan(ctx, conn, req)
	})
}

func (c *Client) UpdateVlan(ctx context.Context, vlanID int, req VlanRequest) error {
	return c.exec(func(conn api.Conn) error {
		return api.UpdateVlan(ctx, conn, vlanID, req)
	})
}

// GetMoves returns the host moves due now, or on date (YYYY-MM-DD) when set.
func (c *Client) GetMoves(ctx context.Context, date string) ([]Move, error) {
	return call(c, func(conn api.Conn) ([]Move, error) {
		return api.ListMoves(ctx, conn, date)
	})
}

// GetVersion returns the server version.
func (c *Client) GetVersion(ctx context.Context) (*Version, error) {
	return call(c, func(conn api.Conn) (*Version, error) {
		return api.GetVersion(ctx, conn)
	})
}
