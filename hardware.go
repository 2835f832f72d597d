package quads

import (
	"context"

	"github.com/quadsproject/go-quads-lib/internal/api"
)

// --------------------------------------------------------------------
// Interfaces
// --------------------------------------------------------------------

// GetInterfaces returns the interfaces of every host.
func (c *Client) GetInterfaces(ctx context.Context) ([]Interface, error) {
	return call(c, func(conn api.Conn) ([]Interface, error) {
		return api.ListInterfaces(ctx, conn)
	})
}

// GetHostInterfaces returns the interfaces of hostname.
func (c *Client) GetHostInterfaces(ctx context.Context, hostname string) ([]Interface, error) {
	return call(c, func(conn api.Conn) ([]Interface, error) {
		return api.ListHostInterfaces(ctx, conn, hostname)
	})
}

func (c *Client) CreateInterface(ctx context.Context, hostname string, req InterfaceRequest) (*Interface, error) {
	return call(c, func(conn api.Conn) (*Interface, error) {
		return api.CreateInterface(ctx, conn, hostname, req)
	})
}

// UpdateInterface patches the interface of hostname named by req.Name.
func (c *Client) UpdateInterface(ctx context.Context, hostname string, req InterfaceRequest) error {
	return c.exec(func(conn api.Conn) error {
		return api.UpdateInterface(ctx, conn, hostname, req)
	})
}

func (c *Client) RemoveInterface(ctx context.Context, hostname, ifName string) error {
	return c.exec(func(conn api.Conn) error {
		return api.RemoveInterface(ctx, conn, hostname, ifName)
	})
}

// --------------------------------------------------------------------
// Memory, disks, processors
// --------------------------------------------------------------------

func (c *Client) CreateMemory(ctx context.Context, hostname string, req MemoryRequest) (*Memory, error) {
	return call(c, func(conn api.Conn) (*Memory, error) {
		return api.CreateMemory(ctx, conn, hostname, req)
	})
}

func (c *Client) RemoveMemory(ctx context.Context, id int) error {
	return c.exec(func(conn api.Conn) error {
		return api.RemoveMemory(ctx, conn, id)
	})
}

func (c *Client) CreateDisk(ctx context.Context, hostname string, req DiskRequest) (*Disk, error) {
	return call(c, func(conn api.Conn) (*Disk, error) {
		return api.CreateDisk(ctx, conn, hostname, req)
	})
}

// UpdateDisk patches the disk of hostname selected by req.ID.
func (c *Client) UpdateDisk(ctx context.Context, hostname string, req DiskRequest) error {
	return c.exec(func(conn api.Conn) error {
		return api.UpdateDisk(ctx, conn, hostname, req)
	})
}

func (c *Client) RemoveDisk(ctx context.Context, hostname string, diskID int) error {
	return c.exec(func(conn api.Conn) error {
		return api.RemoveDisk(ctx, conn, hostname, diskID)
	})
}

func (c *Client) CreateProcessor(ctx context.Context, hostname string, req ProcessorRequest) (*Processor, error) {
	return call(c, func(conn api.Conn) (*Processor, error) {
		return api.CreateProcessor(ctx, conn, hostname, req)
	})
}

func (c *Client) RemoveProcessor(ctx context.Context, id int) error {
	return c.exec(func(conn api.Conn) error {
		return api.RemoveProcessor(ctx, conn, id)
	})
}
