package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/quadsproject/go-quads-lib/internal/types"
)

// Interfaces

// ListInterfaces returns the interfaces of every host.
func ListInterfaces(ctx context.Context, c Conn) ([]types.Interface, error) {
	return getList[types.Interface](ctx, c, "get interfaces", "interfaces", "interfaces", nil)
}

// ListHostInterfaces returns the interfaces of one host.
func ListHostInterfaces(ctx context.Context, c Conn, hostname string) ([]types.Interface, error) {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return nil, err
	}
	return getList[types.Interface](ctx, c, "get host interfaces", Endpoint("hosts", hostname, "interfaces"), "interfaces", nil)
}

// CreateInterface adds an interface to a host.
func CreateInterface(ctx context.Context, c Conn, hostname string, req types.InterfaceRequest) (*types.Interface, error) {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return nil, err
	}
	return create[types.Interface](ctx, c, "create interface", Endpoint("interfaces", hostname), req)
}

// UpdateInterface patches the interface named in req.
func UpdateInterface(ctx context.Context, c Conn, hostname string, req types.InterfaceRequest) error {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return err
	}
	return mutate(ctx, c, "update interface", http.MethodPatch, Endpoint("interfaces", hostname), req)
}

// RemoveInterface deletes an interface of a host.
func RemoveInterface(ctx context.Context, c Conn, hostname, ifName string) error {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(ifName, "interface name"); err != nil {
		return err
	}
	return mutate(ctx, c, "remove interface", http.MethodDelete, Endpoint("interfaces", hostname, ifName), nil)
}

// Memory

// CreateMemory adds a DIMM to a host.
func CreateMemory(ctx context.Context, c Conn, hostname string, req types.MemoryRequest) (*types.Memory, error) {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return nil, err
	}
	return create[types.Memory](ctx, c, "create memory", Endpoint("memory", hostname), req)
}

// RemoveMemory deletes a DIMM.
func RemoveMemory(ctx context.Context, c Conn, id int) error {
	if err := types.ValidatePositive(id, "memory id"); err != nil {
		return err
	}
	return mutate(ctx, c, "remove memory", http.MethodDelete, Endpoint("memory", strconv.Itoa(id)), nil)
}

// Disks

// CreateDisk adds disks to a host.
func CreateDisk(ctx context.Context, c Conn, hostname string, req types.DiskRequest) (*types.Disk, error) {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return nil, err
	}
	return create[types.Disk](ctx, c, "create disk", Endpoint("disks", hostname), req)
}

// UpdateDisk patches the disk selected by req.ID.
func UpdateDisk(ctx context.Context, c Conn, hostname string, req types.DiskRequest) error {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return err
	}
	return mutate(ctx, c, "update disk", http.MethodPatch, Endpoint("disks", hostname), req)
}

// RemoveDisk deletes a disk of a host.
func RemoveDisk(ctx context.Context, c Conn, hostname string, diskID int) error {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return err
	}
	if err := types.ValidatePositive(diskID, "disk id"); err != nil {
		return err
	}
	return mutate(ctx, c, "remove disk", http.MethodDelete, Endpoint("disks", hostname, strconv.Itoa(diskID)), nil)
}

// Processors

// CreateProcessor adds a CPU to a host.
func CreateProcessor(ctx context.Context, c Conn, hostname string, req types.ProcessorRequest) (*types.Processor, error) {
	if err := types.ValidateIDPresent(hostname, "hostname"); err != nil {
		return nil, err
	}
	return create[types.Processor](ctx, c, "create processor", Endpoint("processors", hostname), req)
}

// RemoveProcessor deletes a CPU.
func RemoveProcessor(ctx context.Context, c Conn, id int) error {
	if err := types.ValidatePositive(id, "processor id"); err != nil {
		return err
	}
	return mutate(ctx, c, "remove processor", http.MethodDelete, Endpoint("processors", strconv.Itoa(id)), nil)
}
