package quads

import "github.com/quadsproject/go-quads-lib/internal/types"

// Public type aliases so SDK consumers can import only the quads package.
type (
	// Requests
	CreateHostRequest         = types.CreateHostRequest
	UpdateHostRequest         = types.UpdateHostRequest
	CreateCloudRequest        = types.CloudRequest
	UpdateCloudRequest        = types.CloudRequest
	CreateScheduleRequest     = types.CreateScheduleRequest
	UpdateScheduleRequest     = types.UpdateScheduleRequest
	CreateAssignmentRequest   = types.CreateAssignmentRequest
	UpdateAssignmentRequest   = types.UpdateAssignmentRequest
	UpdateNotificationRequest = types.UpdateNotificationRequest
	InterfaceRequest          = types.InterfaceRequest
	MemoryRequest             = types.MemoryRequest
	DiskRequest               = types.DiskRequest
	ProcessorRequest          = types.ProcessorRequest
	VlanRequest               = types.VlanRequest

	// Domain entities
	Ref          = types.Ref
	CloudRef     = types.Ref
	Host         = types.Host
	Cloud        = types.Cloud
	CloudSummary = types.CloudSummary
	Assignment   = types.Assignment
	Notification = types.Notification
	Schedule     = types.Schedule
	Interface    = types.Interface
	Disk         = types.Disk
	Memory       = types.Memory
	Processor    = types.Processor
	Vlan         = types.Vlan
	Move         = types.Move
	Version      = types.Version

	// Responses
	LoginResponse = types.LoginResponse
	HostModels    = types.HostModels
)
