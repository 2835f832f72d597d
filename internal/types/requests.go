package types

// ------------------------------
// Request Types
// ------------------------------
//
// Pointer fields are optional: nil leaves the server-side value untouched.

// CreateHostRequest holds parameters for a new host.
type CreateHostRequest struct {
	Name         string `json:"name"`
	Model        string `json:"model"`
	HostType     string `json:"host_type"`
	DefaultCloud string `json:"default_cloud,omitempty"`
	Cloud        string `json:"cloud,omitempty"`
}

// UpdateHostRequest holds the host fields to change.
type UpdateHostRequest struct {
	Model               *string `json:"model,omitempty"`
	HostType            *string `json:"host_type,omitempty"`
	Cloud               *string `json:"cloud,omitempty"`
	DefaultCloud        *string `json:"default_cloud,omitempty"`
	Build               *bool   `json:"build,omitempty"`
	Validated           *bool   `json:"validated,omitempty"`
	SwitchConfigApplied *bool   `json:"switch_config_applied,omitempty"`
	Broken              *bool   `json:"broken,omitempty"`
	Retired             *bool   `json:"retired,omitempty"`
	LastBuild           *string `json:"last_build,omitempty"`
}

// CloudRequest holds parameters for creating or renaming a cloud.
type CloudRequest struct {
	Name          string `json:"name,omitempty"`
	LastRedefined string `json:"last_redefined,omitempty"`
}

// CreateScheduleRequest schedules hostname into cloud between start and end.
type CreateScheduleRequest struct {
	Cloud      string `json:"cloud"`
	Hostname   string `json:"hostname"`
	Start      string `json:"start"`
	End        string `json:"end"`
	BuildStart string `json:"build_start,omitempty"`
	BuildEnd   string `json:"build_end,omitempty"`
}

// UpdateScheduleRequest holds the schedule fields to change.
type UpdateScheduleRequest struct {
	Start      *string `json:"start,omitempty"`
	End        *string `json:"end,omitempty"`
	BuildStart *string `json:"build_start,omitempty"`
	BuildEnd   *string `json:"build_end,omitempty"`
}

// CreateAssignmentRequest allocates a cloud to an owner.
type CreateAssignmentRequest struct {
	Cloud       string   `json:"cloud"`
	Description string   `json:"description"`
	Owner       string   `json:"owner"`
	Ticket      string   `json:"ticket,omitempty"`
	CCUsers     []string `json:"ccuser,omitempty"`
	Qinq        *int     `json:"qinq,omitempty"`
	Wipe        *bool    `json:"wipe,omitempty"`
	VlanID      *int     `json:"vlan,omitempty"`
}

// UpdateAssignmentRequest holds the assignment fields to change.
type UpdateAssignmentRequest struct {
	Description *string  `json:"description,omitempty"`
	Owner       *string  `json:"owner,omitempty"`
	Ticket      *string  `json:"ticket,omitempty"`
	CCUsers     []string `json:"ccuser,omitempty"`
	Qinq        *int     `json:"qinq,omitempty"`
	Wipe        *bool    `json:"wipe,omitempty"`
	VlanID      *int     `json:"vlan,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	Provisioned *bool    `json:"provisioned,omitempty"`
	Validated   *bool    `json:"validated,omitempty"`
}

// UpdateNotificationRequest flips notification flags.
type UpdateNotificationRequest struct {
	Fail       *bool `json:"fail,omitempty"`
	Success    *bool `json:"success,omitempty"`
	Initial    *bool `json:"initial,omitempty"`
	PreInitial *bool `json:"pre_initial,omitempty"`
	Pre        *bool `json:"pre,omitempty"`
	OneDay     *bool `json:"one_day,omitempty"`
	ThreeDays  *bool `json:"three_days,omitempty"`
	FiveDays   *bool `json:"five_days,omitempty"`
	SevenDays  *bool `json:"seven_days,omitempty"`
}

// InterfaceRequest creates or updates a host interface. Name selects the
// interface on update.
type InterfaceRequest struct {
	Name        string `json:"name"`
	BiosID      string `json:"bios_id,omitempty"`
	MacAddress  string `json:"mac_address,omitempty"`
	SwitchIP    string `json:"switch_ip,omitempty"`
	SwitchPort  string `json:"switch_port,omitempty"`
	Speed       *int   `json:"speed,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
	PXEBoot     *bool  `json:"pxe_boot,omitempty"`
	Maintenance *bool  `json:"maintenance,omitempty"`
}

// MemoryRequest adds a DIMM to a host.
type MemoryRequest struct {
	Handle string `json:"handle"`
	SizeGB int    `json:"size_gb"`
}

// DiskRequest adds or updates disks of a host. ID selects the disk on update.
type DiskRequest struct {
	ID       int    `json:"disk_id,omitempty"`
	DiskType string `json:"disk_type,omitempty"`
	SizeGB   int    `json:"size_gb,omitempty"`
	Count    int    `json:"count,omitempty"`
}

// ProcessorRequest adds a CPU to a host.
type ProcessorRequest struct {
	Handle  string `json:"handle"`
	Vendor  string `json:"vendor,omitempty"`
	Product string `json:"product,omitempty"`
	Cores   int    `json:"cores"`
	Threads int    `json:"threads"`
}

// VlanRequest creates or updates a VLAN.
type VlanRequest struct {
	Gateway string `json:"gateway,omitempty"`
	IPFree  *int   `json:"ip_free,omitempty"`
	IPRange string `json:"ip_range,omitempty"`
	Netmask string `json:"netmask,omitempty"`
	VlanID  int    `json:"vlan_id,omitempty"`
}
