package types

import (
	"bytes"
	"encoding/json"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Ref points at another record. The API sends either the bare name or the
// full object depending on the endpoint; both decode into a Ref.
type Ref struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts "name", {"id": 1, "name": "name", ...} or null.
func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &r.Name)
	}
	type plain Ref
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// Host is a bare-metal machine managed by QUADS.
type Host struct {
	ID                  int         `json:"id,omitempty"`
	Name                string      `json:"name"`
	Model               string      `json:"model,omitempty"`
	HostType            string      `json:"host_type,omitempty"`
	Build               bool        `json:"build"`
	Validated           bool        `json:"validated"`
	SwitchConfigApplied bool        `json:"switch_config_applied"`
	Broken              bool        `json:"broken"`
	Retired             bool        `json:"retired"`
	LastBuild           string      `json:"last_build,omitempty"`
	Cloud               *Ref        `json:"cloud,omitempty"`
	DefaultCloud        *Ref        `json:"default_cloud,omitempty"`
	Interfaces          []Interface `json:"interfaces,omitempty"`
	Disks               []Disk      `json:"disks,omitempty"`
	Memory              []Memory    `json:"memory,omitempty"`
	Processors          []Processor `json:"processors,omitempty"`
	CreatedAt           string      `json:"created_at,omitempty"`
}

// Cloud is a named pool of hosts.
type Cloud struct {
	ID            int    `json:"id,omitempty"`
	Name          string `json:"name"`
	LastRedefined string `json:"last_redefined,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// CloudSummary is one row of the clouds summary report.
type CloudSummary struct {
	Name        string   `json:"name"`
	Count       int      `json:"count"`
	Description string   `json:"description,omitempty"`
	Owner       string   `json:"owner,omitempty"`
	Ticket      string   `json:"ticket,omitempty"`
	CCUsers     []string `json:"ccuser,omitempty"`
	Provisioned bool     `json:"provisioned"`
	Validated   bool     `json:"validated"`
}

// Notification tracks which reservation e-mails were sent for an assignment.
type Notification struct {
	ID         int  `json:"id,omitempty"`
	Fail       bool `json:"fail"`
	Success    bool `json:"success"`
	Initial    bool `json:"initial"`
	PreInitial bool `json:"pre_initial"`
	Pre        bool `json:"pre"`
	OneDay     bool `json:"one_day"`
	ThreeDays  bool `json:"three_days"`
	FiveDays   bool `json:"five_days"`
	SevenDays  bool `json:"seven_days"`
}

// Assignment allocates a cloud to an owner for a ticket.
type Assignment struct {
	ID           int           `json:"id"`
	Active       bool          `json:"active"`
	Provisioned  bool          `json:"provisioned"`
	Validated    bool          `json:"validated"`
	Description  string        `json:"description,omitempty"`
	Owner        string        `json:"owner,omitempty"`
	Ticket       string        `json:"ticket,omitempty"`
	Qinq         int           `json:"qinq,omitempty"`
	Wipe         bool          `json:"wipe"`
	CCUsers      []string      `json:"ccuser,omitempty"`
	Cloud        *Ref          `json:"cloud,omitempty"`
	Vlan         *Vlan         `json:"vlan,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
	CreatedAt    string        `json:"created_at,omitempty"`
}

// Schedule places a host into a cloud for a time window.
type Schedule struct {
	ID         int         `json:"id"`
	Start      string      `json:"start"`
	End        string      `json:"end"`
	BuildStart string      `json:"build_start,omitempty"`
	BuildEnd   string      `json:"build_end,omitempty"`
	Host       *Ref        `json:"host,omitempty"`
	Cloud      *Ref        `json:"cloud,omitempty"`
	Assignment *Assignment `json:"assignment,omitempty"`
}

// Interface is a network interface of a host.
type Interface struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	BiosID      string `json:"bios_id,omitempty"`
	MacAddress  string `json:"mac_address,omitempty"`
	SwitchIP    string `json:"switch_ip,omitempty"`
	SwitchPort  string `json:"switch_port,omitempty"`
	Speed       int    `json:"speed,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
	PXEBoot     bool   `json:"pxe_boot"`
	Maintenance bool   `json:"maintenance"`
	HostID      int    `json:"host_id,omitempty"`
	Host        string `json:"host,omitempty"`
}

// Disk describes a group of identical disks in a host.
type Disk struct {
	ID       int    `json:"id,omitempty"`
	DiskType string `json:"disk_type"`
	SizeGB   int    `json:"size_gb"`
	Count    int    `json:"count"`
}

// Memory describes a DIMM.
type Memory struct {
	ID     int    `json:"id,omitempty"`
	Handle string `json:"handle"`
	SizeGB int    `json:"size_gb"`
}

// Processor describes a CPU socket.
type Processor struct {
	ID      int    `json:"id,omitempty"`
	Handle  string `json:"handle"`
	Vendor  string `json:"vendor,omitempty"`
	Product string `json:"product,omitempty"`
	Cores   int    `json:"cores"`
	Threads int    `json:"threads"`
}

// Vlan is a public VLAN that can be attached to an assignment.
type Vlan struct {
	ID      int    `json:"id,omitempty"`
	Gateway string `json:"gateway,omitempty"`
	IPFree  int    `json:"ip_free,omitempty"`
	IPRange string `json:"ip_range,omitempty"`
	Netmask string `json:"netmask,omitempty"`
	VlanID  int    `json:"vlan_id"`
}

// Move is a pending host move between clouds.
type Move struct {
	ID        int    `json:"id,omitempty"`
	Host      string `json:"host"`
	FromCloud string `json:"from_cloud"`
	ToCloud   string `json:"to_cloud"`
}

// Version describes the server build.
type Version struct {
	Version    string `json:"version,omitempty"`
	APIVersion string `json:"api_version,omitempty"`
	Result     string `json:"result,omitempty"`
}
